package controllers

import (
	"net/http"

	"github.com/rochiyat/mutabaah-app/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Svc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Svc: svc}
}

func (s *StatsController) Dashboard(c *gin.Context) {
	stats, err := s.Svc.Dashboard(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *StatsController) Weekly(c *gin.Context) {
	stats, err := s.Svc.Weekly(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *StatsController) Monthly(c *gin.Context) {
	stats, err := s.Svc.Monthly(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
