package controllers

import (
	"net/http"

	"github.com/rochiyat/mutabaah-app/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	Svc *services.ActivityService
}

func NewActivityController(svc *services.ActivityService) *ActivityController {
	return &ActivityController{Svc: svc}
}

func (a *ActivityController) List(c *gin.Context) {
	activities, err := a.Svc.List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (a *ActivityController) Create(c *gin.Context) {
	var input services.CreateActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	activity, err := a.Svc.Create(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (a *ActivityController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	activity, err := a.Svc.Update(currentUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (a *ActivityController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := a.Svc.Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "activity deleted"})
}
