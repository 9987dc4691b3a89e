package controllers

import (
	"net/http"

	"github.com/rochiyat/mutabaah-app/services"

	"github.com/gin-gonic/gin"
)

type GroupActivityController struct {
	Svc *services.GroupActivityService
}

func NewGroupActivityController(svc *services.GroupActivityService) *GroupActivityController {
	return &GroupActivityController{Svc: svc}
}

func (g *GroupActivityController) List(c *gin.Context) {
	groupID, ok := idParam(c, "id")
	if !ok {
		return
	}

	links, err := g.Svc.List(currentUserID(c), currentRole(c), groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (g *GroupActivityController) Add(c *gin.Context) {
	groupID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.AddGroupActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	link, err := g.Svc.Add(currentUserID(c), currentRole(c), groupID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (g *GroupActivityController) Update(c *gin.Context) {
	groupID, ok := idParam(c, "id")
	if !ok {
		return
	}
	activityID, ok := idParam(c, "activityId")
	if !ok {
		return
	}

	var input struct {
		IsRequired *bool `json:"isRequired"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	link, err := g.Svc.Update(currentUserID(c), currentRole(c), groupID, activityID, input.IsRequired)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

func (g *GroupActivityController) Remove(c *gin.Context) {
	groupID, ok := idParam(c, "id")
	if !ok {
		return
	}
	activityID, ok := idParam(c, "activityId")
	if !ok {
		return
	}

	if err := g.Svc.Remove(currentUserID(c), currentRole(c), groupID, activityID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "activity removed from group"})
}
