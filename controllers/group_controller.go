package controllers

import (
	"net/http"

	"github.com/rochiyat/mutabaah-app/services"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	Svc *services.GroupService
}

func NewGroupController(svc *services.GroupService) *GroupController {
	return &GroupController{Svc: svc}
}

func (g *GroupController) List(c *gin.Context) {
	groups, err := g.Svc.List(currentUserID(c), currentRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (g *GroupController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	group, err := g.Svc.Get(currentUserID(c), currentRole(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (g *GroupController) Create(c *gin.Context) {
	var input services.CreateGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	group, err := g.Svc.Create(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (g *GroupController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	group, err := g.Svc.Update(currentUserID(c), currentRole(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (g *GroupController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := g.Svc.Delete(currentUserID(c), currentRole(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "group deleted"})
}

func (g *GroupController) Members(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	members, err := g.Svc.Members(currentUserID(c), currentRole(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (g *GroupController) AddMember(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		UserID uint `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	group, err := g.Svc.AddMember(currentUserID(c), currentRole(c), id, input.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (g *GroupController) RemoveMember(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	group, err := g.Svc.RemoveMember(currentUserID(c), currentRole(c), id, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}
