package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rochiyat/mutabaah-app/services"

	"github.com/gin-gonic/gin"
)

type RecordController struct {
	Svc *services.RecordService
}

func NewRecordController(svc *services.RecordService) *RecordController {
	return &RecordController{Svc: svc}
}

type createRecordBody struct {
	ActivityID uint   `json:"activityId" binding:"required"`
	Completed  int    `json:"completed"`
	Notes      string `json:"notes"`
	Date       string `json:"date"` // YYYY-MM-DD or RFC3339; empty means today
}

// parseDate accepts the SPA's plain date strings as well as full
// timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (r *RecordController) List(c *gin.Context) {
	var filter services.RecordFilter

	if v := c.Query("activityId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid activityId"})
			return
		}
		aid := uint(id)
		filter.ActivityID = &aid
	}
	if v := c.Query("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid startDate. Use YYYY-MM-DD"})
			return
		}
		filter.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid endDate. Use YYYY-MM-DD"})
			return
		}
		filter.EndDate = &t
	}

	records, err := r.Svc.List(currentUserID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (r *RecordController) Create(c *gin.Context) {
	var body createRecordBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	input := services.CreateRecordInput{
		ActivityID: body.ActivityID,
		Completed:  body.Completed,
		Notes:      body.Notes,
	}
	if body.Date != "" {
		date, err := parseDate(body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date. Use YYYY-MM-DD"})
			return
		}
		input.Date = date
	}

	record, err := r.Svc.Create(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (r *RecordController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	record, err := r.Svc.Update(currentUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (r *RecordController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := r.Svc.Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}
