package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rochiyat/mutabaah-app/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service failures onto the HTTP surface. NotFound and
// Forbidden-by-absence share a 404 so callers learn nothing about
// resources they cannot see. Unexpected errors get a generic 500; the
// detail is only echoed outside release mode.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "resource not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "access denied"})
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidResetCode):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	default:
		body := gin.H{"message": "Internal Server Error"}
		if gin.Mode() != gin.ReleaseMode {
			body["error"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

func currentRole(c *gin.Context) string {
	return c.GetString("role")
}

// idParam parses a numeric path parameter; false means a 400 was written.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
