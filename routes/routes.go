package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rochiyat/mutabaah-app/controllers"
	"github.com/rochiyat/mutabaah-app/middlewares"
	"github.com/rochiyat/mutabaah-app/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds the full API surface. The SPA consumes it from a
// different origin in split deployments, hence the permissive CORS; when
// WEB_DIR is set the built front end is served from the same process.
func SetupRouter(db *gorm.DB, hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	activityCtl := controllers.NewActivityController(services.NewActivityService(db))
	recordCtl := controllers.NewRecordController(services.NewRecordService(db, hub))
	groupCtl := controllers.NewGroupController(services.NewGroupService(db))
	groupActCtl := controllers.NewGroupActivityController(services.NewGroupActivityService(db))
	statsCtl := controllers.NewStatsController(services.NewStatsService(db))
	realtimeCtl := controllers.NewRealtimeController(hub)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
		auth.GET("/me", middlewares.AuthMiddleware(), authCtl.Me)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/activities", activityCtl.List)
		protected.POST("/activities", activityCtl.Create)
		protected.PATCH("/activities/:id", activityCtl.Update)
		protected.DELETE("/activities/:id", activityCtl.Delete)

		protected.GET("/records", recordCtl.List)
		protected.POST("/records", recordCtl.Create)
		protected.PATCH("/records/:id", recordCtl.Update)
		protected.DELETE("/records/:id", recordCtl.Delete)

		protected.GET("/groups", groupCtl.List)
		protected.POST("/groups", groupCtl.Create)
		protected.GET("/groups/:id", groupCtl.Get)
		protected.PATCH("/groups/:id", groupCtl.Update)
		protected.DELETE("/groups/:id", groupCtl.Delete)

		protected.GET("/groups/:id/members", groupCtl.Members)
		protected.POST("/groups/:id/members", groupCtl.AddMember)
		protected.DELETE("/groups/:id/members/:userId", groupCtl.RemoveMember)

		protected.GET("/groups/:id/activities", groupActCtl.List)
		protected.POST("/groups/:id/activities", groupActCtl.Add)
		protected.PATCH("/groups/:id/activities/:activityId", groupActCtl.Update)
		protected.DELETE("/groups/:id/activities/:activityId", groupActCtl.Remove)

		protected.GET("/stats/dashboard", statsCtl.Dashboard)
		protected.GET("/stats/weekly", statsCtl.Weekly)
		protected.GET("/stats/monthly", statsCtl.Monthly)

		protected.GET("/ws", realtimeCtl.Feed)
	}

	if dir := os.Getenv("WEB_DIR"); dir != "" {
		serveSPA(r, dir)
	}

	return r
}

// serveSPA serves the built front end with an index.html fallback so
// client-side routes survive a reload.
func serveSPA(r *gin.Engine, dir string) {
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"message": "resource not found"})
			return
		}
		path := filepath.Join(dir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}
