package main

import (
	"log"
	"os"

	"github.com/rochiyat/mutabaah-app/config"
	"github.com/rochiyat/mutabaah-app/routes"
	"github.com/rochiyat/mutabaah-app/services"
	"github.com/rochiyat/mutabaah-app/utils"
)

func main() {
	db := config.InitDB()
	utils.InitMailer()

	// Seed the cross-tenant admin account when configured.
	if email := os.Getenv("SUPERADMIN_EMAIL"); email != "" {
		authSvc := services.NewAuthService(db)
		if err := authSvc.EnsureSuperadmin(email, "Super Admin", os.Getenv("SUPERADMIN_PASSWORD")); err != nil {
			log.Fatalf("superadmin seed failed: %v", err)
		}
	}

	hub := services.NewRealtimeHub()
	r := routes.SetupRouter(db, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	r.Run(":" + port)
}
