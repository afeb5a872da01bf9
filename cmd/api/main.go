package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cloudkitchen/internal/auth"
	"cloudkitchen/internal/common"
	"cloudkitchen/internal/env"
	"cloudkitchen/internal/menu"
	"cloudkitchen/internal/order"
	"cloudkitchen/internal/settings"
	"cloudkitchen/internal/storage"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	cors "github.com/rs/cors/wrapper/gin"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Menu database (days, foods, site settings)
	menuDB, err := sql.Open("sqlite3", env.GetEnv(env.EnvMenuDBPath, "./internal/databases/menu.db")+"?_foreign_keys=on")
	if err != nil {
		log.Fatal(err)
	}
	defer menuDB.Close()

	// Auth database (admins, sessions)
	authDB, err := sql.Open("sqlite3", env.GetEnv(env.EnvAuthDBPath, "./internal/databases/auth.db")+"?_foreign_keys=on")
	if err != nil {
		log.Fatal(err)
	}
	defer authDB.Close()

	// Enable WAL mode (better concurrent performance)
	for _, db := range []*sql.DB{menuDB, authDB} {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			log.Printf("Warning: Failed to enable WAL mode: %v", err)
		}
	}

	// Media storage for food images
	images, err := storage.NewImageStore(
		env.GetEnv(env.EnvMediaDir, "./internal/media"),
		env.GetEnv(env.EnvPublicBaseURL, "http://localhost:9080"),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Repositories
	menuRepo := menu.NewRepository(menuDB)
	settingsRepo := settings.NewRepository(menuDB)
	authRepo := auth.NewRepository(authDB)

	// Bootstrap admin from environment
	if err := authRepo.EnsureAdmin(
		env.GetEnv(env.EnvAdminEmail, ""),
		env.GetEnv(env.EnvAdminPassword, ""),
	); err != nil {
		log.Fatal(err)
	}

	// Session plumbing
	bus := auth.NewBus()
	sessionStore := auth.NewSessionStore(
		authRepo,
		bus,
		env.GetDuration(env.EnvSessionDuration, 7*24*time.Hour),
		env.GetBool(env.EnvSecureCookies, false),
	)
	janitor := auth.NewSessionJanitor(authRepo, bus, 0)
	janitor.Start(ctx)

	// Handlers
	authHandler := auth.NewHandler(authRepo, sessionStore, bus)
	authMiddleware := auth.NewMiddleware(sessionStore)
	menuHandler := menu.NewHandler(menuRepo, images)
	settingsHandler := settings.NewHandler(settingsRepo)
	orderHandler := order.NewHandler(menuRepo, settingsRepo)

	router := gin.Default()

	// CORS for the browser frontend
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   strings.Split(env.GetEnv(env.EnvCORSOrigins, "http://localhost:3000"), ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	// Global routes
	global := router.Group("/api")
	common.RegisterRoutes(global)

	// Auth routes (public + session-protected)
	auth.RegisterRoutes(global, authHandler, authMiddleware)

	// v0 API routes
	v0Group := router.Group("/api/v0")
	{
		menu.RegisterRoutes(v0Group, menuHandler, authMiddleware)
		settings.RegisterRoutes(v0Group, settingsHandler, authMiddleware)
		order.RegisterRoutes(v0Group, orderHandler)
	}

	// Uploaded images
	router.Static(storage.MediaRoutePrefix, images.Root())

	// Graceful shutdown handling
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		cancel()
		janitor.Stop()
	}()

	err = router.Run(env.GetEnv(env.EnvListenAddr, ":9080"))
	if err != nil {
		log.Fatal(err)
	}
}

/*
Cloud Kitchen API is the backend for the Cloud Kitchen ordering site: public menu browsing with WhatsApp ordering and an admin panel for managing menu items and site settings.
Copyright (C) 2025 Cloud Kitchen
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
