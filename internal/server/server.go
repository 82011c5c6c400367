/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ssl-guardian/src/config"
	"ssl-guardian/src/internal/cache"
	"ssl-guardian/src/internal/database"
	"ssl-guardian/src/internal/handler"
	"ssl-guardian/src/internal/middleware"
	"ssl-guardian/src/internal/repository"
	"ssl-guardian/src/internal/service"
	"ssl-guardian/src/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server owns the router and the certificate store connection.
type Server struct {
	router *gin.Engine
	db     *database.DB
	cfg    *config.Server
}

// StartDashboardServer creates a new server instance with all dependencies
// initialized.
func StartDashboardServer(cfg *config.Server) (*Server, error) {
	// Initialize the certificate store connection using configuration
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.EnsureIndexes {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
		db.EnsureIndexes(ctx)
		cancel()
	}

	// Initialize repository and result cache
	certRepo := repository.NewMongoCertificateRepo(db, cfg)
	resultCache := cache.New(&cfg.Cache)

	// Initialize services
	certService := service.NewCertificateService(certRepo, resultCache, cfg)
	dashboardService := service.NewDashboardService(certRepo, resultCache, cfg)
	analyticsService := service.NewAnalyticsService(certRepo, resultCache, cfg)
	signatureService := service.NewSignatureService(certRepo, resultCache, cfg)
	sanService := service.NewSANService(certRepo, resultCache, cfg)
	notificationService := service.NewNotificationService(certRepo, resultCache)

	// Initialize handlers
	handlers := &handler.Handlers{
		Certificate:  handler.NewCertificateHandler(certService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Analytics:    handler.NewAnalyticsHandler(analyticsService),
		Signature:    handler.NewSignatureHandler(signatureService),
		SAN:          handler.NewSANHandler(sanService),
		Notification: handler.NewNotificationHandler(notificationService),
	}

	// Setup router
	router := gin.Default()

	// Configure and apply CORS middleware first; the dashboard frontend is
	// served from a different origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RequestID())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register routes
	handler.RegisterRoutes(router, handlers)

	return &Server{router: router, db: db, cfg: cfg}, nil
}

// Start runs the HTTP server until SIGINT or SIGTERM, then drains in-flight
// requests before closing the store connection.
func (s *Server) Start(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.LogInfo(fmt.Sprintf("Starting HTTP server on :%s", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		utils.LogInfo(fmt.Sprintf("Received %s, shutting down", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	return s.db.Close(ctx)
}

// GetRouter returns the gin router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
