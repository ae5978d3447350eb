package main

import (
	"context"
	"net/http"
	"time"

	"aura-crm/internal/middleware"
	"aura-crm/pkg/cache"
	"aura-crm/pkg/database"
	"aura-crm/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupStaticRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupStaticRoutes serves uploaded images and the metrics endpoint
func (a *App) setupStaticRoutes() {
	a.Router.Static("/uploads", a.Config.Uploads.Dir)

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := database.Ping(ctx); err != nil {
			logger.GlobalLogger.Errorf("Database ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Database unavailable"})
			return
		}

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	auth := middleware.AuthMiddleware(a.Config.JWT.Secret)

	api := a.Router.Group("/api")
	{
		// Public routes
		api.GET("/properties", a.PropertyHandler.ListProperties)
		api.GET("/properties/:id", a.PropertyHandler.GetProperty)

		accounts := api.Group("/auth")
		{
			accounts.POST("/register", a.AuthHandler.Register)
			accounts.POST("/login", a.AuthHandler.Login)
			accounts.GET("/me", auth, a.AuthHandler.Me)
		}

		properties := api.Group("/properties")
		properties.Use(auth)
		{
			properties.POST("", a.PropertyHandler.CreateProperty)
			properties.PUT("/:id", a.PropertyHandler.UpdateProperty)
			properties.DELETE("/:id", a.PropertyHandler.DeleteProperty)
		}

		users := api.Group("/users")
		users.Use(auth)
		{
			users.GET("", a.UserHandler.ListUsers)
			users.POST("", a.UserHandler.CreateUser)
			users.GET("/:id", a.UserHandler.GetUser)
			users.PUT("/:id", a.UserHandler.UpdateUser)
			users.DELETE("/:id", a.UserHandler.DeleteUser)
		}

		leads := api.Group("/leads")
		leads.Use(auth)
		{
			leads.GET("", a.LeadHandler.ListLeads)
			leads.POST("", a.LeadHandler.CreateLead)
			leads.GET("/:id", a.LeadHandler.GetLead)
			leads.PUT("/:id", a.LeadHandler.UpdateLead)
			leads.DELETE("/:id", a.LeadHandler.DeleteLead)
		}

		communications := api.Group("/communications")
		communications.Use(auth)
		{
			communications.GET("", a.CommunicationHandler.ListCommunications)
			communications.POST("", a.CommunicationHandler.CreateCommunication)
			communications.PUT("/:id", a.CommunicationHandler.UpdateCommunication)
			communications.DELETE("/:id", a.CommunicationHandler.DeleteCommunication)
		}
	}
}
