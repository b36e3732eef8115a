package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// Purchase flow: check / prepare / confirm dispatched on the action field
	router.POST("/purchase-broker", handler.PurchaseBroker)

	// Read-only ownership lookup
	router.GET("/user-nfts", handler.UserNFTs)
}
