package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wavemint/marketplace/internal/logger"
)

// errorResponse is the JSON error payload. The purchase flow adds the two
// flags clients key their UI off: soldOut distinguishes a legitimate
// business outcome from a system failure, and refunded tells the buyer
// whether their XRP is already on its way back.
type errorResponse struct {
	Error   string `json:"error"`
	SoldOut bool   `json:"soldOut,omitempty"`
	// Refunded is only present on purchase-preparation failures
	Refunded *bool `json:"refunded,omitempty"`
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, errorResponse{Error: message})
}

// respondSoldOut sends a 409 Conflict flagged as a sold-out outcome
func respondSoldOut(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, errorResponse{Error: message, SoldOut: true})
}

// respondPurchaseFailure sends a 500 carrying the refund outcome
func respondPurchaseFailure(c *gin.Context, err error, refunded bool) {
	logger.Error(err, zap.Bool("refunded", refunded))
	c.JSON(http.StatusInternalServerError, errorResponse{
		Error:    err.Error(),
		Refunded: &refunded,
	})
}

// respondInternalError sends a 500 Internal Server Error response and logs
// the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: message})
}
