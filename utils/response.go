package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes the upstream-shaped payload verbatim. The proxy
// endpoints deliberately add no envelope around it.
func Success(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error responses

// InternalError is the single failure shape the adapters expose. Every
// upstream failure mode collapses to this; the cause stays in the logs.
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}
