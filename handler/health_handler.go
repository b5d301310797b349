package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CacheChecker reports whether the response cache is reachable.
type CacheChecker interface {
	IsConnected() bool
}

type HealthHandler struct {
	cache CacheChecker
}

func NewHealthHandler(cache CacheChecker) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	cacheStatus := "disabled"
	if h.cache != nil {
		if h.cache.IsConnected() {
			cacheStatus = "up"
		} else {
			cacheStatus = "down"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"cache":  cacheStatus,
	})
}
