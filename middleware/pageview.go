package middleware

import (
	"github.com/gin-gonic/gin"
	ua "github.com/mileusna/useragent"
	"github.com/sirupsen/logrus"
)

// PageViewMiddleware logs one line per dashboard page view with the
// visitor's parsed user agent. Attach it to the page route only, not
// the JSON endpoints.
func PageViewMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		agent := ua.Parse(c.Request.UserAgent())
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"browser":    agent.Name,
			"os":         agent.OS,
			"mobile":     agent.Mobile,
			"bot":        agent.Bot,
		}).Info("page view")
		c.Next()
	}
}
