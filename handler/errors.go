package handler

import (
	"errors"

	"main/middleware"
	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// adapterFailure logs the structured adapter error with its kind and
// collapses it to the generic wire shape. The client never learns
// whether the upstream was down, the credential was bad, or the
// payload was malformed.
func adapterFailure(c *gin.Context, providerName string, err error) {
	kind := model.ErrKindUpstream
	var adapterErr *model.AdapterError
	if errors.As(err, &adapterErr) {
		kind = adapterErr.Kind
	}

	logrus.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"provider":   providerName,
		"kind":       string(kind),
	}).WithError(err).Error("adapter fetch failed")

	middleware.TrackError(string(kind))
	utils.InternalError(c, "failed to fetch "+providerName+" data")
}
