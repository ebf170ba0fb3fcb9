package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-resource-api/internal/application"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
	"github.com/oksasatya/go-ddd-resource-api/pkg/response"
)

var notFound = []error{
	application.ErrAccountNotFound,
	application.ErrProfileNotFound,
	application.ErrFeatureNotFound,
	application.ErrSubscriptionNotFound,
	application.ErrWorkNotFound,
}

var conflicts = []error{
	application.ErrEmailTaken,
	application.ErrFeatureNameUsed,
	application.ErrAlreadySubscribed,
}

// writeError maps service and domain errors onto the response envelope.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var de *shared.DomainError
	if errors.As(err, &de) {
		response.Error[any](c, de.Status, de.Message, gin.H{"kind": de.Kind, "value": de.Value})
		return
	}
	for _, target := range notFound {
		if errors.Is(err, target) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
	}
	for _, target := range conflicts {
		if errors.Is(err, target) {
			response.Error[any](c, http.StatusConflict, err.Error(), nil)
			return
		}
	}
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrStorageUnavailable):
		response.Error[any](c, http.StatusServiceUnavailable, err.Error(), nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("request_id", c.GetString(response.RequestIDKey)).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
