package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-resource-api/internal/application"
	"github.com/oksasatya/go-ddd-resource-api/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-resource-api/pkg/response"
	"github.com/oksasatya/go-ddd-resource-api/pkg/validation"
)

type SubscriptionHandler struct {
	Svc    *application.SubscriptionService
	Logger *logrus.Logger
}

func NewSubscriptionHandler(svc *application.SubscriptionService, logger *logrus.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{Svc: svc, Logger: logger}
}

// Level range is enforced by the domain so negatives map to invalid_value.
type subscribeRequest struct {
	FeatureID string   `json:"id_feature" binding:"required"`
	Level     *float64 `json:"level" binding:"required"`
}

type levelRequest struct {
	Level *float64 `json:"level" binding:"required"`
}

// Create subscribes the calling account to a feature.
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	v, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxAccountID), req.FeatureID, *req.Level)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, v, "subscription created", nil)
}

func (h *SubscriptionHandler) Get(c *gin.Context) {
	v, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "subscription", nil)
}

func (h *SubscriptionHandler) ListByAccount(c *gin.Context) {
	vs, err := h.Svc.ListByAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, vs, "subscriptions", gin.H{"count": len(vs)})
}

func (h *SubscriptionHandler) UpdateLevel(c *gin.Context) {
	var req levelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	v, err := h.Svc.UpdateLevel(c.Request.Context(), c.Param("id"), *req.Level)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "subscription updated", nil)
}

func (h *SubscriptionHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}
