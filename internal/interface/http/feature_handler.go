package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-resource-api/internal/application"
	"github.com/oksasatya/go-ddd-resource-api/pkg/response"
	"github.com/oksasatya/go-ddd-resource-api/pkg/validation"
)

type FeatureHandler struct {
	Svc    *application.FeatureService
	Logger *logrus.Logger
}

func NewFeatureHandler(svc *application.FeatureService, logger *logrus.Logger) *FeatureHandler {
	return &FeatureHandler{Svc: svc, Logger: logger}
}

// Scope stays untyped here so a non-array value reaches the scope
// validator and comes back as invalid_format.
type featureRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"max=2000"`
	Scope       any    `json:"scope"`
}

type updateFeatureRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=120"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Scope       any     `json:"scope"`
}

func (h *FeatureHandler) Create(c *gin.Context) {
	var req featureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	v, err := h.Svc.Create(c.Request.Context(), application.FeatureInput{
		Name: req.Name, Description: req.Description, Scope: req.Scope,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, v, "feature created", nil)
}

func (h *FeatureHandler) Get(c *gin.Context) {
	v, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "feature", nil)
}

func (h *FeatureHandler) List(c *gin.Context) {
	vs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, vs, "features", gin.H{"count": len(vs)})
}

func (h *FeatureHandler) Update(c *gin.Context) {
	var req updateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	v, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateFeatureInput{
		Name: req.Name, Description: req.Description, Scope: req.Scope,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "feature updated", nil)
}

func (h *FeatureHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}
