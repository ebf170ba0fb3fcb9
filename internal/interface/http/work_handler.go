package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-resource-api/internal/application"
	"github.com/oksasatya/go-ddd-resource-api/pkg/response"
	"github.com/oksasatya/go-ddd-resource-api/pkg/validation"
)

type WorkHandler struct {
	Svc    *application.WorkService
	Logger *logrus.Logger
}

func NewWorkHandler(svc *application.WorkService, logger *logrus.Logger) *WorkHandler {
	return &WorkHandler{Svc: svc, Logger: logger}
}

type workRequest struct {
	Title       string   `json:"title" binding:"required,title"`
	Description string   `json:"description" binding:"max=5000"`
	Tags        []string `json:"tags"`
}

type updateWorkRequest struct {
	Title       *string   `json:"title" binding:"omitempty,title"`
	Description *string   `json:"description" binding:"omitempty,max=5000"`
	Tags        *[]string `json:"tags"`
}

// Create publishes a work under the profile in the path.
func (h *WorkHandler) Create(c *gin.Context) {
	var req workRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	v, err := h.Svc.Create(c.Request.Context(), c.Param("id"), application.WorkInput{
		Title: req.Title, Description: req.Description, Tags: req.Tags,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, v, "work created", nil)
}

func (h *WorkHandler) Get(c *gin.Context) {
	v, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "work", nil)
}

func (h *WorkHandler) ListByProfile(c *gin.Context) {
	vs, err := h.Svc.ListByProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, vs, "works", gin.H{"count": len(vs)})
}

func (h *WorkHandler) Update(c *gin.Context) {
	var req updateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	v, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateWorkInput{
		Title: req.Title, Description: req.Description, Tags: req.Tags,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "work updated", nil)
}

func (h *WorkHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}
