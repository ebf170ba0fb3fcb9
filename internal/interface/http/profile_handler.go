package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-resource-api/internal/application"
	"github.com/oksasatya/go-ddd-resource-api/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-resource-api/pkg/response"
	"github.com/oksasatya/go-ddd-resource-api/pkg/validation"
)

const maxAvatarBytes = 5 << 20

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type createProfileRequest struct {
	Name     string         `json:"name" binding:"required,max=120"`
	Bio      string         `json:"bio" binding:"bio"`
	Document map[string]any `json:"document"`
}

type updateProfileRequest struct {
	Name     *string        `json:"name" binding:"omitempty,min=1,max=120"`
	Bio      *string        `json:"bio" binding:"omitempty,bio"`
	Document map[string]any `json:"document"`
}

// Create adds a profile to the calling account.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	v, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxAccountID), application.ProfileInput{
		Name: req.Name, Bio: req.Bio, Document: req.Document,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, v, "profile created", nil)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	v, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "profile", nil)
}

func (h *ProfileHandler) ListByAccount(c *gin.Context) {
	vs, err := h.Svc.ListByAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, vs, "profiles", gin.H{"count": len(vs)})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	v, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateProfileInput{
		Name: req.Name, Bio: req.Bio, Document: req.Document,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "profile updated", nil)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

// UploadAvatar accepts a multipart "avatar" image file.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAvatarBytes)
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "avatar file is required", gin.H{"avatar": "is required"})
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Error[any](c, http.StatusUnsupportedMediaType, "avatar must be an image", gin.H{"avatar": "must be an image"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	v, err := h.Svc.UploadAvatar(c.Request.Context(), c.Param("id"), fh.Filename, contentType, f)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "avatar uploaded", nil)
}

func (h *ProfileHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	vs, err := h.Svc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, vs, "profiles", gin.H{"count": len(vs)})
}
