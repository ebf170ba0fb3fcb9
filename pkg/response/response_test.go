package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		write      func(c *gin.Context)
		wantStatus int
		wantOK     bool
	}{
		{
			name:       "success defaults to 200",
			write:      func(c *gin.Context) { Success(c, 0, map[string]int{"n": 1}, "ok", nil) },
			wantStatus: http.StatusOK,
			wantOK:     true,
		},
		{
			name:       "created",
			write:      func(c *gin.Context) { Success(c, http.StatusCreated, "x", "created", nil) },
			wantStatus: http.StatusCreated,
			wantOK:     true,
		},
		{
			name:       "error defaults to 400",
			write:      func(c *gin.Context) { Error[any](c, 0, "bad", map[string]string{"email": "is required"}) },
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set(RequestIDKey, "req-1")
			tt.write(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantOK, body["success"])
			assert.Equal(t, "req-1", body["request_id"])
			assert.EqualValues(t, tt.wantStatus, body["status"])
		})
	}
}

func TestAbort_StopsChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	reached := false
	r.GET("/", func(c *gin.Context) { Abort(c, http.StatusForbidden, "nope", nil) }, func(c *gin.Context) { reached = true })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, reached)
}
