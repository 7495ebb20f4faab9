package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		c.Error(err)
	})

	w := httptest.NewRecorder()
	req, rerr := http.NewRequest(http.MethodGet, "/boom", nil)
	require.NoError(t, rerr)
	router.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerRendersNotFound(t *testing.T) {
	err := ierr.NewError("application lookup failed").
		WithHint("Application not found").
		Mark(ierr.ErrNotFound)

	w := serveWithError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Application not found"}`, w.Body.String())
}

func TestErrorHandlerRendersValidation(t *testing.T) {
	err := ierr.NewError("missing position id").
		WithHint("Request validation failed").
		Mark(ierr.ErrValidation)

	w := serveWithError(t, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Request validation failed"}`, w.Body.String())
}

func TestErrorHandlerRendersInvalidOperation(t *testing.T) {
	err := ierr.NewError("status is terminal").
		WithHint("Cannot change application status from Accepted").
		Mark(ierr.ErrInvalidOperation)

	w := serveWithError(t, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Cannot change application status from Accepted"}`, w.Body.String())
}

func TestErrorHandlerRendersPermissionDenied(t *testing.T) {
	err := ierr.NewError("caller is not an hr manager").
		WithHint("Only HR managers can perform this action").
		Mark(ierr.ErrPermissionDenied)

	w := serveWithError(t, err)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "Only HR managers can perform this action"}`, w.Body.String())
}

func TestErrorHandlerFallsBackOnHintlessError(t *testing.T) {
	w := serveWithError(t, errors.New("raw failure"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "An unexpected error occurred"}`, w.Body.String())
}

func TestErrorHandlerPassesThroughSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/ok", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
