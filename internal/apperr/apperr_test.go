package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TypedErrors(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, Normalize(Invalid("x")).Status)
	require.Equal(t, http.StatusUnauthorized, Normalize(Unauthorized("x")).Status)
	require.Equal(t, http.StatusNotFound, Normalize(NotFound("x")).Status)
	require.Equal(t, http.StatusConflict, Normalize(Conflict("x")).Status)
}

func TestNormalize_WrappedError(t *testing.T) {
	inner := Conflict("File name already exists")
	wrapped := fmt.Errorf("create: %w", inner)
	got := Normalize(wrapped)
	require.Equal(t, http.StatusConflict, got.Status)
	require.Equal(t, "File name already exists", got.Message)
}

func TestNormalize_UnknownErrorHidesDetail(t *testing.T) {
	got := Normalize(errors.New("mongo: driver exploded at socket 0x7f"))
	require.Equal(t, http.StatusInternalServerError, got.Status)
	require.Equal(t, "Internal server error", got.Message)
}

func TestAbort_WritesErrorBody(t *testing.T) {
	g := gin.New()
	g.GET("/boom", func(c *gin.Context) {
		Abort(c, NotFound("File not found"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	g.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, map[string]string{"error": "File not found"}, body)
}
