package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/textvault/textvault/internal/apikeys"
	"github.com/textvault/textvault/internal/apperr"
	"github.com/textvault/textvault/pkg/metrics"
)

// KeyHandler exposes OTP validation and API key management.
type KeyHandler struct {
	svc *apikeys.Service
}

func NewKeyHandler(svc *apikeys.Service) *KeyHandler {
	return &KeyHandler{svc: svc}
}

// Register wires the key routes. Creation and OTP validation are not behind
// the gate (creation is OTP-gated instead); listing and deletion are.
func (h *KeyHandler) Register(rg *gin.RouterGroup, authed gin.HandlerFunc) {
	rg.GET("/otp/validate", h.ValidateToken)

	k := rg.Group("/keys")
	k.POST("", h.Create)
	k.GET("", authed, h.List)
	k.DELETE("/:id", authed, h.Delete)
}

// ValidateToken checks a caller-supplied token against the shared secret
// without issuing anything.
func (h *KeyHandler) ValidateToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		apperr.Abort(c, apperr.Invalid("OTP token is required"))
		return
	}
	isValid := 0
	if h.svc.ValidateToken(token) {
		isValid = 1
	}
	c.JSON(http.StatusOK, gin.H{"isValid": isValid, "timestamp": time.Now().UnixMilli()})
}

// Create issues a new API key against a valid OTP token.
// The response is an array of one record carrying a literal "__v" field;
// existing clients parse this exact shape.
func (h *KeyHandler) Create(c *gin.Context) {
	k, err := h.svc.Create(c.Request.Context(), c.Query("token"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	metrics.APIKeysIssued.Inc()
	c.JSON(http.StatusOK, []gin.H{{"id": k.ID, "key": k.Secret, "__v": 0}})
}

// List returns every key as {id, key} pairs.
func (h *KeyHandler) List(c *gin.Context) {
	keys, err := h.svc.List(c.Request.Context())
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, keys)
}

// Delete removes a key by its formatted ID. An unknown ID is a 400: the
// caller supplied an identifier that was never issued.
func (h *KeyHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		apperr.Abort(c, apperr.Invalid("API key id is required"))
		return
	}
	removed, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	if !removed {
		apperr.Abort(c, apperr.Invalid("Invalid API key id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "API key deleted successfully"})
}
