package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textvault/textvault/internal/apperr"
	"github.com/textvault/textvault/internal/documents"
	"github.com/textvault/textvault/pkg/metrics"
)

// allowedContentTypes lists the text-like media types accepted for upload
// and edit bodies. Anything else is rejected before reaching the store.
var allowedContentTypes = map[string]bool{
	"application/json":   true,
	"text/plain":         true,
	"application/xml":    true,
	"text/xml":           true,
	"application/yaml":   true,
	"application/x-yaml": true,
	"text/yaml":          true,
}

// DocumentHandler exposes the document CRUD surface. Raw reads are public;
// everything else sits behind the API key gate.
type DocumentHandler struct {
	svc *documents.Service
}

func NewDocumentHandler(svc *documents.Service) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

func (h *DocumentHandler) Register(rg *gin.RouterGroup, authed gin.HandlerFunc) {
	f := rg.Group("/files")
	f.POST("", authed, h.Upload)
	f.GET("", authed, h.List)
	f.GET("/:id/raw", h.Raw)
	f.PUT("/:id", authed, h.Edit)
	f.DELETE("/:id", authed, h.Delete)
}

// readBody validates the media type and pulls the raw text body.
func readBody(c *gin.Context) (string, error) {
	if ct := c.ContentType(); ct != "" && !allowedContentTypes[ct] {
		return "", apperr.Invalid("Unsupported content type")
	}
	b, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", apperr.Invalid("File content is required")
	}
	return string(b), nil
}

// Upload stores the request body as a new document. Query params: name
// (optional, generated when omitted), overwrite (replace an existing
// document holding the same name).
func (h *DocumentHandler) Upload(c *gin.Context) {
	content, err := readBody(c)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	overwrite := c.Query("overwrite") == "true"
	id, err := h.svc.Create(c.Request.Context(), c.Query("name"), content, overwrite)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	metrics.DocumentWrites.WithLabelValues("create").Inc()
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Raw returns the document's text body. This endpoint is deliberately
// unauthenticated: reading content is public when the identifier is known.
func (h *DocumentHandler) Raw(c *gin.Context) {
	d, err := h.svc.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, d.Content)
}

// List returns id/name pairs for every document.
func (h *DocumentHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Edit replaces the content of the document resolved by ID or name.
func (h *DocumentHandler) Edit(c *gin.Context) {
	content, err := readBody(c)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	if err := h.svc.Update(c.Request.Context(), c.Param("id"), content); err != nil {
		apperr.Abort(c, err)
		return
	}
	metrics.DocumentWrites.WithLabelValues("update").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "File updated successfully"})
}

// Delete removes the document resolved by ID or name.
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apperr.Abort(c, err)
		return
	}
	metrics.DocumentWrites.WithLabelValues("delete").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
