package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>textvault — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "textvault", "version": "v0.1.0" },
  "paths": {
    "/api/otp/validate": {
      "get": { "summary": "Validate a one-time token", "parameters": [{"name":"token","in":"query","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "validity flag and timestamp" }, "400": { "description": "token missing" } } }
    },
    "/api/keys": {
      "post": { "summary": "Issue an API key (OTP-gated)", "parameters": [{"name":"token","in":"query","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "issued key record" }, "401": { "description": "missing or invalid token" } } },
      "get": { "summary": "List API keys", "responses": { "200": { "description": "id/key pairs" }, "401": { "description": "missing or invalid API key" } } }
    },
    "/api/keys/{id}": {
      "delete": { "summary": "Delete an API key", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "deleted" }, "400": { "description": "unknown id" } } }
    },
    "/api/files": {
      "post": { "summary": "Upload a document (raw text body)", "parameters": [{"name":"name","in":"query","schema":{"type":"string"}},{"name":"overwrite","in":"query","schema":{"type":"boolean"}}], "responses": { "200": { "description": "generated id" }, "400": { "description": "no content" }, "409": { "description": "name exists" } } },
      "get": { "summary": "List documents", "responses": { "200": { "description": "id/name pairs" } } }
    },
    "/api/files/{id}": {
      "put": { "summary": "Replace document content", "responses": { "200": { "description": "updated" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a document", "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/files/{id}/raw": {
      "get": { "summary": "Read raw document content (public)", "responses": { "200": { "description": "raw text" }, "404": { "description": "not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } }
  }
}`
