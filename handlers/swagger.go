package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the service.
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
    <title>portfolio-api — Swagger</title>
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

// Minimal OpenAPI document describing the important endpoints. The per-collection
// CRUD routes share one shape, so they are documented via the projects example.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "portfolio-api", "version": "v0.1.0" },
  "paths": {
    "/api/auth/login": {
      "post": {
        "summary": "Admin login (sets the session cookie)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"username":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "cookie set" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/api/auth/logout": {
      "post": { "summary": "Expire the session cookie", "responses": { "200": { "description": "logged out" } } }
    },
    "/api/portfolio-data": {
      "get": { "summary": "Aggregated public snapshot of all collections", "responses": { "200": { "description": "combined payload" } } }
    },
    "/api/projects": {
      "get": { "summary": "List projects (public; same pattern for all collections)", "responses": { "200": { "description": "records" } } },
      "post": { "summary": "Create a project (session cookie required)", "responses": { "201": { "description": "created record" }, "400": { "description": "missing required fields" }, "401": { "description": "unauthorized" } } }
    },
    "/api/projects/{id}": {
      "put": { "summary": "Merge a patch over the record", "responses": { "200": { "description": "updated record" }, "404": { "description": "unknown id" } } },
      "delete": { "summary": "Delete the record (idempotent)", "responses": { "200": { "description": "deleted" } } }
    }
  }
}`
