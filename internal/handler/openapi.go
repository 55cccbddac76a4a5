package handler

import (
	"embed"
	"fmt"
	"net/http"

	"github.com/deppfellow/grubdash/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed static/openapi.json static/openapi.html
var static embed.FS

// OpenAPIHandler serves the API description and a browser UI for it.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPISpec serves GET /openapi.json.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	return h.serve(c, "static/openapi.json", echo.MIMEApplicationJSON)
}

// ServeOpenAPIUI serves GET /docs.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	return h.serve(c, "static/openapi.html", echo.MIMETextHTMLCharsetUTF8)
}

func (h *OpenAPIHandler) serve(c echo.Context, name, contentType string) error {
	body, err := static.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.Blob(http.StatusOK, contentType, body)
}
