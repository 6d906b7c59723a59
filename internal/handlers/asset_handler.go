package handlers

import (
	"net/http"

	"spending-tracker/internal/assets"

	"github.com/labstack/echo/v4"
)

// AssetHandler serves the front-end compiled into the binary.
type AssetHandler struct{}

// NewAssetHandler creates a new asset handler
func NewAssetHandler() *AssetHandler {
	return &AssetHandler{}
}

// Index serves the embedded index.html.
//
// GET /
func (h *AssetHandler) Index(c echo.Context) error {
	return serveEmbedded(c, "index.html")
}

// Dist serves the embedded asset at the path captured after /dist/.
//
// GET /dist/{path...}
func (h *AssetHandler) Dist(c echo.Context) error {
	return serveEmbedded(c, c.Param("*"))
}

func serveEmbedded(c echo.Context, name string) error {
	data, contentType, ok := assets.Get(name)
	if !ok {
		return c.String(http.StatusNotFound, "404 Not Found")
	}
	return c.Blob(http.StatusOK, contentType, data)
}
