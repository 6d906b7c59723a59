// Package assets resolves embedded front-end files by relative path.
package assets

import (
	"io/fs"
	"path"
	"strings"

	"spending-tracker/web"
)

// defaultContentType is used for extensions outside the table.
const defaultContentType = "application/octet-stream"

// contentTypes maps file extensions to the Content-Type served for
// embedded assets.
var contentTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "application/javascript",
	".json":  "application/json",
	".map":   "application/json",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".ico":   "image/x-icon",
	".txt":   "text/plain; charset=utf-8",
	".woff2": "font/woff2",
}

// Get looks up the embedded asset at the given relative path and
// returns its bytes with the content type inferred from the extension.
// ok is false when no asset exists at that path.
func Get(name string) (data []byte, contentType string, ok bool) {
	name = path.Clean(strings.TrimPrefix(name, "/"))
	b, err := fs.ReadFile(web.PublicFS, path.Join("public", name))
	if err != nil {
		return nil, "", false
	}
	return b, ContentType(name), true
}

// ContentType returns the Content-Type for an asset path, defaulting to
// application/octet-stream for unknown extensions.
func ContentType(name string) string {
	if ct, ok := contentTypes[path.Ext(name)]; ok {
		return ct
	}
	return defaultContentType
}
