package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownAsset(t *testing.T) {
	data, contentType, ok := Get("index.html")
	require.True(t, ok)
	assert.NotEmpty(t, data)
	assert.Equal(t, "text/html; charset=utf-8", contentType)
}

func TestGet_StripsLeadingSlash(t *testing.T) {
	_, contentType, ok := Get("/style.css")
	require.True(t, ok)
	assert.Equal(t, "text/css; charset=utf-8", contentType)
}

func TestGet_Missing(t *testing.T) {
	_, _, ok := Get("no-such-file.js")
	assert.False(t, ok)
}

func TestGet_DoesNotEscapeAssetRoot(t *testing.T) {
	_, _, ok := Get("../embed.go")
	assert.False(t, ok)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/javascript", ContentType("app.js"))
	assert.Equal(t, "image/png", ContentType("logo.png"))
	assert.Equal(t, "application/octet-stream", ContentType("blob.bin"))
	assert.Equal(t, "application/octet-stream", ContentType("no-extension"))
}
