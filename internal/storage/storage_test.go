package storage

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkdesk/config"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d}

func TestDecodeDataURL(t *testing.T) {
	url := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader)

	raw, mediaType, err := DecodeDataURL(url)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mediaType)
	assert.Equal(t, pngHeader, raw)
}

func TestDecodeDataURL_Bare(t *testing.T) {
	raw, mediaType, err := DecodeDataURL(base64.StdEncoding.EncodeToString(pngHeader))
	require.NoError(t, err)
	assert.Empty(t, mediaType)
	assert.Equal(t, pngHeader, raw)
}

func TestDecodeDataURL_Malformed(t *testing.T) {
	for _, in := range []string{"", "data:image/png,abc", "data:image/png;base64", "not base64!"} {
		_, _, err := DecodeDataURL(in)
		assert.ErrorIs(t, err, ErrBadDataURL, in)
	}
}

func TestObjectURLRoundTrip(t *testing.T) {
	cases := []config.S3Config{
		{Bucket: "inkdesk-consent", Region: "eu-central-1"},
		{Endpoint: "minio:9000", Bucket: "inkdesk-consent"},
		{Endpoint: "minio:9000", Bucket: "inkdesk-consent", UseSSL: true},
	}
	for _, cfg := range cases {
		u := ObjectURL(cfg, "consent/abc.png")
		name, err := ObjectName(cfg, u)
		require.NoError(t, err)
		assert.Equal(t, "consent/abc.png", name)
	}

	_, err := ObjectName(cases[0], "https://elsewhere.test/x.png")
	assert.Error(t, err)
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".bin", extensionFor("image/tiff"))
}
