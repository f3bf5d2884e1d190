package avatars

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var objectKeyPattern = regexp.MustCompile(
	`^avatars/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.[^.]+$`,
)

func TestNewObjectKey(t *testing.T) {
	tests := []struct {
		filename string
		ext      string
	}{
		{"x.png", "png"},
		{"photo.jpeg", "jpeg"},
		{"archive.tar.gz", "gz"},
		{"noextension", "jpg"},
		{"trailingdot.", "jpg"},
	}
	for _, tt := range tests {
		key := NewObjectKey(tt.filename)
		assert.Regexp(t, objectKeyPattern, key)
		assert.Regexp(t, `\.`+tt.ext+`$`, key)
	}
}

func TestNewObjectKeyUnique(t *testing.T) {
	assert.NotEqual(t, NewObjectKey("x.png"), NewObjectKey("x.png"))
}

func TestValidObjectKey(t *testing.T) {
	assert.True(t, ValidObjectKey("avatars/abc.png"))
	assert.False(t, ValidObjectKey("other/abc.png"))
	assert.False(t, ValidObjectKey(""))
}

func TestAllowedContentType(t *testing.T) {
	for _, contentType := range []string{"image/jpeg", "image/png", "image/gif", "image/webp"} {
		assert.True(t, AllowedContentType(contentType))
	}
	assert.False(t, AllowedContentType("image/svg+xml"))
	assert.False(t, AllowedContentType("application/pdf"))
	assert.False(t, AllowedContentType(""))
}

func TestPublicUrlRoundTrip(t *testing.T) {
	client := &Client{cfg: config{BucketName: "groupfbmap-avatars", Region: "us-west-2"}}
	publicUrl := client.PublicUrl("avatars/abc.png")
	assert.Equal(t, "https://groupfbmap-avatars.s3.us-west-2.amazonaws.com/avatars/abc.png", publicUrl)

	key, err := KeyFromUrl(publicUrl)
	require.NoError(t, err)
	assert.Equal(t, "avatars/abc.png", key)
}

func TestKeyFromUrlInvalid(t *testing.T) {
	_, err := KeyFromUrl("https://groupfbmap-avatars.s3.us-west-2.amazonaws.com/")
	assert.Error(t, err)

	_, err = KeyFromUrl("://not-a-url")
	assert.Error(t, err)
}
