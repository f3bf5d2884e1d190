package avatars

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// KeyPrefix is the folder every avatar object lives under. A client-supplied
// key outside this prefix is rejected.
const KeyPrefix = "avatars/"

const uploadExpiration = 5 * time.Minute

var allowedContentTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

func AllowedContentTypes() []string {
	return allowedContentTypes
}

func AllowedContentType(contentType string) bool {
	for _, allowed := range allowedContentTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// NewObjectKey builds a globally unique object key under KeyPrefix, keeping
// the extension of the uploaded filename (jpg when it has none).
func NewObjectKey(filename string) string {
	ext := "jpg"
	if i := strings.LastIndex(filename, "."); i >= 0 && i < len(filename)-1 {
		ext = filename[i+1:]
	}
	return KeyPrefix + uuid.NewString() + "." + ext
}

// ValidObjectKey reports whether a client-supplied key could have been issued
// by PresignUpload.
func ValidObjectKey(key string) bool {
	return strings.HasPrefix(key, KeyPrefix)
}

// PresignUpload issues a write-only credential for one fresh object key: a
// presigned PutObject URL bound to that key and content type, expiring after
// five minutes. It grants no read, list, or delete, and no other key.
func (client *Client) PresignUpload(ctx context.Context, filename, contentType string) (uploadUrl, key string, err error) {
	key = NewObjectKey(filename)
	request, err := client.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(client.cfg.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(uploadExpiration))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload for key %s: %w", key, err)
	}
	return request.URL, key, nil
}

// PublicUrl derives the public object URL for a key. No existence check is
// made; a record may reference an object the client never uploaded.
func (client *Client) PublicUrl(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", client.cfg.BucketName, client.cfg.Region, key)
}

// KeyFromUrl recovers the object key from a public object URL.
func KeyFromUrl(rawUrl string) (string, error) {
	parsed, err := url.Parse(rawUrl)
	if err != nil {
		return "", fmt.Errorf("failed to parse avatar url: %w", err)
	}
	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		return "", fmt.Errorf("no object key in avatar url %q", rawUrl)
	}
	return key, nil
}

func (client *Client) DeleteObject(ctx context.Context, key string) error {
	_, err := client.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(client.cfg.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}
