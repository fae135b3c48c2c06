package media

import (
	"context"
	"encoding/base64"
	"strings"
)

// Store persists encoded images and returns the URL saved on the record.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// InlineStore keeps images inside the record as data URLs. Used when no object
// storage is configured.
type InlineStore struct{}

func (InlineStore) Put(_ context.Context, _ string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (InlineStore) Delete(context.Context, string) error { return nil }

func isRemoteURL(v string) bool {
	l := strings.ToLower(v)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
