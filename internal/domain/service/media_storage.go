package service

import "context"

// MediaStorage stores uploaded images as publicly retrievable objects.
type MediaStorage interface {
	// SavePublicObject writes data under the given object key with the
	// given content type, makes it publicly readable, and returns the
	// retrievable URL.
	SavePublicObject(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
