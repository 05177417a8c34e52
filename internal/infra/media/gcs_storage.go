// Package media stores uploaded images in the project's storage bucket
// through the portable blob API.
package media

import (
	"context"
	"fmt"
	"log/slog"

	"agriconnect/config"
	"agriconnect/internal/domain/service"
	fb "agriconnect/internal/infra/firebase"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/gcsblob"
	"gocloud.dev/gcp"
	"golang.org/x/oauth2/google"
)

type gcsMediaStorage struct {
	bucket     *blob.Bucket
	bucketName string
}

// Params holds dependencies for the media storage, injected by Fx.
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	Credentials fb.CredentialsJSON
}

// NewGCSMediaStorage opens the configured storage bucket. The bucket
// handle is closed on shutdown.
func NewGCSMediaStorage(params Params) (service.MediaStorage, error) {
	creds, err := google.CredentialsFromJSON(params.Ctx, params.Credentials, storage.ScopeFullControl)
	if err != nil {
		return nil, errors.Wrap(err, "load storage credentials")
	}

	client, err := gcp.NewHTTPClient(gcp.DefaultTransport(), gcp.CredentialsTokenSource(creds))
	if err != nil {
		return nil, errors.Wrap(err, "create storage http client")
	}

	bucketName := params.Config.Firebase.StorageBucket
	bucket, err := gcsblob.OpenBucket(params.Ctx, client, bucketName, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketName)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing media storage bucket")

			return bucket.Close()
		},
	})

	return &gcsMediaStorage{
		bucket:     bucket,
		bucketName: bucketName,
	}, nil
}

// SavePublicObject writes the object with a public-read ACL and returns
// its canonical URL.
func (s *gcsMediaStorage) SavePublicObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{
		ContentType: contentType,
		BeforeWrite: func(asFunc func(interface{}) bool) error {
			var sw *storage.Writer
			if asFunc(&sw) {
				sw.PredefinedACL = "publicRead"
			}

			return nil
		},
	}

	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "write object %s", key)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, key), nil
}
