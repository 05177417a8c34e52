// Package firebase initializes the Firebase app and the clients derived
// from it. The service account key is carried base64-encoded in
// configuration and decoded once here.
package firebase

import (
	"context"
	"log/slog"

	"agriconnect/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// CredentialsJSON is the decoded service account key. The media layer
// reuses it to build its own storage client.
type CredentialsJSON []byte

// NewCredentials decodes the configured service account key.
func NewCredentials(cfg *config.Config) (CredentialsJSON, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase is not configured")
	}

	data, err := cfg.Firebase.DecodeCredentials()
	if err != nil {
		return nil, errors.Wrap(err, "decode firebase credentials")
	}

	return CredentialsJSON(data), nil
}

// NewApp initializes the Firebase app from configuration.
func NewApp(ctx context.Context, cfg *config.Config, creds CredentialsJSON) (*firebase.App, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.Firebase.ProjectID,
		StorageBucket: cfg.Firebase.StorageBucket,
	}, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	return app, nil
}

// NewAuthClient returns the Firebase Auth client.
func NewAuthClient(ctx context.Context, app *firebase.App) (*auth.Client, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create auth client")
	}

	return client, nil
}

// FirestoreParams holds dependencies for the Firestore client.
type FirestoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// NewFirestoreClient returns the Firestore client and closes it on
// shutdown.
func NewFirestoreClient(params FirestoreParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}

// Module provides the Firebase FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewCredentials,
		NewApp,
		NewAuthClient,
		NewFirestoreClient,
	),
)
