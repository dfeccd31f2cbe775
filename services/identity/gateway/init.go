package gateway

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/epickup/epickup-backend/internal/pkg/models"
)

// IdentityGW talks to the Firebase Admin SDK: ID token verification and
// custom claim synchronization.
type IdentityGW struct {
	client        *fbauth.Client
	verifyTimeout time.Duration
}

// NewIdentityGW initializes the Firebase Admin app and auth client.
// Credentials come from the configured service account file, or from
// application default credentials when none is set.
func NewIdentityGW(ctx context.Context, cfg models.FirebaseConfig) (*IdentityGW, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	verifyTimeout := time.Duration(cfg.VerifyTimeout) * time.Second
	if verifyTimeout <= 0 {
		verifyTimeout = 10 * time.Second
	}

	return &IdentityGW{
		client:        client,
		verifyTimeout: verifyTimeout,
	}, nil
}

// NewIdentityGWWithClient wires an existing auth client, used by tests.
func NewIdentityGWWithClient(client *fbauth.Client, verifyTimeout time.Duration) *IdentityGW {
	return &IdentityGW{client: client, verifyTimeout: verifyTimeout}
}
