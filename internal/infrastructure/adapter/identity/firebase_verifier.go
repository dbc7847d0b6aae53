package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/identity"
	"google.golang.org/api/option"
)

// IDTokenVerifier is the part of the Firebase auth client the verifier uses
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseVerifier validates Firebase ID tokens
type FirebaseVerifier struct {
	client IDTokenVerifier
	logger coreport.Logger
}

var _ identity.Verifier = (*FirebaseVerifier)(nil)

// NewFirebaseVerifier initialises the Admin SDK. An empty credentials file
// falls back to application default credentials.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsFile string, logger coreport.Logger) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase auth client: %w", err)
	}

	return NewFirebaseVerifierWithClient(client, logger), nil
}

// NewFirebaseVerifierWithClient wraps an existing client
func NewFirebaseVerifierWithClient(client IDTokenVerifier, logger coreport.Logger) *FirebaseVerifier {
	return &FirebaseVerifier{client: client, logger: logger}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*identity.Identity, error) {
	if token == "" {
		return nil, errs.ErrUnauthorized
	}

	verified, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		v.logger.Debug("Rejected firebase token", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
	}

	email, _ := verified.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: token has no email claim", errs.ErrUnauthorized)
	}

	return &identity.Identity{Subject: verified.UID, Email: email}, nil
}
