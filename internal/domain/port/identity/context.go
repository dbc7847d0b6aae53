package identity

import (
	"context"
	"strings"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
)

type contextKey struct{}

// WithIdentity attaches the verified caller to ctx
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the verified caller, if authentication is enabled
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(*Identity)
	return id, ok && id != nil
}

// CheckOwner allows the call when no identity is attached or when the
// attached identity owns the email
func CheckOwner(ctx context.Context, email string) error {
	id, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	if !strings.EqualFold(strings.TrimSpace(id.Email), strings.TrimSpace(email)) {
		return errs.ErrForbidden
	}
	return nil
}
