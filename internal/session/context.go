package session

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/models"
)

type ctxKey string

const identityCtxKey = ctxKey("identity")

// WithIdentity stores the session identity in the context. Every operation
// in the core takes its caller identity from the context it is given; there
// is no ambient current-user state outside the session store itself.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, id)
}

// IdentityFromContext extracts the session identity, if any.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	v := ctx.Value(identityCtxKey)
	if v == nil {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	if !ok || id.IsZero() {
		return models.Identity{}, false
	}
	return id, true
}
