package composables

import (
	"context"
	"errors"

	"github.com/atelier-dourado/backoffice/pkg/constants"
	"github.com/atelier-dourado/backoffice/pkg/identity"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
)

// authState is what the auth middleware leaves in the context: either a
// resolved identity or the resolution error (no credential, bad
// credential, provider outage).
type authState struct {
	identity identity.Identity
	err      error
}

func WithIdentity(ctx context.Context, id identity.Identity) context.Context {
	return context.WithValue(ctx, constants.IdentityKey, authState{identity: id})
}

func WithAuthError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, constants.IdentityKey, authState{err: err})
}

func UseIdentity(ctx context.Context) (identity.Identity, error) {
	state, ok := ctx.Value(constants.IdentityKey).(authState)
	if !ok {
		return identity.Identity{}, identity.ErrUnauthenticated
	}
	if state.err != nil {
		return identity.Identity{}, state.err
	}
	return state.identity, nil
}

// RequireAdmin is the access guard for administrative operations. It
// runs before validation and any persistence so a denied caller learns
// nothing about record existence.
func RequireAdmin(ctx context.Context) (identity.Identity, error) {
	id, err := UseIdentity(ctx)
	if err != nil {
		UseTrace(ctx).Add("auth: identity resolution failed: %v", err)
		if errors.Is(err, identity.ErrProviderUnavailable) {
			return identity.Identity{}, serrors.NewError(serrors.CodeProviderUnavailable, "identity provider unreachable, try again")
		}
		return identity.Identity{}, serrors.NewError(serrors.CodeUnauthenticated, "not authenticated")
	}
	if !id.IsAdmin() {
		UseTrace(ctx).Add("auth: user %s lacks admin role", id.UserID)
		return identity.Identity{}, serrors.NewError(serrors.CodeForbidden, "administrator role required")
	}
	UseTrace(ctx).Add("auth: admin %s authorized", id.UserID)
	return id, nil
}
