package identity

import (
	"context"
	"errors"
)

// Role values carried by the identity provider's role claim.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

var (
	// ErrUnauthenticated means no identity could be resolved from the
	// presented credential.
	ErrUnauthenticated = errors.New("identity: not authenticated")
	// ErrProviderUnavailable means the provider itself could not be
	// reached; distinct from a bad credential and mapped to 5xx upstream.
	ErrProviderUnavailable = errors.New("identity: provider unavailable")
)

// Identity is the resolved caller: an opaque user id plus a role claim.
// Authorization in this system is role-based, not row-based.
type Identity struct {
	UserID string
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Provider resolves an opaque credential into an Identity. The wire
// protocol to the external identity service is the provider's concern.
type Provider interface {
	Resolve(ctx context.Context, credential string) (Identity, error)
}
