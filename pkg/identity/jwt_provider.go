package identity

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v4"
)

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTProvider verifies bearer tokens issued by the external identity
// service and extracts the subject plus role claim.
type JWTProvider struct {
	secret []byte
}

func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: []byte(secret)}
}

func (p *JWTProvider) Resolve(_ context.Context, credential string) (Identity, error) {
	if credential == "" {
		return Identity{}, ErrUnauthenticated
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrUnauthenticated
	}
	if claims.Subject == "" {
		return Identity{}, ErrUnauthenticated
	}

	return Identity{
		UserID: claims.Subject,
		Role:   strings.ToLower(claims.Role),
	}, nil
}

// StaticTokenProvider accepts a single pre-shared admin token. Used for
// local development and tests; never configure it in production.
type StaticTokenProvider struct {
	token  string
	userID string
}

func NewStaticTokenProvider(token, userID string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token, userID: userID}
}

func (p *StaticTokenProvider) Resolve(_ context.Context, credential string) (Identity, error) {
	if p.token == "" || credential != p.token {
		return Identity{}, ErrUnauthenticated
	}
	return Identity{UserID: p.userID, Role: RoleAdmin}, nil
}

// ChainProvider tries each provider in order, returning the first
// successful resolution. ErrProviderUnavailable stops the chain so an
// outage is never misreported as a bad credential.
type ChainProvider struct {
	providers []Provider
}

func NewChainProvider(providers ...Provider) *ChainProvider {
	return &ChainProvider{providers: providers}
}

func (p *ChainProvider) Resolve(ctx context.Context, credential string) (Identity, error) {
	for _, provider := range p.providers {
		id, err := provider.Resolve(ctx, credential)
		if err == nil {
			return id, nil
		}
		if errors.Is(err, ErrProviderUnavailable) {
			return Identity{}, err
		}
	}
	return Identity{}, ErrUnauthenticated
}
