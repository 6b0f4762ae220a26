package auth

import (
	"context"
	"crypto"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/zap"

	"github.com/KirkDiggler/poketeam-api/internal/errors"
)

const defaultIssuerURL = "https://accounts.google.com"

// OIDCConfig configures ID token verification
type OIDCConfig struct {
	// IssuerURL defaults to Google's issuer
	IssuerURL string
	// ClientID is the audience tokens must be issued for
	ClientID string
	// PublicKeys pins the signing keys and skips issuer discovery
	PublicKeys []crypto.PublicKey
	// Now overrides the clock used for expiry checks
	Now    func() time.Time
	Logger *zap.Logger
}

// Validate validates the OIDCConfig and sets defaults if not provided
func (cfg *OIDCConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.ClientID == "" {
		return errors.InvalidArgument("client ID cannot be empty")
	}
	if cfg.IssuerURL == "" {
		cfg.IssuerURL = defaultIssuerURL
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type oidcVerifier struct {
	verifier *oidc.IDTokenVerifier
	logger   *zap.Logger
}

// NewOIDCVerifier creates a verifier for OpenID Connect ID tokens. Unless keys
// are pinned, the issuer's discovery document is fetched with ctx.
func NewOIDCVerifier(ctx context.Context, cfg *OIDCConfig) (Verifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	oidcConfig := &oidc.Config{ClientID: cfg.ClientID, Now: cfg.Now}

	if len(cfg.PublicKeys) > 0 {
		keySet := &oidc.StaticKeySet{PublicKeys: cfg.PublicKeys}
		return &oidcVerifier{
			verifier: oidc.NewVerifier(cfg.IssuerURL, keySet, oidcConfig),
			logger:   cfg.Logger,
		}, nil
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to discover issuer %s", cfg.IssuerURL)
	}
	return &oidcVerifier{
		verifier: provider.Verifier(oidcConfig),
		logger:   cfg.Logger,
	}, nil
}

type idTokenClaims struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Picture       string `json:"picture"`
}

func (v *oidcVerifier) Verify(ctx context.Context, credential string) (*Identity, error) {
	if credential == "" {
		return nil, errors.Unauthenticated("id token is required")
	}

	token, err := v.verifier.Verify(ctx, credential)
	if err != nil {
		v.logger.Debug("rejected id token", zap.Error(err))
		return nil, errors.Unauthenticated("invalid id token")
	}
	if token.Subject == "" {
		return nil, errors.Unauthenticated("id token has no subject")
	}

	var claims idTokenClaims
	if err := token.Claims(&claims); err != nil {
		return nil, errors.Unauthenticated("unreadable id token claims")
	}

	identity := &Identity{
		UserID:      token.Subject,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
	}
	// unverified addresses are not shown as the user's
	if claims.EmailVerified {
		identity.Email = claims.Email
	}
	return identity, nil
}
