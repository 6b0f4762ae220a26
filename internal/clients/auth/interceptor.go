package auth

import (
	"context"

	grpc_auth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/poketeam-api/internal/errors"
)

// AuthFunc resolves "authorization: bearer <token>" metadata into an identity
// on the context. Calls without the header proceed anonymously; a token that
// does not resolve is rejected so clients learn their session ended.
func AuthFunc(provider Provider) grpc_auth.AuthFunc {
	return func(ctx context.Context) (context.Context, error) {
		if len(metadata.ValueFromIncomingContext(ctx, "authorization")) == 0 {
			return ctx, nil
		}
		token, err := grpc_auth.AuthFromMD(ctx, "bearer")
		if err != nil {
			return nil, err
		}

		identity, err := provider.CurrentUser(ctx, token)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		if identity == nil {
			return nil, status.Error(codes.Unauthenticated, "session expired or signed out")
		}

		ctx = WithToken(ctx, token)
		return WithIdentity(ctx, identity), nil
	}
}

// RequireIdentity returns the caller's identity or an Unauthenticated error
func RequireIdentity(ctx context.Context) (*Identity, error) {
	identity := IdentityFromContext(ctx)
	if identity == nil {
		return nil, errors.Unauthenticated("sign in required")
	}
	return identity, nil
}
