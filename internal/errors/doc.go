// Package errors provides the structured error type shared by every layer of
// poketeam-api.
//
// Errors carry a Code, a message safe to show callers, an optional Cause and
// metadata. They convert to gRPC status errors with ToGRPCError and to HTTP
// status codes with Code.HTTPStatus.
//
// How the failure classes of the service map onto codes:
//
//   - upstream fetch failures (PokeAPI, wiki): Unavailable, or NotFound for 404s.
//     Use FromHTTPStatus for non-2xx responses. Callers log and skip the item.
//   - missing data in an upstream response: not an error; defaults are applied
//     where the response is decoded.
//   - authentication: Unauthenticated when no session is present,
//     PermissionDenied when the session may not touch the resource.
//   - storage: repositories return NotFound for absent keys and Aborted for
//     stale snapshot writes; other failures are wrapped as Internal.
//
// Validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("user_id", input.UserID, vb)
//	errors.ValidateRange("generation", int(input.Generation), 1, 9, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Repositories wrap with context and keep the original code:
//
//	if err := r.client.Get(ctx, key).Err(); err != nil {
//	    return nil, errors.Wrapf(err, "failed to get team %s", id)
//	}
package errors
