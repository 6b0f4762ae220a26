// Package v1alpha1 handles the team builder gRPC service
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/poketeam-api/internal/clients/auth"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/orchestrators/teambuilder"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Service teambuilder.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.Service == nil {
		return errors.InvalidArgument("team builder service is required")
	}
	return nil
}

// Handler implements TeamBuilderServiceServer
type Handler struct {
	service teambuilder.Service
}

var _ TeamBuilderServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.Service}, nil
}

// GetCoverage classifies the team against every type of the generation
func (h *Handler) GetCoverage(
	ctx context.Context,
	req *GetCoverageRequest,
) (*GetCoverageResponse, error) {
	out, err := h.service.GetCoverage(ctx, &teambuilder.GetCoverageInput{
		Team:       req.Team,
		Generation: pokemon.Generation(req.Generation),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetCoverageResponse{
		Generation:    int(out.Generation),
		Team:          out.Team,
		Entries:       convertCoverageEntries(out.Entries),
		Defensive:     convertDefensive(out.Defensive),
		FallbackChart: out.FallbackChart,
	}, nil
}

// Recommend ranks the team's members against an opponent
func (h *Handler) Recommend(
	ctx context.Context,
	req *RecommendRequest,
) (*RecommendResponse, error) {
	out, err := h.service.Recommend(ctx, &teambuilder.RecommendInput{
		Team:          req.Team,
		OpponentName:  req.OpponentName,
		OpponentTypes: pokemon.ParseTypes(req.OpponentTypes),
		Generation:    pokemon.Generation(req.Generation),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RecommendResponse{
		Generation:      int(out.Generation),
		OpponentTypes:   typeNames(out.OpponentTypes),
		Recommendations: convertScores(out.Scores),
	}, nil
}

// LookupPokemon returns the lookup view for one pokemon
func (h *Handler) LookupPokemon(
	ctx context.Context,
	req *LookupPokemonRequest,
) (*LookupPokemonResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.service.LookupPokemon(ctx, &teambuilder.LookupPokemonInput{
		Name:       req.Name,
		Generation: pokemon.Generation(req.Generation),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LookupPokemonResponse{Pokemon: convertPokemon(out.Pokemon)}, nil
}

// LookupMove returns a move's battle data
func (h *Handler) LookupMove(
	ctx context.Context,
	req *LookupMoveRequest,
) (*LookupMoveResponse, error) {
	out, err := h.service.LookupMove(ctx, &teambuilder.LookupMoveInput{Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LookupMoveResponse{Move: convertMove(out.Move)}, nil
}

// ListSpecies searches species names
func (h *Handler) ListSpecies(
	ctx context.Context,
	req *ListSpeciesRequest,
) (*ListSpeciesResponse, error) {
	out, err := h.service.ListSpecies(ctx, &teambuilder.ListSpeciesInput{
		Prefix: req.Prefix,
		Limit:  req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListSpeciesResponse{Names: out.Names}, nil
}

// SignIn starts a session
func (h *Handler) SignIn(
	ctx context.Context,
	req *SignInRequest,
) (*SignInResponse, error) {
	if req == nil || req.IDToken == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id_token is required"))
	}

	out, err := h.service.SignIn(ctx, &teambuilder.SignInInput{Credential: req.IDToken})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SignInResponse{
		Token:     out.Session.Token,
		User:      *convertIdentity(&out.Session.Identity),
		ExpiresAt: out.Session.ExpiresAt,
	}, nil
}

// SignOut ends the caller's session. Anonymous callers have nothing to end.
func (h *Handler) SignOut(
	ctx context.Context,
	_ *SignOutRequest,
) (*SignOutResponse, error) {
	token := auth.TokenFromContext(ctx)
	if token == "" {
		return &SignOutResponse{}, nil
	}

	if _, err := h.service.SignOut(ctx, &teambuilder.SignOutInput{Token: token}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SignOutResponse{}, nil
}

// GetCurrentUser returns the caller, or a null user when anonymous
func (h *Handler) GetCurrentUser(
	ctx context.Context,
	_ *GetCurrentUserRequest,
) (*GetCurrentUserResponse, error) {
	token := auth.TokenFromContext(ctx)
	if token == "" {
		return &GetCurrentUserResponse{}, nil
	}

	out, err := h.service.CurrentUser(ctx, &teambuilder.CurrentUserInput{Token: token})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &GetCurrentUserResponse{User: convertIdentity(out.Identity)}, nil
}

// DeleteAccount deletes the caller's saved teams and ends all their sessions
func (h *Handler) DeleteAccount(
	ctx context.Context,
	_ *DeleteAccountRequest,
) (*DeleteAccountResponse, error) {
	if _, err := auth.RequireIdentity(ctx); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.DeleteAccount(ctx, &teambuilder.DeleteAccountInput{
		Token: auth.TokenFromContext(ctx),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &DeleteAccountResponse{DeletedTeams: out.DeletedTeams}, nil
}

// SaveTeam stores a team for the caller
func (h *Handler) SaveTeam(
	ctx context.Context,
	req *SaveTeamRequest,
) (*SaveTeamResponse, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.SaveTeam(ctx, &teambuilder.SaveTeamInput{
		UserID:     identity.UserID,
		Name:       req.Name,
		Team:       req.Team,
		Generation: pokemon.Generation(req.Generation),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SaveTeamResponse{Team: convertTeamRecord(out.Team)}, nil
}

// ListTeams returns the caller's teams, newest first
func (h *Handler) ListTeams(
	ctx context.Context,
	_ *ListTeamsRequest,
) (*ListTeamsResponse, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ListTeams(ctx, &teambuilder.ListTeamsInput{UserID: identity.UserID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	teams := make([]*SavedTeam, 0, len(out.Teams))
	for _, t := range out.Teams {
		teams = append(teams, convertTeamRecord(t))
	}
	return &ListTeamsResponse{Teams: teams}, nil
}

// DeleteTeam removes one of the caller's teams
func (h *Handler) DeleteTeam(
	ctx context.Context,
	req *DeleteTeamRequest,
) (*DeleteTeamResponse, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.TeamID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("team_id is required"))
	}

	if _, err := h.service.DeleteTeam(ctx, &teambuilder.DeleteTeamInput{
		UserID: identity.UserID,
		TeamID: req.TeamID,
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &DeleteTeamResponse{}, nil
}

// SaveSnapshot stores builder state under the request key. Signed-in callers
// get keys private to their account.
func (h *Handler) SaveSnapshot(
	ctx context.Context,
	req *SaveSnapshotRequest,
) (*SaveSnapshotResponse, error) {
	out, err := h.service.SaveSnapshot(ctx, &teambuilder.SaveSnapshotInput{
		UserID:     callerID(ctx),
		Key:        req.Key,
		Team:       req.Team,
		Generation: pokemon.Generation(req.Generation),
		Revision:   req.Revision,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SaveSnapshotResponse{Snapshot: convertSnapshot(out.Snapshot)}, nil
}

// LoadSnapshot restores builder state, empty when nothing was saved
func (h *Handler) LoadSnapshot(
	ctx context.Context,
	req *LoadSnapshotRequest,
) (*LoadSnapshotResponse, error) {
	out, err := h.service.LoadSnapshot(ctx, &teambuilder.LoadSnapshotInput{
		UserID: callerID(ctx),
		Key:    req.Key,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &LoadSnapshotResponse{
		Snapshot: convertSnapshot(out.Snapshot),
		Found:    out.Found,
	}, nil
}

func callerID(ctx context.Context) string {
	if identity := auth.IdentityFromContext(ctx); identity != nil {
		return identity.UserID
	}
	return ""
}
