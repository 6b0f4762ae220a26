package teambuilder

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/repositories/team"
)

const maxTeamNameLength = 64

func (o *orchestrator) SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.auth.SignIn(ctx, input.Credential)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign in")
	}

	o.logger.Info("user signed in", zap.String("user_id", session.Identity.UserID))
	return &SignInOutput{Session: session}, nil
}

func (o *orchestrator) SignOut(ctx context.Context, input *SignOutInput) (*SignOutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := o.auth.SignOut(ctx, input.Token); err != nil {
		return nil, errors.Wrap(err, "failed to sign out")
	}
	return &SignOutOutput{}, nil
}

func (o *orchestrator) CurrentUser(ctx context.Context, input *CurrentUserInput) (*CurrentUserOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	identity, err := o.auth.CurrentUser(ctx, input.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve current user")
	}
	return &CurrentUserOutput{Identity: identity}, nil
}

// DeleteAccount removes the user's saved teams before ending their sessions,
// so a failure leaves the account able to retry
func (o *orchestrator) DeleteAccount(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	identity, err := o.auth.CurrentUser(ctx, input.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve current user")
	}
	if identity == nil {
		return nil, errors.Unauthenticated("sign in required")
	}

	deleted, err := o.teamRepo.DeleteAllUserData(ctx, team.DeleteAllUserDataInput{UserID: identity.UserID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete teams for user %s", identity.UserID)
	}

	if err := o.auth.DeleteAccount(ctx, input.Token); err != nil {
		return nil, errors.Wrap(err, "failed to delete account")
	}

	o.logger.Info("account deleted",
		zap.String("user_id", identity.UserID),
		zap.Int("teams", deleted.DeletedTeams))

	return &DeleteAccountOutput{DeletedTeams: deleted.DeletedTeams}, nil
}

func (o *orchestrator) SaveTeam(ctx context.Context, input *SaveTeamInput) (*SaveTeamOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	if len(name) > maxTeamNameLength {
		vb.Fieldf("name", "must be at most %d characters", maxTeamNameLength)
	}
	if input.Team.Len() == 0 {
		vb.InvalidField("team", "must have at least one member")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	gen, err := o.resolveGeneration(input.Generation)
	if err != nil {
		return nil, err
	}

	out, err := o.teamRepo.Save(ctx, team.SaveInput{
		UserID: input.UserID,
		Team: &pokemon.TeamRecord{
			Name:       name,
			Pokemon:    input.Team,
			Generation: gen,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save team")
	}

	return &SaveTeamOutput{Team: out.Team}, nil
}

func (o *orchestrator) ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.teamRepo.LoadTeams(ctx, team.LoadTeamsInput{UserID: input.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list teams")
	}
	return &ListTeamsOutput{Teams: out.Teams}, nil
}

func (o *orchestrator) DeleteTeam(ctx context.Context, input *DeleteTeamInput) (*DeleteTeamOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, err := o.teamRepo.DeleteTeam(ctx, team.DeleteTeamInput{
		UserID: input.UserID,
		TeamID: input.TeamID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete team")
	}
	return &DeleteTeamOutput{}, nil
}
