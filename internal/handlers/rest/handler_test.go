package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/poketeam-api/internal/clients/auth"
	authmock "github.com/KirkDiggler/poketeam-api/internal/clients/auth/mock"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/handlers/rest"
	"github.com/KirkDiggler/poketeam-api/internal/handlers/teambuilder/v1alpha1"
	"github.com/KirkDiggler/poketeam-api/internal/orchestrators/teambuilder"
	teambuildermock "github.com/KirkDiggler/poketeam-api/internal/orchestrators/teambuilder/mock"
	"github.com/KirkDiggler/poketeam-api/internal/repositories/snapshot"
	"github.com/KirkDiggler/poketeam-api/internal/testutils"
)

type GatewayTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *teambuildermock.MockService
	mockAuth    *authmock.MockProvider
	router      *gin.Engine
}

func TestGatewayTestSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(GatewayTestSuite))
}

func (s *GatewayTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = teambuildermock.NewMockService(s.ctrl)
	s.mockAuth = authmock.NewMockProvider(s.ctrl)

	grpcHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: s.mockService})
	s.Require().NoError(err)

	handler, err := rest.NewHandler(&rest.Config{Service: grpcHandler, Auth: s.mockAuth})
	s.Require().NoError(err)
	s.router = rest.NewRouter(handler)
}

func (s *GatewayTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GatewayTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type errorResponse struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Meta    map[string]any `json:"meta"`
	} `json:"error"`
}

func (s *GatewayTestSuite) decodeError(w *httptest.ResponseRecorder) errorResponse {
	var resp errorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func (s *GatewayTestSuite) TestConfigValidation() {
	_, err := rest.NewHandler(&rest.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *GatewayTestSuite) TestHealthz() {
	w := s.do(http.MethodGet, "/healthz", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *GatewayTestSuite) TestLookupPokemonWithGeneration() {
	s.mockService.EXPECT().
		LookupPokemon(gomock.Any(), &teambuilder.LookupPokemonInput{Name: "clefairy", Generation: 3}).
		Return(&teambuilder.LookupPokemonOutput{Pokemon: &teambuilder.PokemonDetail{
			ID:         35,
			Name:       "clefairy",
			Generation: 3,
			Types:      []pokemon.Type{pokemon.TypeNormal},
		}}, nil)

	w := s.do(http.MethodGet, "/v1/pokemon/clefairy?generation=3", "", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp v1alpha1.LookupPokemonResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal([]string{"normal"}, resp.Pokemon.Types)
}

func (s *GatewayTestSuite) TestBadQueryIsBadRequest() {
	w := s.do(http.MethodGet, "/v1/pokemon/clefairy?generation=three", "", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("INVALID_ARGUMENT", s.decodeError(w).Error.Code)
}

func (s *GatewayTestSuite) TestCoverage() {
	s.mockService.EXPECT().
		GetCoverage(gomock.Any(), &teambuilder.GetCoverageInput{Team: testutils.StarterTeam(), Generation: 1}).
		Return(&teambuilder.GetCoverageOutput{Generation: 1, Team: testutils.StarterTeam()}, nil)

	w := s.do(http.MethodPost, "/v1/coverage", "", v1alpha1.GetCoverageRequest{
		Team:       testutils.StarterTeam(),
		Generation: 1,
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	team, ok := resp["team"].([]any)
	s.Require().True(ok)
	s.Len(team, pokemon.TeamSize)
	s.Nil(team[1])
}

func (s *GatewayTestSuite) TestMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/v1/recommend", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *GatewayTestSuite) TestTeamsNeedSignIn() {
	w := s.do(http.MethodGet, "/v1/teams", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("UNAUTHENTICATED", s.decodeError(w).Error.Code)
}

func (s *GatewayTestSuite) TestBadAuthorizationHeader() {
	req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	req.Header.Set("Authorization", "Basic YXNoOnBpa2FjaHU=")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *GatewayTestSuite) TestEndedSession() {
	s.mockAuth.EXPECT().CurrentUser(gomock.Any(), "tok_old").Return(nil, nil)

	w := s.do(http.MethodGet, "/v1/species", "tok_old", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *GatewayTestSuite) TestAuthProviderDown() {
	s.mockAuth.EXPECT().CurrentUser(gomock.Any(), "tok_1").Return(nil, errors.Unavailable("redis unreachable"))

	w := s.do(http.MethodGet, "/v1/teams", "tok_1", nil)
	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *GatewayTestSuite) TestSignedInTeams() {
	s.mockAuth.EXPECT().CurrentUser(gomock.Any(), "tok_1").
		Return(&auth.Identity{UserID: "user_ash"}, nil).Times(2)
	s.mockService.EXPECT().
		ListTeams(gomock.Any(), &teambuilder.ListTeamsInput{UserID: "user_ash"}).
		Return(&teambuilder.ListTeamsOutput{Teams: []*pokemon.TeamRecord{{ID: "team_1", Generation: 9}}}, nil)
	s.mockService.EXPECT().
		DeleteTeam(gomock.Any(), &teambuilder.DeleteTeamInput{UserID: "user_ash", TeamID: "team_9"}).
		Return(nil, errors.NotFound("team not found").WithMeta("team_id", "team_9"))

	w := s.do(http.MethodGet, "/v1/teams", "tok_1", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var listed v1alpha1.ListTeamsResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listed))
	s.Require().Len(listed.Teams, 1)
	s.Equal("team_1", listed.Teams[0].ID)

	w = s.do(http.MethodDelete, "/v1/teams/team_9", "tok_1", nil)
	s.Equal(http.StatusNotFound, w.Code)
	errResp := s.decodeError(w)
	s.Equal("NOT_FOUND", errResp.Error.Code)
	s.Equal("team_9", errResp.Error.Meta["team_id"])
}

func (s *GatewayTestSuite) TestSignInNeedsVerifiedIDToken() {
	// a bare user id is not accepted in place of a token
	w := s.do(http.MethodPost, "/v1/auth/sign-in", "", map[string]any{"user_id": "user_ash"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("INVALID_ARGUMENT", s.decodeError(w).Error.Code)

	s.mockService.EXPECT().
		SignIn(gomock.Any(), &teambuilder.SignInInput{Credential: "forged"}).
		Return(nil, errors.Unauthenticated("invalid id token"))

	w = s.do(http.MethodPost, "/v1/auth/sign-in", "", map[string]any{"id_token": "forged"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("UNAUTHENTICATED", s.decodeError(w).Error.Code)
}

func (s *GatewayTestSuite) TestSnapshotKeyComesFromPath() {
	s.mockService.EXPECT().
		SaveSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *teambuilder.SaveSnapshotInput) (*teambuilder.SaveSnapshotOutput, error) {
			s.Equal("device-1", input.Key)
			s.Equal(int64(4), input.Revision)
			return &teambuilder.SaveSnapshotOutput{Snapshot: &snapshot.Snapshot{Key: input.Key, Revision: 4}}, nil
		})
	s.mockService.EXPECT().
		SaveSnapshot(gomock.Any(), gomock.Any()).
		Return(nil, errors.Aborted("stale revision"))

	w := s.do(http.MethodPut, "/v1/snapshots/device-1", "", map[string]any{"key": "other", "revision": 4})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPut, "/v1/snapshots/device-1", "", map[string]any{"revision": 3})
	s.Equal(http.StatusConflict, w.Code)
}
