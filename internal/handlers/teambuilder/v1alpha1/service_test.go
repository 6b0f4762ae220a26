package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	grpc_auth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/poketeam-api/internal/clients/auth"
	authmock "github.com/KirkDiggler/poketeam-api/internal/clients/auth/mock"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/handlers/teambuilder/v1alpha1"
	"github.com/KirkDiggler/poketeam-api/internal/orchestrators/teambuilder"
	teambuildermock "github.com/KirkDiggler/poketeam-api/internal/orchestrators/teambuilder/mock"
	"github.com/KirkDiggler/poketeam-api/internal/testutils"
)

// ServiceTestSuite drives the handler through a real gRPC server so the JSON
// codec, the service descriptor and the auth interceptor are all exercised
type ServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *teambuildermock.MockService
	mockAuth    *authmock.MockProvider
	server      *grpc.Server
	conn        *grpc.ClientConn
	client      v1alpha1.TeamBuilderServiceClient
	ctx         context.Context
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = teambuildermock.NewMockService(s.ctrl)
	s.mockAuth = authmock.NewMockProvider(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: s.mockService})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpc_auth.UnaryServerInterceptor(auth.AuthFunc(s.mockAuth))),
	)
	v1alpha1.RegisterTeamBuilderServiceServer(s.server, handler)
	go func() { _ = s.server.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewTeamBuilderServiceClient(conn)
}

func (s *ServiceTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(s.ctx, "authorization", "Bearer "+token)
}

func (s *ServiceTestSuite) TestAnonymousCall() {
	s.mockService.EXPECT().
		ListSpecies(gomock.Any(), &teambuilder.ListSpeciesInput{Prefix: "char", Limit: 2}).
		Return(&teambuilder.ListSpeciesOutput{Names: []string{"charmander", "charmeleon"}}, nil)

	resp, err := s.client.ListSpecies(s.ctx, &v1alpha1.ListSpeciesRequest{Prefix: "char", Limit: 2})
	s.Require().NoError(err)
	s.Equal([]string{"charmander", "charmeleon"}, resp.Names)
}

func (s *ServiceTestSuite) TestStoreCallNeedsSignIn() {
	_, err := s.client.ListTeams(s.ctx, &v1alpha1.ListTeamsRequest{})
	s.Equal(codes.Unauthenticated, status.Code(err))
}

func (s *ServiceTestSuite) TestSignedInSaveKeepsEmptySlots() {
	s.mockAuth.EXPECT().CurrentUser(gomock.Any(), "tok_1").Return(&auth.Identity{UserID: "user_ash"}, nil)
	s.mockService.EXPECT().
		SaveTeam(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *teambuilder.SaveTeamInput) (*teambuilder.SaveTeamOutput, error) {
			s.Equal("user_ash", input.UserID)
			s.Equal(testutils.StarterTeam(), input.Team)
			return &teambuilder.SaveTeamOutput{Team: &pokemon.TeamRecord{
				ID:         "team_1",
				Pokemon:    input.Team,
				Generation: 9,
			}}, nil
		})

	resp, err := s.client.SaveTeam(s.withToken("tok_1"), &v1alpha1.SaveTeamRequest{Team: testutils.StarterTeam()})
	s.Require().NoError(err)

	s.Equal("team_1", resp.Team.ID)
	s.Equal("bulbasaur", resp.Team.Team[0].Name)
	s.Nil(resp.Team.Team[1])
	s.Equal("squirtle", resp.Team.Team[4].Name)
	s.Nil(resp.Team.Team[5])
}

func (s *ServiceTestSuite) TestEndedSessionIsRejected() {
	s.mockAuth.EXPECT().CurrentUser(gomock.Any(), "tok_old").Return(nil, nil)

	_, err := s.client.ListSpecies(s.withToken("tok_old"), &v1alpha1.ListSpeciesRequest{})
	s.Equal(codes.Unauthenticated, status.Code(err))
}

func (s *ServiceTestSuite) TestErrorMetadataCrossesTheWire() {
	s.mockAuth.EXPECT().CurrentUser(gomock.Any(), "tok_1").Return(&auth.Identity{UserID: "user_ash"}, nil)
	s.mockService.EXPECT().
		DeleteTeam(gomock.Any(), &teambuilder.DeleteTeamInput{UserID: "user_ash", TeamID: "team_9"}).
		Return(nil, errors.NotFound("team not found").WithMeta("team_id", "team_9"))

	_, err := s.client.DeleteTeam(s.withToken("tok_1"), &v1alpha1.DeleteTeamRequest{TeamID: "team_9"})
	s.Require().Error(err)

	converted := errors.FromGRPCError(err)
	s.True(errors.IsNotFound(converted))
	s.Equal("team_9", errors.GetMeta(converted)["team_id"])
}
