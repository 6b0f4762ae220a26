package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/poketeam-api/internal/clients/auth"
	authmock "github.com/KirkDiggler/poketeam-api/internal/clients/auth/mock"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/pkg/clock"
	"github.com/KirkDiggler/poketeam-api/internal/pkg/idgen"
	"github.com/KirkDiggler/poketeam-api/internal/redis"
	"github.com/KirkDiggler/poketeam-api/internal/testutils"
)

var (
	ash = auth.Identity{
		UserID:      "user_ash",
		DisplayName: "Ash",
		Email:       "ash@pallet.town",
		PhotoURL:    "https://example.com/ash.png",
	}
	gary = auth.Identity{UserID: "user_gary", DisplayName: "Gary"}
)

type RedisProviderTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	verifier *authmock.MockVerifier
	client   redis.Client
	server   *miniredis.Miniredis
	cleanup  func()
	provider auth.Provider
	ctx      context.Context
}

func TestRedisProviderTestSuite(t *testing.T) {
	suite.Run(t, new(RedisProviderTestSuite))
}

func (s *RedisProviderTestSuite) SetupTest() {
	s.client, s.server, s.cleanup = testutils.CreateTestRedis(s.T())
	s.ctx = context.Background()

	s.ctrl = gomock.NewController(s.T())
	s.verifier = authmock.NewMockVerifier(s.ctrl)
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, credential string) (*auth.Identity, error) {
			switch credential {
			case "id_ash":
				identity := ash
				return &identity, nil
			case "id_gary":
				identity := gary
				return &identity, nil
			}
			return nil, errors.Unauthenticated("invalid id token")
		}).AnyTimes()

	provider, err := auth.NewRedis(&auth.RedisConfig{
		Client:         s.client,
		Verifier:       s.verifier,
		SessionTTL:     time.Hour,
		Clock:          &clock.Fixed{T: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		TokenGenerator: idgen.NewSequential("tok"),
	})
	s.Require().NoError(err)
	s.provider = provider
}

func (s *RedisProviderTestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.cleanup()
}

func (s *RedisProviderTestSuite) TestSignInAndCurrentUser() {
	session, err := s.provider.SignIn(s.ctx, "id_ash")
	s.Require().NoError(err)

	s.Equal("tok_1", session.Token)
	s.Equal(ash, session.Identity)
	s.Equal(time.Date(2024, 5, 1, 1, 0, 0, 0, time.UTC), session.ExpiresAt)
	s.Equal(time.Hour, s.server.TTL("auth:session:tok_1"))

	identity, err := s.provider.CurrentUser(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(&ash, identity)
}

func (s *RedisProviderTestSuite) TestCurrentUserWhenSignedOut() {
	testCases := []struct {
		name  string
		token string
	}{
		{"blank token", ""},
		{"unknown token", "tok_999"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			identity, err := s.provider.CurrentUser(s.ctx, tc.token)
			s.NoError(err)
			s.Nil(identity)
		})
	}
}

func (s *RedisProviderTestSuite) TestSessionExpires() {
	session, err := s.provider.SignIn(s.ctx, "id_ash")
	s.Require().NoError(err)

	s.server.FastForward(2 * time.Hour)

	identity, err := s.provider.CurrentUser(s.ctx, session.Token)
	s.NoError(err)
	s.Nil(identity)
}

func (s *RedisProviderTestSuite) TestSignInRequiresCredential() {
	_, err := s.provider.SignIn(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisProviderTestSuite) TestSignInRejectsUnverifiedIdentity() {
	// a bare user id is not a credential
	for _, credential := range []string{"user_ash", "forged-token"} {
		session, err := s.provider.SignIn(s.ctx, credential)
		s.Nil(session)
		s.True(errors.IsUnauthenticated(err), "got %v", err)
	}

	s.Empty(s.server.Keys(), "no session is stored")
}

func (s *RedisProviderTestSuite) TestSignInRejectsIdentityWithoutUser() {
	ctrl := gomock.NewController(s.T())
	verifier := authmock.NewMockVerifier(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), "id_anon").Return(&auth.Identity{DisplayName: "anon"}, nil)

	provider, err := auth.NewRedis(&auth.RedisConfig{Client: s.client, Verifier: verifier})
	s.Require().NoError(err)

	_, err = provider.SignIn(s.ctx, "id_anon")
	s.True(errors.IsUnauthenticated(err))
}

func (s *RedisProviderTestSuite) TestConfigRequiresVerifier() {
	_, err := auth.NewRedis(&auth.RedisConfig{Client: s.client})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisProviderTestSuite) TestSignOut() {
	session, err := s.provider.SignIn(s.ctx, "id_ash")
	s.Require().NoError(err)

	s.Require().NoError(s.provider.SignOut(s.ctx, session.Token))

	identity, err := s.provider.CurrentUser(s.ctx, session.Token)
	s.NoError(err)
	s.Nil(identity)
	s.False(s.server.Exists("auth:user:user_ash"))

	s.NoError(s.provider.SignOut(s.ctx, session.Token), "second sign out is a no-op")
}

func (s *RedisProviderTestSuite) TestDeleteAccountEndsEverySession() {
	phone, err := s.provider.SignIn(s.ctx, "id_ash")
	s.Require().NoError(err)
	laptop, err := s.provider.SignIn(s.ctx, "id_ash")
	s.Require().NoError(err)
	rival, err := s.provider.SignIn(s.ctx, "id_gary")
	s.Require().NoError(err)

	s.Require().NoError(s.provider.DeleteAccount(s.ctx, phone.Token))

	for _, token := range []string{phone.Token, laptop.Token} {
		identity, err := s.provider.CurrentUser(s.ctx, token)
		s.NoError(err)
		s.Nil(identity)
	}

	identity, err := s.provider.CurrentUser(s.ctx, rival.Token)
	s.NoError(err)
	s.Require().NotNil(identity)
	s.Equal("user_gary", identity.UserID)
}

func (s *RedisProviderTestSuite) TestDeleteAccountRequiresSession() {
	err := s.provider.DeleteAccount(s.ctx, "tok_404")
	s.True(errors.IsUnauthenticated(err))
}

func (s *RedisProviderTestSuite) TestSubscribe() {
	events := make(chan auth.Event, 8)
	unsubscribe, err := s.provider.Subscribe(s.ctx, func(e auth.Event) {
		events <- e
	})
	s.Require().NoError(err)
	defer unsubscribe()

	session, err := s.provider.SignIn(s.ctx, "id_ash")
	s.Require().NoError(err)
	s.Require().NoError(s.provider.SignOut(s.ctx, session.Token))

	s.Equal(auth.EventSignedIn, s.nextEvent(events).Type)
	signedOut := s.nextEvent(events)
	s.Equal(auth.EventSignedOut, signedOut.Type)
	s.Equal("user_ash", signedOut.UserID)
}

func (s *RedisProviderTestSuite) TestUnsubscribeStopsDelivery() {
	events := make(chan auth.Event, 8)
	unsubscribe, err := s.provider.Subscribe(s.ctx, func(e auth.Event) {
		events <- e
	})
	s.Require().NoError(err)

	unsubscribe()
	unsubscribe()

	_, err = s.provider.SignIn(s.ctx, "id_ash")
	s.Require().NoError(err)

	select {
	case e := <-events:
		s.Failf("unexpected event", "%+v", e)
	case <-time.After(100 * time.Millisecond):
	}
}

func (s *RedisProviderTestSuite) TestSubscribeRequiresCallback() {
	_, err := s.provider.Subscribe(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisProviderTestSuite) nextEvent(events <-chan auth.Event) auth.Event {
	select {
	case e := <-events:
		return e
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for auth event")
		return auth.Event{}
	}
}
