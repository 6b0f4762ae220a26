package team_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/pkg/clock"
	"github.com/KirkDiggler/poketeam-api/internal/pkg/idgen"
	"github.com/KirkDiggler/poketeam-api/internal/redis"
	"github.com/KirkDiggler/poketeam-api/internal/repositories/team"
	"github.com/KirkDiggler/poketeam-api/internal/testutils"
)

const (
	testUserID  = "user_ash"
	otherUserID = "user_gary"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redis.Client
	server  *miniredis.Miniredis
	cleanup func()
	clock   *clock.Fixed
	repo    team.Repository
	ctx     context.Context
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.server, s.cleanup = testutils.CreateTestRedis(s.T())
	s.clock = &clock.Fixed{T: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	repo, err := team.NewRedis(&team.RedisConfig{
		Client:      s.client,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("team"),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) save(userID, name string) *pokemon.TeamRecord {
	out, err := s.repo.Save(s.ctx, team.SaveInput{
		UserID: userID,
		Team: &pokemon.TeamRecord{
			Name:       name,
			Pokemon:    testutils.StarterTeam(),
			Generation: 3,
		},
	})
	s.Require().NoError(err)
	s.clock.T = s.clock.T.Add(time.Minute)
	return out.Team
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := team.NewRedis(&team.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = team.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveAssignsIDAndCreatedAt() {
	saved := s.save(testUserID, "kanto")

	s.Equal("team_1", saved.ID)
	s.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), saved.CreatedAt)
	s.True(s.server.Exists("team:team_1"))

	members, err := s.server.ZMembers("team:user:" + testUserID)
	s.Require().NoError(err)
	s.Equal([]string{"team_1"}, members)
}

func (s *RedisRepositoryTestSuite) TestSaveKeepsExistingID() {
	out, err := s.repo.Save(s.ctx, team.SaveInput{
		UserID: testUserID,
		Team:   &pokemon.TeamRecord{ID: "mine", Generation: 1},
	})
	s.Require().NoError(err)
	s.Equal("mine", out.Team.ID)
}

func (s *RedisRepositoryTestSuite) TestSaveThenLoadPreservesEmptySlots() {
	saved := s.save(testUserID, "kanto")

	out, err := s.repo.LoadTeams(s.ctx, team.LoadTeamsInput{UserID: testUserID})
	s.Require().NoError(err)
	s.Require().Len(out.Teams, 1)

	loaded := out.Teams[0]
	s.Equal(saved.ID, loaded.ID)
	s.Equal(pokemon.Generation(3), loaded.Generation)
	s.Equal(testutils.StarterTeam(), loaded.Pokemon)
	s.Nil(loaded.Pokemon[1])
	s.Nil(loaded.Pokemon[3])
	s.Nil(loaded.Pokemon[5])

	raw, err := s.server.Get("team:" + saved.ID)
	s.Require().NoError(err)
	var doc map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal([]byte(raw), &doc))
	var slots []json.RawMessage
	s.Require().NoError(json.Unmarshal(doc["pokemon"], &slots))
	s.Len(slots, pokemon.TeamSize)
	s.Equal("null", string(slots[1]))
}

func (s *RedisRepositoryTestSuite) TestLoadTeamsNewestFirst() {
	first := s.save(testUserID, "first")
	second := s.save(testUserID, "second")
	third := s.save(testUserID, "third")

	out, err := s.repo.LoadTeams(s.ctx, team.LoadTeamsInput{UserID: testUserID})
	s.Require().NoError(err)
	s.Require().Len(out.Teams, 3)
	s.Equal([]string{third.ID, second.ID, first.ID},
		[]string{out.Teams[0].ID, out.Teams[1].ID, out.Teams[2].ID})
}

func (s *RedisRepositoryTestSuite) TestLoadTeamsEmpty() {
	out, err := s.repo.LoadTeams(s.ctx, team.LoadTeamsInput{UserID: testUserID})
	s.Require().NoError(err)
	s.NotNil(out.Teams)
	s.Empty(out.Teams)
}

func (s *RedisRepositoryTestSuite) TestLoadTeamsCleansMissingDocuments() {
	kept := s.save(testUserID, "kept")
	lost := s.save(testUserID, "lost")
	s.server.Del("team:" + lost.ID)

	out, err := s.repo.LoadTeams(s.ctx, team.LoadTeamsInput{UserID: testUserID})
	s.Require().NoError(err)
	s.Require().Len(out.Teams, 1)
	s.Equal(kept.ID, out.Teams[0].ID)

	members, err := s.server.ZMembers("team:user:" + testUserID)
	s.Require().NoError(err)
	s.Equal([]string{kept.ID}, members)
}

func (s *RedisRepositoryTestSuite) TestDeleteTeamRemovesExactlyThatTeam() {
	first := s.save(testUserID, "first")
	second := s.save(testUserID, "second")
	third := s.save(testUserID, "third")

	_, err := s.repo.DeleteTeam(s.ctx, team.DeleteTeamInput{UserID: testUserID, TeamID: second.ID})
	s.Require().NoError(err)

	out, err := s.repo.LoadTeams(s.ctx, team.LoadTeamsInput{UserID: testUserID})
	s.Require().NoError(err)
	s.Require().Len(out.Teams, 2)
	s.Equal(third.ID, out.Teams[0].ID)
	s.Equal(first.ID, out.Teams[1].ID)
	s.False(s.server.Exists("team:" + second.ID))
}

func (s *RedisRepositoryTestSuite) TestDeleteTeamErrors() {
	theirs := s.save(otherUserID, "gary's")

	s.Run("not owned by user", func() {
		_, err := s.repo.DeleteTeam(s.ctx, team.DeleteTeamInput{UserID: testUserID, TeamID: theirs.ID})
		s.True(errors.IsNotFound(err))
		s.True(s.server.Exists("team:" + theirs.ID))
	})

	s.Run("unknown id", func() {
		_, err := s.repo.DeleteTeam(s.ctx, team.DeleteTeamInput{UserID: testUserID, TeamID: "nope"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("missing ids", func() {
		_, err := s.repo.DeleteTeam(s.ctx, team.DeleteTeamInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestDeleteAllUserData() {
	s.save(testUserID, "one")
	s.save(testUserID, "two")
	theirs := s.save(otherUserID, "gary's")

	out, err := s.repo.DeleteAllUserData(s.ctx, team.DeleteAllUserDataInput{UserID: testUserID})
	s.Require().NoError(err)
	s.Equal(2, out.DeletedTeams)

	s.False(s.server.Exists("team:user:" + testUserID))
	s.False(s.server.Exists("team:team_1"))
	s.False(s.server.Exists("team:team_2"))
	s.True(s.server.Exists("team:" + theirs.ID))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Save(s.ctx, team.SaveInput{Team: &pokemon.TeamRecord{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, team.SaveInput{UserID: testUserID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.LoadTeams(s.ctx, team.LoadTeamsInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.DeleteAllUserData(s.ctx, team.DeleteAllUserDataInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestStorageFailure() {
	server, err := miniredis.Run()
	s.Require().NoError(err)
	client, err := redis.NewClient(server.Addr(), &redis.Options{MaxRetries: -1})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()
	server.Close()

	repo, err := team.NewRedis(&team.RedisConfig{Client: client})
	s.Require().NoError(err)

	_, err = repo.LoadTeams(s.ctx, team.LoadTeamsInput{UserID: testUserID})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}
