package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/poketeam-api/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenTestSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestUUID() {
	id := idgen.NewUUID("").Generate()
	_, err := uuid.Parse(id)
	s.NoError(err)

	prefixed := idgen.NewUUID("team").Generate()
	s.True(strings.HasPrefix(prefixed, "team_"))
	s.NotEqual(prefixed, idgen.NewUUID("team").Generate())
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("team")
	s.Equal("team_1", gen.Generate())
	s.Equal("team_2", gen.Generate())

	s.Equal("1", idgen.NewSequential("").Generate())
}
