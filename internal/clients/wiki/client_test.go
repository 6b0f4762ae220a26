package wiki_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/poketeam-api/internal/clients/wiki"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
)

const pikachuPage = `<!DOCTYPE html>
<html><head><title>Pikachu (Pokémon) - Bulbapedia</title></head>
<body>
<h3>Game locations</h3>
<table>
  <tr>
    <th><a href="/wiki/Pokemon_Red_and_Blue_Versions">Red</a> <a href="/wiki/Pokemon_Red_and_Blue_Versions">Blue</a></th>
    <td>  <a href="/wiki/Viridian_Forest">Viridian Forest</a>,
      <a href="/wiki/Power_Plant">Power Plant</a></td>
  </tr>
  <tr>
    <th>Yellow</th>
    <td>First partner Pokémon from Professor Oak</td>
  </tr>
  <tr>
    <th><a href="/wiki/Pokemon_Gold">Gold</a></th>
    <td>Route 2</td>
  </tr>
  <tr>
    <th>Let's Go, Pikachu!</th>
    <td>Viridian Forest</td>
  </tr>
  <tr>
    <th>Stadium</th>
    <td>Rental</td>
  </tr>
  <tr><td>A row with one cell</td></tr>
</table>
</body></html>`

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	mu       sync.Mutex
	requests []string
	client   wiki.Client
	ctx      context.Context
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.requests = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL.Path)
		s.mu.Unlock()
		switch r.URL.Path {
		case "/wiki/Pikachu_(Pokémon)":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = fmt.Fprint(w, pikachuPage)
		case "/wiki/Ditto_(Pokémon)":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	client, err := wiki.New(&wiki.Config{BaseURL: s.server.URL})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestLocationsForGenerationOne() {
	locations, err := s.client.LookupSupplementaryLocations(s.ctx, "pikachu", 1)
	s.Require().NoError(err)

	s.Equal([]pokemon.LocationEncounter{
		{Location: "Viridian Forest , Power Plant", Version: "red"},
		{Location: "Viridian Forest , Power Plant", Version: "blue"},
		{Location: "First partner Pokémon from Professor Oak", Version: "yellow"},
	}, locations)
	s.Equal([]string{"/wiki/Pikachu_(Pokémon)"}, s.requests)
}

func (s *ClientTestSuite) TestLabelsResolveToVersionSlugs() {
	locations, err := s.client.LookupSupplementaryLocations(s.ctx, "Pikachu", 7)
	s.Require().NoError(err)

	s.Equal([]pokemon.LocationEncounter{
		{Location: "Viridian Forest", Version: "lets-go-pikachu"},
	}, locations)
}

func (s *ClientTestSuite) TestNoRowsForGeneration() {
	locations, err := s.client.LookupSupplementaryLocations(s.ctx, "pikachu", 9)
	s.Require().NoError(err)
	s.NotNil(locations)
	s.Empty(locations)
}

func (s *ClientTestSuite) TestFailuresYieldEmpty() {
	testCases := []struct {
		name    string
		species string
	}{
		{"missing page", "missingno"},
		{"upstream error", "ditto"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			locations, err := s.client.LookupSupplementaryLocations(s.ctx, tc.species, 1)
			s.NoError(err)
			s.Empty(locations)
		})
	}
}

func (s *ClientTestSuite) TestUnreachableHostYieldsEmpty() {
	client, err := wiki.New(&wiki.Config{BaseURL: "http://127.0.0.1:1"})
	s.Require().NoError(err)

	locations, err := client.LookupSupplementaryLocations(s.ctx, "pikachu", 1)
	s.NoError(err)
	s.Empty(locations)
}

func (s *ClientTestSuite) TestInvalidInput() {
	_, err := s.client.LookupSupplementaryLocations(s.ctx, " ", 1)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.LookupSupplementaryLocations(s.ctx, "pikachu", 10)
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.requests)
}

func (s *ClientTestSuite) TestPageTitle() {
	s.Equal("Pikachu_(Pokémon)", wiki.PageTitle("pikachu"))
	s.Equal("Mr_Mime_(Pokémon)", wiki.PageTitle("mr-mime"))
	s.Equal("Tapu_Koko_(Pokémon)", wiki.PageTitle(" Tapu Koko "))
}
