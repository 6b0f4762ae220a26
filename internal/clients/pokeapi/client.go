// Package pokeapi is the client for the public PokeAPI REST service
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/poketeam-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/poketeam-api/internal/cache"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
)

const (
	defaultBaseURL = "https://pokeapi.co/api/v2"
	// maxBodyBytes bounds a single response; the largest resources are a few MB
	maxBodyBytes = 16 << 20
)

// Client defines the PokeAPI operations the service uses
type Client interface {
	// ListSpecies returns species names for team slot search
	ListSpecies(ctx context.Context, limit int) ([]string, error)

	// GetPokemon fetches a pokemon by name or numeric id
	GetPokemon(ctx context.Context, nameOrID string) (*pokemon.Species, error)

	// GetTypeRelations fetches the attacking damage relations of a type
	GetTypeRelations(ctx context.Context, t pokemon.Type) (*pokemon.TypeRelations, error)

	// GetEvolutionChain fetches the chain containing a species
	GetEvolutionChain(ctx context.Context, speciesID int) (*pokemon.EvolutionNode, error)

	// GetEncounters lists where a pokemon can be caught, one entry per version
	GetEncounters(ctx context.Context, pokemonID int) ([]pokemon.LocationEncounter, error)

	// GetAbility fetches the English description of an ability
	GetAbility(ctx context.Context, name string) (*pokemon.AbilityDetail, error)

	// GetMove fetches a move's battle data
	GetMove(ctx context.Context, name string) (*pokemon.MoveDetail, error)
}

// Config contains configuration options for the PokeAPI client
type Config struct {
	// BaseURL defaults to https://pokeapi.co/api/v2
	BaseURL string
	// HTTPClient overrides the default client built from HTTPTimeout
	HTTPClient *http.Client
	// HTTPTimeout defaults to 10 seconds
	HTTPTimeout time.Duration
	// Cache memoizes raw responses; nil disables caching
	Cache cache.Cache
	// CacheTTL defaults to 24 hours
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base url: %v", err)
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 10 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
	cacheTTL   time.Duration
	timeout    time.Duration
	inflight   singleflight.Group
	logger     *zap.Logger
}

// New creates a PokeAPI client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		cache:      cfg.Cache,
		cacheTTL:   cfg.CacheTTL,
		timeout:    cfg.HTTPTimeout,
		logger:     cfg.Logger,
	}, nil
}

// fetch decodes the resource at path into out. Raw bodies are cached and
// concurrent requests for the same path share one upstream call. The shared
// call is bounded by the client timeout only, so one caller's deadline never
// fails the others; each caller stops waiting when its own context ends.
func (c *client) fetch(ctx context.Context, path string, out any) error {
	body, err := c.cached(ctx, path)
	if err != nil {
		return err
	}
	if body == nil {
		ch := c.inflight.DoChan(path, func() (any, error) {
			callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
			defer cancel()
			return c.get(callCtx, path)
		})

		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "request for %s cancelled", path)
		case res := <-ch:
			if res.Err != nil {
				return res.Err
			}
			if res.Shared {
				c.logger.Debug("shared in-flight pokeapi request", zap.String("path", path))
			}
			body = res.Val.([]byte)
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInternal, "failed to decode %s", path)
	}
	return nil
}

func (c *client) cached(ctx context.Context, path string) ([]byte, error) {
	if c.cache == nil {
		return nil, nil
	}
	body, ok, err := c.cache.Get(ctx, path)
	if err != nil {
		// a broken cache degrades to direct fetches
		c.logger.Warn("pokeapi cache read failed", zap.String("path", path), zap.Error(err))
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return body, nil
}

func (c *client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", path)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrapf(ctx.Err(), "request for %s cancelled", path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to fetch %s", path)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("pokeapi request",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.FromHTTPStatus(resp.StatusCode, path)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", path)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, path, body, c.cacheTTL); err != nil {
			c.logger.Warn("pokeapi cache write failed", zap.String("path", path), zap.Error(err))
		}
	}
	return body, nil
}

func (c *client) ListSpecies(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 2000
	}

	var resp resourceList
	if err := c.fetch(ctx, "pokemon-species?limit="+strconv.Itoa(limit), &resp); err != nil {
		return nil, errors.Wrap(err, "failed to list species")
	}

	names := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		names = append(names, r.Name)
	}
	return names, nil
}

func (c *client) GetPokemon(ctx context.Context, nameOrID string) (*pokemon.Species, error) {
	key := strings.ToLower(strings.TrimSpace(nameOrID))
	if key == "" {
		return nil, errors.InvalidArgument("pokemon name is required")
	}

	var resp pokemonResponse
	if err := c.fetch(ctx, "pokemon/"+url.PathEscape(key), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %s", key)
	}
	return convertPokemon(&resp), nil
}

func (c *client) GetTypeRelations(ctx context.Context, t pokemon.Type) (*pokemon.TypeRelations, error) {
	var resp typeResponse
	if err := c.fetch(ctx, "type/"+url.PathEscape(t.String()), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get type %s", t)
	}
	rel := convertTypeRelations(&resp)
	if rel.Type == "" {
		rel.Type = t
	}
	return rel, nil
}

func (c *client) GetEvolutionChain(ctx context.Context, speciesID int) (*pokemon.EvolutionNode, error) {
	var species speciesResponse
	if err := c.fetch(ctx, fmt.Sprintf("pokemon-species/%d", speciesID), &species); err != nil {
		return nil, errors.Wrapf(err, "failed to get species %d", speciesID)
	}
	if species.EvolutionChain == nil || species.EvolutionChain.URL == "" {
		return nil, errors.NotFoundf("species %d has no evolution chain", speciesID)
	}

	var chain evolutionChainResponse
	if err := c.fetch(ctx, resourcePath(species.EvolutionChain.URL), &chain); err != nil {
		return nil, errors.Wrapf(err, "failed to get evolution chain for species %d", speciesID)
	}
	return convertChainLink(&chain.Chain), nil
}

func (c *client) GetEncounters(ctx context.Context, pokemonID int) ([]pokemon.LocationEncounter, error) {
	var resp []encounterJSON
	if err := c.fetch(ctx, fmt.Sprintf("pokemon/%d/encounters", pokemonID), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get encounters for pokemon %d", pokemonID)
	}
	return convertEncounters(resp), nil
}

func (c *client) GetAbility(ctx context.Context, name string) (*pokemon.AbilityDetail, error) {
	var resp abilityResponse
	if err := c.fetch(ctx, "ability/"+url.PathEscape(name), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get ability %s", name)
	}
	return convertAbility(&resp), nil
}

func (c *client) GetMove(ctx context.Context, name string) (*pokemon.MoveDetail, error) {
	var resp moveResponse
	if err := c.fetch(ctx, "move/"+url.PathEscape(name), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get move %s", name)
	}
	return convertMove(&resp), nil
}
