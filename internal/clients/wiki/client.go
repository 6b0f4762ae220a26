// Package wiki scrapes location tables from the Bulbapedia species pages. It is
// only consulted when PokeAPI has no encounters for the selected generation.
package wiki

//go:generate mockgen -destination=mock/mock_client.go -package=wikimock github.com/KirkDiggler/poketeam-api/internal/clients/wiki Client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/KirkDiggler/poketeam-api/internal/engine/generation"
	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
	"github.com/KirkDiggler/poketeam-api/internal/errors"
)

const (
	defaultBaseURL = "https://bulbapedia.bulbagarden.net"
	maxPageBytes   = 4 << 20
	userAgent      = "poketeam-api (+https://github.com/KirkDiggler/poketeam-api)"
)

// Client looks up locations that PokeAPI does not know about
type Client interface {
	// LookupSupplementaryLocations returns the locations listed on the species
	// page for versions of the generation. Fetch and parse failures yield an
	// empty result; only invalid input is an error.
	LookupSupplementaryLocations(ctx context.Context, speciesName string, gen pokemon.Generation) ([]pokemon.LocationEncounter, error)
}

// Config contains configuration options for the wiki client
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Policy     *generation.Policy
	Logger     *zap.Logger
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid wiki url: %v", err)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Policy == nil {
		cfg.Policy = generation.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
	policy     *generation.Policy
	logger     *zap.Logger
}

// New creates a wiki client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		policy:     cfg.Policy,
		logger:     cfg.Logger,
	}, nil
}

func (c *client) LookupSupplementaryLocations(ctx context.Context, speciesName string, gen pokemon.Generation) ([]pokemon.LocationEncounter, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("species_name", speciesName, vb)
	if err := gen.Validate(); err != nil {
		vb.InvalidField("generation", err.Error())
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	pageURL := c.baseURL + "/wiki/" + url.PathEscape(PageTitle(speciesName))
	doc, err := c.fetch(ctx, pageURL)
	if err != nil {
		c.logger.Info("wiki lookup failed",
			zap.String("species", speciesName),
			zap.String("url", pageURL),
			zap.Error(err))
		return []pokemon.LocationEncounter{}, nil
	}

	locations := c.extractLocations(doc, gen)
	c.logger.Debug("wiki locations extracted",
		zap.String("species", speciesName),
		zap.Int("generation", int(gen)),
		zap.Int("count", len(locations)))
	return locations, nil
}

func (c *client) fetch(ctx context.Context, pageURL string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build wiki request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to fetch wiki page")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.FromHTTPStatus(resp.StatusCode, pageURL)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse wiki page")
	}
	return doc, nil
}

// extractLocations reads every table row whose first cell names a version of
// the generation and whose last cell holds the location text
func (c *client) extractLocations(doc *html.Node, gen pokemon.Generation) []pokemon.LocationEncounter {
	locations := []pokemon.LocationEncounter{}
	seen := make(map[pokemon.LocationEncounter]bool)

	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			for _, loc := range c.rowLocations(n, gen) {
				if !seen[loc] {
					seen[loc] = true
					locations = append(locations, loc)
				}
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			traverse(child)
		}
	}
	traverse(doc)

	return locations
}

func (c *client) rowLocations(row *html.Node, gen pokemon.Generation) []pokemon.LocationEncounter {
	cells := childElements(row, "td", "th")
	if len(cells) < 2 {
		return nil
	}

	location := textContent(cells[len(cells)-1])
	if location == "" {
		return nil
	}

	var out []pokemon.LocationEncounter
	for _, label := range versionLabels(cells[0]) {
		version, ok := generation.VersionForLabel(label)
		if !ok || !c.policy.VersionInScope(version, gen) {
			continue
		}
		out = append(out, pokemon.LocationEncounter{
			Location: location,
			Version:  version,
		})
	}
	return out
}

// versionLabels returns the link texts of a cell, since a single cell often
// lists paired versions, or the whole cell text when it has no links
func versionLabels(cell *html.Node) []string {
	var labels []string
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if text := textContent(n); text != "" {
				labels = append(labels, text)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			traverse(child)
		}
	}
	traverse(cell)

	if len(labels) == 0 {
		if text := textContent(cell); text != "" {
			labels = append(labels, text)
		}
	}
	return labels
}

func childElements(n *html.Node, tags ...string) []*html.Node {
	var out []*html.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		for _, tag := range tags {
			if child.Data == tag {
				out = append(out, child)
				break
			}
		}
	}
	return out
}

// textContent joins the text nodes under n with collapsed whitespace
func textContent(n *html.Node) string {
	var sb strings.Builder
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteString(" ")
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			traverse(child)
		}
	}
	traverse(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// PageTitle builds the species page title, e.g. "mr-mime" becomes "Mr_Mime_(Pokémon)"
func PageTitle(speciesName string) string {
	parts := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(speciesName)), func(r rune) bool {
		return r == '-' || r == ' ' || r == '_'
	})
	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "_") + "_(Pokémon)"
}
