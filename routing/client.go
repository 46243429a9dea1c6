// Package routing builds a costtable.CostTable by concurrently querying an
// external routing provider for pairwise travel durations (spec.md §4.2).
//
// Concurrency contract: every off-diagonal (i,j) pair is dispatched
// concurrently, bounded by a semaphore, and awaited collectively; the first
// failure cancels the remaining fetches and no partial table is ever
// returned. This mirrors the teacher's core.ConcurrentBuild dispatch-all,
// await-collectively, fail-fast shape, adapted from graph-edge fetches to
// routing-leg fetches.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/tspga/costtable"
	"github.com/katalvlaran/tspga/tsperr"
)

// maxConcurrentFetches bounds how many in-flight HTTP requests the client
// issues at once, per spec.md §4.2's bounded-concurrency contract.
const maxConcurrentFetches = 64

// Coordinate is a parsed "lat,long" pair.
type Coordinate struct {
	Lat, Long float64
}

// ParseCoordinate parses a "lat,long" line, tolerating surrounding whitespace.
func ParseCoordinate(s string) (Coordinate, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Coordinate{}, tsperr.ErrOriginOrDestinationInvalid
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, tsperr.ErrOriginOrDestinationInvalid
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, tsperr.ErrOriginOrDestinationInvalid
	}
	return Coordinate{Lat: lat, Long: long}, nil
}

// String renders the coordinate back into "lat,long" form, as the provider
// query parameters expect.
func (c Coordinate) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Long)
}

// Provider fetches the travel duration, in seconds, from origin to
// destination for a single vehicle type.
type Provider interface {
	Duration(ctx context.Context, vehicleType string, origin, destination Coordinate) (seconds float64, err error)
}

// Config selects a provider and carries its credentials.
type Config struct {
	APIName     string // must be one of the registered provider names.
	APIKey      string
	BaseURL     string // optional override, used by tests against a stub server.
	VehicleType string
}

// NewProvider resolves cfg.APIName to a concrete Provider from the closed,
// finite set spec.md §4.2 describes. Adding a provider is a code change.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, tsperr.ErrAPIKeyMissing
	}
	switch cfg.APIName {
	case "neshan":
		base := cfg.BaseURL
		if base == "" {
			base = neshanDefaultBaseURL
		}
		return &neshanProvider{baseURL: base, apiKey: cfg.APIKey, httpClient: http.DefaultClient}, nil
	default:
		return nil, tsperr.ErrUnsupportedAPI
	}
}

// Client drives the bounded-concurrency fetch-and-assemble pipeline.
type Client struct {
	Provider    Provider
	VehicleType string
}

// BuildCostTable fetches every off-diagonal (i,j) duration for coords and
// assembles them into a CostTable.
//
// Complexity: O(n²) requests, bounded to maxConcurrentFetches in flight.
func (c *Client) BuildCostTable(ctx context.Context, coords []Coordinate) (*costtable.CostTable, error) {
	n := len(coords)
	ct, err := costtable.New(n)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(maxConcurrentFetches)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			i, j := i, j
			g.Go(func() error {
				if err := sem.Acquire(gctx, 1); err != nil {
					return err
				}
				defer sem.Release(1)

				seconds, err := c.Provider.Duration(gctx, c.VehicleType, coords[i], coords[j])
				if err != nil {
					return err
				}
				return ct.Set(i, j, seconds)
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ct, nil
}

// neshanDefaultBaseURL is the production routing endpoint; tests override it
// via Config.BaseURL against a stub server.
const neshanDefaultBaseURL = "https://api.neshan.org/v1/direction"

type neshanProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type neshanResponse struct {
	Routes []struct {
		Legs []struct {
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// Duration issues an HTTP GET per spec.md §6's provider request shape and
// extracts the first leg's duration in seconds, discarding distance.
func (p *neshanProvider) Duration(ctx context.Context, vehicleType string, origin, destination Coordinate) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, nil)
	if err != nil {
		return 0, tsperr.Wrap(tsperr.ErrFetchingRoutingDataFailed, err.Error())
	}
	q := req.URL.Query()
	q.Set("type", vehicleType)
	q.Set("origin", origin.String())
	q.Set("destination", destination.String())
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Api-Key", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, tsperr.Wrap(tsperr.ErrFetchingRoutingDataFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, tsperr.Wrap(tsperr.ErrFetchingRoutingDataFailed, fmt.Sprintf("status %d", resp.StatusCode))
	}

	var body neshanResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, tsperr.Wrap(tsperr.ErrFetchingRoutingDataFailed, "malformed response body: "+err.Error())
	}
	if len(body.Routes) == 0 || len(body.Routes[0].Legs) == 0 {
		return 0, tsperr.Wrap(tsperr.ErrFetchingRoutingDataFailed, "response contained no legs")
	}
	return body.Routes[0].Legs[0].Duration.Value, nil
}
