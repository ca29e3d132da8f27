package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"
)

// Search looks up movies matching the raw query string.
//
// The outcome is a documented union: an upstream failure status
// (Response "False") and a genuinely empty result set are both returned
// as an empty slice with a nil error. Transport failures propagate.
func (c *Client) Search(ctx context.Context, query string) ([]Movie, error) {
	params := url.Values{}
	params.Set("s", query)

	body, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	var response SearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	if !response.OK() {
		c.logger.Debug().Str("query", query).Str("upstream_error", response.Error).
			Msg("Upstream reported no results")
		return nil, nil
	}

	c.logger.Debug().Str("query", query).Int("count", len(response.Search)).
		Msg("Retrieved movies from OMDb")
	return response.Search, nil
}

// GetDetails fetches the full record for a single catalog item by its
// external identifier.
//
// Absence is signalled as (nil, nil) both when the upstream reports a
// failure status and when the transport itself fails; the transport
// error is logged and swallowed. This is asymmetric with Search, which
// propagates transport failures. The asymmetry is inherited behavior
// and is preserved deliberately.
func (c *Client) GetDetails(ctx context.Context, imdbID string) (*MovieDetails, error) {
	params := url.Values{}
	params.Set("i", imdbID)

	body, err := c.doRequest(ctx, params)
	if err != nil {
		c.logger.Warn().Err(err).Str("imdb_id", imdbID).
			Msg("Failed to fetch movie details")
		return nil, nil
	}

	var details MovieDetails
	if err := json.Unmarshal(body, &details); err != nil {
		c.logger.Warn().Err(err).Str("imdb_id", imdbID).
			Msg("Failed to parse movie details")
		return nil, nil
	}

	if details.Response != "True" {
		return nil, nil
	}

	return &details, nil
}

// GetPopular aggregates the fixed popular queries into one list.
//
// All queries are issued concurrently and the operation joins on every
// one of them; a transport failure in any single query fails the whole
// aggregate. Successful result sets are concatenated strictly in query
// order and deduplicated by ImdbID, first occurrence wins.
func (c *Client) GetPopular(ctx context.Context, queries []string) ([]Movie, error) {
	if len(queries) == 0 {
		return nil, nil
	}

	results := make([][]Movie, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			movies, err := c.Search(ctx, query)
			if err != nil {
				return err
			}
			results[i] = movies
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate popular movies: %w", err)
	}

	var all []Movie
	for _, movies := range results {
		all = append(all, movies...)
	}

	unique := Dedupe(all)
	c.logger.Debug().Int("total", len(all)).Int("unique", len(unique)).
		Msg("Aggregated popular movies")
	return unique, nil
}
