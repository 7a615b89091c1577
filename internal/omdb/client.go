// Package omdb is a thin client for the OMDb HTTP API, the external movie
// catalog the service proxies search and detail requests to.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/moviedeck/moviedeck/internal/domain"
	internal_errors "github.com/moviedeck/moviedeck/internal/errors"
)

const DefaultBaseURL = "http://www.omdbapi.com/"

// ErrNoResults is returned by Search when OMDb reports no matches. Callers
// treat this as an empty result, not a failure.
var ErrNoResults = errors.New("no results")

type Client struct {
	baseURL    string
	apiKey     string
	HttpClient *http.Client
}

func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		HttpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// OMDb signals failure inside a 200 response: Response is the string "True"
// or "False", with Error set in the latter case.
type payload struct {
	domain.Movie
	Search       []domain.Movie `json:"Search"`
	TotalResults string         `json:"totalResults"`
	Response     string         `json:"Response"`
	Error        string         `json:"Error"`
}

func (c *Client) get(ctx context.Context, params url.Values) (*payload, error) {
	params.Set("apikey", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create omdb request: %w", err)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("omdb unavailable: %w", err)
	}
	defer resp.Body.Close()

	var body payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode omdb response: %w", err)
	}
	return &body, nil
}

// Search queries the catalog by title. Returns the matches and the total
// result count across all pages.
func (c *Client) Search(ctx context.Context, query string, page int) ([]domain.Movie, int, error) {
	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	if body.Response != "True" {
		if body.Error == "Movie not found!" {
			return nil, 0, ErrNoResults
		}
		return nil, 0, internal_errors.BadRequest(omdbError(body.Error, "Failed to fetch movies from OMDb."))
	}

	total, _ := strconv.Atoi(body.TotalResults)
	return body.Search, total, nil
}

// ByID fetches the full record for a single IMDb id.
func (c *Client) ByID(ctx context.Context, imdbID domain.MovieId) (domain.Movie, error) {
	params := url.Values{}
	params.Set("i", imdbID)

	body, err := c.get(ctx, params)
	if err != nil {
		return domain.Movie{}, err
	}
	if body.Response != "True" {
		return domain.Movie{}, internal_errors.NotFound(omdbError(body.Error, "Movie details not found."))
	}
	return body.Movie, nil
}

func omdbError(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
