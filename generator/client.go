// Package generator calls the external roast generation service. The
// service takes a fully built prompt plus the structured league data and
// returns one roast per team.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nacallas/SkidmarkOS-sub001/model"
)

var ErrEmptyResponse = errors.New("generation service returned no roasts")

// Request is the wire body for a generation call. The prompt carries
// everything the language model needs; the structured fields ride along so
// the service can validate team IDs and log what it was asked about.
type Request struct {
	Prompt         string                      `json:"prompt"`
	WeekNumber     int                         `json:"week_number"`
	SeasonPhase    model.SeasonPhase           `json:"season_phase"`
	Teams          []model.TeamStanding        `json:"teams"`
	Context        *model.LeagueContext        `json:"context,omitempty"`
	Matchups       []model.WeeklyMatchup       `json:"matchups,omitempty"`
	PlayoffBracket []model.PlayoffBracketEntry `json:"playoff_bracket,omitempty"`
}

type response struct {
	Roasts map[string]string `json:"roasts"`
}

type Client interface {
	// Generate returns roast text keyed by team ID. It is an error for the
	// service to answer with an empty map.
	Generate(ctx context.Context, req *Request) (map[string]string, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New(url string) (Client, error) {
	if url == "" {
		return nil, errors.New("generation service url is required")
	}
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *client) Generate(ctx context.Context, req *Request) (map[string]string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("error marshaling generation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/generate", c.url), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error calling generation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("generation service returned %d: %s", resp.StatusCode, msg)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("error parsing generation response: %w", err)
	}
	if len(r.Roasts) == 0 {
		return nil, ErrEmptyResponse
	}
	return r.Roasts, nil
}
