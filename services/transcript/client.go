package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Segment is one timed caption snippet as returned by the provider.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// ProviderResult is the provider's answer for one video: the detected
// language and the ordered caption segments.
type ProviderResult struct {
	Language string
	Segments []Segment
}

// Provider is the boundary to the external transcript API. Tests swap
// in deterministic implementations.
type Provider interface {
	Transcript(ctx context.Context, videoID string, languages []string) (*ProviderResult, error)
}

// ProviderError carries the provider's HTTP status so the service can
// name the cause of a failed fetch.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

type ClientConfig struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

// Client fetches transcripts over HTTP from a caption API.
type Client struct {
	config ClientConfig
	http   *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	return &Client{
		config: cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

type transcriptResponse struct {
	Success  bool      `json:"success"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
	Error    string    `json:"error"`
}

func (c *Client) Transcript(ctx context.Context, videoID string, languages []string) (*ProviderResult, error) {
	videoURL := fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.APIURL, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Add("url", videoURL)
	if c.config.APIKey != "" {
		q.Add("api_key", c.config.APIKey)
	}
	if len(languages) > 0 {
		q.Add("lang", strings.Join(languages, ","))
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcript request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("transcript provider returned status %d", resp.StatusCode),
		}
	}

	var result transcriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse transcript response: %w", err)
	}

	if !result.Success {
		message := result.Error
		if message == "" {
			message = "transcript provider reported failure"
		}
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: message}
	}

	return &ProviderResult{
		Language: result.Language,
		Segments: result.Segments,
	}, nil
}
