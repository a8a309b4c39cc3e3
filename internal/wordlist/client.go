package wordlist

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
)

const (
	// DefaultBaseURL is the openrussian.org API root.
	DefaultBaseURL = "https://api.openrussian.org/api"

	maxBodyBytes = 4 << 20
)

// Client fetches word list pages over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Source = (*Client)(nil)

// NewClient creates a Client for baseURL. An empty baseURL selects
// DefaultBaseURL; a zero timeout selects 10s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type apiPayload struct {
	Result struct {
		Total   int        `json:"total"`
		Entries []apiEntry `json:"entries"`
	} `json:"result"`
}

type apiEntry struct {
	Bare string `json:"bare"`
}

// FetchPage requests one page of words for req.Level in req.Language.
// The discovery request (nil Offset) carries no start parameter.
func (c *Client) FetchPage(ctx context.Context, req Request) (*Page, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL(req), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &ErrUnexpectedStatus{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(raw) > maxBodyBytes {
		return nil, &ErrMalformedPage{Err: fmt.Errorf("response larger than %d bytes", maxBodyBytes)}
	}

	return decodePage(raw)
}

func (c *Client) pageURL(req Request) string {
	q := url.Values{}
	q.Set("level", req.Level)
	q.Set("lang", req.Language)
	if req.Offset != nil {
		q.Set("start", strconv.Itoa(*req.Offset))
	}
	return c.baseURL + "/words?" + q.Encode()
}

// decodePage validates raw and maps it to a Page.
func decodePage(raw []byte) (*Page, error) {
	if err := validatePage(raw); err != nil {
		return nil, err
	}

	var payload apiPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &ErrMalformedPage{Content: raw, Err: err}
	}

	words := make([]string, 0, len(payload.Result.Entries))
	for _, e := range payload.Result.Entries {
		words = append(words, strings.TrimSpace(e.Bare))
	}
	return &Page{Total: payload.Result.Total, Words: words}, nil
}
