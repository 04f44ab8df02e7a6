package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/quickfind/internal/core/domain"
	"github.com/custodia-labs/quickfind/internal/core/ports/driven"
	"github.com/custodia-labs/quickfind/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchTransport = (*Client)(nil)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// SessionCookie is the cookie carrying the session token.
	SessionCookie = "token_v2"

	apiPrefix      = "/api/v3"
	searchPath     = "/search"
	getSpacesPath  = "/getSpaces"
	maxErrorBody   = 4 << 10
	contentTypeKey = "Content-Type"
	contentTypeVal = "application/json"
)

// Client is the Notion quick-find API client.
type Client struct {
	baseURL     string
	http        *http.Client
	tokens      oauth2.TokenSource
	rateLimiter *RateLimiter
}

// NewClient creates a client for host authenticated by tokens.
func NewClient(host string, tokens oauth2.TokenSource) *Client {
	return NewClientWithHTTPClient(host, tokens, &http.Client{Timeout: DefaultTimeout})
}

// NewClientWithHTTPClient creates a client with a custom http.Client.
func NewClientWithHTTPClient(host string, tokens oauth2.TokenSource, httpClient *http.Client) *Client {
	if host == "" {
		host = domain.DefaultHost
	}
	return &Client{
		baseURL:     strings.TrimRight(host, "/") + apiPrefix,
		http:        httpClient,
		tokens:      tokens,
		rateLimiter: NewRateLimiter(),
	}
}

// StaticToken returns a token source for a fixed session token.
func StaticToken(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: SessionCookie})
}

// TokenFunc adapts a lookup function to an oauth2.TokenSource so the token
// is read on every request. An empty token means no session.
type TokenFunc func() (string, error)

// Token implements oauth2.TokenSource.
func (f TokenFunc) Token() (*oauth2.Token, error) {
	token, err := f()
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: token, TokenType: SessionCookie}, nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// SetRateLimiter replaces the rate limiter.
func (c *Client) SetRateLimiter(r *RateLimiter) {
	c.rateLimiter = r
}

// Search posts a quick-find query for the request's workspace.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	spaceID, err := NormalizeWorkspaceID(req.WorkspaceID)
	if err != nil {
		return nil, err
	}

	body, err := newSearchBody(req, spaceID)
	if err != nil {
		return nil, err
	}

	logger.Debug("POST %s%s space=%s sort=%s", apiPrefix, searchPath, spaceID, body.Sort.Field)

	var resp domain.SearchResponse
	if err := c.post(ctx, searchPath, body, &resp); err != nil {
		return nil, err
	}

	logger.Debug("Search response: %d hits, %d blocks, %d collections, total %d",
		len(resp.Results), len(resp.RecordMap.Block), len(resp.RecordMap.Collection), resp.Total)
	return &resp, nil
}

// ListWorkspaces returns the workspaces the session can search.
func (c *Client) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	var resp spacesResponse
	if err := c.post(ctx, getSpacesPath, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.workspaces(), nil
}

// post sends a JSON request and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	cookie, err := c.sessionCookie()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set(contentTypeKey, contentTypeVal)
	req.AddCookie(cookie)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s: %w", domain.ErrNetwork, path, err)
	}
	defer resp.Body.Close()

	if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) sessionCookie() (*http.Cookie, error) {
	if c.tokens == nil {
		return nil, domain.ErrAuthRequired
	}
	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthRequired, err)
	}
	if token.AccessToken == "" {
		return nil, domain.ErrAuthRequired
	}
	return &http.Cookie{Name: SessionCookie, Value: token.AccessToken}, nil
}

// newAPIError reads the error message from a failed response.
func newAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		URL:        resp.Request.URL.String(),
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var body struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &body) == nil && (body.Message != "" || body.Name != "") {
		apiErr.Message = strings.TrimSpace(body.Name + " " + body.Message)
	}
	return apiErr
}
