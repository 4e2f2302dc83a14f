package sonar

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/quill/pkg/domain/model"
	"github.com/secmon-lab/quill/pkg/domain/types"
)

const (
	DefaultBaseURL  = "https://sonarcloud.io"
	DefaultPageSize = 500

	// Pause after a full page, a courtesy throttle toward the remote API
	defaultThrottle = 500 * time.Millisecond
)

// Client fetches unresolved issues from a SonarCloud-compatible
// api/issues/search endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	org        types.Organization
	project    types.ProjectKey
	branch     types.BranchName
	pageSize   int
	throttle   time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL replaces the API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithBranch restricts the search to one branch
func WithBranch(branch types.BranchName) Option {
	return func(c *Client) {
		c.branch = branch
	}
}

// WithPageSize sets the search page size
func WithPageSize(size int) Option {
	return func(c *Client) {
		c.pageSize = size
	}
}

// WithThrottle sets the pause inserted after a full result page
func WithThrottle(d time.Duration) Option {
	return func(c *Client) {
		c.throttle = d
	}
}

// New creates a new Client for one organization/project pair. The token
// is sent as a basic-auth username with an empty password.
func New(token string, org types.Organization, project types.ProjectKey, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		token:      token,
		org:        org,
		project:    project,
		pageSize:   DefaultPageSize,
		throttle:   defaultThrottle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type paging struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
}

type searchResponse struct {
	Total  *int           `json:"total"`
	Paging *paging        `json:"paging"`
	Issues []*model.Issue `json:"issues"`
}

// total returns the declared result count, preferring the paging field
func (x *searchResponse) total() int {
	if x.Paging != nil {
		return x.Paging.Total
	}
	if x.Total != nil {
		return *x.Total
	}
	return 0
}

// SearchUnresolved retrieves the complete unresolved-issue set of the
// configured project. Pages are requested one at a time until the
// declared total is covered. Any non-success response aborts the whole
// fetch with no partial results.
func (c *Client) SearchUnresolved(ctx context.Context) ([]*model.Issue, error) {
	logger := ctxlog.From(ctx)

	var issues []*model.Issue
	var total int

	for page := 1; ; page++ {
		res, err := c.searchPage(ctx, page)
		if err != nil {
			return nil, err
		}

		if page == 1 {
			// A response with neither paging nor total is considered a
			// shape mismatch rather than an empty result.
			if res.Paging == nil && res.Total == nil {
				return nil, goerr.Wrap(model.ErrMalformedResponse,
					"search response has no pagination fields",
					goerr.V("project", c.project))
			}
			total = res.total()
		}

		issues = append(issues, res.Issues...)

		logger.Debug("Fetched issue page",
			slog.Int("page", page),
			slog.Int("count", len(res.Issues)),
			slog.Int("total", total),
		)

		if page*c.pageSize >= total {
			break
		}

		if len(res.Issues) == c.pageSize && c.throttle > 0 {
			select {
			case <-time.After(c.throttle):
			case <-ctx.Done():
				return nil, goerr.Wrap(ctx.Err(), "issue search cancelled",
					goerr.V("page", page))
			}
		}
	}

	return issues, nil
}

func (c *Client) searchPage(ctx context.Context, page int) (*searchResponse, error) {
	query := url.Values{}
	query.Set("organization", c.org.String())
	query.Set("componentKeys", c.project.String())
	query.Set("resolved", "false")
	query.Set("ps", strconv.Itoa(c.pageSize))
	query.Set("p", strconv.Itoa(page))
	if c.branch != "" {
		query.Set("branch", c.branch.String())
	}

	endpoint := c.baseURL + "/api/issues/search?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build search request",
			goerr.V("page", page))
	}
	req.SetBasicAuth(c.token, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to request issue search",
			goerr.V("page", page))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, goerr.New("issue search returned non-success status",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
			goerr.V("page", page))
	}

	var res searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, goerr.Wrap(err, "failed to decode search response",
			goerr.V("page", page))
	}

	return &res, nil
}
