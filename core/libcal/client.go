package libcal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	// DefaultPageSize is the number of records requested per page.
	DefaultPageSize = 100
	// Visibility restricts results to records visible to administrators.
	Visibility = "admin_only"

	tokenPath       = "/1.1/oauth/token"
	itemsPathFmt    = "/1.1/equipment/items/%d"
	statusesPathFmt = "/1.1/equipment/items/status/%d"

	maxErrorBody = 512
)

// Client talks to the LibCal 1.1 REST API.
type Client struct {
	cfg      Config
	baseURL  string
	http     *http.Client
	pageSize int
	token    *oauth2.Token
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithPageSize overrides the page size used for collection fetches.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewClient validates cfg and creates a client. No network call is made.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid libcal configuration: %w", err)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	c := &Client{
		cfg:      cfg,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: time.Duration(timeout) * time.Second},
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Authenticate performs the client-credentials exchange and stores the bearer token.
func (c *Client) Authenticate(ctx context.Context) error {
	cc := clientcredentials.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		TokenURL:     c.baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	tok, err := cc.Token(context.WithValue(ctx, oauth2.HTTPClient, c.http))
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			return &StatusError{
				Op:         "authenticate",
				URL:        cc.TokenURL,
				StatusCode: re.Response.StatusCode,
				Body:       truncate(string(re.Body)),
			}
		}
		return fmt.Errorf("libcal authenticate: %w", err)
	}

	c.token = tok
	return nil
}

// ItemsPath returns the path of the equipment item catalog for the configured location.
func (c *Client) ItemsPath() string {
	return fmt.Sprintf(itemsPathFmt, c.cfg.LocationID)
}

// StatusesPath returns the path of the live checkout status collection.
func (c *Client) StatusesPath() string {
	return fmt.Sprintf(statusesPathFmt, c.cfg.LocationID)
}

// PageSize returns the page size used for collection fetches.
func (c *Client) PageSize() int {
	return c.pageSize
}

// FetchAll fetches every page of the collection at path and decodes each
// record into T. Paging stops at the first page shorter than the page size.
func FetchAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var all []T
	for page := 0; ; page++ {
		var batch []T
		if err := c.getPage(ctx, path, page, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < c.pageSize {
			return all, nil
		}
	}
}

func (c *Client) getPage(ctx context.Context, path string, page int, out any) error {
	if c.token == nil {
		return ErrNotAuthenticated
	}

	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	q.Set("visibility", Visibility)
	q.Set("pageIndex", strconv.Itoa(page))
	endpoint := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	c.token.SetAuthHeader(req)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("libcal fetch %s page %d: %w", path, page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Op:         "fetch",
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body)),
		}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s page %d: %w", path, page, err)
	}
	return nil
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxErrorBody {
		return s[:maxErrorBody]
	}
	return s
}
