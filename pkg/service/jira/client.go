package jira

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/service/workhours"
)

// Defaults of the Jira REST client
const (
	DefaultTimeout    = 30 * time.Second
	DefaultAPIVersion = "2"
	DefaultPageSize   = 100
)

// Sentinel errors for Jira responses worth telling apart
var (
	ErrUnauthorized = goerr.New("jira rejected the credentials")
	ErrForbidden    = goerr.New("jira denied access")
	ErrNotFound     = goerr.New("jira resource not found")
)

// Config holds the connection settings of a Jira site
type Config struct {
	BaseURL    string
	Email      string
	Token      string
	APIVersion string
	Timeout    time.Duration
	PageSize   int
	// Location is used for timestamps without a UTC offset
	Location *time.Location
}

// Client is a Jira REST API client
type Client struct {
	baseURL    string
	email      string
	token      string
	apiVersion string
	pageSize   int
	clock      *workhours.Clock
	httpClient *http.Client
}

// NewClient creates a new Jira client
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		return nil, goerr.New("jira base URL is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, goerr.Wrap(err, "invalid jira base URL", goerr.V("url", cfg.BaseURL))
	}
	if cfg.Token == "" {
		return nil, goerr.New("jira API token is required")
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	if apiVersion != "2" && apiVersion != "3" {
		return nil, goerr.New("unsupported jira API version", goerr.V("version", apiVersion))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Client{
		baseURL:    baseURL,
		email:      cfg.Email,
		token:      cfg.Token,
		apiVersion: apiVersion,
		pageSize:   pageSize,
		clock:      workhours.New(cfg.Location),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + "/rest/api/" + c.apiVersion + path
}

// getJSON sends an authenticated GET request and decodes the JSON response into out
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.endpoint(path)
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("path", path))
	}

	if c.email != "" {
		req.SetBasicAuth(c.email, c.token)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send request", goerr.V("path", path))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		values := []goerr.Option{
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		}

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return goerr.Wrap(ErrUnauthorized, "check the email and API token", values...)
		case http.StatusForbidden:
			return goerr.Wrap(ErrForbidden, "insufficient permissions", values...)
		case http.StatusNotFound:
			return goerr.Wrap(ErrNotFound, "check the jira URL", values...)
		}
		return goerr.New("jira API request failed", values...)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode jira response", goerr.V("path", path))
	}
	return nil
}
