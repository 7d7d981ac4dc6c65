package vitaransdk

import (
	"net/http"
	"strings"
	"time"

	"github.com/vitaran/vitaran/pkg/feed"
)

// DefaultReloadDelay is how long the dashboard loader waits before its single
// retry after a network failure.
const DefaultReloadDelay = 2 * time.Second

// Client talks to a Vitaran server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Generator renders the dashboard feed locally. Nil gets a randomly
	// seeded one on first use.
	Generator *feed.Generator

	// ReloadDelay overrides DefaultReloadDelay for LoadDashboardWithReload.
	ReloadDelay time.Duration
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		ReloadDelay: DefaultReloadDelay,
	}
}
