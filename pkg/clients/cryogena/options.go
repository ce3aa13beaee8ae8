package cryogena

import (
	"net/http"
	"time"
)

// ClientOption represents an option for configuring the Cryogena client.
type ClientOption func(*ClientConfig)

// ClientConfig holds the configuration for the Cryogena client.
type ClientConfig struct {
	Endpoint         string
	Timeout          time.Duration
	UserAgent        string
	HTTPClient       *http.Client
	CredentialSource CredentialSource
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Endpoint:  "https://cryogena-backend.onrender.com/graphql/",
		Timeout:   30 * time.Second,
		UserAgent: "cryogena-go/1.0.0",
	}
}

// WithEndpoint sets the GraphQL endpoint URL.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *ClientConfig) {
		c.Endpoint = endpoint
	}
}

// WithTimeout sets the request timeout. Beyond this the transport default
// applies unmodified; the client performs no retries of its own.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientConfig) {
		c.Timeout = timeout
	}
}

// WithUserAgent sets a custom user agent.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *ClientConfig) {
		c.UserAgent = userAgent
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *ClientConfig) {
		c.HTTPClient = httpClient
	}
}

// WithCredentialSource sets the source the client reads the bearer
// credential from at the start of every call.
func WithCredentialSource(source CredentialSource) ClientOption {
	return func(c *ClientConfig) {
		c.CredentialSource = source
	}
}
