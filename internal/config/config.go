package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

const (
	// EnvEndpoint overrides the ask endpoint when no flag is supplied.
	EnvEndpoint = "INQUIRY_ENDPOINT"
	// DefaultEndpoint points at a locally running research service.
	DefaultEndpoint = "http://127.0.0.1:8000/api/ask/"
)

// Endpoint resolves the ask endpoint URL. An explicit flag value wins over the
// environment variable, which wins over the default.
func Endpoint(flagValue string) (string, error) {
	endpoint := strings.TrimSpace(flagValue)
	if endpoint == "" {
		endpoint = strings.TrimSpace(os.Getenv(EnvEndpoint))
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if err := validateEndpoint(endpoint); err != nil {
		return "", err
	}
	return endpoint, nil
}

func validateEndpoint(endpoint string) error {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", endpoint)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid endpoint %q: host is required", endpoint)
	}
	return nil
}
