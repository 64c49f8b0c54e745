package config

import "testing"

func TestEndpointResolutionOrder(t *testing.T) {
	t.Setenv(EnvEndpoint, "http://env.example/api/ask/")

	got, err := Endpoint("http://flag.example/api/ask/")
	if err != nil {
		t.Fatalf("resolve with flag: %v", err)
	}
	if got != "http://flag.example/api/ask/" {
		t.Fatalf("flag should win, got %q", got)
	}

	got, err = Endpoint("")
	if err != nil {
		t.Fatalf("resolve with env: %v", err)
	}
	if got != "http://env.example/api/ask/" {
		t.Fatalf("env should win over default, got %q", got)
	}
}

func TestEndpointDefault(t *testing.T) {
	t.Setenv(EnvEndpoint, "")

	got, err := Endpoint("   ")
	if err != nil {
		t.Fatalf("resolve default: %v", err)
	}
	if got != DefaultEndpoint {
		t.Fatalf("expected default endpoint, got %q", got)
	}
}

func TestEndpointValidation(t *testing.T) {
	t.Setenv(EnvEndpoint, "")

	invalid := []string{
		"ftp://example.com/ask",
		"127.0.0.1:8000/api/ask/",
		"http://",
		"::not a url::",
	}
	for _, endpoint := range invalid {
		if _, err := Endpoint(endpoint); err == nil {
			t.Fatalf("expected validation error for %q", endpoint)
		}
	}
}
