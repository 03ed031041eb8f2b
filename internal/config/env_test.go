package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"AVATAR_MARKET_ADDR",
		"AVATAR_MARKET_CATALOG",
		"AVATAR_MARKET_TEMPLATES",
		"AVATAR_MARKET_SECURE_COOKIES",
	} {
		t.Setenv(k, "") // restores the original value after the test
		_ = os.Unsetenv(k)
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Addr != ":8080" {
		t.Errorf("Expected default addr :8080, got %q", c.Addr)
	}
	if c.TemplatesDir != "templates" {
		t.Errorf("Expected default templates dir, got %q", c.TemplatesDir)
	}
	if c.CatalogPath != "" {
		t.Errorf("Expected empty catalog path, got %q", c.CatalogPath)
	}
	if !c.SecureCookies {
		t.Error("Expected secure cookies by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AVATAR_MARKET_ADDR", "127.0.0.1:9000")
	t.Setenv("AVATAR_MARKET_CATALOG", "catalogs/default.yaml")
	t.Setenv("AVATAR_MARKET_SECURE_COOKIES", "false")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Addr != "127.0.0.1:9000" || c.CatalogPath != "catalogs/default.yaml" || c.SecureCookies {
		t.Errorf("unexpected config: %+v", c)
	}
}

func TestParseEnv_Invalid(t *testing.T) {
	t.Setenv("AVATAR_MARKET_SECURE_COOKIES", "maybe")
	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for invalid bool")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("Expected wrapped error, got %q", err.Error())
	}
}
