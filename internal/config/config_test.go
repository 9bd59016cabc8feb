package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Environment != EnvLocal {
		t.Fatalf("environment = %q, want local", c.Environment)
	}
	if c.BaseURL() != "http://localhost:8000" {
		t.Fatalf("BaseURL = %q", c.BaseURL())
	}
	if c.DefaultModel != "gemini-1.5-flash" {
		t.Fatalf("default_model = %q", c.DefaultModel)
	}
	if c.QuizQuestions != 5 || c.HTTPTimeoutSec != 60 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.LogFile == "" {
		t.Fatal("log file default not resolved")
	}
}

func TestBaseURLEnvironmentSwitch(t *testing.T) {
	c := &Global{
		Environment:     EnvDeployed,
		LocalBaseURL:    "http://localhost:8000",
		DeployedBaseURL: "https://api.example.com/",
	}
	if got := c.BaseURL(); got != "https://api.example.com" {
		t.Fatalf("BaseURL = %q, want deployed host without trailing slash", got)
	}
	c.Environment = EnvLocal
	if got := c.BaseURL(); got != "http://localhost:8000" {
		t.Fatalf("BaseURL = %q, want local host", got)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STUDYMIND_ENVIRONMENT", EnvDeployed)
	t.Setenv("STUDYMIND_DEPLOYED_BASE_URL", "https://studymind.example.org")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.BaseURL() != "https://studymind.example.org" {
		t.Fatalf("BaseURL = %q, env override not applied", c.BaseURL())
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.DefaultModel = "gemini-1.5-pro"
	c.QuizQuestions = 8
	path := filepath.Join(home, "config.yaml")
	if err := Save(c, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.DefaultModel != "gemini-1.5-pro" || got.QuizQuestions != 8 {
		t.Fatalf("round trip lost values: %+v", got)
	}
}
