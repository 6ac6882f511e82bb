package app

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsAutoOrderToWizard(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "test-token"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Flows.AutoOrder != "wizard" {
		t.Fatalf("auto_order = %q, expected wizard", cfg.Flows.AutoOrder)
	}
	if cfg.Ops.Listen != ":9090" {
		t.Fatalf("ops listen = %q, expected :9090", cfg.Ops.Listen)
	}
}

func TestLoadAcceptsQuickVariant(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "test-token"
flows:
  auto_order: Quick
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Flows.AutoOrder != "quick" {
		t.Fatalf("auto_order = %q, expected quick", cfg.Flows.AutoOrder)
	}
}

func TestLoadRejectsUnknownVariant(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "test-token"
flows:
  auto_order: both
`)
	if _, err := Load(path); err == nil {
		t.Fatal("unknown auto_order variant must fail")
	}
}

func TestLoadRequiresToken(t *testing.T) {
	path := writeConfig(t, `
flows:
  auto_order: wizard
`)
	if _, err := Load(path); err == nil {
		t.Fatal("missing telegram token must fail")
	}
}
