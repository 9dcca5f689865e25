package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func resetGlobalConfig() {
	globalConfig = &Config{
		DataDir:         ".rentledger",
		BindAddr:        "0.0.0.0",
		MetricsPort:     12798,
		ShutdownTimeout: DefaultShutdownTimeout,
		PlatformAccount: "platform",
		TokenOwner:      "platform",
		TokenDecimals:   3,
		FeeRateBps:      0,
	}
}

func TestLoad_CompareFullStruct(t *testing.T) {
	resetGlobalConfig()
	yamlContent := `
dataDir: "/var/lib/rentledger"
bindAddr: "127.0.0.1"
metricsPort: 8088
shutdownTimeout: "10s"
platformAccount: "platform-treasury"
tokenOwner: "mint-authority"
tokenDecimals: 3
feeRateBps: 250
admins:
  - alice
  - bob
`

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test-rentledger.yaml")

	err := os.WriteFile(tmpFile, []byte(yamlContent), 0644)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	defer os.Remove(tmpFile)

	expected := &Config{
		DataDir:         "/var/lib/rentledger",
		BindAddr:        "127.0.0.1",
		MetricsPort:     8088,
		ShutdownTimeout: "10s",
		PlatformAccount: "platform-treasury",
		TokenOwner:      "mint-authority",
		TokenDecimals:   3,
		FeeRateBps:      250,
		Admins:          []string{"alice", "bob"},
	}

	actual, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if !reflect.DeepEqual(actual, expected) {
		t.Errorf(
			"Loaded config does not match expected.\nActual: %+v\nExpected: %+v",
			actual,
			expected,
		)
	}
}

func TestLoad_WithoutConfigFile_UsesDefaults(t *testing.T) {
	resetGlobalConfig()

	// Without Config file
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// Expected is the original default values from globalConfig
	expected := &Config{
		DataDir:         ".rentledger",
		BindAddr:        "0.0.0.0",
		MetricsPort:     12798,
		ShutdownTimeout: DefaultShutdownTimeout,
		PlatformAccount: "platform",
		TokenOwner:      "platform",
		TokenDecimals:   3,
		FeeRateBps:      0,
	}

	if !reflect.DeepEqual(cfg, expected) {
		t.Errorf(
			"Loaded config does not match defaults.\nActual: %+v\nExpected: %+v",
			cfg,
			expected,
		)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	resetGlobalConfig()
	t.Setenv("RENTLEDGER_METRICS_PORT", "9999")
	t.Setenv("RENTLEDGER_PLATFORM_ACCOUNT", "env-platform")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cfg.MetricsPort != 9999 {
		t.Errorf("expected metrics port 9999, got %d", cfg.MetricsPort)
	}
	if cfg.PlatformAccount != "env-platform" {
		t.Errorf(
			"expected platform account env-platform, got %q",
			cfg.PlatformAccount,
		)
	}
}
