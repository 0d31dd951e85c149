package main

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if l.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", l.GetLevel())
	}

	if _, err := newLogger("loud"); err == nil {
		t.Error("expected error for an unknown level")
	}
}

func TestServerConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CAREERS_SSH_ADDR", "0.0.0.0:2200")
	t.Setenv("CAREERS_IDLE_TIMEOUT", "1m")

	cfg, err := serverConfig(serveCmd)
	if err != nil {
		t.Fatalf("serverConfig: %v", err)
	}
	if cfg.Address != "0.0.0.0:2200" || cfg.IdleTimeout != time.Minute {
		t.Errorf("env not applied: %+v", cfg)
	}

	if err := serveCmd.Flags().Set("ssh", ":2222"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		flagSSHAddr = ":23234"
		serveCmd.Flags().Lookup("ssh").Changed = false
	})

	cfg, err = serverConfig(serveCmd)
	if err != nil {
		t.Fatalf("serverConfig: %v", err)
	}
	if cfg.Address != ":2222" {
		t.Errorf("address = %q, want the explicit flag", cfg.Address)
	}
	if cfg.IdleTimeout != time.Minute {
		t.Errorf("idle timeout = %v, unset flags must keep the env value", cfg.IdleTimeout)
	}
}

func TestApplyConfigPathRejectsMissingFile(t *testing.T) {
	if err := applyConfigPath("chef", t.TempDir()+"/missing.yaml"); err == nil {
		t.Error("expected error for a missing config file")
	}
	if err := applyConfigPath("chef", ""); err != nil {
		t.Errorf("empty path must be a no-op: %v", err)
	}
}
