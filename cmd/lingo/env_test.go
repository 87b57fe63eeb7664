package main

import (
	"strings"
	"testing"
)

func TestEnvStatus_Keychain(t *testing.T) {
	restore := withKeyStubs(t, &keyStubs{keychainKey: "chain-key", envKey: "env-secret"})
	defer restore()

	out, err := executeCommand(t, "env", "status")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "Found (source=Keychain)") {
		t.Fatalf("expected keychain source, got: %s", out)
	}
	if strings.Contains(out, "env-secret") || strings.Contains(out, "chain-key") {
		t.Fatalf("output leaked a key: %s", out)
	}
}

func TestEnvStatus_EnvOnly(t *testing.T) {
	restore := withKeyStubs(t, &keyStubs{envKey: "env-secret"})
	defer restore()

	out, err := executeCommand(t, "env", "status")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "Found (source=Environment Variable") {
		t.Fatalf("expected env source, got: %s", out)
	}
	if strings.Contains(out, "env-secret") {
		t.Fatalf("output leaked env key: %s", out)
	}
}

func TestEnvStatus_NotFound(t *testing.T) {
	restore := withKeyStubs(t, &keyStubs{})
	defer restore()

	out, err := executeCommand(t, "env", "status")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "Not Found") {
		t.Fatalf("expected not found, got: %s", out)
	}
}

func TestEnvSetup_RejectsPositionalAPIKey(t *testing.T) {
	out, err := executeCommand(t, "env", "setup", "zx-should-not-be-allowed")
	if err == nil {
		t.Fatalf("expected setup to reject positional API key argument")
	}
	if !strings.Contains(out, "unknown command") && !strings.Contains(out, "accepts 0 arg(s)") {
		t.Fatalf("expected positional-argument rejection error, got: %s", out)
	}
}
