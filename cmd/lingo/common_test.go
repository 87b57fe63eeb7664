package main

import (
	"bytes"
	"strings"
	"testing"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

type keyStubs struct {
	keychainKey string
	envKey      string
	terminal    bool
	promptKey   string
	promptCalls int
}

func withKeyStubs(t *testing.T, stubs *keyStubs) func() {
	t.Helper()

	prevGetKey := getKey
	prevGetEnvKey := getEnvKey
	prevExists := keyExists
	prevPrompt := promptForKey
	prevIsTerminal := isTerminal

	getKey = func(allowEnv bool) (string, string) {
		if stubs.keychainKey != "" {
			return stubs.keychainKey, "Keychain"
		}
		if allowEnv && stubs.envKey != "" {
			return stubs.envKey, "Environment Variable"
		}
		return "", ""
	}
	getEnvKey = func() (string, bool) {
		if stubs.envKey == "" {
			return "", false
		}
		return stubs.envKey, true
	}
	keyExists = func() bool {
		return stubs.keychainKey != ""
	}
	promptForKey = func(_ string) (string, error) {
		stubs.promptCalls++
		return stubs.promptKey, nil
	}
	isTerminal = func(_ int) bool {
		return stubs.terminal
	}

	return func() {
		getKey = prevGetKey
		getEnvKey = prevGetEnvKey
		keyExists = prevExists
		promptForKey = prevPrompt
		isTerminal = prevIsTerminal
	}
}

func TestResolveAPIKey_Keychain(t *testing.T) {
	restore := withKeyStubs(t, &keyStubs{keychainKey: "chain-key"})
	defer restore()

	key, source, err := resolveAPIKey(false, false)
	if err != nil {
		t.Fatalf("resolveAPIKey failed: %v", err)
	}
	if key != "chain-key" || source != "Keychain" {
		t.Errorf("got %q from %q", key, source)
	}
}

func TestResolveAPIKey_EnvDisabledByDefault(t *testing.T) {
	restore := withKeyStubs(t, &keyStubs{envKey: "env-key"})
	defer restore()

	_, _, err := resolveAPIKey(false, false)
	if err == nil {
		t.Fatal("expected error when env is the only source and not allowed")
	}
}

func TestResolveAPIKey_AllowEnv(t *testing.T) {
	restore := withKeyStubs(t, &keyStubs{envKey: "env-key"})
	defer restore()

	key, source, err := resolveAPIKey(true, false)
	if err != nil {
		t.Fatalf("resolveAPIKey failed: %v", err)
	}
	if key != "env-key" || source != "Environment Variable" {
		t.Errorf("got %q from %q", key, source)
	}
}

func TestResolveAPIKey_EnvOnlyMissing(t *testing.T) {
	restore := withKeyStubs(t, &keyStubs{})
	defer restore()

	_, _, err := resolveAPIKey(false, true)
	if err == nil || !strings.Contains(err.Error(), "LINGO_API_KEY") {
		t.Fatalf("expected env-only error, got: %v", err)
	}
}

func TestResolveAPIKey_TerminalPrompt(t *testing.T) {
	stubs := &keyStubs{terminal: true, promptKey: "typed-key"}
	restore := withKeyStubs(t, stubs)
	defer restore()

	key, source, err := resolveAPIKey(false, false)
	if err != nil {
		t.Fatalf("resolveAPIKey failed: %v", err)
	}
	if key != "typed-key" || source != "Terminal Prompt" {
		t.Errorf("got %q from %q", key, source)
	}
	if stubs.promptCalls != 1 {
		t.Errorf("expected one prompt, got %d", stubs.promptCalls)
	}
}

func TestResolveAPIKey_NonInteractiveNoKey(t *testing.T) {
	restore := withKeyStubs(t, &keyStubs{})
	defer restore()

	_, _, err := resolveAPIKey(false, false)
	if err == nil || !strings.Contains(err.Error(), "non-interactive") {
		t.Fatalf("expected non-interactive error, got: %v", err)
	}
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := executeCommand(t, "definitely-not-a-command")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
}
