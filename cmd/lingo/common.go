package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/oukeidos/lingo/internal/auth"
	"github.com/oukeidos/lingo/internal/cleanup"
	"github.com/oukeidos/lingo/internal/config"
	"github.com/oukeidos/lingo/internal/httpclient"
	"github.com/oukeidos/lingo/internal/logger"
	"github.com/oukeidos/lingo/translator"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// Indirections for test stubbing.
var (
	isTerminal   = term.IsTerminal
	getKey       = auth.GetKey
	getEnvKey    = auth.GetEnvKey
	keyExists    = auth.Exists
	promptForKey = auth.PromptForAPIKey
)

// clientOptions are the flags shared by every command that talks to the
// service.
type clientOptions struct {
	serviceURL string
	allowEnv   bool
	envOnly    bool
	debug      bool
}

func addClientFlags(fs *pflag.FlagSet, opts *clientOptions) {
	fs.StringVar(&opts.serviceURL, "url", "", "Service endpoint URL (default: LINGO_URL)")
	fs.BoolVar(&opts.allowEnv, "allow-env", false, "Allow reading the API key from LINGO_API_KEY")
	fs.BoolVar(&opts.envOnly, "env-only", false, "Use only the environment for the API key")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

// resolveAPIKey handles the logic for finding the API key.
func resolveAPIKey(allowEnv, envOnly bool) (string, string, error) {
	if envOnly {
		if key, ok := getEnvKey(); ok {
			return key, "Environment Variable", nil
		}
		return "", "", fmt.Errorf("env-only set but LINGO_API_KEY is not set")
	}

	if key, source := getKey(false); key != "" {
		return key, source, nil
	}

	if allowEnv {
		if key, ok := getEnvKey(); ok {
			return key, "Environment Variable", nil
		}
	}

	if isTerminal(int(os.Stdin.Fd())) {
		key, err := promptForKey("Translator API Key (press Enter to skip): ")
		if err != nil {
			return "", "", fmt.Errorf("error reading API key: %w", err)
		}
		if strings.TrimSpace(key) != "" {
			return strings.TrimSpace(key), "Terminal Prompt", nil
		}
		if allowEnv {
			return "", "", fmt.Errorf("API key is required; not found in keychain or environment")
		}
		return "", "", fmt.Errorf("API key is required; not found in keychain (environment disabled by default; use --allow-env)")
	}

	return "", "", fmt.Errorf("no API key available (non-interactive shell); set keychain or use --allow-env")
}

// newServiceClient loads configuration, initializes logging, resolves the
// API key, and returns a ready client.
func newServiceClient(opts *clientOptions) (*translator.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if opts.debug {
		level = logger.LevelDebug
	}

	var logSink io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening log file: %w", err)
		}
		cleanup.Register(f.Close)
		logSink = f
	}
	logger.Init(level, logSink)

	serviceURL := strings.TrimSpace(opts.serviceURL)
	if serviceURL == "" {
		serviceURL = cfg.URL
	}
	if serviceURL == "" {
		return nil, nil, fmt.Errorf("service URL is required (set LINGO_URL or pass --url)")
	}

	key, source, err := resolveAPIKey(opts.allowEnv, opts.envOnly)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Using API key", "source", source)

	client, err := translator.NewClient(translator.Config{
		URL:        serviceURL,
		APIKey:     key,
		HTTPClient: httpclient.NewClient(cfg.Timeout()),
	})
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("Cancellation requested")
		cancel()
	}()
	stop := func() {
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}
