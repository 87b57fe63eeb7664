// Package translator is a typed client for the hosted language-translation
// and language-identification service. Every operation is one stateless
// request/response round trip: validate arguments, build the request, send it
// over the shared transport, decode the typed result. The package never
// retries and holds no session state, so a Client is safe for concurrent use.
package translator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/oukeidos/lingo/internal/httpclient"
)

// Config holds the service endpoint and credentials. It is copied into the
// Client at construction and never mutated afterwards.
type Config struct {
	// URL is the service base endpoint, e.g. "https://translate.example.com".
	URL string
	// APIKey is sent as a bearer token. May be empty for unauthenticated
	// test servers.
	APIKey string
	// HTTPClient overrides the shared default transport, mainly for tests
	// and callers that need custom timeouts.
	HTTPClient *http.Client
}

// Client is the service facade: one method per remote operation.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

// NewClient validates cfg and returns a ready client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if base == "" {
		return nil, invalidArgumentf("service URL is required")
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = httpclient.GetDefaultClient()
	}
	return &Client{
		url:    base,
		apiKey: cfg.APIKey,
		http:   hc,
	}, nil
}

// ListModels returns the models visible to the caller, optionally filtered.
func (c *Client) ListModels(ctx context.Context, opts ListModelsOptions) ([]LanguageModel, error) {
	req, err := c.modelsListRequest(ctx, opts)
	if err != nil {
		return nil, err
	}
	body, resp, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var list modelList
	if err := decodeResponse(resp, body, &list); err != nil {
		return nil, err
	}
	if list.Models == nil {
		return nil, decodeError(errors.New("response missing models field"))
	}
	return list.Models, nil
}

// CreateModel uploads the training artifacts in opts and returns the new
// model record. Training continues server-side; poll ListModels for status.
func (c *Client) CreateModel(ctx context.Context, opts CreateModelOptions) (*LanguageModel, error) {
	req, err := c.createModelRequest(ctx, opts)
	if err != nil {
		return nil, err
	}
	body, resp, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var model LanguageModel
	if err := decodeResponse(resp, body, &model); err != nil {
		return nil, err
	}
	if model.ModelID == "" {
		return nil, decodeError(errors.New("response missing model_id field"))
	}
	return &model, nil
}

// DeleteModel removes a custom model.
func (c *Client) DeleteModel(ctx context.Context, modelID string) error {
	req, err := c.deleteModelRequest(ctx, modelID)
	if err != nil {
		return err
	}
	body, resp, err := c.send(req)
	if err != nil {
		return err
	}
	return decodeResponse(resp, body, nil)
}

// ListIdentifiableLanguages returns the languages the service can recognize.
func (c *Client) ListIdentifiableLanguages(ctx context.Context) ([]IdentifiableLanguage, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v2/identifiable_languages", nil)
	if err != nil {
		return nil, err
	}
	body, resp, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var list identifiableLanguageList
	if err := decodeResponse(resp, body, &list); err != nil {
		return nil, err
	}
	if list.Languages == nil {
		return nil, decodeError(errors.New("response missing languages field"))
	}
	return list.Languages, nil
}

// Identify detects the language of text. Results arrive ranked by confidence
// descending; the client preserves the service order.
func (c *Client) Identify(ctx context.Context, text string) ([]IdentifiedLanguage, error) {
	req, err := c.identifyRequest(ctx, text)
	if err != nil {
		return nil, err
	}
	body, resp, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var list identifiedLanguageList
	if err := decodeResponse(resp, body, &list); err != nil {
		return nil, err
	}
	if list.Languages == nil {
		return nil, decodeError(errors.New("response missing languages field"))
	}
	return list.Languages, nil
}

// TranslateWithModel translates text using a specific model.
func (c *Client) TranslateWithModel(ctx context.Context, text, modelID string) (*TranslationResult, error) {
	if strings.TrimSpace(modelID) == "" {
		return nil, invalidArgumentf("model ID is required")
	}
	return c.translate(ctx, text, modelID, "", "")
}

// Translate translates text from source to target using the default model
// for that language pair.
func (c *Client) Translate(ctx context.Context, text, source, target string) (*TranslationResult, error) {
	if strings.TrimSpace(source) == "" {
		return nil, invalidArgumentf("source language is required")
	}
	if strings.TrimSpace(target) == "" {
		return nil, invalidArgumentf("target language is required")
	}
	return c.translate(ctx, text, "", source, target)
}

func (c *Client) translate(ctx context.Context, text, modelID, source, target string) (*TranslationResult, error) {
	// A model ID pins the language pair; sending source/target alongside it
	// would be ambiguous, so they are never forwarded together.
	if modelID != "" {
		source, target = "", ""
	}

	req, err := c.translateRequest(ctx, text, modelID, source, target)
	if err != nil {
		return nil, err
	}
	body, resp, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var result TranslationResult
	if err := decodeResponse(resp, body, &result); err != nil {
		return nil, err
	}
	if result.Translations == nil {
		return nil, decodeError(errors.New("response missing translations field"))
	}
	return &result, nil
}

// send performs the round trip and reads the full body. Transport failures
// (DNS, socket, timeout, cancellation) surface as transient errors with the
// cause preserved.
func (c *Client) send(req *http.Request) ([]byte, *http.Response, error) {
	start := time.Now()
	body, resp, err := httpclient.DoAndRead(c.http, req)
	if err != nil {
		return nil, nil, transportError(err)
	}
	slog.Debug("service round trip",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return body, resp, nil
}
