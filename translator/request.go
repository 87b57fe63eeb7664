package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// newRequest builds the base request for path with the common headers:
// bearer authorization, JSON accept, and a per-request correlation ID.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("X-Global-Transaction-Id", uuid.NewString())
	return req, nil
}

func (c *Client) modelsListRequest(ctx context.Context, opts ListModelsOptions) (*http.Request, error) {
	params := url.Values{}
	if opts.Default != nil {
		params.Set("default", strconv.FormatBool(*opts.Default))
	}
	if opts.Source != "" {
		params.Set("source", opts.Source)
	}
	if opts.Target != "" {
		params.Set("target", opts.Target)
	}

	path := "/v2/models"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return c.newRequest(ctx, http.MethodGet, path, nil)
}

func (c *Client) deleteModelRequest(ctx context.Context, modelID string) (*http.Request, error) {
	if strings.TrimSpace(modelID) == "" {
		return nil, invalidArgumentf("model ID is required")
	}
	return c.newRequest(ctx, http.MethodDelete, "/v2/models/"+url.PathEscape(modelID), nil)
}

// createModelRequest encodes opts as a multipart form. The part order is
// fixed (base_model_id, forced_glossary, monolingual_corpus, parallel_corpus,
// name) so request bodies are reproducible; the service does not care.
func (c *Client) createModelRequest(ctx context.Context, opts CreateModelOptions) (*http.Request, error) {
	if strings.TrimSpace(opts.BaseModelID) == "" {
		return nil, invalidArgumentf("base model ID is required")
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("base_model_id", opts.BaseModelID); err != nil {
		return nil, fmt.Errorf("failed to encode form: %w", err)
	}

	fileParts := []struct {
		field string
		data  []byte
	}{
		{"forced_glossary", opts.ForcedGlossary},
		{"monolingual_corpus", opts.MonolingualCorpus},
		{"parallel_corpus", opts.ParallelCorpus},
	}
	for _, part := range fileParts {
		if len(part.data) == 0 {
			continue
		}
		w, err := form.CreateFormFile(part.field, "body_part")
		if err != nil {
			return nil, fmt.Errorf("failed to encode form: %w", err)
		}
		if _, err := w.Write(part.data); err != nil {
			return nil, fmt.Errorf("failed to encode form: %w", err)
		}
	}

	if opts.Name != "" {
		if err := form.WriteField("name", opts.Name); err != nil {
			return nil, fmt.Errorf("failed to encode form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/v2/models", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	return req, nil
}

func (c *Client) identifyRequest(ctx context.Context, text string) (*http.Request, error) {
	if strings.TrimSpace(text) == "" {
		return nil, invalidArgumentf("text is required")
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/v2/identify", strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/plain")
	return req, nil
}

// translateRequest encodes whatever keys it receives; empty keys are omitted
// from the JSON body. Model/source precedence is the facade's responsibility.
func (c *Client) translateRequest(ctx context.Context, text, modelID, source, target string) (*http.Request, error) {
	if strings.TrimSpace(text) == "" {
		return nil, invalidArgumentf("text is required")
	}

	payload, err := json.Marshal(translateBody{
		Text:    text,
		ModelID: modelID,
		Source:  source,
		Target:  target,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/v2/translate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
