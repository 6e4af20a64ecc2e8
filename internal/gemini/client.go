// Package gemini owns the text-generation backend handle.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gemini-2.5-flash"

var (
	// ErrNotConfigured is returned by every call on an unconfigured generator.
	ErrNotConfigured = errors.New("generation backend not configured")

	// ErrBackend matches any *BackendError.
	ErrBackend = errors.New("generation backend error")
)

// BackendError wraps a transport or model failure. It is never retried here.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", ErrBackend, e.Err)
}

// Unwrap lets errors.Is match ErrBackend and the underlying error.
func (e *BackendError) Unwrap() []error {
	return []error{ErrBackend, e.Err}
}

// Generator sends a prompt to a text model and returns its raw output.
type Generator interface {
	// Configured reports whether a backend handle exists.
	Configured() bool

	// Generate returns the model text trimmed of surrounding whitespace.
	Generate(ctx context.Context, prompt string) (string, error)
}

// JSONGenerator is implemented by generators that can constrain output to JSON.
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for the Gemini client.
type Config struct {
	APIKey string
	Model  string

	// JSONMode asks the backend for application/json output on JSON prompts.
	JSONMode bool

	// BaseURL overrides the API endpoint.
	BaseURL string
}

// Client is a configured Gemini backend.
type Client struct {
	client   *genai.Client
	model    string
	jsonMode bool
}

// Unconfigured is the generator used when no API key was supplied.
// It never performs network calls.
type Unconfigured struct{}

// Configured always reports false.
func (Unconfigured) Configured() bool { return false }

// Generate always fails with ErrNotConfigured.
func (Unconfigured) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

// New builds the generator once at startup. An empty API key, or an SDK
// client that cannot be constructed, yields Unconfigured for the life of
// the process rather than an error.
func New(ctx context.Context, cfg Config) Generator {
	if cfg.APIKey == "" {
		slog.Info("GEMINI_API_KEY not set, AI generation disabled")
		return Unconfigured{}
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		slog.Warn("failed to create Gemini client, AI generation disabled", "error", err)
		return Unconfigured{}
	}

	slog.Debug("Gemini client created", "model", model, "json_mode", cfg.JSONMode)

	return &Client{
		client:   client,
		model:    model,
		jsonMode: cfg.JSONMode,
	}
}

// Configured always reports true.
func (c *Client) Configured() bool { return true }

// Model returns the model name used for generation.
func (c *Client) Model() string { return c.model }

// Generate sends prompt to the model and returns the trimmed text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, nil)
}

// GenerateJSON is Generate with the response constrained to application/json
// when JSON mode is enabled. Without JSON mode it behaves like Generate.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	if !c.jsonMode {
		return c.generate(ctx, prompt, nil)
	}
	return c.generate(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
}

func (c *Client) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	slog.Debug("sending prompt to Gemini", "model", c.model, "prompt_length", len(prompt))
	start := time.Now()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		slog.Debug("Gemini call failed", "error", err, "duration", time.Since(start))
		return "", &BackendError{Err: err}
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &BackendError{Err: errors.New("empty response from Gemini API")}
	}

	text := strings.TrimSpace(resp.Text())
	slog.Debug("received Gemini response",
		"response_length", len(text),
		"duration", time.Since(start),
	)

	return text, nil
}
