// Package studio orchestrates prompt building, generation, response recovery
// and the template fallback.
package studio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/macaddy2/leadskylab/internal/content"
	"github.com/macaddy2/leadskylab/internal/fallback"
	"github.com/macaddy2/leadskylab/internal/gemini"
	"github.com/macaddy2/leadskylab/internal/notify"
	"github.com/macaddy2/leadskylab/internal/prompt"
	"github.com/macaddy2/leadskylab/internal/recovery"
)

// DefaultHashtagCount is the enrichment size when Config.HashtagCount is zero.
const DefaultHashtagCount = 5

// ErrNoProduct is returned when a generation request names no product. The
// backend is never called for such a request.
var ErrNoProduct = errors.New("no product to write about")

// Enrichment is the outcome of the best-effort hashtag call attached to a
// single post. Err is set when the call failed; the post is still valid.
type Enrichment struct {
	Hashtags []string
	Err      error
}

// Generation is the result of generating a single post.
type Generation struct {
	Draft      content.Draft
	Enrichment Enrichment

	// Fallback is true when Draft came from a template instead of the backend.
	Fallback bool
}

// Studio generates marketing content. It holds no mutable state and is safe
// for concurrent use.
type Studio struct {
	generator    gemini.Generator
	notifier     notify.Notifier
	hashtagCount int
}

// Config holds the collaborators of a Studio.
type Config struct {
	Generator    gemini.Generator
	Notifier     notify.Notifier // Optional: defaults to a slog notifier
	HashtagCount int             // Hashtags requested for enrichment (default: 5)
}

// New creates a new Studio.
func New(cfg Config) *Studio {
	gen := cfg.Generator
	if gen == nil {
		gen = gemini.Unconfigured{}
	}

	n := cfg.Notifier
	if n == nil {
		n = notify.NewLogNotifier(nil)
	}

	count := cfg.HashtagCount
	if count <= 0 {
		count = DefaultHashtagCount
	}

	return &Studio{
		generator:    gen,
		notifier:     n,
		hashtagCount: count,
	}
}

// Configured reports whether the generation backend is available.
func (s *Studio) Configured() bool {
	return s.generator.Configured()
}

// FallbackEligible reports whether err should be answered with template
// content: there is no product, or the backend is unconfigured, failed or
// returned no JSON at all.
func FallbackEligible(err error) bool {
	return errors.Is(err, ErrNoProduct) ||
		errors.Is(err, gemini.ErrNotConfigured) ||
		errors.Is(err, gemini.ErrBackend) ||
		errors.Is(err, recovery.ErrMalformedResponse)
}

// GenerateContent generates a single post. When the request asks for
// hashtags a second call fills Enrichment; its failure never fails the post.
func (s *Studio) GenerateContent(ctx context.Context, req content.GenerationRequest) (*Generation, error) {
	p, err := prompt.Generation(req)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}
	if strings.TrimSpace(req.Product.Name) == "" {
		return nil, fmt.Errorf("build prompt: %w", ErrNoProduct)
	}

	raw, err := s.generator.Generate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	draft := content.NewDraft(
		content.DefaultTitle(req.Platform, req.Topic),
		recovery.Verbatim(raw),
		req.Platform,
		req.Tone,
		nil,
	)
	draft.ProductID = req.Product.ID
	warnOverflow(draft)

	gen := &Generation{Draft: draft}
	if req.IncludeHashtags {
		tags, err := s.GenerateHashtags(ctx, draft.Body, req.Platform, s.hashtagCount)
		if err != nil {
			slog.Warn("hashtag enrichment failed", "platform", req.Platform, "error", err)
			gen.Enrichment.Err = err
		} else {
			gen.Enrichment.Hashtags = tags
			gen.Draft.Hashtags = tags
		}
	}

	slog.Debug("content generated",
		"platform", req.Platform,
		"tone", req.Tone,
		"length", len([]rune(draft.Body)),
		"hashtags", len(gen.Draft.Hashtags),
	)

	return gen, nil
}

// GenerateOrFallback is GenerateContent that answers fallback-eligible
// failures with template content. The failure is reported through the
// notifier. example, when non-empty, is a user-authored template that wins
// over the built-in ones. Invalid requests and parse errors still fail.
func (s *Studio) GenerateOrFallback(ctx context.Context, req content.GenerationRequest, example string) (*Generation, error) {
	gen, err := s.GenerateContent(ctx, req)
	if err == nil {
		s.send(ctx, notify.Notification{
			Level:   notify.LevelSuccess,
			Subject: "Content generated",
			Body:    gen.Draft.Title,
		})
		return gen, nil
	}
	if !FallbackEligible(err) {
		return nil, err
	}

	subject := "Generation failed"
	switch {
	case errors.Is(err, ErrNoProduct):
		subject = "No product selected"
	case errors.Is(err, gemini.ErrNotConfigured):
		subject = "AI generation unavailable"
	}
	s.send(ctx, notify.Notification{
		Level:   notify.LevelError,
		Subject: subject,
		Body:    fmt.Sprintf("%v. Using template content instead.", err),
	})

	var product *content.ProductProfile
	if !errors.Is(err, ErrNoProduct) {
		product = &req.Product
	}

	draft := content.NewDraft(
		content.DefaultTitle(req.Platform, req.Topic),
		fallback.Generate(req.Platform, product, example),
		req.Platform,
		req.Tone,
		nil,
	)
	draft.ProductID = req.Product.ID

	slog.Info("using fallback content", "platform", req.Platform, "reason", err)

	return &Generation{Draft: draft, Fallback: true}, nil
}

// RewriteContent adapts existing content to a platform and tone.
func (s *Studio) RewriteContent(ctx context.Context, req prompt.RewriteRequest) (string, error) {
	p, err := prompt.Rewrite(req)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	raw, err := s.generator.Generate(ctx, p)
	if err != nil {
		return "", fmt.Errorf("rewrite content: %w", err)
	}

	text := recovery.Verbatim(raw)
	warnOverflow(content.Draft{Platform: req.Platform, Body: text})
	return text, nil
}

// GenerateHashtags asks for count hashtags for text. Lines the model returns
// without a leading '#' are dropped, so the result may be shorter or empty.
func (s *Studio) GenerateHashtags(ctx context.Context, text string, platform content.Platform, count int) ([]string, error) {
	p, err := prompt.Hashtags(text, platform, count)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	raw, err := s.generator.Generate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("generate hashtags: %w", err)
	}

	return recovery.Hashtags(raw, count), nil
}

// GenerateLaunchContent generates a batch of launch posts. Every returned
// draft is in StatusDraft.
func (s *Studio) GenerateLaunchContent(ctx context.Context, req content.LaunchRequest) ([]content.Draft, error) {
	p, err := prompt.Launch(req)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	raw, err := s.generateJSON(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("generate launch content: %w", err)
	}

	items, err := recovery.Array[content.LaunchItem](raw)
	if err != nil {
		return nil, fmt.Errorf("recover launch content: %w", err)
	}

	drafts := content.DraftsFromLaunch(items, req.Tones)
	for i := range drafts {
		drafts[i].ProductID = req.Product.ID
		if _, err := drafts[i].Platform.Guideline(); err != nil {
			slog.Warn("launch item has unknown platform", "platform", drafts[i].Platform, "title", drafts[i].Title)
			continue
		}
		warnOverflow(drafts[i])
	}

	slog.Info("launch content generated", "requested", req.Count, "received", len(drafts), "phase", req.Phase)

	return drafts, nil
}

// AnalyzeProduct asks the model for pillars, keywords, platforms and a
// strategy. Fields are untrusted and may be empty.
func (s *Studio) AnalyzeProduct(ctx context.Context, product content.ProductProfile) (*content.ProductAnalysis, error) {
	raw, err := s.generateJSON(ctx, prompt.Analysis(product))
	if err != nil {
		return nil, fmt.Errorf("analyze product: %w", err)
	}

	analysis, err := recovery.Object[content.ProductAnalysis](raw)
	if err != nil {
		return nil, fmt.Errorf("recover product analysis: %w", err)
	}

	return &analysis, nil
}

// generateJSON uses the backend's structured-output mode when it has one.
func (s *Studio) generateJSON(ctx context.Context, p string) (string, error) {
	if jg, ok := s.generator.(gemini.JSONGenerator); ok {
		return jg.GenerateJSON(ctx, p)
	}
	return s.generator.Generate(ctx, p)
}

func (s *Studio) send(ctx context.Context, n notify.Notification) {
	if err := s.notifier.Send(ctx, n); err != nil {
		slog.Warn("failed to send notification", "subject", n.Subject, "error", err)
	}
}

func warnOverflow(d content.Draft) {
	if over := d.Overflow(); over > 0 {
		slog.Warn("content exceeds platform limit",
			"platform", d.Platform,
			"over_by", over,
		)
	}
}
