package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/macaddy2/leadskylab/internal/content"
	"github.com/macaddy2/leadskylab/internal/studio"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate posts for one or more platforms",
	Long: `Generate a post per platform for a product. Platforms are generated
concurrently. When AI is unavailable or fails, template content is used
unless --strict is set. Without --product only the generic template is
produced and AI is not called.

Example:
  studio generate --product Lumen --platform twitter --platform linkedin --topic "Beta launch" --hashtags --save`,
	RunE: runGenerate,
}

var generateFlags struct {
	product   string
	platforms []string
	tone      string
	topic     string
	hashtags  bool
	save      bool
	template  string
	strict    bool
	parallel  int
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.product, "product", "p", "", "product ID or name")
	f.StringSliceVar(&generateFlags.platforms, "platform", []string{string(content.PlatformTwitter)}, "target platforms")
	f.StringVar(&generateFlags.tone, "tone", "", "tone (default: product tone or professional)")
	f.StringVar(&generateFlags.topic, "topic", "", "optional topic")
	f.BoolVar(&generateFlags.hashtags, "hashtags", false, "include hashtags")
	f.BoolVar(&generateFlags.save, "save", false, "save the drafts")
	f.StringVar(&generateFlags.template, "template", "", "template name used if generation fails")
	f.BoolVar(&generateFlags.strict, "strict", false, "fail instead of using template content")
	f.IntVar(&generateFlags.parallel, "parallel", 3, "maximum concurrent generations")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	platforms, err := parsePlatforms(generateFlags.platforms)
	if err != nil {
		return err
	}

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	product, err := findProduct(ctx, a, generateFlags.product)
	if err != nil {
		return err
	}
	if product == nil && generateFlags.strict {
		return fmt.Errorf("--product is required with --strict")
	}
	tone, err := resolveTone(generateFlags.tone, product)
	if err != nil {
		return err
	}

	example := ""
	if generateFlags.template != "" {
		tmpl, ok := a.Templates.Get(generateFlags.template)
		if !ok {
			return fmt.Errorf("template %q not found in %s", generateFlags.template, a.Config.TemplatesPath)
		}
		example = tmpl.Example
	}

	base := content.GenerationRequest{
		Tone:            tone,
		Topic:           generateFlags.topic,
		IncludeHashtags: generateFlags.hashtags,
	}
	if product != nil {
		base.Product = *product
	}

	results := make([]*studio.Generation, len(platforms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(generateFlags.parallel, 1))
	for i, p := range platforms {
		g.Go(func() error {
			callCtx, cancel := a.GenerationContext(gctx)
			defer cancel()

			req := base
			req.Platform = p

			var gen *studio.Generation
			var err error
			if generateFlags.strict {
				gen, err = a.Studio.GenerateContent(callCtx, req)
			} else {
				gen, err = a.Studio.GenerateOrFallback(callCtx, req, example)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			results[i] = gen
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	drafts := make([]content.Draft, 0, len(results))
	for _, gen := range results {
		printDraft(gen.Draft, gen.Fallback)
		if gen.Enrichment.Err != nil {
			slog.Warn("hashtags unavailable", "platform", gen.Draft.Platform, "error", gen.Enrichment.Err)
		}
		drafts = append(drafts, gen.Draft)
	}

	if generateFlags.save {
		if err := a.SaveDrafts(ctx, drafts...); err != nil {
			return err
		}
		fmt.Printf("Saved %d draft(s)\n", len(drafts))
	}

	return nil
}
