package main

import (
	"context"
	"fmt"

	"github.com/macaddy2/leadskylab/internal/content"
	"github.com/macaddy2/leadskylab/internal/prompt"
	"github.com/spf13/cobra"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [text | -]",
	Short: "Rewrite content for another platform and tone",
	Long: `Rewrite existing content for a platform and tone. Pass "-" to read from stdin.

Example:
  studio rewrite --platform linkedin --tone professional "we shipped dark mode!!"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRewrite,
}

var rewriteFlags struct {
	product  string
	platform string
	tone     string
}

func init() {
	f := rewriteCmd.Flags()
	f.StringVarP(&rewriteFlags.product, "product", "p", "", "product ID or name for context")
	f.StringVar(&rewriteFlags.platform, "platform", string(content.PlatformLinkedIn), "target platform")
	f.StringVar(&rewriteFlags.tone, "tone", "", "target tone")
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	text, err := readText(args)
	if err != nil {
		return err
	}
	platform, err := content.ParsePlatform(rewriteFlags.platform)
	if err != nil {
		return err
	}

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	product, err := findProduct(ctx, a, rewriteFlags.product)
	if err != nil {
		return err
	}
	tone, err := resolveTone(rewriteFlags.tone, product)
	if err != nil {
		return err
	}

	callCtx, cancel := a.GenerationContext(ctx)
	defer cancel()

	out, err := a.Studio.RewriteContent(callCtx, prompt.RewriteRequest{
		Original: text,
		Platform: platform,
		Tone:     tone,
		Product:  product,
	})
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}
