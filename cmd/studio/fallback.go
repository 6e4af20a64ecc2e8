package main

import (
	"context"
	"fmt"

	"github.com/macaddy2/leadskylab/internal/content"
	"github.com/macaddy2/leadskylab/internal/fallback"
	"github.com/spf13/cobra"
)

var fallbackCmd = &cobra.Command{
	Use:   "fallback",
	Short: "Show template content without calling AI",
	RunE:  runFallback,
}

var fallbackFlags struct {
	product  string
	platform string
	template string
	list     bool
}

func init() {
	f := fallbackCmd.Flags()
	f.StringVarP(&fallbackFlags.product, "product", "p", "", "product ID or name")
	f.StringVar(&fallbackFlags.platform, "platform", string(content.PlatformTwitter), "target platform")
	f.StringVar(&fallbackFlags.template, "template", "", "user template name")
	f.BoolVar(&fallbackFlags.list, "list", false, "list user templates for the platform")
	rootCmd.AddCommand(fallbackCmd)
}

func runFallback(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	platform, err := content.ParsePlatform(fallbackFlags.platform)
	if err != nil {
		return err
	}

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if fallbackFlags.list {
		templates := a.Templates.ForPlatform(platform)
		if len(templates) == 0 {
			fmt.Printf("No templates for %s in %s\n", platform, a.Config.TemplatesPath)
			return nil
		}
		for _, t := range templates {
			fmt.Printf("%s  %s\n", t.Name, t.Description)
		}
		return nil
	}

	product, err := findProduct(ctx, a, fallbackFlags.product)
	if err != nil {
		return err
	}

	example := ""
	if fallbackFlags.template != "" {
		tmpl, ok := a.Templates.Get(fallbackFlags.template)
		if !ok {
			return fmt.Errorf("template %q not found in %s", fallbackFlags.template, a.Config.TemplatesPath)
		}
		example = tmpl.Example
	}

	fmt.Println(fallback.Generate(platform, product, example))
	return nil
}
