package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/macaddy2/leadskylab/internal/app"
	"github.com/macaddy2/leadskylab/internal/content"
)

func parsePlatforms(values []string) ([]content.Platform, error) {
	out := make([]content.Platform, 0, len(values))
	seen := make(map[content.Platform]bool, len(values))
	for _, v := range values {
		p, err := content.ParsePlatform(v)
		if err != nil {
			return nil, err
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out, nil
}

// resolveTone picks the flag value, then the product default, then DefaultTone.
func resolveTone(flag string, product *content.ProductProfile) (content.Tone, error) {
	if flag != "" {
		return content.ParseTone(flag)
	}
	if product != nil && product.DefaultTone != "" {
		return product.DefaultTone, nil
	}
	return content.DefaultTone, nil
}

// findProduct returns nil when ref is empty.
func findProduct(ctx context.Context, a *app.App, ref string) (*content.ProductProfile, error) {
	if ref == "" {
		return nil, nil
	}
	p, err := a.Store.FindProduct(ctx, ref)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// readText joins args, or reads stdin when the only arg is "-".
func readText(args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", fmt.Errorf("no text given")
	}
	return text, nil
}

func printDraft(d content.Draft, fallback bool) {
	source := "ai"
	if fallback {
		source = "template"
	}
	fmt.Printf("=== %s [%s, %s, %s] ===\n", d.Title, d.Platform, d.Tone, source)
	fmt.Println(d.Body)
	if len(d.Hashtags) > 0 {
		fmt.Println()
		fmt.Println(strings.Join(d.Hashtags, " "))
	}
	if over := d.Overflow(); over > 0 {
		fmt.Printf("\n(warning: %d characters over the %s limit)\n", over, d.Platform)
	}
	fmt.Printf("\nID: %s\n\n", d.ID)
}
