package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/macaddy2/leadskylab/internal/content"
	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage product profiles",
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product profile",
	Long: `Add a product profile used to ground generated content.

Example:
  studio product add --name Lumen --description "A focus timer for remote teams" \
    --value-prop "Cut meeting overload" --keyword productivity --audience "remote managers"`,
	RunE: runProductAdd,
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List product profiles",
	RunE:  runProductList,
}

var productShowCmd = &cobra.Command{
	Use:   "show [id or name]",
	Short: "Show a product profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductShow,
}

var productFlags struct {
	name        string
	url         string
	description string
	valueProps  []string
	audience    string
	keywords    []string
	tone        string
	competitors []string
}

func init() {
	f := productAddCmd.Flags()
	f.StringVar(&productFlags.name, "name", "", "product name (required)")
	f.StringVar(&productFlags.url, "url", "", "product website")
	f.StringVar(&productFlags.description, "description", "", "product description (required)")
	f.StringArrayVar(&productFlags.valueProps, "value-prop", nil, "value proposition (repeatable)")
	f.StringVar(&productFlags.audience, "audience", "", "target audience")
	f.StringSliceVar(&productFlags.keywords, "keyword", nil, "keywords (comma separated or repeated)")
	f.StringVar(&productFlags.tone, "tone", "", "default tone")
	f.StringSliceVar(&productFlags.competitors, "competitor", nil, "competitor names")
	_ = productAddCmd.MarkFlagRequired("name")
	_ = productAddCmd.MarkFlagRequired("description")

	productCmd.AddCommand(productAddCmd, productListCmd, productShowCmd)
	rootCmd.AddCommand(productCmd)
}

func runProductAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	profile := content.ProductProfile{
		Name:           productFlags.name,
		URL:            productFlags.url,
		Description:    productFlags.description,
		ValueProps:     productFlags.valueProps,
		TargetAudience: productFlags.audience,
		Keywords:       productFlags.keywords,
		Competitors:    productFlags.competitors,
	}
	if productFlags.tone != "" {
		tone, err := content.ParseTone(productFlags.tone)
		if err != nil {
			return err
		}
		profile.DefaultTone = tone
	}

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	saved, err := a.Store.SaveProduct(ctx, profile)
	if err != nil {
		return fmt.Errorf("save product: %w", err)
	}

	fmt.Printf("Added product %s (%s)\n", saved.Name, saved.ID)
	return nil
}

func runProductList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	products, err := a.Store.Products(ctx)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Println("No products yet. Add one with: studio product add")
		return nil
	}

	for _, p := range products {
		fmt.Printf("%s  %s\n", p.ID, p.Name)
	}
	return nil
}

func runProductShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.Store.FindProduct(ctx, args[0])
	if err != nil {
		return err
	}

	printProduct(p)
	return nil
}

func printProduct(p content.ProductProfile) {
	fmt.Printf("=== %s ===\n", p.Name)
	fmt.Printf("ID: %s\n", p.ID)
	if p.URL != "" {
		fmt.Printf("URL: %s\n", p.URL)
	}
	fmt.Printf("Description: %s\n", p.Description)
	if len(p.ValueProps) > 0 {
		fmt.Println("Value propositions:")
		for _, vp := range p.ValueProps {
			fmt.Printf("  - %s\n", vp)
		}
	}
	if p.TargetAudience != "" {
		fmt.Printf("Audience: %s\n", p.TargetAudience)
	}
	if len(p.Keywords) > 0 {
		fmt.Printf("Keywords: %s\n", strings.Join(p.Keywords, ", "))
	}
	if p.DefaultTone != "" {
		fmt.Printf("Default tone: %s\n", p.DefaultTone)
	}
	if len(p.Competitors) > 0 {
		fmt.Printf("Competitors: %s\n", strings.Join(p.Competitors, ", "))
	}
}
