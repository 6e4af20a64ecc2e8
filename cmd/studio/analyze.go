package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [product id or name]",
	Short: "Suggest pillars, keywords and platforms for a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var analyzeJSON bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	product, err := a.Store.FindProduct(ctx, args[0])
	if err != nil {
		return err
	}

	callCtx, cancel := a.GenerationContext(ctx)
	defer cancel()

	analysis, err := a.Studio.AnalyzeProduct(callCtx, product)
	if err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	fmt.Printf("=== Analysis: %s ===\n", product.Name)
	fmt.Printf("Pillars: %s\n", strings.Join(analysis.SuggestedPillars, ", "))
	fmt.Printf("Keywords: %s\n", strings.Join(analysis.SuggestedKeywords, ", "))
	fmt.Printf("Platforms: %s\n", strings.Join(analysis.SuggestedPlatforms, ", "))
	fmt.Println()
	fmt.Println(analysis.LaunchStrategy)
	return nil
}
