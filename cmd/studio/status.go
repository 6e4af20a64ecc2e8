package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/macaddy2/leadskylab/internal/content"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show studio status",
	Long:  `Display AI backend status and statistics about products and drafts.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	summary, err := a.Store.Summary(ctx)
	if err != nil {
		return err
	}

	fmt.Println("=== Content Studio ===")
	fmt.Println()
	fmt.Printf("Database: %s\n", a.Config.DatabasePath)
	switch {
	case a.Generator.Configured():
		fmt.Printf("AI: enabled (%s)\n", a.Config.GeminiModel)
	case a.Config.AIEnabled():
		fmt.Println("AI: unavailable (client failed to start, see logs), using templates")
	default:
		fmt.Println("AI: disabled (set GEMINI_API_KEY), using templates")
	}
	fmt.Printf("Templates: %d\n", len(a.Templates.All()))
	fmt.Println()

	fmt.Printf("Products: %d\n", summary.Products)
	fmt.Printf("Drafts: %d\n", summary.Drafts)
	for _, st := range []content.Status{
		content.StatusDraft,
		content.StatusReview,
		content.StatusApproved,
		content.StatusScheduled,
		content.StatusPublished,
		content.StatusRejected,
	} {
		if n := summary.ByStatus[st]; n > 0 {
			fmt.Printf("  %s: %d\n", st, n)
		}
	}
	fmt.Println()

	if a.Config.VecLitePath != "" {
		idx, err := a.Index()
		if err != nil {
			slog.Warn("failed to open VecLite", "error", err)
		} else if idx != nil {
			stats := idx.Stats()
			fmt.Println("VecLite:")
			fmt.Printf("  Path: %s\n", a.Config.VecLitePath)
			fmt.Printf("  Documents: %d\n", stats.Count)
			fmt.Printf("  Dimension: %d\n", stats.Dimension)
			fmt.Printf("  Distance: %s\n", stats.DistanceType)
			fmt.Printf("  Index: %s\n", stats.IndexType)
			fmt.Println()
		}
	}

	return nil
}
