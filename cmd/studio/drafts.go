package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/macaddy2/leadskylab/internal/content"
	"github.com/macaddy2/leadskylab/internal/db"
	"github.com/macaddy2/leadskylab/internal/draftindex"
	"github.com/spf13/cobra"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "Manage saved drafts",
}

var draftsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved drafts, newest first",
	RunE:  runDraftsList,
}

var draftsStatusCmd = &cobra.Command{
	Use:   "status [id] [status]",
	Short: "Move a draft through its lifecycle",
	Long: `Move a draft to a new status. Allowed transitions:
  draft -> review -> approved -> scheduled -> published
  review -> rejected`,
	Args: cobra.ExactArgs(2),
	RunE: runDraftsStatus,
}

var draftsSimilarCmd = &cobra.Command{
	Use:   "similar [text]",
	Short: "Find saved drafts similar to some text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDraftsSimilar,
}

var draftsFlags struct {
	status    string
	product   string
	platform  string
	limit     int
	k         int
	threshold float32
	hybrid    bool
}

func init() {
	lf := draftsListCmd.Flags()
	lf.StringVar(&draftsFlags.status, "status", "", "filter by status")
	lf.StringVarP(&draftsFlags.product, "product", "p", "", "filter by product ID or name")
	lf.StringVar(&draftsFlags.platform, "platform", "", "filter by platform")
	lf.IntVarP(&draftsFlags.limit, "limit", "n", db.DefaultListLimit, "maximum drafts")

	sf := draftsSimilarCmd.Flags()
	sf.IntVarP(&draftsFlags.k, "k", "k", 5, "number of results")
	sf.StringVar(&draftsFlags.platform, "platform", "", "restrict to a platform")
	sf.Float32Var(&draftsFlags.threshold, "threshold", 0, "minimum similarity")
	sf.BoolVar(&draftsFlags.hybrid, "hybrid", false, "combine vector and keyword search")

	draftsCmd.AddCommand(draftsListCmd, draftsStatusCmd, draftsSimilarCmd)
	rootCmd.AddCommand(draftsCmd)
}

func runDraftsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	filter := db.DraftFilter{Limit: draftsFlags.limit}
	if draftsFlags.status != "" {
		st, err := content.ParseStatus(draftsFlags.status)
		if err != nil {
			return err
		}
		filter.Status = st
	}
	if draftsFlags.platform != "" {
		p, err := content.ParsePlatform(draftsFlags.platform)
		if err != nil {
			return err
		}
		filter.Platform = p
	}

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if draftsFlags.product != "" {
		p, err := a.Store.FindProduct(ctx, draftsFlags.product)
		if err != nil {
			return err
		}
		filter.ProductID = p.ID
	}

	drafts, err := a.Store.ListDrafts(ctx, filter)
	if err != nil {
		return err
	}

	if len(drafts) == 0 {
		fmt.Println("No drafts found.")
		return nil
	}

	for _, d := range drafts {
		fmt.Printf("%s  %-9s  %-9s  %s  %s\n",
			d.ID, d.Status, d.Platform, d.CreatedAt.Format("2006-01-02 15:04"), truncate(d.Title, 50))
	}
	return nil
}

func runDraftsStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	next, err := content.ParseStatus(args[1])
	if err != nil {
		return err
	}

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	d, err := a.Store.TransitionDraft(ctx, args[0], next)
	if err != nil {
		return err
	}

	fmt.Printf("Draft %s is now %s\n", d.ID, d.Status)
	return nil
}

func runDraftsSimilar(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	query := strings.Join(args, " ")

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Config.ValidateForVecLite(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	idx, err := a.Index()
	if err != nil {
		return err
	}

	var matches []draftindex.Match
	switch {
	case draftsFlags.platform != "":
		p, perr := content.ParsePlatform(draftsFlags.platform)
		if perr != nil {
			return perr
		}
		matches, err = idx.SimilarOnPlatform(ctx, query, p, draftsFlags.k)
	case draftsFlags.hybrid:
		matches, err = idx.Hybrid(ctx, query, draftsFlags.k)
	case draftsFlags.threshold > 0:
		matches, err = idx.SimilarAbove(ctx, query, draftsFlags.threshold, draftsFlags.k)
	default:
		matches, err = idx.Similar(ctx, query, draftsFlags.k)
	}
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Println("No similar drafts found.")
		return nil
	}

	for _, m := range matches {
		fmt.Printf("%.2f  %s  %-9s  %s\n", m.Similarity, m.DraftID, m.Platform, truncate(m.Text, 60))
	}
	return nil
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
