package main

import (
	"context"
	"fmt"
	"time"

	"github.com/macaddy2/leadskylab/internal/content"
	"github.com/spf13/cobra"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Generate a batch of launch campaign posts",
	Long: `Generate several posts for a launch campaign phase across platforms.

Example:
  studio launch --product Lumen --platform twitter,linkedin --tone twitter=witty \
    --pillar education --pillar behind-the-scenes --phase pre_launch --date 2026-11-03 --count 6 --save`,
	RunE: runLaunch,
}

var launchFlags struct {
	product   string
	platforms []string
	tones     map[string]string
	pillars   []string
	phase     string
	date      string
	count     int
	save      bool
}

func init() {
	f := launchCmd.Flags()
	f.StringVarP(&launchFlags.product, "product", "p", "", "product ID or name (required)")
	f.StringSliceVar(&launchFlags.platforms, "platform", []string{string(content.PlatformTwitter), string(content.PlatformLinkedIn)}, "target platforms")
	f.StringToStringVar(&launchFlags.tones, "tone", nil, "per-platform tones, e.g. twitter=witty")
	f.StringArrayVar(&launchFlags.pillars, "pillar", nil, "content pillar (repeatable)")
	f.StringVar(&launchFlags.phase, "phase", string(content.PhasePreLaunch), "campaign phase: pre_launch, launch_day or growth")
	f.StringVar(&launchFlags.date, "date", "", "launch date (YYYY-MM-DD)")
	f.IntVarP(&launchFlags.count, "count", "n", 5, "number of posts")
	f.BoolVar(&launchFlags.save, "save", false, "save the drafts")
	_ = launchCmd.MarkFlagRequired("product")
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	platforms, err := parsePlatforms(launchFlags.platforms)
	if err != nil {
		return err
	}
	phase, err := content.ParsePhase(launchFlags.phase)
	if err != nil {
		return err
	}

	tones := make(map[content.Platform]content.Tone, len(launchFlags.tones))
	for p, t := range launchFlags.tones {
		platform, err := content.ParsePlatform(p)
		if err != nil {
			return err
		}
		tone, err := content.ParseTone(t)
		if err != nil {
			return err
		}
		tones[platform] = tone
	}

	var launchDate time.Time
	if launchFlags.date != "" {
		launchDate, err = time.Parse("2006-01-02", launchFlags.date)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	product, err := a.Store.FindProduct(ctx, launchFlags.product)
	if err != nil {
		return err
	}

	callCtx, cancel := a.GenerationContext(ctx)
	defer cancel()

	drafts, err := a.Studio.GenerateLaunchContent(callCtx, content.LaunchRequest{
		Product:    product,
		LaunchDate: launchDate,
		Platforms:  platforms,
		Tones:      tones,
		Pillars:    launchFlags.pillars,
		Phase:      phase,
		Count:      launchFlags.count,
	})
	if err != nil {
		return err
	}

	for _, d := range drafts {
		printDraft(d, false)
	}

	if launchFlags.save && len(drafts) > 0 {
		if err := a.SaveDrafts(ctx, drafts...); err != nil {
			return err
		}
		fmt.Printf("Saved %d draft(s)\n", len(drafts))
	}
	return nil
}
