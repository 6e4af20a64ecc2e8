package main

import (
	"context"
	"fmt"

	"github.com/macaddy2/leadskylab/internal/content"
	"github.com/spf13/cobra"
)

var hashtagsCmd = &cobra.Command{
	Use:   "hashtags [text | -]",
	Short: "Suggest hashtags for a post",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHashtags,
}

var hashtagsFlags struct {
	platform string
	count    int
}

func init() {
	f := hashtagsCmd.Flags()
	f.StringVar(&hashtagsFlags.platform, "platform", string(content.PlatformInstagram), "target platform")
	f.IntVarP(&hashtagsFlags.count, "count", "n", 0, "number of hashtags (default: HASHTAG_COUNT)")
	rootCmd.AddCommand(hashtagsCmd)
}

func runHashtags(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	text, err := readText(args)
	if err != nil {
		return err
	}
	platform, err := content.ParsePlatform(hashtagsFlags.platform)
	if err != nil {
		return err
	}

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	count := hashtagsFlags.count
	if count <= 0 {
		count = a.Config.HashtagCount
	}

	callCtx, cancel := a.GenerationContext(ctx)
	defer cancel()

	tags, err := a.Studio.GenerateHashtags(callCtx, text, platform, count)
	if err != nil {
		return err
	}

	if len(tags) == 0 {
		fmt.Println("No hashtags suggested.")
		return nil
	}
	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}
