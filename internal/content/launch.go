package content

import (
	"fmt"
	"time"
)

// LaunchRequest drives a batch generation for a launch campaign.
type LaunchRequest struct {
	Product    ProductProfile
	LaunchDate time.Time
	Platforms  []Platform
	Tones      map[Platform]Tone
	Pillars    []string
	Phase      Phase
	Count      int
}

// Validate checks platforms, tones and phase against the reference tables.
func (r LaunchRequest) Validate() error {
	if len(r.Platforms) == 0 {
		return fmt.Errorf("at least one platform is required")
	}
	for _, p := range r.Platforms {
		if _, err := p.Guideline(); err != nil {
			return err
		}
	}
	for p, t := range r.Tones {
		if _, err := p.Guideline(); err != nil {
			return err
		}
		if _, err := t.Description(); err != nil {
			return err
		}
	}
	if _, err := r.Phase.Guidance(); err != nil {
		return err
	}
	if r.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", r.Count)
	}
	return nil
}

// ToneFor returns the tone configured for a platform, or DefaultTone.
func (r LaunchRequest) ToneFor(p Platform) Tone {
	if t, ok := r.Tones[p]; ok && t != "" {
		return t
	}
	return DefaultTone
}

// LaunchItem is one element of the JSON array a launch prompt asks for.
type LaunchItem struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Platform string   `json:"platform"`
	Hashtags []string `json:"hashtags"`
}

// DraftsFromLaunch maps recovered launch items into drafts. Missing hashtags
// become an empty list, tone comes from tones (DefaultTone when the platform
// has no entry) and status is always StatusDraft whatever the model said.
func DraftsFromLaunch(items []LaunchItem, tones map[Platform]Tone) []Draft {
	drafts := make([]Draft, 0, len(items))
	for _, item := range items {
		platform := Platform(item.Platform)
		tone := DefaultTone
		if t, ok := tones[platform]; ok && t != "" {
			tone = t
		}
		drafts = append(drafts, NewDraft(item.Title, item.Content, platform, tone, item.Hashtags))
	}
	return drafts
}
