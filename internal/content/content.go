// Package content holds the value types shared by the generation pipeline:
// product profiles, requests, drafts and the platform/tone reference tables.
package content

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUnknownPlatform is returned when a platform is not in PlatformGuidelines.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrUnknownTone is returned when a tone is not in ToneDescriptions.
	ErrUnknownTone = errors.New("unknown tone")

	// ErrUnknownPhase is returned when a campaign phase is not in PhaseGuidance.
	ErrUnknownPhase = errors.New("unknown campaign phase")
)

// GenerationRequest describes a single post to generate.
type GenerationRequest struct {
	Platform        Platform
	Tone            Tone
	Product         ProductProfile
	Topic           string
	IncludeHashtags bool
}

// Validate checks that platform and tone belong to the reference tables.
func (r GenerationRequest) Validate() error {
	if _, err := r.Platform.Guideline(); err != nil {
		return err
	}
	if _, err := r.Tone.Description(); err != nil {
		return err
	}
	return nil
}

// Draft is a generated piece of content. Generated drafts always start in StatusDraft.
type Draft struct {
	ID        string
	ProductID string
	Title     string
	Body      string
	Platform  Platform
	Hashtags  []string
	Tone      Tone
	Status    Status
	CreatedAt time.Time
}

// NewDraft returns a draft with a fresh ID and StatusDraft.
func NewDraft(title, body string, platform Platform, tone Tone, hashtags []string) Draft {
	if hashtags == nil {
		hashtags = []string{}
	}
	return Draft{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		Platform:  platform,
		Hashtags:  hashtags,
		Tone:      tone,
		Status:    StatusDraft,
		CreatedAt: time.Now().UTC(),
	}
}

// DefaultTitle is the title given to a single generated post.
func DefaultTitle(platform Platform, topic string) string {
	if topic != "" {
		return topic
	}
	name := string(platform)
	if g, ok := PlatformGuidelines[platform]; ok {
		name = g.Name
	}
	return fmt.Sprintf("%s post", name)
}

// ProductAnalysis is the parsed answer to an "analyze this product" prompt.
// Every field comes straight from the model and may be empty.
type ProductAnalysis struct {
	SuggestedPillars   []string `json:"suggestedPillars"`
	SuggestedKeywords  []string `json:"suggestedKeywords"`
	SuggestedPlatforms []string `json:"suggestedPlatforms"`
	LaunchStrategy     string   `json:"launchStrategy"`
}
