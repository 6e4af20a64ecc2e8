package content

import (
	"fmt"
	"sort"
)

// Platform is a publishing channel.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformReddit    Platform = "reddit"
	PlatformFacebook  Platform = "facebook"
	PlatformEmail     Platform = "email"
)

// Guideline is the fixed constraint record for a platform.
type Guideline struct {
	Name      string
	MaxLength int
	Style     string
}

// PlatformGuidelines is the reference table of supported platforms.
var PlatformGuidelines = map[Platform]Guideline{
	PlatformTwitter: {
		Name:      "Twitter/X",
		MaxLength: 280,
		Style:     "concise, punchy, conversational, with a strong hook in the first line",
	},
	PlatformLinkedIn: {
		Name:      "LinkedIn",
		MaxLength: 3000,
		Style:     "professional, insightful, story-driven, with short paragraphs and a clear takeaway",
	},
	PlatformInstagram: {
		Name:      "Instagram",
		MaxLength: 2200,
		Style:     "visual, emotive, lifestyle-oriented, with line breaks and emojis where natural",
	},
	PlatformTikTok: {
		Name:      "TikTok",
		MaxLength: 2200,
		Style:     "energetic, trend-aware, written as a short video caption or script hook",
	},
	PlatformReddit: {
		Name:      "Reddit",
		MaxLength: 40000,
		Style:     "authentic, community-first, value-driven, never salesy",
	},
	PlatformFacebook: {
		Name:      "Facebook",
		MaxLength: 63206,
		Style:     "friendly, community-focused, conversational, inviting comments",
	},
	PlatformEmail: {
		Name:      "Email",
		MaxLength: 5000,
		Style:     "clear subject line, personal greeting, scannable body and a single call to action",
	},
}

// Guideline looks up the platform in PlatformGuidelines.
func (p Platform) Guideline() (Guideline, error) {
	g, ok := PlatformGuidelines[p]
	if !ok {
		return Guideline{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, string(p))
	}
	return g, nil
}

// ParsePlatform validates a platform identifier.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	if _, err := p.Guideline(); err != nil {
		return "", err
	}
	return p, nil
}

// Platforms returns all supported platforms in a stable order.
func Platforms() []Platform {
	out := make([]Platform, 0, len(PlatformGuidelines))
	for p := range PlatformGuidelines {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Tone is a voice applied to generated text.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneBold         Tone = "bold"
	ToneFriendly     Tone = "friendly"
	ToneWitty        Tone = "witty"
	ToneInformative  Tone = "informative"
)

// DefaultTone is used wherever no tone was chosen.
const DefaultTone = ToneProfessional

// ToneDescriptions maps each tone to the phrase used in prompts.
var ToneDescriptions = map[Tone]string{
	ToneProfessional: "professional, credible and polished",
	ToneCasual:       "casual, relaxed and approachable",
	ToneBold:         "bold, confident and attention-grabbing",
	ToneFriendly:     "friendly, warm and welcoming",
	ToneWitty:        "witty, clever and playful",
	ToneInformative:  "informative, educational and clear",
}

// Description looks up the tone in ToneDescriptions.
func (t Tone) Description() (string, error) {
	d, ok := ToneDescriptions[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTone, string(t))
	}
	return d, nil
}

// ParseTone validates a tone identifier.
func ParseTone(s string) (Tone, error) {
	t := Tone(s)
	if _, err := t.Description(); err != nil {
		return "", err
	}
	return t, nil
}

// Phase is a launch campaign phase.
type Phase string

const (
	PhasePreLaunch Phase = "pre_launch"
	PhaseLaunchDay Phase = "launch_day"
	PhaseGrowth    Phase = "growth"
)

// PhaseGuidance holds the instruction text embedded in launch prompts.
var PhaseGuidance = map[Phase]string{
	PhasePreLaunch: "Build anticipation and curiosity before the launch. Tease the problem being solved, hint at what is coming, and invite people to sign up or follow along. Do not reveal everything yet.",
	PhaseLaunchDay: "Announce the launch with energy. Clearly state what the product is, who it is for and the main value it delivers, and include a direct call to action to try it today.",
	PhaseGrowth:    "Drive adoption after launch. Share use cases, early results, social proof and tips that help new users get value, and keep the conversation going.",
}

// Guidance looks up the phase in PhaseGuidance.
func (p Phase) Guidance() (string, error) {
	g, ok := PhaseGuidance[p]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPhase, string(p))
	}
	return g, nil
}

// ParsePhase validates a phase identifier.
func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if _, err := p.Guidance(); err != nil {
		return "", err
	}
	return p, nil
}
