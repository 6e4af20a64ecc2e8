// Package fallback produces platform-appropriate content without calling the
// generation backend. It is used when the backend is unconfigured or fails.
package fallback

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/macaddy2/leadskylab/internal/content"
)

// GenericTemplate is returned when no product profile is available.
const GenericTemplate = "🚀 Exciting news is on the way! We've been working on something we think you'll love. Stay tuned for the details, and tell us in the comments what you'd like to see next."

// Generate returns canned content for platform. A non-empty example (a
// user-authored template) wins over everything else; without a product the
// generic template is used regardless of platform. It never fails and never
// touches the network.
func Generate(platform content.Platform, product *content.ProductProfile, example string) string {
	if strings.TrimSpace(example) != "" {
		return example
	}
	if product == nil {
		return GenericTemplate
	}

	f := fieldsOf(*product)
	switch platform {
	case content.PlatformTwitter:
		return joinNonEmpty("\n\n",
			fmt.Sprintf("🚀 %s: %s", f.name, f.valueProp),
			f.hashtags(3),
		)
	case content.PlatformLinkedIn:
		return joinNonEmpty("\n\n",
			fmt.Sprintf("Introducing %s.", f.name),
			f.description,
			fmt.Sprintf("Built for %s, it helps you %s.", f.audience, clause(f.valueProp)),
			"What challenges is your team facing today? Let's talk in the comments.",
			f.hashtags(5),
		)
	case content.PlatformInstagram:
		return joinNonEmpty("\n\n",
			fmt.Sprintf("✨ Meet %s ✨", f.name),
			f.description,
			fmt.Sprintf("💡 %s", f.valueProp),
			"Tap the link in bio to learn more 👆",
			f.hashtags(10),
		)
	case content.PlatformTikTok:
		return joinNonEmpty("\n",
			fmt.Sprintf("POV: you just found %s 👀", f.name),
			f.valueProp,
			f.hashtags(5),
		)
	case content.PlatformReddit:
		return joinNonEmpty("\n\n",
			fmt.Sprintf("We built %s: %s", f.name, f.description),
			fmt.Sprintf("We made it for %s. The main thing it does: %s.", f.audience, clause(f.valueProp)),
			"We'd genuinely love feedback from this community. What would make it more useful for you?",
		)
	case content.PlatformFacebook:
		return joinNonEmpty("\n\n",
			fmt.Sprintf("We're excited to share %s with you! 🎉", f.name),
			f.description,
			fmt.Sprintf("Perfect for %s: %s.", f.audience, clause(f.valueProp)),
			"Tell us what you think in the comments!",
		)
	case content.PlatformEmail:
		return joinNonEmpty("\n\n",
			fmt.Sprintf("Subject: Introducing %s", f.name),
			"Hi there,",
			f.description,
			fmt.Sprintf("Here's why we built it for %s: %s.", f.audience, clause(f.valueProp)),
			"Reply to this email if you'd like a quick walkthrough.",
			fmt.Sprintf("Best,\nThe %s team", f.name),
		)
	}

	return joinNonEmpty("\n\n",
		fmt.Sprintf("%s: %s", f.name, f.description),
		f.hashtags(3),
	)
}

type fields struct {
	name        string
	description string
	valueProp   string
	audience    string
	keywords    []string
}

func fieldsOf(p content.ProductProfile) fields {
	f := fields{
		name:        strings.TrimSpace(p.Name),
		description: strings.TrimSpace(p.Description),
		valueProp:   strings.TrimSpace(p.FirstValueProp()),
		audience:    strings.TrimSpace(p.TargetAudience),
		keywords:    p.Keywords,
	}
	if f.name == "" {
		f.name = "our product"
	}
	if f.valueProp == "" {
		f.valueProp = f.description
	}
	if f.valueProp == "" {
		f.valueProp = "get more done with less effort"
	}
	if f.audience == "" {
		f.audience = "teams like yours"
	}
	return f
}

// hashtags renders up to n keywords as hashtags on one line.
func (f fields) hashtags(n int) string {
	tags := make([]string, 0, n)
	for _, kw := range f.keywords {
		if len(tags) == n {
			break
		}
		if tag := toHashtag(kw); tag != "" {
			tags = append(tags, tag)
		}
	}
	return strings.Join(tags, " ")
}

func toHashtag(keyword string) string {
	var b strings.Builder
	for _, r := range keyword {
		if r == ' ' || r == '-' || r == '_' || r == '#' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return ""
	}
	return "#" + b.String()
}

// clause turns a sentence into something that reads inside another sentence.
func clause(s string) string {
	s = strings.TrimRight(s, ".! ")
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
