package content

import (
	"errors"
	"strings"
	"time"
)

// ProductProfile describes the product being marketed. It grounds every prompt.
type ProductProfile struct {
	ID             string
	Name           string
	URL            string
	Description    string
	ValueProps     []string
	TargetAudience string
	Keywords       []string
	DefaultTone    Tone
	Competitors    []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Normalize returns a copy with trimmed fields and empty list entries removed.
func (p ProductProfile) Normalize() ProductProfile {
	p.Name = strings.TrimSpace(p.Name)
	p.URL = strings.TrimSpace(p.URL)
	p.Description = strings.TrimSpace(p.Description)
	p.TargetAudience = strings.TrimSpace(p.TargetAudience)
	p.ValueProps = nonEmpty(p.ValueProps)
	p.Keywords = nonEmpty(p.Keywords)
	p.Competitors = nonEmpty(p.Competitors)
	return p
}

// Validate checks the invariants of a saved profile.
func (p ProductProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("product name is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return errors.New("product description is required")
	}
	if p.DefaultTone != "" {
		if _, err := p.DefaultTone.Description(); err != nil {
			return err
		}
	}
	return nil
}

// FirstValueProp returns the first value proposition or "".
func (p ProductProfile) FirstValueProp() string {
	if len(p.ValueProps) == 0 {
		return ""
	}
	return p.ValueProps[0]
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
