package fallback

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/macaddy2/leadskylab/internal/content"
	"gopkg.in/yaml.v3"
)

// Template is a user-authored content template.
type Template struct {
	Name        string           `yaml:"name"`
	Platform    content.Platform `yaml:"platform"`
	Description string           `yaml:"description,omitempty"`
	Example     string           `yaml:"example"`
}

// Library holds the templates loaded from a YAML file.
type Library struct {
	templates []Template
}

type libraryFile struct {
	Templates []Template `yaml:"templates"`
}

// LoadLibrary reads templates from path. A missing file yields an empty library.
func LoadLibrary(path string) (*Library, error) {
	if path == "" {
		return &Library{}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("templates file not found, using none", "path", path)
		return &Library{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	return ParseLibrary(data)
}

// ParseLibrary decodes a templates YAML document.
func ParseLibrary(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	seen := make(map[string]bool, len(file.Templates))
	for i, t := range file.Templates {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, fmt.Errorf("template %d: name is required", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("template %q: duplicate name", name)
		}
		seen[name] = true
		if t.Platform != "" {
			if _, err := t.Platform.Guideline(); err != nil {
				return nil, fmt.Errorf("template %q: %w", name, err)
			}
		}
		if strings.TrimSpace(t.Example) == "" {
			return nil, fmt.Errorf("template %q: example is required", name)
		}
		file.Templates[i].Name = name
	}

	return &Library{templates: file.Templates}, nil
}

// Get finds a template by name.
func (l *Library) Get(name string) (Template, bool) {
	for _, t := range l.templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// ForPlatform returns templates for platform plus platform-agnostic ones.
func (l *Library) ForPlatform(p content.Platform) []Template {
	var out []Template
	for _, t := range l.templates {
		if t.Platform == "" || t.Platform == p {
			out = append(out, t)
		}
	}
	return out
}

// All returns every loaded template.
func (l *Library) All() []Template {
	return l.templates
}
