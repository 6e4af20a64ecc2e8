package fallback

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/macaddy2/leadskylab/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct() *content.ProductProfile {
	return &content.ProductProfile{
		Name:           "Lumen",
		Description:    "A focus timer for remote teams.",
		ValueProps:     []string{"Cut meeting overload", "Track deep work"},
		TargetAudience: "remote engineering managers",
		Keywords:       []string{"productivity", "remote work", "focus"},
	}
}

func TestGenerate(t *testing.T) {
	t.Run("example wins", func(t *testing.T) {
		got := Generate(content.PlatformTwitter, testProduct(), "My own words")
		assert.Equal(t, "My own words", got)
	})

	t.Run("blank example is ignored", func(t *testing.T) {
		got := Generate(content.PlatformTwitter, testProduct(), "   ")
		assert.NotEqual(t, "   ", got)
		assert.Contains(t, got, "Lumen")
	})

	t.Run("no product gives generic placeholder", func(t *testing.T) {
		for _, p := range content.Platforms() {
			assert.Equal(t, GenericTemplate, Generate(p, nil, ""))
		}
	})

	t.Run("every platform mentions the product", func(t *testing.T) {
		for _, p := range content.Platforms() {
			t.Run(string(p), func(t *testing.T) {
				got := Generate(p, testProduct(), "")
				assert.Contains(t, got, "Lumen")
				assert.NotEmpty(t, strings.TrimSpace(got))
			})
		}
	})

	t.Run("twitter uses first value prop and hashtags", func(t *testing.T) {
		got := Generate(content.PlatformTwitter, testProduct(), "")
		assert.Equal(t, "🚀 Lumen: Cut meeting overload\n\n#productivity #remotework #focus", got)
		assert.True(t, content.FitsInLimit(got, 280))
	})

	t.Run("linkedin includes audience", func(t *testing.T) {
		got := Generate(content.PlatformLinkedIn, testProduct(), "")
		assert.Contains(t, got, "remote engineering managers")
		assert.Contains(t, got, "A focus timer for remote teams.")
	})

	t.Run("reddit has no hashtags", func(t *testing.T) {
		got := Generate(content.PlatformReddit, testProduct(), "")
		assert.NotContains(t, got, "#")
	})

	t.Run("deterministic", func(t *testing.T) {
		for _, p := range content.Platforms() {
			assert.Equal(t, Generate(p, testProduct(), ""), Generate(p, testProduct(), ""))
		}
	})

	t.Run("missing optional fields", func(t *testing.T) {
		minimal := &content.ProductProfile{Name: "Bare", Description: "Just a name."}
		for _, p := range content.Platforms() {
			got := Generate(p, minimal, "")
			assert.Contains(t, got, "Bare")
			assert.NotContains(t, got, "#")
			assert.NotContains(t, got, "\n\n\n")
		}
	})

	t.Run("unknown platform", func(t *testing.T) {
		got := Generate(content.Platform("myspace"), testProduct(), "")
		assert.Contains(t, got, "Lumen: A focus timer for remote teams.")
	})
}

func TestToHashtag(t *testing.T) {
	assert.Equal(t, "#remotework", toHashtag("remote work"))
	assert.Equal(t, "#AI", toHashtag("#AI"))
	assert.Equal(t, "#saasgrowth", toHashtag("saas-growth"))
	assert.Equal(t, "", toHashtag("  "))
}

func TestParseLibrary(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		lib, err := ParseLibrary([]byte(`
templates:
  - name: teaser
    platform: twitter
    example: "Something is coming 👀"
  - name: thanks
    example: "Thank you for the support!"
`))
		require.NoError(t, err)
		require.Len(t, lib.All(), 2)

		tmpl, ok := lib.Get("teaser")
		require.True(t, ok)
		assert.Equal(t, content.PlatformTwitter, tmpl.Platform)
		assert.Equal(t, "Something is coming 👀", tmpl.Example)

		_, ok = lib.Get("missing")
		assert.False(t, ok)

		assert.Len(t, lib.ForPlatform(content.PlatformTwitter), 2)
		assert.Len(t, lib.ForPlatform(content.PlatformLinkedIn), 1)
	})

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing name", "templates:\n  - example: hi\n", "name is required"},
		{"duplicate name", "templates:\n  - {name: a, example: x}\n  - {name: a, example: y}\n", "duplicate name"},
		{"unknown platform", "templates:\n  - {name: a, platform: myspace, example: x}\n", "unknown platform"},
		{"missing example", "templates:\n  - {name: a}\n", "example is required"},
		{"bad yaml", "templates: [", "parse templates"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLibrary([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadLibrary(t *testing.T) {
	t.Run("missing file is empty", func(t *testing.T) {
		lib, err := LoadLibrary(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Empty(t, lib.All())
	})

	t.Run("empty path is empty", func(t *testing.T) {
		lib, err := LoadLibrary("")
		require.NoError(t, err)
		assert.Empty(t, lib.All())
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "templates.yaml")
		require.NoError(t, os.WriteFile(path, []byte("templates:\n  - {name: promo, platform: email, example: Hello}\n"), 0o644))

		lib, err := LoadLibrary(path)
		require.NoError(t, err)
		tmpl, ok := lib.Get("promo")
		require.True(t, ok)
		assert.Equal(t, "Hello", tmpl.Example)
	})
}

func TestClause(t *testing.T) {
	assert.Equal(t, "cut meeting overload", clause("Cut meeting overload."))
	assert.Equal(t, "ümlaut first", clause("Ümlaut first!"))
	assert.Equal(t, "", clause(""))
}
