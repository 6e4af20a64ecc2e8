package recovery

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Platform string   `json:"platform"`
	Hashtags []string `json:"hashtags"`
}

type analysis struct {
	SuggestedPillars []string `json:"suggestedPillars"`
	LaunchStrategy   string   `json:"launchStrategy"`
}

func TestVerbatim(t *testing.T) {
	assert.Equal(t, "Ship it.", Verbatim("\n  Ship it.  \n"))
	assert.Equal(t, "", Verbatim("   "))
}

func TestHashtags(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		count    int
		expected []string
	}{
		{
			name:     "filters and truncates",
			raw:      "#alpha\nno-hash\n#beta\n#gamma",
			count:    2,
			expected: []string{"#alpha", "#beta"},
		},
		{
			name:     "trims lines",
			raw:      "  #one  \r\n\t#two\n",
			count:    5,
			expected: []string{"#one", "#two"},
		},
		{
			name:     "no matches",
			raw:      "Here are some hashtags:\n1. growth\n2. launch",
			count:    3,
			expected: []string{},
		},
		{
			name:     "zero count keeps all",
			raw:      "#a\n#b\n#c",
			count:    0,
			expected: []string{"#a", "#b", "#c"},
		},
		{
			name:     "fewer than requested",
			raw:      "#only",
			count:    4,
			expected: []string{"#only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Hashtags(tt.raw, tt.count)
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestArray(t *testing.T) {
	t.Run("array with prose around it", func(t *testing.T) {
		raw := "Here you go:\n[{\"title\":\"T\",\"content\":\"C\",\"platform\":\"twitter\",\"hashtags\":[]}]\nEnjoy!"

		items, err := Array[item](raw)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "T", items[0].Title)
		assert.Equal(t, "C", items[0].Content)
		assert.Equal(t, "twitter", items[0].Platform)
		assert.Empty(t, items[0].Hashtags)
	})

	t.Run("markdown fenced", func(t *testing.T) {
		raw := "```json\n[{\"title\":\"A\"},{\"title\":\"B\"}]\n```"

		items, err := Array[item](raw)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("empty array", func(t *testing.T) {
		items, err := Array[item]("Nothing suitable.\n\n[]")
		require.NoError(t, err)
		assert.Len(t, items, 0)
	})

	t.Run("brackets inside strings", func(t *testing.T) {
		raw := `[{"title":"see [1]","content":"a ] b"}]`

		items, err := Array[item](raw)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "see [1]", items[0].Title)
	})

	t.Run("stray brackets in surrounding prose", func(t *testing.T) {
		raw := "The array [above] lists the posts:\n[{\"title\":\"T\"}]\n(see [notes])"

		items, err := Array[item](raw)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "T", items[0].Title)
	})

	t.Run("no delimiters", func(t *testing.T) {
		_, err := Array[item]("No JSON here, just text.")
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.NotErrorIs(t, err, ErrParse)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Array[item]("[not valid json}")
		assert.ErrorIs(t, err, ErrParse)
		assert.NotErrorIs(t, err, ErrMalformedResponse)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "[not valid json}", perr.Preview)

		var syntaxErr *json.SyntaxError
		assert.True(t, errors.As(err, &syntaxErr))
	})

	t.Run("unclosed", func(t *testing.T) {
		_, err := Array[item](`[{"title": "unclosed`)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("invalid outer payload never yields a nested span", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{
				name: "missing comma between items",
				raw:  `[{"title":"A","content":"a","platform":"twitter","hashtags":[]} {"title":"B","content":"b","platform":"email","hashtags":[]}]`,
			},
			{
				name: "nested empty array",
				raw:  `[{"title":"A","hashtags":[]},]`,
			},
			{
				name: "unclosed outer with closed inner",
				raw:  "Posts:\n[{\"title\":\"A\"}, [] ",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				items, err := Array[item](tt.raw)
				assert.ErrorIs(t, err, ErrParse)
				assert.Nil(t, items)
			})
		}
	})

	t.Run("wrong element shape", func(t *testing.T) {
		_, err := Array[item](`[1, 2, 3]`)
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestObject(t *testing.T) {
	t.Run("object with preamble", func(t *testing.T) {
		raw := "Sure! Here is the analysis:\n{\"suggestedPillars\":[\"education\"],\"launchStrategy\":\"Start small.\"}\nLet me know."

		a, err := Object[analysis](raw)
		require.NoError(t, err)
		assert.Equal(t, []string{"education"}, a.SuggestedPillars)
		assert.Equal(t, "Start small.", a.LaunchStrategy)
	})

	t.Run("missing fields stay empty", func(t *testing.T) {
		a, err := Object[analysis](`{"launchStrategy": "Go."}`)
		require.NoError(t, err)
		assert.Nil(t, a.SuggestedPillars)
	})

	t.Run("nested object", func(t *testing.T) {
		a, err := Object[map[string]any](`{"outer": {"inner": "value"}}`)
		require.NoError(t, err)
		assert.Contains(t, a, "outer")
	})

	t.Run("no braces", func(t *testing.T) {
		_, err := Object[analysis]("[1,2]")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("invalid outer payload never yields a nested object", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{"trailing comma", `{"launchStrategy": "x", "meta": {"k": 1}, }`},
			{"unclosed outer", `Analysis: {"launchStrategy": "x", "meta": {"k": 1}`},
			{"nested empty object", `{"suggestedPillars": [], "extra": {} "launchStrategy": "x"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				a, err := Object[analysis](tt.raw)
				assert.ErrorIs(t, err, ErrParse)
				assert.Equal(t, analysis{}, a)
			})
		}
	})

	t.Run("sibling object after stray braces", func(t *testing.T) {
		a, err := Object[analysis]("Using {placeholders} as noted:\n{\"launchStrategy\": \"Go.\"}")
		require.NoError(t, err)
		assert.Equal(t, "Go.", a.LaunchStrategy)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Object[analysis](`{"launchStrategy": }`)
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n[1]\n```", `[1]`},
		{"too short", "```{}```", "```{}```"},
		{"unterminated", "```json\n{\"a\":1}\n{\"b\":2}", "{\"a\":1}\n{\"b\":2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripMarkdownFences(tt.input))
		})
	}
}
