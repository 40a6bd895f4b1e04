package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		separator string
		expected  string
	}{
		{
			name:      "lowercases and joins words",
			input:     "Hello world",
			separator: "-",
			expected:  "hello-world",
		},
		{
			name:      "replaces dots and flipped separator",
			input:     "Hello.World_foo__bar",
			separator: "-",
			expected:  "hello-world-foo-bar",
		},
		{
			name:      "transliterates accents",
			input:     "Ñandú café",
			separator: "-",
			expected:  "nandu-cafe",
		},
		{
			name:      "expands cyrillic characters",
			input:     "Чебурашка",
			separator: "-",
			expected:  "cheburashka",
		},
		{
			name:      "trims separators and collapses whitespace",
			input:     "  --Leading   and trailing--  ",
			separator: "-",
			expected:  "leading-and-trailing",
		},
		{
			name:      "strips punctuation",
			input:     "What's new? (2016 edition!)",
			separator: "-",
			expected:  "whats-new-2016-edition",
		},
		{
			name:      "copyright sign keeps its letter",
			input:     "© 2016 Acme",
			separator: "-",
			expected:  "c-2016-acme",
		},
		{
			name:      "underscore separator flips dashes",
			input:     "Hello World-foo",
			separator: "_",
			expected:  "hello_world_foo",
		},
		{
			name:      "drops unmapped characters",
			input:     "日本語",
			separator: "-",
			expected:  "",
		},
		{
			name:      "no-break space acts as a word boundary",
			input:     "hello\u00a0world",
			separator: "-",
			expected:  "hello-world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slug(tt.input, tt.separator))
		})
	}
}

func TestSlug_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello world",
		"Ñandú café",
		"  --Leading   and trailing--  ",
		"a.b.c_d-e",
		"Straße über Äpfel",
		"",
	}

	for _, input := range inputs {
		once := Slug(input, "-")
		assert.Equal(t, once, Slug(once, "-"), "input %q", input)
	}
}

func TestSlug_PatternsCompiledOncePerSeparator(t *testing.T) {
	first := slugPatternsFor("_")
	assert.Same(t, first, slugPatternsFor("_"))
	assert.NotSame(t, first, slugPatternsFor("-"))

	assert.Equal(t, "hello_world_again", Slug("Hello-world again", "_"))
	assert.Equal(t, "hello_world_again", Slug("Hello-world again", "_"))
}

func TestToASCII(t *testing.T) {
	assert.Equal(t, "Strasse", ToASCII("Straße"))
	assert.Equal(t, "AEon", ToASCII("Æon"))
	assert.Equal(t, "shchi", ToASCII("щи"))
	assert.Equal(t, "plain text\n", ToASCII("plain text\n"))
	assert.Equal(t, "ab", ToASCII("a日b"))
	// đ is listed for "d" before "dj"; the first mapping wins.
	assert.Equal(t, "d", ToASCII("đ"))
}

func TestPrefixSuffixHelpers(t *testing.T) {
	assert.True(t, StartsWith("content/about.html", "content"))
	assert.False(t, StartsWith("content/about.html", ""))
	assert.False(t, StartsWith("about.html", "content"))

	assert.True(t, EndsWith("about.html", ".html"))
	assert.False(t, EndsWith("about.md", ".html"))

	assert.Equal(t, "/about.html", DeletePrefix("content/about.html", "content"))
	assert.Equal(t, "about.html", DeletePrefix("about.html", "content"))
	assert.Equal(t, "about.html", DeletePrefix("about.html", ""))

	assert.Equal(t, "about", DeleteSuffix("about.html", ".html"))
	assert.Equal(t, "about.md", DeleteSuffix("about.md", ".html"))
	assert.Equal(t, "about", DeleteSuffix("about", ""))
}
