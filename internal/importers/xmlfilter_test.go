package importers

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLCharFilterReader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "keeps whitespace", input: "a\tb\nc\rd e", expected: "a\tb\nc\rd e"},
		{name: "drops control characters", input: "a\x00b\x08c\x0bd\x1fe", expected: "abcde"},
		{name: "keeps multibyte text", input: "café Чебурашка", expected: "café Чебурашка"},
		{name: "drops non characters", input: "a\uFFFEb\uFFFFc", expected: "abc"},
		{name: "keeps private use area", input: "a\uE000b", expected: "a\uE000b"},
		{name: "drops supplementary planes", input: "a\U0001F600b", expected: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := io.ReadAll(newXMLCharFilterReader(strings.NewReader(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}
