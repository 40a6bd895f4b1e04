package importers

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAllRecords(t *testing.T, input string, delimiter, enclosure, escape rune) [][]string {
	t.Helper()

	reader := newDelimitedReader(strings.NewReader(input), delimiter, enclosure, escape)
	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return records
		}
		require.NoError(t, err)
		records = append(records, record)
	}
}

func TestDelimitedReader(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter rune
		enclosure rune
		escape    rune
		expected  [][]string
	}{
		{
			name:      "plain records",
			input:     "a,b,c\nd,e,f\n",
			delimiter: ',', enclosure: '"', escape: '\\',
			expected: [][]string{{"a", "b", "c"}, {"d", "e", "f"}},
		},
		{
			name:      "last record without newline",
			input:     "a,b\nc,d",
			delimiter: ',', enclosure: '"', escape: '\\',
			expected: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:      "enclosed delimiters and newlines",
			input:     "\"a,b\",\"line 1\nline 2\"\n",
			delimiter: ',', enclosure: '"', escape: '\\',
			expected: [][]string{{"a,b", "line 1\nline 2"}},
		},
		{
			name:      "doubled enclosure",
			input:     `"say ""hi""",x`,
			delimiter: ',', enclosure: '"', escape: '\\',
			expected: [][]string{{`say "hi"`, "x"}},
		},
		{
			name:      "escaped enclosure",
			input:     `"say \"hi\"",x`,
			delimiter: ',', enclosure: '"', escape: '\\',
			expected: [][]string{{`say "hi"`, "x"}},
		},
		{
			name:      "escape before other characters is literal",
			input:     `"C:\temp",x`,
			delimiter: ',', enclosure: '"', escape: '\\',
			expected: [][]string{{`C:\temp`, "x"}},
		},
		{
			name:      "escape outside enclosure is literal",
			input:     `a\"b,c`,
			delimiter: ',', enclosure: '"', escape: '\\',
			expected: [][]string{{`a\"b`, "c"}},
		},
		{
			name:      "custom delimiter and enclosure",
			input:     "'It''s';'a;b'\n",
			delimiter: ';', enclosure: '\'', escape: 0,
			expected: [][]string{{"It's", "a;b"}},
		},
		{
			name:      "crlf and cr line endings",
			input:     "a,b\r\nc,d\re,f",
			delimiter: ',', enclosure: '"', escape: '\\',
			expected: [][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}},
		},
		{
			name:      "skips blank lines",
			input:     "a,b\n\n\r\nc,d\n\n",
			delimiter: ',', enclosure: '"', escape: '\\',
			expected: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:      "strips byte order mark",
			input:     "\uFEFFtitle,permalink\n",
			delimiter: ',', enclosure: '"', escape: '\\',
			expected: [][]string{{"title", "permalink"}},
		},
		{
			name:      "empty fields",
			input:     "a,,c,\n",
			delimiter: ',', enclosure: '"', escape: '\\',
			expected: [][]string{{"a", "", "c", ""}},
		},
		{
			name:      "tab delimiter",
			input:     "a\tb c\n",
			delimiter: '\t', enclosure: '"', escape: '\\',
			expected: [][]string{{"a", "b c"}},
		},
		{
			name:      "empty input",
			input:     "",
			delimiter: ',', enclosure: '"', escape: '\\',
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, readAllRecords(t, tt.input, tt.delimiter, tt.enclosure, tt.escape))
		})
	}
}
