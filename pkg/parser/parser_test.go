package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripMarkup(t *testing.T) {
	p := &Parser{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "  The cat  sat ", want: "  The cat  sat "},
		{name: "entity", input: "Tom &amp; Jerry", want: "Tom & Jerry"},
		{name: "inline tags", input: "A <b>bold</b> <i>move</i>", want: "A bold move"},
		{name: "line break", input: "first<br>second", want: "first second"},
		{name: "paragraphs", input: "<p>one</p><p>two</p>", want: "one two"},
		{name: "script removed", input: "safe<script>alert(1)</script> text", want: "safe text"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.StripMarkup(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStripAll(t *testing.T) {
	p := &Parser{}

	got, err := p.StripAll([]string{"a &lt;b&gt;", "", "<em>c</em>"})
	require.NoError(t, err)
	require.Equal(t, []string{"a <b>", "", "c"}, got)
}
