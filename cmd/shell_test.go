package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommands(t *testing.T) {
	tests := []struct {
		name string
		line string
		want [][]string
	}{
		{name: "single", line: "ls Projects", want: [][]string{{"ls", "Projects"}}},
		{name: "quoted", line: `alias set rep 13 "quarterly report"`, want: [][]string{{"alias", "set", "rep", "13", "quarterly report"}}},
		{name: "sequence", line: "ls; hist --limit 3", want: [][]string{{"ls"}, {"hist", "--limit", "3"}}},
		{name: "quoted separator", line: `resolve 'a;b'`, want: [][]string{{"resolve", "a;b"}}},
		{name: "escaped separator", line: `resolve a\;b`, want: [][]string{{"resolve", "a;b"}}},
		{name: "empty segments", line: ";; ls ;", want: [][]string{{"ls"}}},
		{name: "search tokens", line: "resolve %rep ^notes report$ =a.txt!", want: [][]string{{"resolve", "%rep", "^notes", "report$", "=a.txt!"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitCommands(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitCommandsRejectsPipes(t *testing.T) {
	_, err := splitCommands("ls | grep notes")
	require.Error(t, err)

	_, err = splitCommands(`resolve "unterminated`)
	require.Error(t, err)
}
