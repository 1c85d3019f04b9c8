package extmap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverrides(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Override
	}{
		{
			name:  "plain rows",
			input: "blend,3D\nstl,3D\n",
			want: []Override{
				{Ext: ".blend", Category: "3D"},
				{Ext: ".stl", Category: "3D"},
			},
		},
		{
			name:  "leading dot and glob forms accepted",
			input: ".BLEND,3D\n*.epub,Books\n",
			want: []Override{
				{Ext: ".blend", Category: "3D"},
				{Ext: ".epub", Category: "Books"},
			},
		},
		{
			name:  "comments and blank lines skipped",
			input: "# custom mapping\n\nblend,3D\n",
			want:  []Override{{Ext: ".blend", Category: "3D"}},
		},
		{
			name:  "row without comma skipped, rest loads",
			input: "not-a-row\nblend,3D\n",
			want:  []Override{{Ext: ".blend", Category: "3D"}},
		},
		{
			name:  "empty extension skipped",
			input: ",Misc\nblend,3D\n",
			want:  []Override{{Ext: ".blend", Category: "3D"}},
		},
		{
			name:  "empty category skipped",
			input: "blend,\nstl,3D\n",
			want:  []Override{{Ext: ".stl", Category: "3D"}},
		},
		{
			name:  "whitespace trimmed",
			input: "  blend , 3D \n",
			want:  []Override{{Ext: ".blend", Category: "3D"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOverrides(strings.NewReader(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Run("loads from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "map.csv")
		require.NoError(t, os.WriteFile(path, []byte("blend,3D\n"), 0644))

		overrides, err := LoadOverrides(path)
		require.NoError(t, err)
		assert.Equal(t, []Override{{Ext: ".blend", Category: "3D"}}, overrides)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.csv"))
		assert.Error(t, err)
	})
}

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "txt", want: ".txt"},
		{in: ".txt", want: ".txt"},
		{in: "*.txt", want: ".txt"},
		{in: "TXT", want: ".txt"},
		{in: "...txt", want: ".txt"},
		{in: "", want: ""},
		{in: "   ", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeExt(tt.in), "NormalizeExt(%q)", tt.in)
	}
}
