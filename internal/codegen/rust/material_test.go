package rust

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const preamble = "\n#[derive(Copy, Clone, Debug, PartialEq, Eq, Hash, PartialOrd, Ord, Serialize, Deserialize)]\n" +
	"#[serde(rename_all = \"snake_case\")]\n" +
	"pub enum Material {\n"

func TestMaterialSource(t *testing.T) {
	tests := []struct {
		name     string
		variants []string
		want     string
	}{
		{
			name:     "empty",
			variants: nil,
			want:     preamble + "}",
		},
		{
			name:     "single",
			variants: []string{"Stone"},
			want:     preamble + "  Stone,\n}",
		},
		{
			name:     "order and duplicates kept",
			variants: []string{"OakLog", "Stone", "OakLog"},
			want:     preamble + "  OakLog,\n  Stone,\n  OakLog,\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaterialSource(tt.variants)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("MaterialSource mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMaterialSourceIsDeterministic(t *testing.T) {
	variants := []string{"Stone", "Dirt", "GrassBlock"}
	a, err := MaterialSource(variants)
	require.NoError(t, err)
	b, err := MaterialSource(variants)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMaterialSourceDoesNotEscape(t *testing.T) {
	got, err := MaterialSource([]string{"Other:cobblestone"})
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(got), "  Other:cobblestone,\n"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderMaterialWriteError(t *testing.T) {
	err := RenderMaterial(failingWriter{}, []string{"Stone"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
