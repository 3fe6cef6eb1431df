package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    File
		wantErr string
	}{
		{
			name: "valid",
			yaml: `
default_index: 1
pages:
  - title: Recommend
    body: Things you might like.
  - title: Follow
`,
			want: File{
				DefaultIndex: 1,
				Pages: []PageSpec{
					{Title: "Recommend", Body: "Things you might like."},
					{Title: "Follow"},
				},
			},
		},
		{
			name:    "no pages",
			yaml:    "default_index: 0\n",
			wantErr: ErrNoPages.Error(),
		},
		{
			name:    "missing title",
			yaml:    "pages:\n  - body: untitled\n",
			wantErr: "page 0: missing title",
		},
		{
			name:    "malformed",
			yaml:    "pages: [",
			wantErr: "parsing catalog",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.yaml")
	err := os.WriteFile(path, []byte("pages:\n  - title: Only\n"), 0o644)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []PageSpec{{Title: "Only"}}, got.Pages)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault(t *testing.T) {
	f := Default()

	assert.Len(t, f.Pages, 11)
	assert.Equal(t, 0, f.DefaultIndex)
	for _, p := range f.Pages {
		assert.NotEmpty(t, p.Title)
		assert.Contains(t, p.Body, p.Title)
	}
}
