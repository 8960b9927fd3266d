// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paintquote/pkg/types"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Vocabulary
	}{
		{
			name: "reads brands and finishes and skips comments",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, BrandsFile, "# regional brands\nRodda\n  Miller Paint  \n\n")
				writeFile(t, dir, FinishesFile, "velvet\n# not a finish\nlow-lustre\n")
				return dir
			},
			want: Vocabulary{
				Brands:   []string{"Rodda", "Miller Paint"},
				Finishes: []string{"velvet", "low-lustre"},
			},
		},
		{
			name: "returns empty vocabulary for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Vocabulary{},
		},
		{
			name: "missing files are skipped",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, FinishesFile, "velvet\n")
				return dir
			},
			want: Vocabulary{Finishes: []string{"velvet"}},
		},
		{
			name: "empty directory name",
			setup: func(t *testing.T) string {
				return ""
			},
			want: Vocabulary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	cfg := types.DefaultEngineConfig()
	v := Vocabulary{
		Brands:   []string{"Rodda", "behr", " Miller Paint "},
		Finishes: []string{"Eggshell", "velvet"},
	}

	got := v.Apply(cfg)

	assert.Equal(t, append(append([]string{}, cfg.KnownBrands...), "Rodda", "Miller Paint"), got.KnownBrands)
	assert.Equal(t, append(append([]string{}, cfg.KnownFinishes...), "velvet"), got.KnownFinishes)
	assert.Equal(t, types.DefaultEngineConfig().KnownBrands, cfg.KnownBrands, "the input config is not modified")
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
