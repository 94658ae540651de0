package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alanchen34/stratify"
)

func TestLoadConfig(t *testing.T) {
	t.Run("parses and applies defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.yaml")
		data := `
targetYear: 2012
seed: 7
categories:
  books: testdata/books.tsv
  music: testdata/music.tsv
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 2012, cfg.TargetYear)
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, 400, cfg.TargetSamples)
		require.Equal(t, 5, cfg.MinWords)
		require.Equal(t, "processed_data", cfg.OutputDir)
		require.Equal(t, "final_dataset.csv", cfg.MergedOutput)
		require.Len(t, cfg.Categories, 2)
	})

	t.Run("rejects config without categories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.yaml")
		require.NoError(t, os.WriteFile(path, []byte("targetYear: 2012\n"), 0o644))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrNoCategories)
	})

	t.Run("rejects missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.yaml")
		require.NoError(t, os.WriteFile(path, []byte("categories: [broken\n"), 0o644))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.Categories = map[string]string{"books": "books.tsv"}

		return cfg
	}

	t.Run("accepts defaults with categories", func(t *testing.T) {
		cfg := valid()
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects negative target year", func(t *testing.T) {
		cfg := valid()
		cfg.TargetYear = -1
		require.Error(t, cfg.Validate())
	})

	t.Run("surfaces sampler config violations", func(t *testing.T) {
		cfg := valid()
		cfg.TargetSamples = -5
		require.ErrorIs(t, cfg.Validate(), stratify.ErrInvalidTarget)
	})
}

func TestSamplerConfigProjection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Categories = map[string]string{"books": "books.tsv"}
	cfg.StratifyByRating = true

	sc := cfg.samplerConfig()
	require.Equal(t, cfg.TargetSamples, sc.TargetSamples)
	require.Equal(t, cfg.Seed, sc.Seed)
	require.Equal(t, cfg.MinWords, sc.MinWords)
	require.True(t, sc.StratifyByRating)
	require.Equal(t, stratify.DefaultBuckets(), sc.Buckets)
}
