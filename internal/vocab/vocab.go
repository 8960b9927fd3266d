// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab loads extra brand and finish names from a directory of
// plain-text files, one term per line. Lines starting with # are comments.
//
// Supported files: brands.txt, finishes.txt.
package vocab

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pdiddy/paintquote/pkg/types"
)

const (
	BrandsFile   = "brands.txt"
	FinishesFile = "finishes.txt"
)

// Vocabulary holds the terms read from a vocab directory.
type Vocabulary struct {
	Brands   []string
	Finishes []string
}

// Load reads dir. A missing directory or missing files are not errors; Load
// returns an empty Vocabulary.
func Load(dir string) (Vocabulary, error) {
	var v Vocabulary
	if dir == "" {
		return v, nil
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}
		return v, eris.Wrapf(err, "vocab: stat %s", dir)
	}

	var err error
	if v.Brands, err = readTerms(filepath.Join(dir, BrandsFile)); err != nil {
		return Vocabulary{}, err
	}
	if v.Finishes, err = readTerms(filepath.Join(dir, FinishesFile)); err != nil {
		return Vocabulary{}, err
	}

	zap.L().Debug("vocab: loaded",
		zap.String("dir", dir),
		zap.Int("brands", len(v.Brands)),
		zap.Int("finishes", len(v.Finishes)),
	)
	return v, nil
}

func readTerms(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "vocab: read %s", filepath.Base(path))
	}

	var terms []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	return terms, eris.Wrapf(sc.Err(), "vocab: scan %s", filepath.Base(path))
}

// Apply returns cfg with the vocabulary merged into its known brands and
// finishes. Existing entries keep their position; duplicates are dropped
// case-insensitively.
func (v Vocabulary) Apply(cfg types.EngineConfig) types.EngineConfig {
	cfg.KnownBrands = merge(cfg.KnownBrands, v.Brands)
	cfg.KnownFinishes = merge(cfg.KnownFinishes, v.Finishes)
	return cfg
}

func merge(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]bool, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, term := range list {
			key := strings.ToLower(strings.TrimSpace(term))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, strings.TrimSpace(term))
		}
	}
	return out
}
