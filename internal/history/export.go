// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes every record matching opts to w as a YAML list.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, opts ListOptions) error {
	recs, err := s.exportRecords(ctx, opts)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(recs); err != nil {
		return eris.Wrap(err, "history: marshal YAML")
	}
	return eris.Wrap(enc.Close(), "history: flush YAML")
}

// ExportJSON writes every record matching opts to w as an indented JSON array.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, opts ListOptions) error {
	recs, err := s.exportRecords(ctx, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(recs), "history: marshal JSON")
}

func (s *Store) exportRecords(ctx context.Context, opts ListOptions) ([]Record, error) {
	opts.Limit = exportLimit
	recs, err := s.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []Record{}
	}
	return recs, nil
}
