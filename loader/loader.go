// Package loader reads route record files from a directory tree. Each
// immediate subdirectory of the root is a namespace; each .json or .yaml
// file inside holds one route record or a list of them.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"

	"github.com/octogen/octogen/ir"
)

// Namespace groups the route records found under one directory.
type Namespace struct {
	// Name is the directory name, used as the enclosing namespace for
	// naming and as the output file stem.
	Name string

	// Records are the parsed route records in file order, then in-file
	// order.
	Records []*ir.RouteRecord
}

// RecordError describes one malformed record. Malformed input rejects
// only the offending record; siblings load normally.
type RecordError struct {
	File  string
	Index int
	Err   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("%s: record %d: %v", e.File, e.Index, e.Err)
}

func (e RecordError) Unwrap() error { return e.Err }

// Load reads every namespace under root. The returned error covers I/O
// failures only; per-record validation failures come back as
// RecordErrors.
func Load(root string) ([]Namespace, []RecordError, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, fmt.Errorf("read routes directory: %w", err)
	}

	var namespaces []Namespace
	var bad []RecordError

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		ns := Namespace{Name: entry.Name()}
		dir := filepath.Join(root, entry.Name())

		files, err := os.ReadDir(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("read namespace %s: %w", entry.Name(), err)
		}

		for _, f := range files {
			if f.IsDir() {
				continue
			}
			path := filepath.Join(dir, f.Name())
			raws, err := readRouteFile(path)
			if err != nil {
				bad = append(bad, RecordError{File: path, Index: -1, Err: err})
				continue
			}
			for i, raw := range raws {
				rec, err := ir.NewRouteRecord(raw)
				if err != nil {
					bad = append(bad, RecordError{File: path, Index: i, Err: err})
					continue
				}
				ns.Records = append(ns.Records, rec)
			}
		}

		if len(ns.Records) > 0 {
			namespaces = append(namespaces, ns)
		}
	}
	return namespaces, bad, nil
}

// readRouteFile decodes one file into raw records. A file may hold a
// single record object or a list.
func readRouteFile(path string) ([]ir.RawRoute, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeRoutes(data, func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	case ".yaml", ".yml":
		return decodeRoutes(data, func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	default:
		return nil, fmt.Errorf("unsupported route file %q", filepath.Base(path))
	}
}

func decodeRoutes(data []byte, unmarshal func([]byte, any) error) ([]ir.RawRoute, error) {
	var list []ir.RawRoute
	if err := unmarshal(data, &list); err == nil {
		return list, nil
	}

	var one ir.RawRoute
	if err := unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("decode route records: %w", err)
	}
	return []ir.RawRoute{one}, nil
}
