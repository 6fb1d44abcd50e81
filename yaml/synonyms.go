// Package yaml loads confindex configuration files written in YAML.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/confindex"
	"gopkg.in/yaml.v3"
)

// synonymFile is the on-disk layout of a synonym table:
//
//	synonyms:
//	  - alternate: catholick
//	    preferred: catholic
type synonymFile struct {
	Synonyms []synonymEntry `yaml:"synonyms"`
}

type synonymEntry struct {
	Alternate string `yaml:"alternate"`
	Preferred string `yaml:"preferred"`
}

// LoadSynonyms decodes a synonym table from r, preserving entry order.
// An empty document yields an empty table.
func LoadSynonyms(r io.Reader) ([]confindex.Synonym, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f synonymFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []confindex.Synonym{}, nil
		}
		return nil, confindex.Errorf(confindex.EINVALID, "decode synonyms: %v", err)
	}

	synonyms := make([]confindex.Synonym, 0, len(f.Synonyms))
	for i, e := range f.Synonyms {
		if e.Alternate == "" {
			return nil, confindex.Errorf(confindex.EINVALID, "synonym %d: alternate word required", i+1)
		}
		synonyms = append(synonyms, confindex.Synonym{
			AlternateWord: e.Alternate,
			PreferredWord: e.Preferred,
		})
	}
	return synonyms, nil
}

// LoadSynonymsFile reads a synonym table from the file at path.
func LoadSynonymsFile(path string) ([]confindex.Synonym, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open synonyms file: %w", err)
	}
	defer f.Close()

	synonyms, err := LoadSynonyms(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return synonyms, nil
}
