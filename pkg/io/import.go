package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/topology"
)

// ReadComplex decodes a JSON complex from r and builds a store from it.
// The cells of the returned store are unplaced roots; call
// [topology.Store.SeedForest] to give them an initial forest.
// ReadComplex does not close r.
func ReadComplex(r io.Reader) (*topology.Store, error) {
	var t topology.Table
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode complex")
	}
	for i, c := range t {
		if len(c.Anchors) != len(c.Neighbors) {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"cell %d: %d anchors for %d edges", i, len(c.Anchors), len(c.Neighbors))
		}
	}
	return topology.Build(t)
}

// ImportComplex reads a JSON complex from the file at path.
func ImportComplex(path string) (*topology.Store, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadComplex(f)
}
