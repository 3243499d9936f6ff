package engine

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/leapstack-labs/leapfol/pkg/bol"
	"github.com/leapstack-labs/leapfol/pkg/core"
	"github.com/leapstack-labs/leapfol/pkg/idt"
	"github.com/leapstack-labs/leapfol/pkg/morphism"
)

// source is a file read once and hashed.
type source struct {
	path string
	data []byte
}

func readSource(path string) (*source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &source{path: path, data: data}, nil
}

// hashSources returns the hex sha256 of the concatenated file contents.
func hashSources(sources ...*source) string {
	h := sha256.New()
	for _, s := range sources {
		h.Write(s.data)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// LoadVocabulary decodes the vocabulary document at path.
func (e *Engine) LoadVocabulary(path string) (*bol.Vocabulary, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return e.decodeVocabulary(src)
}

func (e *Engine) decodeVocabulary(src *source) (*bol.Vocabulary, error) {
	var v *bol.Vocabulary
	err := e.stage(core.StageDecode, func() error {
		var err error
		v, err = idt.DecodeVocabulary(bytes.NewReader(src.data))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.path, err)
	}
	return v, nil
}

func (e *Engine) decodeMorphism(src *source) (*morphism.Morphism, error) {
	var m *morphism.Morphism
	err := e.stage(core.StageDecode, func() error {
		var err error
		m, err = idt.DecodeMorphism(bytes.NewReader(src.data))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.path, err)
	}
	return m, nil
}

func statsOf(v *bol.Vocabulary) core.RunStats {
	if v == nil {
		return core.RunStats{}
	}
	return core.RunStats{Declarations: len(v.Decls), Axioms: len(v.Axioms())}
}
