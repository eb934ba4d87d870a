package prng

import (
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TestVector is one recorded output sequence. The engine is built either
// from Seed (hashed with SeedFromInts) or from State (hex-encoded
// SaveState bytes); exactly one must be set.
type TestVector struct {
	Name    string   `yaml:"name"`
	Variant string   `yaml:"variant"`
	Seed    *int64   `yaml:"seed,omitempty"`
	State   string   `yaml:"state,omitempty"`
	Outputs []uint64 `yaml:"outputs"`
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `yaml:"version"`
	Description string       `yaml:"description"`
	Vectors     []TestVector `yaml:"vectors"`
}

// LoadTestVectors loads test vectors from a YAML file.
// Returns an error if the file cannot be read or parsed.
//
// This is used internally for testing but exported for external
// cross-implementation checks.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetVariant returns the Variant value for this test vector.
func (tv *TestVector) GetVariant() (Variant, error) {
	return ParseVariant(tv.Variant)
}

// GetState returns the decoded raw state bytes.
func (tv *TestVector) GetState() ([]byte, error) {
	state, err := hex.DecodeString(tv.State)
	if err != nil {
		return nil, fmt.Errorf("invalid state hex: %w", err)
	}
	return state, nil
}

// NewEngine builds the engine the vector's outputs were recorded from.
func (tv *TestVector) NewEngine() (Engine, error) {
	v, err := tv.GetVariant()
	if err != nil {
		return nil, err
	}

	switch {
	case tv.Seed != nil && tv.State == "":
		return NewSeeded(v, SeedFromInts(*tv.Seed))
	case tv.Seed == nil && tv.State != "":
		state, err := tv.GetState()
		if err != nil {
			return nil, err
		}
		e, err := NewEngine(v)
		if err != nil {
			return nil, err
		}
		if err := e.RestoreState(state); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("vector %q must set exactly one of seed and state", tv.Name)
	}
}
