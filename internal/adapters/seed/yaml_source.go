// Package seed loads the desk's initial records from YAML.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/example/desk/internal/ports/secondary"
)

//go:embed default.yaml
var defaultSeed []byte

// DefaultYAML returns a copy of the built-in seed file.
func DefaultYAML() []byte {
	return bytes.Clone(defaultSeed)
}

type seedFile struct {
	Customers []customerEntry `yaml:"customers"`
	History   []requestEntry  `yaml:"history"`
}

type customerEntry struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Reason string `yaml:"reason"`
}

type requestEntry struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Timestamp   string `yaml:"timestamp"`
}

// YAMLSource implements secondary.SeedSource over a YAML file.
// An empty path selects the built-in seed.
type YAMLSource struct {
	path string
}

// NewYAMLSource creates a seed source reading from path.
func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{path: path}
}

// Load reads and decodes the seed file.
func (s *YAMLSource) Load(ctx context.Context) (*secondary.SeedData, error) {
	data := defaultSeed
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, errors.Wrap(err, "read seed file")
		}
	}
	return Decode(data)
}

// Decode parses seed YAML. Unknown keys are rejected so typos surface early.
func Decode(data []byte) (*secondary.SeedData, error) {
	var f seedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		// An empty document decodes to nothing at all.
		if errors.Is(err, io.EOF) {
			return &secondary.SeedData{}, nil
		}
		return nil, errors.Wrap(err, "decode seed yaml")
	}

	out := &secondary.SeedData{
		Customers: make([]secondary.SeedCustomer, 0, len(f.Customers)),
		History:   make([]secondary.SeedRequest, 0, len(f.History)),
	}
	for i, c := range f.Customers {
		if c.ID == "" {
			return nil, errors.Errorf("customer #%d has no id", i+1)
		}
		out.Customers = append(out.Customers, secondary.SeedCustomer(c))
	}
	for i, r := range f.History {
		if r.ID == "" {
			return nil, errors.Errorf("history request #%d has no id", i+1)
		}
		out.History = append(out.History, secondary.SeedRequest(r))
	}
	return out, nil
}

// Ensure YAMLSource implements the interface
var _ secondary.SeedSource = (*YAMLSource)(nil)
