package registry

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"gopkg.in/yaml.v3"
)

// config is the YAML document accepted by Load:
//
//	alphabets:
//	  - base: 64
//	    name: Base 64 (URL)
//	    output: ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_
//	    input: ""     # optional, defaults to output
//	    fold: none    # none, lower or upper
type config struct {
	Alphabets []alphabetConfig `yaml:"alphabets"`
}

type alphabetConfig struct {
	Base   int    `yaml:"base"`
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Fold   Fold   `yaml:"fold"`
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (f *Fold) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "fold at line %d", redact.Safe(value.Line))
	}
	fold, err := parseFold(s)
	if err != nil {
		return err
	}
	*f = fold
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (f Fold) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// Load reads alphabet definitions from r and returns the built-in registry
// extended with them. Definitions replace built-in entries of the same base.
// An empty document yields the built-in registry.
func Load(r io.Reader) (*Registry, error) {
	return Default().Load(r)
}

// Load reads alphabet definitions from r and returns r's entries extended
// with them.
func (r *Registry) Load(rd io.Reader) (*Registry, error) {
	var cfg config
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Mark(errors.Wrap(err, "decoding alphabets"), ErrInvalidConfig)
	}
	entries := make([]Entry, 0, len(cfg.Alphabets))
	for i, ac := range cfg.Alphabets {
		name := ac.Name
		if name == "" {
			name = fmt.Sprintf("Base %d", ac.Base)
		}
		e, err := NewEntry(ac.Base, name, ac.Input, ac.Output, ac.Fold)
		if err != nil {
			return nil, errors.Wrapf(err, "alphabet %d", redact.Safe(i))
		}
		entries = append(entries, e)
	}
	return r.With(entries...)
}
