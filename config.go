package stixgraph

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/stixgraph/graph"
)

// Config is a YAML session configuration: graph mode, observable
// inclusion, and a list of bundle sources to ingest in order.
//
// Example session.yaml:
//
//	mode: simple
//	include_observables: false
//	sources:
//	  - bundles/enterprise-attack.json
//	  - https://intel.example.com/feed.json
type Config struct {
	// Mode is the graph mode ("multi" or "simple"). Empty means the
	// default, multi.
	Mode string `yaml:"mode,omitempty"`

	// IncludeObservables controls observable materialization. Nil
	// means the default, true.
	IncludeObservables *bool `yaml:"include_observables,omitempty"`

	// Sources are bundle source specifiers (file paths, directories,
	// or URLs), ingested in the listed order.
	Sources []string `yaml:"sources,omitempty"`
}

// LoadConfig reads and parses a YAML session configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: "LoadConfig", Kind: KindConfiguration,
			Err: fmt.Errorf("reading config file: %w", err)}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &Error{Op: "LoadConfig", Kind: KindConfiguration,
			Err: fmt.Errorf("parsing config file %s: %w", path, err)}
	}
	return &cfg, nil
}

// Options translates the config into converter options. Unset fields
// contribute nothing, so explicit options appended after these win.
func (c *Config) Options() []Option {
	var opts []Option
	if c.Mode != "" {
		opts = append(opts, WithMode(graph.Mode(c.Mode)))
	}
	if c.IncludeObservables != nil {
		opts = append(opts, WithObservables(*c.IncludeObservables))
	}
	return opts
}

// BuildFromConfig loads a session configuration file and ingests every
// listed source into one graph. Options given here override the file.
func BuildFromConfig(ctx context.Context, path string, opts ...Option) (graph.Graph, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	conv, err := New(append(cfg.Options(), opts...)...)
	if err != nil {
		return nil, err
	}

	g := conv.NewGraph()
	for _, src := range cfg.Sources {
		if err := conv.ingest(ctx, g, src); err != nil {
			return nil, err
		}
	}
	return g, nil
}
