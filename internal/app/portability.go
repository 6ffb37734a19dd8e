package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/saadjs/lifelog/internal/ledger"
)

const bundleVersion = 1

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts an explicit format name, or derives one from the file
// extension when name is empty.
func ParseFormat(name, path string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return FormatYAML, nil
		default:
			return FormatJSON, nil
		}
	}
	switch name {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q (use json or yaml)", name)
}

// Bundle carries all three ledger documents in one file.
type Bundle struct {
	Version      int                      `json:"version" yaml:"version"`
	ExportedAt   string                   `json:"exportedAt" yaml:"exportedAt"`
	Nutrition    ledger.NutritionState    `json:"nutrition" yaml:"nutrition"`
	Fitness      ledger.FitnessState      `json:"fitness" yaml:"fitness"`
	Productivity ledger.ProductivityState `json:"productivity" yaml:"productivity"`
}

func (s *State) ExportBundle() Bundle {
	return Bundle{
		Version:      bundleVersion,
		ExportedAt:   s.Clock.Now().Format("2006-01-02T15:04:05Z07:00"),
		Nutrition:    s.Nutrition.Snapshot(),
		Fitness:      s.Fitness.Snapshot(),
		Productivity: s.Productivity.Snapshot(),
	}
}

func (s *State) Export(format Format) ([]byte, error) {
	b := s.ExportBundle()
	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("marshal export yaml: %w", err)
		}
		return out, nil
	case FormatJSON:
		out, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal export json: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

func DecodeBundle(raw []byte, format Format) (Bundle, error) {
	var b Bundle
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &b); err != nil {
			return Bundle{}, fmt.Errorf("parse import yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(raw, &b); err != nil {
			return Bundle{}, fmt.Errorf("parse import json: %w", err)
		}
	default:
		return Bundle{}, fmt.Errorf("unsupported format %q", format)
	}
	if b.Version != bundleVersion {
		return Bundle{}, fmt.Errorf("unsupported bundle version %d", b.Version)
	}
	return b, nil
}

// Import replaces every ledger document with the bundle's contents.
func (s *State) Import(raw []byte, format Format) error {
	b, err := DecodeBundle(raw, format)
	if err != nil {
		return err
	}
	s.Nutrition.Replace(b.Nutrition)
	s.Fitness.Replace(b.Fitness)
	s.Productivity.Replace(b.Productivity)
	return s.PersistErr()
}
