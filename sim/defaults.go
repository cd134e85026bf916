package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Defaults struct {
	Version    string               `yaml:"version"`
	Parameters SimulationParameters `yaml:"parameters"`
	Scenarios  ScenarioCatalog      `yaml:"scenarios"`
}

// LoadDefaults reads the model calibration and scenario catalogue from path.
// Unknown keys are an error so typos in the file cannot silently zero a parameter.
func LoadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults file: %w", err)
	}
	var d Defaults
	if err := decodeStrict(data, &d); err != nil {
		return nil, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("defaults file %s: %w", path, err)
	}
	return &d, nil
}

// LoadParameterOverrides decodes a YAML parameter file on top of base and
// returns the merged copy. Keys absent from the file keep base's values.
func LoadParameterOverrides(path string, base *SimulationParameters) (*SimulationParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}
	out := *base
	if err := decodeStrict(data, &out); err != nil {
		return nil, fmt.Errorf("parsing parameter file %s: %w", path, err)
	}
	return &out, nil
}

// Validate checks the structural fields of the defaults file. Individual
// calibration values are taken as given.
func (d *Defaults) Validate() error {
	if d.Version == "" {
		return fmt.Errorf("version must be set")
	}
	if d.Parameters.Years < 0 {
		return fmt.Errorf("anos must be non-negative, got %d", d.Parameters.Years)
	}
	for id, s := range d.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario %q has no nombre", id)
		}
	}
	return nil
}

// MarshalParameters renders parameters in the defaults.yaml schema.
func MarshalParameters(p *SimulationParameters) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encoding parameters: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding parameters: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeStrict(data []byte, out any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	return decoder.Decode(out)
}
