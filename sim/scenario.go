package sim

import (
	"fmt"
	"sort"
)

// Scenario is a named set of shock percentages. Shocks not listed in the
// source configuration are zero.
type Scenario struct {
	Name        string `yaml:"nombre" json:"nombre"`
	Description string `yaml:"descripcion" json:"descripcion"`
	Shocks      Shocks `yaml:"shocks" json:"shocks"`
}

// ScenarioCatalog is the read-only table of named scenarios, keyed by id
// (e.g. "caida_commodities").
type ScenarioCatalog map[string]Scenario

// Lookup returns the scenario with the given id.
func (c ScenarioCatalog) Lookup(id string) (Scenario, error) {
	s, ok := c[id]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario %q (known: %v)", id, c.IDs())
	}
	return s, nil
}

// IDs returns the scenario ids in sorted order.
func (c ScenarioCatalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ApplyScenario returns a copy of p carrying the scenario's seven shocks.
// Every other parameter is unchanged.
func ApplyScenario(p *SimulationParameters, s Scenario) *SimulationParameters {
	return p.WithShocks(s.Shocks)
}
