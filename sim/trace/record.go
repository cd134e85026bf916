// Package trace provides the step log written while a fiscal projection runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// SimulationStep records one simulated year as a human-readable log line.
type SimulationStep struct {
	Index       int    `json:"paso"`
	Description string `json:"descripcion"`
	Year        int    `json:"ano"`
	// Variables lists the indicators that breached a threshold this year.
	Variables []string `json:"variables_modificadas,omitempty"`
	// Impacts holds the alert messages for those breaches.
	Impacts []string `json:"impacto_en"`
}
