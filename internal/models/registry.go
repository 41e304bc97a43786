package models

import (
	"fmt"
	"sort"
	"strings"
)

// ModelInfo describes a Perplexity model the CLI knows about.
type ModelInfo struct {
	ID          string
	Name        string
	Description string
	Limit       Limit
}

// Limit holds the context and output token limits for a model.
type Limit struct {
	Context int
	Output  int
}

// Registry provides validation and information about the Sonar model family.
// The table is maintained by hand; Perplexity does not publish a model
// listing endpoint.
type Registry struct {
	models map[string]ModelInfo
}

// NewRegistry creates a registry populated with the known Sonar models.
func NewRegistry() *Registry {
	return &Registry{
		models: map[string]ModelInfo{
			"sonar": {
				ID:          "sonar",
				Name:        "Sonar",
				Description: "lightweight online model, fast and cheap",
				Limit:       Limit{Context: 128_000, Output: 4_096},
			},
			"sonar-pro": {
				ID:          "sonar-pro",
				Name:        "Sonar Pro",
				Description: "advanced online model with deeper retrieval",
				Limit:       Limit{Context: 200_000, Output: 8_192},
			},
			"sonar-reasoning": {
				ID:          "sonar-reasoning",
				Name:        "Sonar Reasoning",
				Description: "chain-of-thought model with live search",
				Limit:       Limit{Context: 128_000, Output: 4_096},
			},
			"sonar-reasoning-pro": {
				ID:          "sonar-reasoning-pro",
				Name:        "Sonar Reasoning Pro",
				Description: "strongest reasoning model with live search",
				Limit:       Limit{Context: 128_000, Output: 8_192},
			},
		},
	}
}

// Lookup returns information about a model by its identifier.
func (r *Registry) Lookup(id string) (ModelInfo, bool) {
	info, ok := r.models[id]
	return info, ok
}

// Validate checks that the given model identifier is known. Unknown models
// are rejected up front rather than sent to the API, so typos fail with the
// list of valid choices instead of an opaque service error.
func (r *Registry) Validate(id string) error {
	if _, ok := r.models[id]; !ok {
		return fmt.Errorf("unknown model %q (available: %s)", id, strings.Join(r.IDs(), ", "))
	}
	return nil
}

// IDs returns the known model identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.models))
	for id := range r.models {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Default is the model used when no -m/--model flag is given.
const Default = "sonar"

var defaultRegistry = NewRegistry()

// GetGlobalRegistry returns the shared registry instance.
func GetGlobalRegistry() *Registry {
	return defaultRegistry
}
