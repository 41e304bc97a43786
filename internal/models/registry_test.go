package models

import (
	"sort"
	"strings"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry()

	info, ok := registry.Lookup("sonar-pro")
	if !ok {
		t.Fatal("expected sonar-pro to be a known model")
	}
	if info.ID != "sonar-pro" {
		t.Errorf("expected ID sonar-pro, got %s", info.ID)
	}
	if info.Limit.Context == 0 {
		t.Error("expected a non-zero context limit")
	}

	if _, ok := registry.Lookup("gpt-4"); ok {
		t.Error("expected gpt-4 to be unknown")
	}
}

func TestRegistryValidate(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name    string
		model   string
		wantErr bool
	}{
		{name: "default model", model: Default, wantErr: false},
		{name: "reasoning model", model: "sonar-reasoning-pro", wantErr: false},
		{name: "unknown model", model: "sonar-ultra", wantErr: true},
		{name: "empty model", model: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := registry.Validate(tt.model)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.model, err, tt.wantErr)
			}
		})
	}
}

func TestRegistryValidateErrorListsModels(t *testing.T) {
	err := NewRegistry().Validate("nope")
	if err == nil {
		t.Fatal("expected an error for unknown model")
	}
	for _, id := range NewRegistry().IDs() {
		if !strings.Contains(err.Error(), id) {
			t.Errorf("error message should list %s, got: %v", id, err)
		}
	}
}

func TestRegistryIDsSorted(t *testing.T) {
	ids := NewRegistry().IDs()
	if len(ids) == 0 {
		t.Fatal("expected at least one model")
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("expected sorted IDs, got %v", ids)
	}
}
