// Package registry provides a global registry of named wire samples.
// Samples register themselves in init() functions, so the CLI can list,
// solve and check them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Want is the known answer for a sample.
type Want struct {
	Distance        int
	Steps           int
	NoIntersections bool // The wires never cross; both queries must fail
}

// Sample is a pair of wire descriptions with a known answer.
type Sample interface {
	// ID returns a unique identifier for this sample (e.g., "demo").
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Lines returns the two wire descriptions, in order.
	Lines() []string

	// Want returns the expected result.
	Want() Want
}

// SampleInfo contains metadata about a registered sample.
type SampleInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a sample.
type Factory func() Sample

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a sample factory to the registry.
// Panics if a sample with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: sample %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered samples, sorted by ID.
func List() []SampleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SampleInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SampleInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a sample by its ID.
func Create(id string) (Sample, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown sample %q", id)
	}

	return f(), nil
}

// Exists checks if a sample with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
