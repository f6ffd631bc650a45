package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

// Definition declares the field surface of one component type: which prop
// keys exist, what kind each one is, and optionally a JSON schema the props
// must satisfy before a build accepts them.
type Definition struct {
	Type   string
	Fields map[string]interfaces.FieldKind
	Schema map[string]any
}

// Registry is the thread-safe in-memory field schema catalog. It satisfies
// interfaces.FieldCatalog so the asset extractor can run schema-first.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]Definition
	compiled map[string]*jsonschema.Schema
}

// NewRegistry constructs an empty catalog.
func NewRegistry() *Registry {
	return &Registry{
		entries:  make(map[string]Definition),
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Register stores a definition, compiling its JSON schema when one is declared.
func (r *Registry) Register(def Definition) error {
	name := strings.ToLower(strings.TrimSpace(def.Type))
	if name == "" {
		return ErrInvalidDefinition
	}
	def.Type = name

	var compiled *jsonschema.Schema
	if len(def.Schema) > 0 {
		schema, err := compileSchema(def.Schema)
		if err != nil {
			return fmt.Errorf("%w: compile schema for %q: %v", ErrInvalidDefinition, name, err)
		}
		compiled = schema
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return ErrDuplicateDefinition
	}
	r.entries[name] = def
	if compiled != nil {
		r.compiled[name] = compiled
	}
	return nil
}

// Fields returns the declared field kinds for a component type.
func (r *Registry) Fields(componentType string) (map[string]interfaces.FieldKind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.entries[strings.ToLower(strings.TrimSpace(componentType))]
	if !ok {
		return nil, false
	}
	out := make(map[string]interfaces.FieldKind, len(def.Fields))
	for key, kind := range def.Fields {
		out[key] = kind
	}
	return out, true
}

// ValidateProps checks a prop bag against the declared JSON schema, if any.
// Types registered without a schema accept every prop bag.
func (r *Registry) ValidateProps(componentType string, props map[string]any) error {
	name := strings.ToLower(strings.TrimSpace(componentType))

	r.mu.RLock()
	_, known := r.entries[name]
	schema := r.compiled[name]
	r.mu.RUnlock()

	if !known {
		return fmt.Errorf("%w: %s", ErrUnknownType, componentType)
	}
	if schema == nil {
		return nil
	}
	// Round-trip through JSON so typed values (ints, nested structs) validate
	// the same way persisted props would.
	encoded, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("catalog: encode props for %s: %w", componentType, err)
	}
	var decoded any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return fmt.Errorf("catalog: decode props for %s: %w", componentType, err)
	}
	if err := schema.Validate(decoded); err != nil {
		return fmt.Errorf("catalog: props for %s: %w", componentType, err)
	}
	return nil
}

// List returns every registered component type in name order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

// Ensure Registry implements interfaces.FieldCatalog.
var _ interfaces.FieldCatalog = (*Registry)(nil)
