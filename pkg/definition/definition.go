// Package definition compiles declaratively described condition
// trees into runnable conditions over generic document values
// (nested map[string]any, as produced by YAML or JSON
// unmarshalling). It lets a suite ship expectation files without
// Go code, while the compiled conditions keep the full
// diagnostic-tree behaviour of the condition package.
package definition

// Condition type names understood by the default registry.
const (
	TypeEquals    = "equals"
	TypeAllOf     = "all_of"
	TypeNested    = "nested"
	TypeContains  = "contains"
	TypeElementAt = "element_at"
)

// Definition describes one node of a declarative condition tree.
type Definition struct {
	// Type is the condition type (e.g. "equals", "all_of",
	// "nested", "contains", "element_at").
	Type string `json:"type" yaml:"type"`

	// Label is the human-readable group or leaf description.
	// When empty, composite types that project a target default
	// to the target path.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Target is a dot-separated path into the evaluated
	// document (e.g. "address.town").
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Value is the expected value for "equals".
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// Index is the element position for "element_at". A pointer
	// so that an omitted index can be told apart from zero.
	Index *int `json:"index,omitempty" yaml:"index,omitempty"`

	// Conditions holds the nested definitions of composite
	// types, in evaluation order.
	Conditions []Definition `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}
