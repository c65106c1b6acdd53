package definition

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alex859/precise-assertions/pkg/condition"
)

// Compiler turns one definition into a runnable condition. The
// registry is passed in so composite compilers can compile their
// nested definitions, including custom types.
type Compiler func(
	reg *Registry,
	def Definition,
) (condition.Condition[any], error)

// Registry maps condition type names to compilers. It is safe
// for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	compilers map[string]Compiler
}

// NewRegistry creates a Registry with all built-in condition
// types pre-registered.
func NewRegistry() *Registry {
	r := &Registry{compilers: make(map[string]Compiler)}
	r.registerDefaults()
	return r
}

func (r *Registry) registerDefaults() {
	r.compilers[TypeEquals] = compileEquals
	r.compilers[TypeAllOf] = compileAllOf
	r.compilers[TypeNested] = compileNested
	r.compilers[TypeContains] = compileContains
	r.compilers[TypeElementAt] = compileElementAt
}

// Register adds a custom compiler for the given condition type.
// Returns an error if the type is already registered.
func (r *Registry) Register(
	conditionType string,
	compiler Compiler,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.compilers[conditionType]; exists {
		return fmt.Errorf(
			"condition type already registered: %s",
			conditionType,
		)
	}

	r.compilers[conditionType] = compiler
	return nil
}

// Compile turns a definition tree into a runnable condition.
// All validation happens here: a compiled condition never fails
// at evaluation time except for element indexes past the end of
// the evaluated slice.
func (r *Registry) Compile(
	def Definition,
) (condition.Condition[any], error) {
	r.mu.RLock()
	compiler, exists := r.compilers[def.Type]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf(
			"unknown condition type: %q", def.Type,
		)
	}

	return compiler(r, def)
}

// CompileAll compiles a list of definitions in order.
func (r *Registry) CompileAll(
	defs []Definition,
) ([]condition.Condition[any], error) {
	conditions := make([]condition.Condition[any], 0, len(defs))

	for i, def := range defs {
		c, err := r.Compile(def)
		if err != nil {
			return nil, fmt.Errorf(
				"condition %d (%s): %w", i, def.Type, err,
			)
		}
		conditions = append(conditions, c)
	}

	return conditions, nil
}

func compileEquals(
	_ *Registry,
	def Definition,
) (condition.Condition[any], error) {
	if def.Target == "" {
		return nil, fmt.Errorf("equals: target is required")
	}

	label := def.Label
	if label == "" {
		label = def.Target
	}

	project := projectPath(def.Target)
	return condition.Equals(label, def.Value, project), nil
}

func compileAllOf(
	reg *Registry,
	def Definition,
) (condition.Condition[any], error) {
	if def.Label == "" {
		return nil, fmt.Errorf("all_of: label is required")
	}

	children, err := reg.CompileAll(def.Conditions)
	if err != nil {
		return nil, fmt.Errorf("all_of %q: %w", def.Label, err)
	}

	return condition.AllOf(def.Label, children...), nil
}

func compileNested(
	reg *Registry,
	def Definition,
) (condition.Condition[any], error) {
	if def.Target == "" {
		return nil, fmt.Errorf("nested: target is required")
	}

	label := def.Label
	if label == "" {
		label = def.Target
	}

	children, err := reg.CompileAll(def.Conditions)
	if err != nil {
		return nil, fmt.Errorf("nested %q: %w", label, err)
	}

	return condition.Nestable(
		label, projectPath(def.Target), children...,
	), nil
}

func compileContains(
	reg *Registry,
	def Definition,
) (condition.Condition[any], error) {
	if def.Target == "" {
		return nil, fmt.Errorf("contains: target is required")
	}
	if len(def.Conditions) != 1 {
		return nil, fmt.Errorf(
			"contains: exactly one element condition is required, got %d",
			len(def.Conditions),
		)
	}

	element, err := reg.Compile(def.Conditions[0])
	if err != nil {
		return nil, fmt.Errorf(
			"contains %q: %w", def.Target, err,
		)
	}

	label := def.Label
	if label == "" {
		label = def.Target
	}

	return condition.Nestable(
		label,
		projectSlice(def.Target),
		condition.Contains(element),
	), nil
}

func compileElementAt(
	reg *Registry,
	def Definition,
) (condition.Condition[any], error) {
	if def.Target == "" {
		return nil, fmt.Errorf("element_at: target is required")
	}
	if def.Index == nil {
		return nil, fmt.Errorf("element_at: index is required")
	}
	if *def.Index < 0 {
		return nil, fmt.Errorf(
			"element_at: index must be non-negative, got %d",
			*def.Index,
		)
	}

	children, err := reg.CompileAll(def.Conditions)
	if err != nil {
		return nil, fmt.Errorf(
			"element_at %q[%d]: %w",
			def.Target, *def.Index, err,
		)
	}

	label := def.Label
	if label == "" {
		label = def.Target
	}

	return condition.Nestable(
		label,
		projectSlice(def.Target),
		condition.ElementAt(*def.Index, children...),
	), nil
}

// projectPath walks a dot-separated path through nested
// map[string]any values. A missing key or a non-map on the way
// projects to nil, which leaf conditions treat as a structural
// non-match.
func projectPath(path string) func(any) any {
	segments := strings.Split(path, ".")

	return func(value any) any {
		current := value
		for _, segment := range segments {
			m, ok := current.(map[string]any)
			if !ok {
				return nil
			}
			current = m[segment]
		}
		return current
	}
}

// projectSlice resolves a path and returns the slice found
// there, or nil when the path does not lead to a slice.
func projectSlice(path string) func(any) []any {
	project := projectPath(path)

	return func(value any) []any {
		s, _ := project(value).([]any)
		return s
	}
}
