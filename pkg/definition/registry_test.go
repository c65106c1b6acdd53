package definition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex859/precise-assertions/pkg/condition"
)

func johnDoeDocument() map[string]any {
	return map[string]any{
		"first_name": "John",
		"last_name":  "Doe",
		"address": map[string]any{
			"line1": "12 Chestnut close",
			"town":  "Manchester",
			"postcode": map[string]any{
				"value": "M15 5HT",
			},
		},
		"orders": []any{
			map[string]any{"id": "A-1", "total": 40},
			map[string]any{"id": "A-2", "total": 125},
		},
	}
}

func intPtr(i int) *int {
	return &i
}

func TestCompile_Equals(t *testing.T) {
	reg := NewRegistry()

	cond, err := reg.Compile(Definition{
		Type:   TypeEquals,
		Label:  "first name",
		Target: "first_name",
		Value:  "John",
	})
	require.NoError(t, err)

	ev, err := cond.Evaluate(johnDoeDocument())
	require.NoError(t, err)
	assert.True(t, ev.Matched)
	assert.Equal(t, "first name: 'John'", ev.Node.Label)
}

func TestCompile_EqualsNestedPath(t *testing.T) {
	reg := NewRegistry()

	cond, err := reg.Compile(Definition{
		Type:   TypeEquals,
		Target: "address.town",
		Value:  "London",
	})
	require.NoError(t, err)

	ev, err := cond.Evaluate(johnDoeDocument())
	require.NoError(t, err)
	assert.False(t, ev.Matched)
	assert.Equal(t, "but was: 'Manchester'", ev.Node.Detail)
}

// A missing key projects to nil and is a structural non-match,
// not an evaluation error.
func TestCompile_EqualsMissingKey(t *testing.T) {
	reg := NewRegistry()

	cond, err := reg.Compile(Definition{
		Type:   TypeEquals,
		Target: "middle_name",
		Value:  "Albert",
	})
	require.NoError(t, err)

	ev, err := cond.Evaluate(johnDoeDocument())
	require.NoError(t, err)
	assert.False(t, ev.Matched)
}

func TestCompile_AllOfTree(t *testing.T) {
	reg := NewRegistry()

	cond, err := reg.Compile(Definition{
		Type:  TypeAllOf,
		Label: "customer",
		Conditions: []Definition{
			{Type: TypeEquals, Target: "first_name", Value: "John"},
			{Type: TypeEquals, Target: "address.town", Value: "London"},
		},
	})
	require.NoError(t, err)

	ev, err := cond.Evaluate(johnDoeDocument())
	require.NoError(t, err)

	assert.False(t, ev.Matched)
	assert.Equal(t, "customer", ev.Node.Label)
	require.Len(t, ev.Node.Children, 2)
	assert.Equal(t, condition.StatusPassed, ev.Node.Children[0].Status)
	assert.Equal(t, condition.StatusFailed, ev.Node.Children[1].Status)
}

func TestCompile_NestedProjection(t *testing.T) {
	reg := NewRegistry()

	cond, err := reg.Compile(Definition{
		Type:   TypeNested,
		Label:  "address",
		Target: "address",
		Conditions: []Definition{
			{Type: TypeEquals, Label: "town", Target: "town", Value: "Manchester"},
			{Type: TypeEquals, Label: "line 1", Target: "line1", Value: "12 Chestnut close"},
		},
	})
	require.NoError(t, err)

	ev, err := cond.Evaluate(johnDoeDocument())
	require.NoError(t, err)

	assert.True(t, ev.Matched)
	assert.Equal(t, "address", ev.Node.Label)
	assert.Len(t, ev.Node.Children, 2)
}

func TestCompile_Contains(t *testing.T) {
	reg := NewRegistry()

	cond, err := reg.Compile(Definition{
		Type:   TypeContains,
		Target: "orders",
		Conditions: []Definition{
			{Type: TypeEquals, Label: "id", Target: "id", Value: "A-2"},
		},
	})
	require.NoError(t, err)

	ev, err := cond.Evaluate(johnDoeDocument())
	require.NoError(t, err)
	assert.True(t, ev.Matched)
}

func TestCompile_ElementAt(t *testing.T) {
	reg := NewRegistry()

	cond, err := reg.Compile(Definition{
		Type:   TypeElementAt,
		Target: "orders",
		Index:  intPtr(1),
		Conditions: []Definition{
			{Type: TypeEquals, Label: "total", Target: "total", Value: 125},
		},
	})
	require.NoError(t, err)

	ev, err := cond.Evaluate(johnDoeDocument())
	require.NoError(t, err)
	assert.True(t, ev.Matched)
}

func TestCompile_ElementAtOutOfRange(t *testing.T) {
	reg := NewRegistry()

	cond, err := reg.Compile(Definition{
		Type:   TypeElementAt,
		Target: "orders",
		Index:  intPtr(9),
		Conditions: []Definition{
			{Type: TypeEquals, Target: "id", Value: "A-1"},
		},
	})
	require.NoError(t, err)

	_, err = cond.Evaluate(johnDoeDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestCompile_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		def     Definition
		wantErr string
	}{
		{
			name:    "unknown type",
			def:     Definition{Type: "greater_than"},
			wantErr: "unknown condition type",
		},
		{
			name:    "equals without target",
			def:     Definition{Type: TypeEquals, Value: "x"},
			wantErr: "target is required",
		},
		{
			name:    "all_of without label",
			def:     Definition{Type: TypeAllOf},
			wantErr: "label is required",
		},
		{
			name:    "nested without target",
			def:     Definition{Type: TypeNested, Label: "address"},
			wantErr: "target is required",
		},
		{
			name:    "contains without element condition",
			def:     Definition{Type: TypeContains, Target: "orders"},
			wantErr: "exactly one element condition",
		},
		{
			name: "element_at without index",
			def: Definition{
				Type: TypeElementAt, Target: "orders",
			},
			wantErr: "index is required",
		},
		{
			name: "element_at negative index",
			def: Definition{
				Type: TypeElementAt, Target: "orders",
				Index: intPtr(-2),
			},
			wantErr: "non-negative",
		},
		{
			name: "invalid child surfaces with context",
			def: Definition{
				Type:  TypeAllOf,
				Label: "customer",
				Conditions: []Definition{
					{Type: "no_such_type"},
				},
			},
			wantErr: "unknown condition type",
		},
	}

	reg := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Compile(tt.def)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRegistry_RegisterCustomType(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(
		"not_empty",
		func(_ *Registry, def Definition) (condition.Condition[any], error) {
			project := projectPath(def.Target)
			return condition.New(
				def.Target+" is not empty",
				func(value any) bool {
					s, ok := project(value).(string)
					return ok && s != ""
				},
			), nil
		},
	)
	require.NoError(t, err)

	cond, err := reg.Compile(Definition{
		Type:   "not_empty",
		Target: "first_name",
	})
	require.NoError(t, err)

	ev, err := cond.Evaluate(johnDoeDocument())
	require.NoError(t, err)
	assert.True(t, ev.Matched)
}

func TestRegistry_RegisterDuplicateFails(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(
		TypeEquals,
		func(*Registry, Definition) (condition.Condition[any], error) {
			return nil, nil
		},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}
