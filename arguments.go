package gqlquery

// Arguments is an ordered set of named argument values. Setting an existing
// name replaces its value but keeps its original position. The zero value is
// an empty set ready to use.
type Arguments struct {
	names  []string
	values map[string]interface{}
}

func NewArguments() *Arguments {
	return &Arguments{values: map[string]interface{}{}}
}

func (a *Arguments) Set(name string, value interface{}) {
	if a.values == nil {
		a.values = map[string]interface{}{}
	}
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
}

func (a *Arguments) Get(name string) (interface{}, bool) {
	if a == nil {
		return nil, false
	}
	value, ok := a.values[name]
	return value, ok
}

func (a *Arguments) Len() int {
	if a == nil {
		return 0
	}
	return len(a.names)
}

// Names returns the argument names in insertion order.
func (a *Arguments) Names() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.names...)
}

func (a *Arguments) Map() map[string]interface{} {
	m := make(map[string]interface{}, a.Len())
	for _, name := range a.Names() {
		m[name] = a.values[name]
	}
	return m
}

func (a *Arguments) Clone() *Arguments {
	clone := NewArguments()
	for _, name := range a.Names() {
		clone.Set(name, a.values[name])
	}
	return clone
}
