package entities

// Attributes is a string keyed mapping that remembers insertion order.
// Setting an existing key replaces its value in place. The zero value is
// ready to use.
type Attributes struct {
	keys   []string
	values map[string]any
}

// NewAttributes builds attributes from pairs, keeping their order.
func NewAttributes(pairs ...KeyValue) Attributes {
	var attrs Attributes
	for _, pair := range pairs {
		attrs.Set(pair.Key, pair.Value)
	}
	return attrs
}

type KeyValue struct {
	Key   string
	Value any
}

func (a *Attributes) Set(key string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

func (a *Attributes) Get(key string) (any, bool) {
	value, ok := a.values[key]
	return value, ok
}

func (a *Attributes) Len() int {
	return len(a.keys)
}

// Pairs returns the entries in insertion order.
func (a *Attributes) Pairs() []KeyValue {
	pairs := make([]KeyValue, 0, len(a.keys))
	for _, key := range a.keys {
		pairs = append(pairs, KeyValue{Key: key, Value: a.values[key]})
	}
	return pairs
}

func (a *Attributes) Clone() Attributes {
	return NewAttributes(a.Pairs()...)
}
