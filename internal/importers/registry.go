package importers

import "sort"

// Registry is a name indexed collection of providers.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates a registry holding a copy of providers.
func NewRegistry(providers map[string]Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for name, provider := range providers {
		r.providers[name] = provider
	}
	return r
}

// Add registers provider under name. It fails when the name is taken.
func (r *Registry) Add(name string, provider Provider) error {
	if r.Has(name) {
		return &DuplicateProviderError{Name: name}
	}
	r.providers[name] = provider
	return nil
}

// Set registers provider under name, replacing any previous one.
func (r *Registry) Set(name string, provider Provider) {
	r.providers[name] = provider
}

func (r *Registry) Get(name string) (Provider, error) {
	provider, ok := r.providers[name]
	if !ok {
		return nil, &ProviderNotFoundError{Name: name}
	}
	return provider, nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.providers[name]
	return ok
}

func (r *Registry) Remove(name string) {
	delete(r.providers, name)
}

func (r *Registry) Clear() {
	r.providers = make(map[string]Provider)
}

func (r *Registry) Len() int {
	return len(r.providers)
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
