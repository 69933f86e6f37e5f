package param

// Registry holds an instance's parameters, keyed by protocol name. It is
// built once at construction and read-only afterwards, so lookups need no
// locking.
type Registry struct {
	params map[string]*Parameter
	order  []string
}

// NewRegistry creates an empty parameter registry.
func NewRegistry() *Registry {
	return &Registry{
		params: make(map[string]*Parameter),
	}
}

// Add registers parameters. Duplicate names are skipped.
func (r *Registry) Add(params ...*Parameter) {
	for _, p := range params {
		if _, exists := r.params[p.Name]; exists {
			continue
		}
		r.params[p.Name] = p
		r.order = append(r.order, p.Name)
	}
}

// Get retrieves a parameter by name, or nil when unknown.
func (r *Registry) Get(name string) *Parameter {
	return r.params[name]
}

// Count returns the number of parameters.
func (r *Registry) Count() int {
	return len(r.order)
}

// All returns all parameters in registration order.
func (r *Registry) All() []*Parameter {
	result := make([]*Parameter, len(r.order))
	for i, name := range r.order {
		result[i] = r.params[name]
	}
	return result
}
