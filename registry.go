package bindata

import (
	"log"
	"sync"
)

// Factory builds a fresh Node from already-expression-wrapped parameters.
// Registered factories are what ParamSpec sanitization resolves child
// type references to (§4.C item (b)).
type Factory func(params map[string]Expression) (Node, error)

type registryKey struct {
	name      string
	endian    string // Endian.String() ("little", "big"), or "" for endian-agnostic
	namespace string
}

// Registry maps a normalized type name, optional endian suffix, and
// optional namespace to a Factory. It is process-wide: spec.md §4.B says
// the registry is "not consulted during reads" — lookups all happen once,
// during sanitization, so a single shared table needs only a RWMutex, no
// per-read locking.
type Registry struct {
	mu      sync.RWMutex
	entries map[registryKey]Factory
}

// NewRegistry returns an empty Registry. Most callers use DefaultRegistry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[registryKey]Factory)}
}

// DefaultRegistry is the process-wide table used by Register/Lookup when
// no explicit Registry is threaded through.
var DefaultRegistry = NewRegistry()

// Register associates name (optionally namespaced and endian-suffixed via
// RegisterNamespaced/RegisterEndian) with factory. Re-registering an
// existing name is allowed but logs a warning, matching §4.B.
func (r *Registry) Register(name string, factory Factory) {
	r.RegisterNamespaced(name, "", factory)
}

// RegisterEndian registers a factory valid only for a specific endian,
// preferred over an endian-agnostic registration of the same base name
// when a caller's Lookup supplies that endian.
func (r *Registry) RegisterEndian(name string, endian Endian, factory Factory) {
	r.register(registryKey{name: name, endian: endian.String(), namespace: ""}, factory)
}

// RegisterNamespaced registers a factory scoped to namespace ("" for
// global).
func (r *Registry) RegisterNamespaced(name, namespace string, factory Factory) {
	r.register(registryKey{name: name, namespace: namespace}, factory)
}

func (r *Registry) register(key registryKey, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; exists {
		log.Printf("bindata: registry: overriding existing type %q (endian=%q namespace=%q)", key.name, key.endian, key.namespace)
	}
	r.entries[key] = factory
}

// Lookup resolves name, preferring an endian-suffixed registration over
// the endian-agnostic one when endianGiven is true, searching namespaces
// from most to least specific and finally the global namespace.
func (r *Registry) Lookup(name string, endian Endian, endianGiven bool, namespaces []string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := append(append([]string{}, namespaces...), "")
	for _, ns := range search {
		if endianGiven {
			if f, ok := r.entries[registryKey{name: name, endian: endian.String(), namespace: ns}]; ok {
				return f, nil
			}
		}
		if f, ok := r.entries[registryKey{name: name, namespace: ns}]; ok {
			return f, nil
		}
	}
	return nil, &UnRegisteredTypeError{Name: name, Endian: endian.String(), Namespace: firstOrEmpty(namespaces)}
}

func firstOrEmpty(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}

// Register/Lookup are convenience wrappers over DefaultRegistry, matching
// the public surface spec.md §6 names directly.
func Register(name string, factory Factory) { DefaultRegistry.Register(name, factory) }

func Lookup(name string, endian Endian, endianGiven bool, namespaces []string) (Factory, error) {
	return DefaultRegistry.Lookup(name, endian, endianGiven, namespaces)
}

// FromRegistry adapts a by-name Registry lookup into the
// func(Endian) (Node, error) shape FieldDecl.New, ChoiceChild.New, and
// array element constructors expect. When endianGiven is false, the
// endian the struct/array/choice itself was built with is substituted in
// at call time — this is how endian inheritance (spec.md §4.G) reaches a
// field declared by name instead of by a direct Go constructor call.
func FromRegistry(reg *Registry, name string, endianGiven bool, explicit Endian, namespaces []string, params map[string]Expression) func(Endian) (Node, error) {
	return func(containerEndian Endian) (Node, error) {
		e, given := explicit, endianGiven
		if !given {
			e, given = containerEndian, true
		}
		factory, err := reg.Lookup(name, e, given, namespaces)
		if err != nil {
			return nil, err
		}
		return factory(params)
	}
}
