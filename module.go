package kerr

import (
	"fmt"
	"strings"
	"sync"
)

// Module is the numeric identity of a registered module. Identities are assigned by Register and stay valid for the
// lifetime of the process.
type Module uint16

// maxModules is the number of distinct identities a 16-bit Module can take.
const maxModules = 1 << 16

// RegistryError is the panic value raised for misuse of the module registry: registering a name twice, registering an
// empty name, exhausting the identity space or resolving an identity that was never registered.
type RegistryError struct {
	Op     string
	Kind   Kind
	Name   string
	Module Module
}

func (e *RegistryError) Error() string {
	sb := strings.Builder{}
	sb.WriteString("op [")
	sb.WriteString(e.Op)
	sb.WriteString("] kind [")
	sb.WriteString(e.Kind.String())
	sb.WriteString("]")
	if e.Name != "" {
		sb.WriteString(" module [")
		sb.WriteString(e.Name)
		sb.WriteString("]")
	}
	_, _ = fmt.Fprintf(&sb, " id [%#04x]", uint16(e.Module))
	return sb.String()
}

// registry maps module identities to their names. Entries are never removed.
type registry struct {
	mu    sync.RWMutex
	names map[Module]string
}

func newRegistry() *registry {
	return &registry{names: make(map[Module]string)}
}

var (
	registryOnce    sync.Once
	defaultRegistry *registry
)

// modules returns the process-wide registry, creating it on first use.
func modules() *registry {
	registryOnce.Do(func() {
		defaultRegistry = newRegistry()
	})
	return defaultRegistry
}

// register assigns an identity to name, probing linearly from the name's hash until a free slot is found. Panics if the
// name is already registered.
func (r *registry) register(name string) Module {
	if name == "" {
		panic(&RegistryError{Op: "register", Kind: K.InvalidValue})
	}

	id := Module(moduleHash(name))

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.names) >= maxModules {
		panic(&RegistryError{Op: "register", Kind: K.NoMemory, Name: name, Module: id})
	}
	for {
		existing, ok := r.names[id]
		if !ok {
			break
		}
		if existing == name {
			panic(&RegistryError{Op: "register", Kind: K.AlreadyExist, Name: name, Module: id})
		}
		id++ // wraps at 0xffff
	}
	r.names[id] = name
	return id
}

func (r *registry) lookup(m Module) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[m]
	return name, ok
}

// resolve returns the name registered for m and panics if there is none.
func (r *registry) resolve(m Module) string {
	name, ok := r.lookup(m)
	if !ok {
		panic(&RegistryError{Op: "resolve", Kind: K.NotFound, Module: m})
	}
	return name
}

func (r *registry) snapshot() map[Module]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make(map[Module]string, len(r.names))
	for m, name := range r.names {
		res[m] = name
	}
	return res
}

// Register registers the given module name and returns its identity. Each module is expected to register exactly once,
// usually in a package-level variable initializer, under a globally unique name:
//
//	var module = kerr.Register("net")
//
// Register panics with a *RegistryError if the name is empty or already registered. Names whose hashes collide receive
// distinct identities.
func Register(name string) Module {
	return modules().register(name)
}

// Lookup returns the name registered for the given identity and true, or the empty string and false if the identity
// was never registered.
func Lookup(m Module) (string, bool) {
	return modules().lookup(m)
}

// Modules returns a copy of all registered modules.
func Modules() map[Module]string {
	return modules().snapshot()
}

// Name returns the name this module was registered with. Panics with a *RegistryError if the identity was never
// returned by Register.
func (m Module) Name() string {
	return modules().resolve(m)
}

// String returns the module name, or a hex representation of the identity if it is not registered.
func (m Module) String() string {
	if name, ok := Lookup(m); ok {
		return name
	}
	return fmt.Sprintf("module(%#04x)", uint16(m))
}
