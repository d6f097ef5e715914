// Package schemes names the built-in conversion schemes so binaries can
// assemble a convert.Chain from configuration.
package schemes

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"xdao.co/conloc/convert"
	"xdao.co/conloc/loc"
)

// Config carries the deployment parameters shared by the built-in schemes.
type Config struct {
	// Width is the local account width (convert.Width32 or convert.Width20).
	Width int

	// Network is the local consensus network. Schemes that embed a network
	// in their output reject the wildcard.
	Network loc.NetworkID
}

// Scheme is a named converter factory.
//
// Schemes typically register themselves in init():
//
//	schemes.MustRegister(schemes.Scheme{ ... })
type Scheme struct {
	Name        string
	Description string

	// New constructs the converter for cfg.
	New func(cfg Config) (convert.Converter, error)
}

var (
	mu       sync.RWMutex
	registry = map[string]Scheme{}
)

// Register registers a scheme.
func Register(s Scheme) error {
	if s.Name == "" {
		return fmt.Errorf("schemes: scheme name is required")
	}
	if s.New == nil {
		return fmt.Errorf("schemes: scheme %q missing New", s.Name)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[s.Name]; exists {
		return fmt.Errorf("schemes: scheme %q already registered", s.Name)
	}
	registry[s.Name] = s
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(s Scheme) {
	if err := Register(s); err != nil {
		panic(err)
	}
}

// List returns the registered schemes, sorted by name.
func List() []Scheme {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Scheme, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the registered scheme names, sorted.
func Names() []string {
	ss := List()
	n := make([]string, 0, len(ss))
	for _, s := range ss {
		n = append(n, s.Name)
	}
	return n
}

// Build assembles a chain from a comma-separated scheme list. Order is
// preserved: the chain tries schemes in the order named.
func Build(names string, cfg Config) (convert.Chain, error) {
	var chain convert.Chain
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		mu.RLock()
		s, ok := registry[name]
		mu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("schemes: unknown scheme %q", name)
		}
		conv, err := s.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("schemes: %s: %w", name, err)
		}
		chain = append(chain, conv)
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("schemes: empty scheme list")
	}
	return chain, nil
}
