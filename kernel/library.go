// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/qwt/circuit"
)

// Library is a read-only set of kernels computed once. Lookups hand out the
// shared matrices; callers must not mutate them.
type Library struct {
	byName map[string]circuit.Kernel
}

// NewLibrary computes Hadamard, C0, C1 and UD4 and their adjoints.
func NewLibrary() *Library {
	lib := &Library{byName: make(map[string]circuit.Kernel, 8)}
	for _, k := range []circuit.Kernel{Hadamard(), C0(), C1(), UD4()} {
		lib.byName[k.Name] = k
		if adj := k.Adjoint(); adj.Name != k.Name {
			lib.byName[adj.Name] = adj
		}
	}

	return lib
}

// Lookup resolves a kernel by name. Adjoint names of self-adjoint kernels
// ("Hadamard†") resolve to the kernel itself.
//
// Errors: ErrUnknownKernel.
func (l *Library) Lookup(name string) (circuit.Kernel, error) {
	if k, ok := l.byName[name]; ok {
		return k, nil
	}
	if base, ok := strings.CutSuffix(name, "†"); ok {
		if k, found := l.byName[base]; found && k.Adjoint().Name == k.Name {
			return k, nil
		}
	}

	return circuit.Kernel{}, fmt.Errorf("Library.Lookup(%q): %w", name, ErrUnknownKernel)
}

// Names returns the resolvable names in ascending order.
func (l *Library) Names() []string {
	out := make([]string, 0, len(l.byName))
	for n := range l.byName {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
