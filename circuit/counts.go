// SPDX-License-Identifier: MIT

package circuit

import (
	"sort"
	"strconv"
	"strings"
)

// Counts maps an operation name to its multiplicity. Zero entries are never stored.
type Counts map[string]int

// Add increments name by k; k == 0 is a no-op and a result of zero deletes the key.
func (c Counts) Add(name string, k int) {
	if k == 0 {
		return
	}
	if v := c[name] + k; v != 0 {
		c[name] = v
	} else {
		delete(c, name)
	}
}

// Total returns the sum of all multiplicities.
func (c Counts) Total() int {
	var t int
	for _, v := range c {
		t += v
	}

	return t
}

// Names returns the keys in ascending order.
func (c Counts) Names() []string {
	names := make([]string, 0, len(c))
	for k := range c {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Equal reports equality of key sets and values.
func (c Counts) Equal(o Counts) bool {
	if len(c) != len(o) {
		return false
	}
	for k, v := range c {
		if o[k] != v {
			return false
		}
	}

	return true
}

// String renders "name=k" pairs sorted by name, e.g. "Hadamard=1 Swap=2".
func (c Counts) String() string {
	var sb strings.Builder
	for i, k := range c.Names() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(c[k]))
	}

	return sb.String()
}
