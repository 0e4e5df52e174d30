// Package export moves decompositions across a host boundary.
//
// Encode writes a decomposition as a YAML document (operator, wires and the
// nested operation tree); Decode parses it back with strict field checking
// and resolves kernels by name through a kernel.Library. Listing renders a
// deterministic indented text view used for golden-file tests and logs.
//
// Everything works on byte slices; there is no file or network surface.
package export
