// Package resource predicts operation counts of every decomposition in
// closed form, without building the circuit.
//
// A Report carries the top-level histogram (blocks counted by label, as
// circuit.Decomposition.Counts reports them) and the flat histogram after
// circuit.Decomposition.Flatten. Both agree exactly with the emitted circuits.
//
// Complexity: O(1) for every operator except D4, which is O(log n).
package resource
