// SPDX-License-Identifier: MIT
// File: builder.go
// Role: caller-owned matrix cache for operators.
// Concurrency:
//   - Cached entries under mu (read lock on hits, write lock on store).
//   - Concurrent misses on one key collapse into one build via singleflight.
//   - Every returned matrix is a private clone; cached entries never escape.

package verify

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/qwt"
	"github.com/katalvlaran/qwt/circuit"
	"github.com/katalvlaran/qwt/matrix"
	"github.com/katalvlaran/qwt/permute"
	"golang.org/x/sync/singleflight"
)

// Method selects how a matrix is produced.
type Method int

const (
	// ClosedForm uses the Haar recursion or the exact permutation where one
	// exists and falls back to simulation otherwise.
	ClosedForm Method = iota
	// Simulated always simulates the emitted decomposition.
	Simulated
)

func (m Method) String() string {
	if m == Simulated {
		return "simulated"
	}

	return "closed-form"
}

type buildKey struct {
	op     qwt.Operator
	n      int
	method Method
}

func (k buildKey) String() string {
	return k.op.String() + "/" + strconv.Itoa(k.n) + "/" + k.method.String()
}

// Builder produces and memoizes operator matrices. Safe for concurrent use.
type Builder struct {
	opts   options
	mu     sync.RWMutex
	cache  map[buildKey]*matrix.Dense
	group  singleflight.Group
	perms  *permute.Cache
	builds atomic.Int64
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{
		opts:  gatherOptions(opts...),
		cache: make(map[buildKey]*matrix.Dense),
		perms: permute.NewCache(),
	}
}

// Matrix returns the matrix of op on n wires using ClosedForm.
//
// Errors: circuit.ErrDomain below the operator minimum; ErrTooLarge above the
// qubit ceiling; ErrNumericTolerance when the unitarity check fails.
func (b *Builder) Matrix(op qwt.Operator, n int) (*matrix.Dense, error) {
	return b.get(buildKey{op: op, n: n, method: ClosedForm})
}

// Simulated returns the matrix of op's emitted decomposition on n wires.
func (b *Builder) Simulated(op qwt.Operator, n int) (*matrix.Dense, error) {
	return b.get(buildKey{op: op, n: n, method: Simulated})
}

// Builds reports how many matrices were actually computed.
func (b *Builder) Builds() int64 { return b.builds.Load() }

// Len reports the number of cached matrices.
func (b *Builder) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.cache)
}

func (b *Builder) lookup(k buildKey) (*matrix.Dense, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	m, ok := b.cache[k]

	return m, ok
}

func (b *Builder) get(k buildKey) (*matrix.Dense, error) {
	if k.n < k.op.MinWires() {
		return nil, fmt.Errorf("Builder(%s): %w", k, circuit.ErrDomain)
	}
	if k.n > b.opts.maxQubits {
		return nil, fmt.Errorf("Builder(%s): ceiling %d: %w", k, b.opts.maxQubits, ErrTooLarge)
	}
	if m, ok := b.lookup(k); ok {
		return m.Copy(), nil
	}

	v, err, _ := b.group.Do(k.String(), func() (any, error) {
		if m, ok := b.lookup(k); ok {
			return m, nil
		}
		b.opts.logger.Debug("verify: cache miss", slog.String("key", k.String()))
		start := time.Now()
		m, err := b.build(k)
		if err != nil {
			return nil, err
		}
		b.builds.Add(1)
		b.mu.Lock()
		b.cache[k] = m
		b.mu.Unlock()
		b.opts.logger.Debug("verify: built",
			slog.String("key", k.String()),
			slog.Int("dim", m.Rows()),
			slog.Duration("elapsed", time.Since(start)))

		return m, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*matrix.Dense).Copy(), nil
}

// build computes the matrix for k and runs the unitarity check.
func (b *Builder) build(k buildKey) (*matrix.Dense, error) {
	var (
		m   *matrix.Dense
		err error
	)
	switch {
	case k.method == ClosedForm && k.op == qwt.Haar:
		m, err = haarMatrix(k.n)
	case k.method == ClosedForm && k.op == qwt.PerfectShuffle:
		m, err = b.permutation(permute.Shuffle, k.n)
	case k.method == ClosedForm && k.op == qwt.BitReversal:
		m, err = b.permutation(permute.Reversal, k.n)
	default:
		wires := circuit.Range(k.n)
		var dec circuit.Decomposition
		if dec, err = qwt.Decompose(k.op, wires); err == nil {
			m, err = simulate(dec, wires)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("Builder(%s): %w", k, err)
	}
	if err = b.checkUnitary(k, m); err != nil {
		return nil, err
	}

	return m, nil
}

// permutation materializes P[Image(i), i] = 1 from the shared table cache.
func (b *Builder) permutation(kind permute.Kind, n int) (*matrix.Dense, error) {
	spec, err := permute.NewSpec(kind, n)
	if err != nil {
		return nil, err
	}
	size := 1 << n
	m, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, err
	}
	for i, img := range b.perms.Table(spec) {
		if err = m.Set(img, i, 1); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (b *Builder) checkUnitary(k buildKey, m *matrix.Dense) error {
	if !b.opts.checkUnitarity {
		return nil
	}
	defect, err := matrix.UnitarityDefect(m)
	if err != nil {
		return fmt.Errorf("Builder(%s): %w", k, err)
	}
	if defect > b.opts.eps {
		b.opts.logger.Warn("verify: unitarity check failed",
			slog.String("key", k.String()),
			slog.Float64("defect", defect),
			slog.Float64("eps", b.opts.eps))

		return fmt.Errorf("Builder(%s): defect %.3g > eps %.3g: %w", k, defect, b.opts.eps, ErrNumericTolerance)
	}

	return nil
}
