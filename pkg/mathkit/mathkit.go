// Package mathkit contains numeric consumers of lazy sequences.
package mathkit

import (
	"go.llib.dev/seqkit/pkg/errorkit"
	"go.llib.dev/seqkit/pkg/guard"
	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/port/sequence"
)

type (
	Int   interface{ ~int | ~int8 | ~int16 | ~int32 | ~int64 }
	UInt  interface{ ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 }
	Float interface{ ~float32 | ~float64 }

	Number interface{ Int | UInt | Float }
)

// ErrDivisionUndefined is returned when a computation would divide by a zero total.
const ErrDivisionUndefined errorkit.Error = "ErrDivisionUndefined: total of the sequence is zero"

// Normalize expresses each value of the source as a percentage of the source's total.
// The results of a non-empty source always sum to 100 within floating-point tolerance.
//
// It requires two passes over the source, the first to compute the total,
// the second to compute each element's share,
// so the source must satisfy the multipass requirement of the guard package:
// supply a Container, or opt in to buffering or a pass factory through the options.
func Normalize[V Number](src sequence.Producer[V], opts ...guard.Option[V]) ([]float64, error) {
	p, err := NormalizeProducer(src, opts...)
	if err != nil {
		return nil, err
	}
	return seqkit.Collect(p)
}

// NormalizeProducer is the lazy variant of Normalize.
// The total is computed eagerly, since every share depends on it,
// but the per-element shares of the second pass are only computed as they are consumed.
func NormalizeProducer[V Number](src sequence.Producer[V], opts ...guard.Option[V]) (sequence.Producer[float64], error) {
	con, err := guard.RequireMultipass(src, opts...)
	if err != nil {
		return nil, err
	}
	total, err := seqkit.Reduce(con, 0.0, func(sum float64, v V) float64 {
		return sum + float64(v)
	})
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrDivisionUndefined
	}
	return seqkit.Map(con, func(v V) float64 {
		return 100 * float64(v) / total
	}), nil
}
