package seqkit

import (
	"go.llib.dev/seqkit/pkg/errorkit"
	"go.llib.dev/seqkit/port/sequence"
)

// Collect will fully drain one pass of the producer into a slice.
//
// # WARNING
//
// It does not work with infinite sequences,
// as it requires to exhaust the pass before it can return.
func Collect[V any](p sequence.Producer[V]) ([]V, error) {
	return CollectCursor(p.Produce())
}

// CollectCursor drains the given cursor into a slice, then closes the cursor.
func CollectCursor[V any](c sequence.Cursor[V]) (vs []V, rErr error) {
	defer errorkit.Finish(&rErr, c.Close)
	vs = make([]V, 0)
	for c.Next() {
		vs = append(vs, c.Value())
	}
	return vs, c.Err()
}

func Reduce[
	R, V any,
	FN func(R, V) R |
		func(R, V) (R, error),
](p sequence.Producer[V], initial R, blk FN) (result R, rErr error) {
	var do func(R, V) (R, error)
	switch blk := any(blk).(type) {
	case func(R, V) R:
		do = func(result R, v V) (R, error) {
			return blk(result, v), nil
		}
	case func(R, V) (R, error):
		do = blk
	}
	c := p.Produce()
	defer errorkit.Finish(&rErr, c.Close)
	var v = initial
	for c.Next() {
		var err error
		v, err = do(v, c.Value())
		if err != nil {
			return v, err
		}
	}
	return v, c.Err()
}

const Break errorkit.Error = `seqkit:break`

// ForEach runs the block on every element of one pass.
// Returning Break from the block stops the pass early without an error.
func ForEach[V any](p sequence.Producer[V], fn func(V) error) (rErr error) {
	c := p.Produce()
	defer errorkit.Finish(&rErr, c.Close)
	for c.Next() {
		err := fn(c.Value())
		if err == Break {
			break
		}
		if err != nil {
			return err
		}
	}
	return c.Err()
}

// First takes the first element of a pass and releases the cursor.
func First[V any](p sequence.Producer[V]) (_ V, found bool, rErr error) {
	c := p.Produce()
	defer errorkit.Finish(&rErr, c.Close)
	if c.Next() {
		return c.Value(), true, c.Err()
	}
	var zero V
	return zero, false, c.Err()
}

// Last exhausts a pass and returns its final element.
func Last[V any](p sequence.Producer[V]) (_ V, found bool, rErr error) {
	c := p.Produce()
	defer errorkit.Finish(&rErr, c.Close)
	var (
		last V
		ok   bool
	)
	for c.Next() {
		last = c.Value()
		ok = true
	}
	return last, ok, c.Err()
}

// Count will iterate over and count the total iterations number.
//
// Good when all you want is to count all the elements in a sequence, but don't want to do anything else.
func Count[V any](p sequence.Producer[V]) (n int, rErr error) {
	c := p.Produce()
	defer errorkit.Finish(&rErr, c.Close)
	var total int
	for c.Next() {
		total++
	}
	return total, c.Err()
}
