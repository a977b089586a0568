package seqkit

import (
	"bufio"
	"io"

	"go.llib.dev/seqkit/port/sequence"
)

// BufioScanner returns a cursor over the tokens of a line-oriented reader.
// The cursor owns the given closer exclusively,
// and releases it when the consumer closes or abandons the pass.
// A scanner can not be rewound, so wrap the result with FromCursor,
// or use FromFunc with a factory that reopens the source, when a fresh pass per Produce is needed.
func BufioScanner[T string | []byte](s *bufio.Scanner, closer io.Closer) sequence.Cursor[T] {
	return &bufioScannerCursor[T]{
		Scanner: s,
		Closer:  closer,
	}
}

type bufioScannerCursor[T string | []byte] struct {
	*bufio.Scanner
	Closer io.Closer
	value  T
	closed bool
}

func (i *bufioScannerCursor[T]) Next() bool {
	if i.closed {
		return false
	}
	if i.Scanner.Err() != nil {
		return false
	}
	if !i.Scanner.Scan() {
		return false
	}
	var v T
	var iface interface{} = v
	switch iface.(type) {
	case string:
		i.value = T(i.Scanner.Text())
	case []byte:
		i.value = T(i.Scanner.Bytes())
	}
	return true
}

func (i *bufioScannerCursor[T]) Err() error {
	return i.Scanner.Err()
}

func (i *bufioScannerCursor[T]) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	if i.Closer == nil {
		return nil
	}
	return i.Closer.Close()
}

func (i *bufioScannerCursor[T]) Value() T {
	return i.value
}
