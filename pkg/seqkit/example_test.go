package seqkit_test

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/port/sequence"
)

func ExampleSlice() {
	con := seqkit.Slice([]int{15, 35, 80})

	total, _ := seqkit.Reduce(con, 0, func(sum, n int) int { return sum + n })
	fmt.Println(total)
	// Output: 130
}

func ExampleChain() {
	intro := seqkit.Slice([]string{"once", "upon"})
	body := seqkit.Slice([]string{"a", "time"})

	story := seqkit.Chain[string](intro, body)

	_ = seqkit.ForEach(story, func(word string) error {
		fmt.Println(word)
		return nil
	})
	// Output:
	// once
	// upon
	// a
	// time
}

func ExampleMap() {
	lengths := seqkit.Map(seqkit.Slice([]string{"a", "ab", "abc"}), func(s string) int {
		return len(s)
	})

	vs, _ := seqkit.Collect(lengths)
	fmt.Println(vs)
	// Output: [1 2 3]
}

func ExampleFilter() {
	even := seqkit.Filter(seqkit.IntRange(1, 10), func(n int) bool {
		return n%2 == 0
	})

	vs, _ := seqkit.Collect(even)
	fmt.Println(vs)
	// Output: [2 4 6 8 10]
}

func ExampleFromFunc() {
	// a factory owns how a fresh pass is constructed,
	// so even a non-rewindable source, like a file, can serve repeated passes.
	lines := seqkit.FromFunc(func() sequence.Cursor[string] {
		file, err := os.Open("testdata/lorem.txt")
		if err != nil {
			return seqkit.Error[string](err).Produce()
		}
		return seqkit.BufioScanner[string](bufio.NewScanner(file), file)
	})

	_, _ = seqkit.Count[string](lines)   // first pass
	_, _ = seqkit.Collect[string](lines) // second, independent pass
}

// Example_wordIndex builds a lookup of word positions out of a line-oriented source,
// without ever materializing the source itself.
func Example_wordIndex() {
	text := "the quick brown fox\njumps over the lazy dog"

	lines := seqkit.FromFunc(func() sequence.Cursor[string] {
		return seqkit.BufioScanner[string](bufio.NewScanner(strings.NewReader(text)), nil)
	})

	index := make(map[string][]int)
	var lineNo int
	_ = seqkit.ForEach[string](lines, func(line string) error {
		lineNo++
		for _, word := range strings.Fields(line) {
			index[word] = append(index[word], lineNo)
		}
		return nil
	})

	fmt.Println(index["the"])
	// Output: [1 2]
}

// Example_frameDelta steps an animation by frame deltas,
// where each chained segment contributes its own movement increments.
func Example_frameDelta() {
	var (
		easeIn  = seqkit.Slice([]float64{0.25, 0.25, 0.5})
		linear  = seqkit.Slice([]float64{1, 1, 1})
		easeOut = seqkit.Slice([]float64{0.5, 0.25, 0.25})
	)

	deltas := seqkit.Chain[float64](easeIn, linear, easeOut)

	var position float64
	positions := seqkit.Map(deltas, func(delta float64) float64 {
		position += delta
		return position
	})

	last, _, _ := seqkit.Last(positions)
	fmt.Println(last)
	// Output: 5
}
