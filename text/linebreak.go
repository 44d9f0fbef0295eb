package text

import (
	"iter"
	"slices"

	"github.com/go-text/typesetting/segmenter"
)

// LineBreaker finds line-break opportunities (UAX #14).
//
// Breaks yields, in increasing order, the byte offsets at which a line may
// be broken; the last offset is len(text). The sequence can be ranged over
// any number of times.
type LineBreaker interface {
	Breaks(text string) iter.Seq[int]
}

// UAX14Breaker implements LineBreaker with go-text/typesetting's segmenter.
type UAX14Breaker struct{}

// Breaks implements LineBreaker.
func (UAX14Breaker) Breaks(text string) iter.Seq[int] {
	return func(yield func(int) bool) {
		if text == "" {
			return
		}
		runes := []rune(text)
		offsets := runeByteOffsets(text, len(runes))

		var seg segmenter.Segmenter
		seg.Init(runes)
		it := seg.LineIterator()
		for it.Next() {
			line := it.Line()
			end := line.Offset + len(line.Text)
			if end > len(runes) {
				end = len(runes)
			}
			if !yield(offsets[end]) {
				return
			}
		}
	}
}

// segments turns break offsets into consecutive [start, end) byte ranges.
// Empty ranges are passed through; callers decide whether to keep them.
func segments(b LineBreaker, text string) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		prev := 0
		for off := range b.Breaks(text) {
			if !yield(prev, off) {
				return
			}
			prev = off
		}
	}
}

// runeByteOffsets returns the byte offset of every rune of text plus a
// final entry len(text). n is the rune count. Invalid UTF-8 bytes count as
// one rune each, matching []rune(text).
func runeByteOffsets(text string, n int) []int {
	offsets := make([]int, 0, n+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}

// byteToRuneIndex maps a byte offset to the index of the rune starting at
// or after it.
func byteToRuneIndex(offsets []int, b int) int {
	i, _ := slices.BinarySearch(offsets, b)
	return i
}
