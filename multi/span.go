package multi

import (
	"fmt"
	"math"
)

type spanKind uint8

const (
	spanNone spanKind = iota
	spanIndex
	spanSlice
)

//effectively "collect until the stream runs out"
const unbounded = math.MaxInt

// Span selects which records of a stream a Selector retrieves: nothing
// (the zero value, meaning exactly one unsliced read), a single record by
// position, or a half-open range of positions. The zero Span is distinct
// from All: the former never starts a scan, the latter scans to the end of
// the stream.
type Span struct {
	kind              spanKind
	index             int
	start, stop       int
	hasStart, hasStop bool
	step              int //0 means 1
}

// Index selects the single record at position i. Negative positions count
// from the end of the stream, which forces a scan to the last record.
func Index(i int) Span {
	return Span{kind: spanIndex, index: i}
}

// Slice selects the records in the half-open range [start, stop).
func Slice(start, stop int) Span {
	return Span{kind: spanSlice, start: start, stop: stop, hasStart: true, hasStop: true}
}

// From selects every record from position start onwards.
func From(start int) Span {
	return Span{kind: spanSlice, start: start, hasStart: true}
}

// Upto selects every record before position stop.
func Upto(stop int) Span {
	return Span{kind: spanSlice, stop: stop, hasStop: true}
}

// All selects every record in the stream.
func All() Span {
	return Span{kind: spanSlice}
}

// Stride returns a copy of the span with the given step between selected
// records. A negative step reverses the order of the returned records; the
// underlying stream is still read forward, so only the boundary that maps
// to the scan start changes. Steps of magnitude larger than 1 are legal
// but the scan still visits every record in between. Stride panics on a
// zero step or a non-slice span.
func (s Span) Stride(step int) Span {
	if step == 0 {
		panic("multi: a span stride cannot be 0")
	}
	if s.kind != spanSlice {
		panic("multi: Stride applies to slice spans only")
	}
	s.step = step
	return s
}

// IsNone reports whether the span is the zero "no selection" span.
func (s Span) IsNone() bool {
	return s.kind == spanNone
}

func (s Span) String() string {
	switch s.kind {
	case spanNone:
		return "none"
	case spanIndex:
		return fmt.Sprintf("%d", s.index)
	}
	r := ""
	if s.hasStart {
		r = fmt.Sprintf("%d", s.start)
	}
	r += ":"
	if s.hasStop {
		r += fmt.Sprintf("%d", s.stop)
	}
	if s.step != 0 && s.step != 1 {
		r += fmt.Sprintf(":%d", s.step)
	}
	return r
}

//bounds computes how many records the scan must skip (first return) and
//the collected length at which it may stop early (second return,
//unbounded when the end can only be found at end-of-stream). It panics on
//a span whose normalized stop precedes its start, which is a programmer
//error, never silently corrected.
func (s Span) bounds() (int, int) {
	start, stop := 0, unbounded
	switch s.kind {
	case spanIndex:
		if s.index >= 0 {
			start = s.index
			stop = s.index + 1
		}
	case spanSlice:
		step := s.step
		if step == 0 {
			step = 1
		}
		if step > 0 {
			if s.hasStart {
				start = s.start
			}
			if s.hasStop {
				stop = s.stop
			}
		} else {
			//the stream only moves forward, so with a reversing step the
			//stop boundary is where the scan begins
			if s.hasStop {
				start = s.stop
			}
			if s.hasStart {
				stop = s.start
			}
		}
		if start < 0 {
			start = 0
		}
		if stop < 0 {
			stop = unbounded
		}
	}
	if stop < start {
		panic(fmt.Sprintf("multi: invalid span %s: stop %d precedes start %d", s, stop, start))
	}
	return start, stop
}

//extract applies the span to the fully collected sequence with the usual
//slice-expression semantics, including out-of-range clamping and reversal
//for a negative step.
func extract[T any](s Span, recs []T) []T {
	n := len(recs)
	step := s.step
	if step == 0 {
		step = 1
	}
	var start, stop int
	if step > 0 {
		start, stop = 0, n
		if s.hasStart {
			start = clampIndex(s.start, 0, n, n)
		}
		if s.hasStop {
			stop = clampIndex(s.stop, 0, n, n)
		}
	} else {
		start, stop = n-1, -1
		if s.hasStart {
			start = clampIndex(s.start, -1, n-1, n)
		}
		if s.hasStop {
			stop = clampIndex(s.stop, -1, n-1, n)
		}
	}
	out := make([]T, 0, n)
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, recs[i])
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, recs[i])
		}
	}
	return out
}

func clampIndex(i, lower, upper, n int) int {
	if i < 0 {
		i += n
	}
	if i < lower {
		return lower
	}
	if i > upper {
		return upper
	}
	return i
}
