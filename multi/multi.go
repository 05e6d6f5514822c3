package multi

import (
	"fmt"
)

// Stream is the resource a Selector scans. Open must leave the stream
// positioned at its first record, also when the stream was already open or
// partially consumed; Close releases it. A stream is owned by exactly one
// logical reader for the duration of a scan.
type Stream interface {
	Open() error
	Close() error
}

// ReadFunc parses the next record from the host's stream. It returns an
// error satisfying crystal.LastRecordError when the stream has no further
// records, which terminates a scan normally; any other error aborts it.
type ReadFunc[H Stream, T any] func(h H) (T, error)

// SkipFunc advances the host's stream past the next record without keeping
// it. It follows the same end-of-records convention as ReadFunc.
type SkipFunc[H Stream] func(h H) error

// Binder holds the record access of one operation of a file format: how to
// read a record, how to skip one cheaply, what a bare call should return,
// and how to postprocess a collected range. It is built once, at package
// level, and handed a host per file through Bind.
type Binder[H Stream, T any] struct {
	read ReadFunc[H, T]
	skip SkipFunc[H]
	post func([]T) []T
	def  Span
	doc  string
}

// Option configures a Binder (and through it, every Reader it binds).
type Option[H Stream, T any] func(*Binder[H, T])

// WithSkip supplies a skip function cheaper than parsing a full record.
// Without it, skipped records are read and discarded.
func WithSkip[H Stream, T any](skip SkipFunc[H]) Option[H, T] {
	return func(b *Binder[H, T]) { b.skip = skip }
}

// WithPostprocess supplies a transform applied to the records collected by
// a slice span before they are returned. Single-record reads bypass it.
func WithPostprocess[H Stream, T any](post func([]T) []T) Option[H, T] {
	return func(b *Binder[H, T]) { b.post = post }
}

// WithDefault sets what a bare Read or Collect call retrieves. The zero
// Span (the default) means one unsliced read.
func WithDefault[H Stream, T any](s Span) Option[H, T] {
	return func(b *Binder[H, T]) { b.def = s }
}

// WithDoc attaches documentation text reported by Describe.
func WithDoc[H Stream, T any](doc string) Option[H, T] {
	return func(b *Binder[H, T]) { b.doc = doc }
}

// NewBinder builds a Binder around the given record reading function.
// No I/O is performed.
func NewBinder[H Stream, T any](read ReadFunc[H, T], opts ...Option[H, T]) *Binder[H, T] {
	b := &Binder[H, T]{read: read}
	for _, opt := range opts {
		opt(b)
	}
	if b.skip == nil {
		b.skip = func(h H) error {
			_, err := read(h)
			return err
		}
	}
	return b
}

// Bind returns the Reader for the given host, building it on first use.
// cache should point to a field owned by the host, so that the memoized
// Reader lives exactly as long as its host; a nil cache yields a fresh
// Reader every call.
func (b *Binder[H, T]) Bind(host H, cache **Reader[H, T]) *Reader[H, T] {
	if cache != nil && *cache != nil {
		return *cache
	}
	r := &Reader[H, T]{host: host, read: b.read, skip: b.skip, post: b.post, def: b.def}
	if cache != nil {
		*cache = r
	}
	return r
}

// Default returns the span a bare call on a bound reader retrieves.
// It needs no live host, so it can be used for introspection.
func (b *Binder[H, T]) Default() Span {
	return b.def
}

// Describe returns human-readable documentation for the operation called
// name, including what a bare call returns.
func (b *Binder[H, T]) Describe(name string) string {
	var what string
	switch {
	case b.def.IsNone(), b.def == Index(0):
		what = "the first item"
	case b.def == Index(-1):
		what = "the last item"
	case b.def == All():
		what = "all items"
	default:
		what = fmt.Sprintf("the items %s", b.def)
	}
	s := fmt.Sprintf("%s returns %s when called without a span. Select a span on it to retrieve several records in one pass; the selection must then be evaluated to actually perform the I/O.", name, what)
	if b.doc != "" {
		s = b.doc + "\n\n" + s
	}
	return s
}

// Reader is record access bound to one host: the combination of that
// host's stream with a Binder's read/skip/postprocess functions and
// default span. It holds no selection state and is immutable; every
// explicit selection produces a fresh Selector.
type Reader[H Stream, T any] struct {
	host H
	read ReadFunc[H, T]
	skip SkipFunc[H]
	post func([]T) []T
	def  Span
}

// NewReader builds a stand-alone Reader for host, without going through a
// package-level Binder.
func NewReader[H Stream, T any](host H, read ReadFunc[H, T], opts ...Option[H, T]) *Reader[H, T] {
	return NewBinder(read, opts...).Bind(host, nil)
}

// Select returns a new Selector for the given span, sharing the reader's
// host and functions. It performs no I/O; evaluate the selector with One
// or Collect.
func (r *Reader[H, T]) Select(s Span) *Selector[H, T] {
	return &Selector[H, T]{host: r.host, read: r.read, skip: r.skip, post: r.post, span: s}
}

// First selects the first record of the stream.
func (r *Reader[H, T]) First() *Selector[H, T] {
	return r.Select(Index(0))
}

// Last selects the last record of the stream.
func (r *Reader[H, T]) Last() *Selector[H, T] {
	return r.Select(Index(-1))
}

// Read performs the default invocation of the bound operation. With no
// default span it calls the read function exactly once, unsliced, and
// returns its result verbatim; with a single-index default it retrieves
// that record. It panics on a multi-record default, for which Collect is
// the right call.
func (r *Reader[H, T]) Read() (T, error) {
	switch r.def.kind {
	case spanNone:
		return r.read(r.host)
	case spanIndex:
		return r.Select(r.def).One()
	}
	panic(fmt.Sprintf("multi: Read on a reader whose default span %s selects multiple records; use Collect", r.def))
}

// Collect performs the default invocation for multi-record defaults. With
// no default span the read function is still called exactly once and its
// single result is returned in a 1-record slice.
func (r *Reader[H, T]) Collect() ([]T, error) {
	if r.def.IsNone() {
		v, err := r.read(r.host)
		if err != nil {
			return nil, err
		}
		return []T{v}, nil
	}
	return r.Select(r.def).Collect()
}

// Selector is one pending bounded scan over a stream: a span plus the
// functions to run it with. Its first evaluation consumes the span; a
// later evaluation of the same selector performs a plain single read, it
// never replays the previous selection.
type Selector[H Stream, T any] struct {
	host H
	read ReadFunc[H, T]
	skip SkipFunc[H]
	post func([]T) []T
	span Span
}

//consume takes the span out of the selector, leaving the zero span.
func (sel *Selector[H, T]) consume() Span {
	s := sel.span
	sel.span = Span{}
	return s
}

//scan runs the skip-and-collect cycle against the host's stream. The
//returned slice begins with `start` zero-value placeholders standing in
//for the skipped records, so indexing by absolute record position stays
//valid; the caller compares len() against start to detect that nothing
//was found. The stream is released on every exit path.
func (sel *Selector[H, T]) scan(span Span) (collected []T, start int, err error) {
	start, stop := span.bounds()
	collected = make([]T, start, start+8)
	if err := sel.host.Open(); err != nil {
		return nil, 0, err
	}
	defer sel.host.Close()
	for i := 0; i < start; i++ {
		if err := sel.skip(sel.host); err != nil {
			if isLastRecord(err) {
				return collected[:start], start, nil
			}
			return nil, 0, err
		}
	}
	for len(collected) < stop {
		v, err := sel.read(sel.host)
		if err != nil {
			if isLastRecord(err) {
				break
			}
			return nil, 0, err
		}
		collected = append(collected, v)
	}
	return collected, start, nil
}

// One evaluates a single-index selection and returns that record. On a
// consumed (or never-selected) selector it performs one plain read. It
// panics if the span selects multiple records. A position beyond the end
// of the stream yields a no-records error, not a fault; test for it with
// crystal.IsLastRecord.
func (sel *Selector[H, T]) One() (T, error) {
	var zero T
	span := sel.consume()
	if span.IsNone() {
		return sel.read(sel.host)
	}
	if span.kind != spanIndex {
		panic(fmt.Sprintf("multi: One on the multi-record span %s; use Collect", span))
	}
	collected, start, err := sel.scan(span)
	if err != nil {
		return zero, err
	}
	if len(collected) == start {
		return zero, newNoRecords(span)
	}
	idx := span.index
	if idx < 0 {
		idx += len(collected)
	}
	if idx < 0 || idx >= len(collected) {
		return zero, newNoRecords(span)
	}
	return collected[idx], nil
}

// Collect evaluates the selection and returns the records it covers, in
// stream order unless a negative stride reverses them, after applying the
// postprocess transform. A selection wholly beyond the end of the stream
// yields a no-records error rather than an empty slice. On a consumed (or
// never-selected) selector it performs one plain read and returns it in a
// 1-record slice. Single-index selections return a 1-record slice.
func (sel *Selector[H, T]) Collect() ([]T, error) {
	span := sel.consume()
	if span.IsNone() {
		v, err := sel.read(sel.host)
		if err != nil {
			return nil, err
		}
		return []T{v}, nil
	}
	collected, start, err := sel.scan(span)
	if err != nil {
		return nil, err
	}
	if len(collected) == start {
		return nil, newNoRecords(span)
	}
	if span.kind == spanIndex {
		idx := span.index
		if idx < 0 {
			idx += len(collected)
		}
		if idx < 0 || idx >= len(collected) {
			return nil, newNoRecords(span)
		}
		return collected[idx : idx+1], nil
	}
	out := extract(span, collected)
	if sel.post != nil {
		out = sel.post(out)
	}
	return out, nil
}

// CollectAs evaluates sel and applies f to the collected records, for
// callers that want the range as something other than a plain slice (a
// densely packed matrix, a sum, ...).
func CollectAs[H Stream, T, R any](sel *Selector[H, T], f func([]T) R) (R, error) {
	var zero R
	recs, err := sel.Collect()
	if err != nil {
		return zero, err
	}
	return f(recs), nil
}
