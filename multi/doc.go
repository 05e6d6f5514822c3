//Package multi turns a "read the next record" function into indexed and
//sliced access over a whole file of records.
//
//Many of the files this library reads are a repeated sequence of records:
//the frames of a trajectory, or the spin components of a charge-density
//grid. Each format only knows how to parse the next record from its
//stream; this package supplies, on top of that single function, "give me
//record 3", "give me the last record" and "give me records 1 through 10"
//without the format having to write its own pagination, and without ever
//reading the stream backwards. In-order access costs a single forward
//pass; out-of-order access costs a fresh scan from the start of the
//stream, nothing cleverer.
//
//A format declares its record access once, at package level:
//
//	var geometries = multi.NewBinder(readGeometry,
//		multi.WithSkip[*XyzR, *crystal.Geometry](skipGeometry),
//		multi.WithDefault[*XyzR, *crystal.Geometry](multi.Index(0)),
//	)
//
//and hands out per-file readers from a method:
//
//	func (X *XyzR) Geometries() *multi.Reader[*XyzR, *crystal.Geometry] {
//		return geometries.Bind(X, &X.geomReader)
//	}
//
//Callers then either take the default record,
//
//	g, err := f.Geometries().Read()
//
//or select explicitly; selecting returns a new Selector that holds "what
//to fetch" and performs no I/O until it is evaluated:
//
//	last, err := f.Geometries().Last().One()
//	gs, err := f.Geometries().Select(multi.Slice(1, 4)).Collect()
//
//A Selector is consumed by its first evaluation; evaluating it again
//performs a plain single read. The Reader itself is never mutated and can
//be shared freely within one goroutine; nothing in this package is safe
//for concurrent use.
package multi
