package multi

import (
	"fmt"

	chem "github.com/rsolis/gocrystal"
)

func isLastRecord(err error) bool {
	return chem.IsLastRecord(err)
}

// noRecordsError reports a selection that covered no records, because it
// began at or beyond the end of the stream. It terminates iteration over
// successive selections the same way running off the end of the stream
// does, so it satisfies chem.LastRecordError.
type noRecordsError struct {
	span Span
	deco []string
}

func newNoRecords(span Span) *noRecordsError {
	return &noRecordsError{span: span}
}

func (e *noRecordsError) Error() string {
	return fmt.Sprintf("no records in the selected span %s", e.span)
}

func (e *noRecordsError) Decorate(deco string) []string {
	if deco != "" {
		e.deco = append(e.deco, deco)
	}
	return e.deco
}

func (e *noRecordsError) FileName() string { return "" }

func (e *noRecordsError) Format() string { return "multi" }

func (e *noRecordsError) Critical() bool { return false }

func (e *noRecordsError) NormalLastRecordTermination() {}
