package dataset

import "fmt"

// DataFormatError reports a source that cannot be used: unreadable as tabular
// data, or missing a required column after normalization. The dashboard shows
// it as a blocking message; there is no partial render.
type DataFormatError struct {
	Source string
	Reason string
}

func (e *DataFormatError) Error() string {
	if e.Source == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Reason)
}

func formatErrf(source, format string, args ...interface{}) *DataFormatError {
	return &DataFormatError{Source: source, Reason: fmt.Sprintf(format, args...)}
}
