package ui

import (
	"fmt"
	"io"
)

// Stats counts what happened to every table row seen during generation.
type Stats struct {
	Lines      int
	Rows       int
	Rejected   int
	Duplicates int
	Filtered   int
	Written    int
}

func (s *Stats) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Generation Summary:")
	_, _ = fmt.Fprintf(w, "Lines read:  %d\n", s.Lines)
	_, _ = fmt.Fprintf(w, "Rows:        %d\n", s.Rows)
	_, _ = fmt.Fprintf(w, "Rejected:    %d\n", s.Rejected)
	_, _ = fmt.Fprintf(w, "Duplicates:  %d\n", s.Duplicates)
	if s.Filtered > 0 {
		_, _ = fmt.Fprintf(w, "Rescinded:   %d\n", s.Filtered)
	}
	_, _ = fmt.Fprintf(w, "Written:     %d\n", s.Written)
}
