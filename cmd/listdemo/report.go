package main

import (
	"fmt"
	"io"

	"github.com/Invicton-Labs/go-lists/genjson"
	"github.com/Invicton-Labs/go-stackerr"
)

// Report is what one scenario produced.
type Report struct {
	Scenario string   `json:"scenario"`
	List     string   `json:"list,omitempty"`
	Lines    []string `json:"lines"`
	Error    string   `json:"error,omitempty"`
}

func (r *Report) addf(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

func (r Report) title() string {
	if r.List == "" {
		return r.Scenario
	}
	return fmt.Sprintf("%s (%s)", r.Scenario, r.List)
}

func writeReports(w io.Writer, reports []Report, asJSON bool) stackerr.Error {
	for _, r := range reports {
		if asJSON {
			data, err := genjson.Marshal(r)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
				return stackerr.Wrap(err)
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "== %s\n", r.title()); err != nil {
			return stackerr.Wrap(err)
		}
		for _, line := range r.Lines {
			if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
				return stackerr.Wrap(err)
			}
		}
		if r.Error != "" {
			if _, err := fmt.Fprintf(w, "FAILED: %s\n", r.Error); err != nil {
				return stackerr.Wrap(err)
			}
		}
	}
	return nil
}
