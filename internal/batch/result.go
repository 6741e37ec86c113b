// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

// Outcome classifies a finished run for exit-code mapping.
type Outcome int

const (
	// OutcomeSuccess means no record failed, including an empty input.
	OutcomeSuccess Outcome = iota
	// OutcomePartial means some records failed and some converted.
	OutcomePartial
	// OutcomeFailure means records failed and none converted.
	OutcomeFailure
)

// ExitCode maps the outcome to the process exit status: 0, 2, or 1.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomePartial:
		return 2
	case OutcomeFailure:
		return 1
	default:
		return 0
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomePartial:
		return "partial"
	case OutcomeFailure:
		return "failure"
	default:
		return "success"
	}
}

// Failure records why one input row was not converted.
type Failure struct {
	// Row is the 1-based data row number.
	Row int
	// ID is the record identifier: its id column, or "row N".
	ID  string
	Err error
}

// Message returns the human-readable failure text.
func (f Failure) Message() string {
	return f.Err.Error()
}

// Result holds the outcome of a batch conversion run.
type Result struct {
	Succeeded int
	Failed    int
	Failures  []Failure
	// Written lists output paths in input order. A path appears twice when
	// two records sanitized to the same filename; the later write wins.
	Written []string
}

// Total returns the number of records processed.
func (r Result) Total() int {
	return r.Succeeded + r.Failed
}

// HasFailures reports whether any record failed conversion.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Outcome classifies the run.
func (r Result) Outcome() Outcome {
	switch {
	case r.Failed == 0:
		return OutcomeSuccess
	case r.Succeeded == 0:
		return OutcomeFailure
	default:
		return OutcomePartial
	}
}

// Duplicates returns the output paths written more than once, in the order
// their second write happened.
func (r Result) Duplicates() []string {
	seen := make(map[string]int, len(r.Written))
	var dups []string
	for _, p := range r.Written {
		seen[p]++
		if seen[p] == 2 {
			dups = append(dups, p)
		}
	}
	return dups
}
