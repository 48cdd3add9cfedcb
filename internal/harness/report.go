package harness

import "time"

// Report aggregates the results of one harness run.
type Report struct {
	RunID   string
	Started time.Time
	Elapsed time.Duration
	Files   []FileResult
}

// Passed returns the number of passing cases.
func (r *Report) Passed() int { return r.count(StatusPass) }

// Failed returns the number of cases with value or type mismatches.
func (r *Report) Failed() int { return r.count(StatusFail) }

// Errored returns the number of cases that failed to parse or evaluate,
// counting an unparseable file as one error.
func (r *Report) Errored() int {
	n := r.count(StatusError)
	for _, f := range r.Files {
		if f.Err != nil {
			n++
		}
	}
	return n
}

// Total returns the total number of cases across all files.
func (r *Report) Total() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Cases)
	}
	return n
}

// Ok reports whether every file parsed and every case passed.
func (r *Report) Ok() bool {
	return r.Failed() == 0 && r.Errored() == 0
}

func (r *Report) count(s Status) int {
	n := 0
	for _, f := range r.Files {
		for _, c := range f.Cases {
			if c.Status == s {
				n++
			}
		}
	}
	return n
}
