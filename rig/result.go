package rig

// Result is the immutable outcome of one shell execution: either a success
// carrying the command's combined transcript, or a failure carrying the
// transcript plus a non-empty detail describing what went wrong. The kind is
// fixed at construction and never re-derived from field contents.
type Result struct {
	ok     bool
	output string
	detail string
	code   int

	fail func(message string, fatal bool)
}

func newSuccess(output string, fail func(string, bool)) Result {
	return Result{ok: true, output: output, fail: fail}
}

func newFailure(output, detail string, code int, fail func(string, bool)) Result {
	if detail == "" {
		detail = "unknown error"
	}
	return Result{output: output, detail: detail, code: code, fail: fail}
}

// Succeeded reports whether the command exited cleanly. It has no side
// effects and may be called any number of times.
func (r Result) Succeeded() bool {
	return r.ok
}

// Output returns the command's combined stdout and stderr transcript.
// Present for failures too.
func (r Result) Output() string {
	return r.output
}

// Detail returns the failure description. Empty on success, never empty on
// failure.
func (r Result) Detail() string {
	return r.detail
}

// ExitCode returns the command's exit code: 0 on success, 127 when the
// executable could not be found, 1 when no real code was recoverable.
func (r Result) ExitCode() int {
	return r.code
}

// MustSucceed returns silently on success. On failure it escalates fatally
// with message and does not return; use it for steps the run cannot
// continue without. A zero Result was not produced by any Console and has
// no escalation path, so MustSucceed on one panics like any Must helper.
func (r Result) MustSucceed(message string) {
	if r.ok {
		return
	}
	if r.fail == nil {
		panic("rig: MustSucceed on a Result that no Console produced: " + message)
	}
	r.fail(message, true)
}

// String renders the outcome as it appears on the log's exit lines:
// "OK", or "Fail" followed by the detail.
func (r Result) String() string {
	if r.ok {
		return "OK"
	}
	return "Fail " + r.detail
}
