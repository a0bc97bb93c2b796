package rig

import (
	"strings"
	"testing"
)

type failRecorder struct {
	called  bool
	message string
	fatal   bool
}

func (f *failRecorder) fail(message string, fatal bool) {
	f.called = true
	f.message = message
	f.fatal = fatal
}

func TestResult_Succeeded_ReportsKind(t *testing.T) {
	t.Parallel()

	if !newSuccess("out", nil).Succeeded() {
		t.Error("success result reports Succeeded() = false")
	}
	if newFailure("out", "exit status 1", 1, nil).Succeeded() {
		t.Error("failure result reports Succeeded() = true")
	}
}

func TestResult_Output_IsPresentForBothKinds(t *testing.T) {
	t.Parallel()

	if got := newSuccess("build ok\n", nil).Output(); got != "build ok\n" {
		t.Errorf("Output() = %q", got)
	}
	if got := newFailure("boom\n", "exit status 2", 2, nil).Output(); got != "boom\n" {
		t.Errorf("Output() = %q", got)
	}
}

func TestResult_Detail_IsNeverEmpty_When_Failure(t *testing.T) {
	t.Parallel()

	if got := newFailure("", "", 1, nil).Detail(); got == "" {
		t.Error("failure Detail() is empty")
	}
	if got := newSuccess("", nil).Detail(); got != "" {
		t.Errorf("success Detail() = %q, want empty", got)
	}
}

func TestResult_ExitCode_ReflectsOutcome(t *testing.T) {
	t.Parallel()

	if got := newSuccess("", nil).ExitCode(); got != 0 {
		t.Errorf("success ExitCode() = %d, want 0", got)
	}
	if got := newFailure("", "exit status 3", 3, nil).ExitCode(); got != 3 {
		t.Errorf("failure ExitCode() = %d, want 3", got)
	}
}

func TestResult_String_RendersOutcome(t *testing.T) {
	t.Parallel()

	if got := newSuccess("", nil).String(); got != "OK" {
		t.Errorf("String() = %q, want OK", got)
	}
	if got := newFailure("", "exit status 3", 3, nil).String(); got != "Fail exit status 3" {
		t.Errorf("String() = %q, want %q", got, "Fail exit status 3")
	}
}

func TestResult_MustSucceed_IsNoOp_When_Success(t *testing.T) {
	t.Parallel()

	rec := &failRecorder{}
	newSuccess("fine", rec.fail).MustSucceed("should not fire")

	if rec.called {
		t.Error("MustSucceed escalated on a success")
	}
}

func TestResult_MustSucceed_PanicsWithMessage_When_ZeroValue(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustSucceed returned on a zero Result")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "no Console produced") || !strings.Contains(msg, "orphan step") {
			t.Errorf("panic = %v, want the escalation message and its cause", r)
		}
	}()

	var r Result
	r.MustSucceed("orphan step")
}

func TestResult_MustSucceed_EscalatesFatal_When_Failure(t *testing.T) {
	t.Parallel()

	rec := &failRecorder{}
	newFailure("", "exit status 1", 1, rec.fail).MustSucceed("install step failed")

	if !rec.called {
		t.Fatal("MustSucceed did not escalate")
	}
	if rec.message != "install step failed" {
		t.Errorf("escalation message = %q", rec.message)
	}
	if !rec.fatal {
		t.Error("escalation was not fatal")
	}
}
