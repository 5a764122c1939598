package core

import (
	"bytes"
	"strings"
	"testing"
)

type fakeTerminal struct {
	finis int
}

func (f *fakeTerminal) Fini() { f.finis++ }

func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1
	prevOut, prevExit := crashOut, crashExit
	crashOut = &buf
	crashExit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOut, crashExit = prevOut, prevExit
		RegisterTerminal(nil)
	})
	return &buf, &code
}

func TestHandleCrashRestoresTerminal(t *testing.T) {
	buf, code := captureCrash(t)
	term := &fakeTerminal{}
	RegisterTerminal(term)

	HandleCrash("boom")

	if term.finis != 1 {
		t.Errorf("Expected terminal finalized once, got %d", term.finis)
	}
	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("Expected crash banner, got %q", buf.String())
	}

	HandleCrash("again")
	if term.finis != 1 {
		t.Error("Expected terminal finalized only on the first crash")
	}
}

func TestHandleCrashNil(t *testing.T) {
	buf, code := captureCrash(t)
	HandleCrash(nil)
	if buf.Len() != 0 || *code != -1 {
		t.Error("Expected nil recovery to be ignored")
	}
}

func TestGoRecovers(t *testing.T) {
	_, code := captureCrash(t)
	done := make(chan struct{})
	crashExit = func(c int) {
		*code = c
		close(done)
	}

	Go(func() { panic("worker") })
	<-done

	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
}
