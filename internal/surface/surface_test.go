package surface

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestAcquire_IsExclusive(t *testing.T) {
	s := NewWithIO(strings.NewReader(""), &bytes.Buffer{}, false)

	sess, err := s.Acquire()
	if err != nil {
		t.Fatalf("first Acquire failed: %v", err)
	}
	if _, err := s.Acquire(); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Acquire = %v, want ErrBusy", err)
	}

	sess.Release()
	if _, err := s.Acquire(); err != nil {
		t.Fatalf("Acquire after Release failed: %v", err)
	}
}

func TestRelease_IsIdempotent(t *testing.T) {
	s := NewWithIO(strings.NewReader(""), &bytes.Buffer{}, false)
	sess, err := s.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	sess.Release()
	sess.Release()

	next, err := s.Acquire()
	if err != nil {
		t.Fatalf("Acquire after double Release failed: %v", err)
	}
	next.Release()
}

func TestReadLine_TrimsLineEndings(t *testing.T) {
	s := NewWithIO(strings.NewReader("unix\nwindows\r\nlast"), &bytes.Buffer{}, false)
	sess, err := s.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer sess.Release()

	for _, want := range []string{"unix", "windows", "last"} {
		line, err := sess.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine failed: %v", err)
		}
		if line != want {
			t.Fatalf("line = %q, want %q", line, want)
		}
	}
	if _, err := sess.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("ReadLine past end = %v, want EOF", err)
	}
}

func TestReadLine_BufferSurvivesRelease(t *testing.T) {
	s := NewWithIO(strings.NewReader("one\ntwo\n"), &bytes.Buffer{}, false)

	sess, _ := s.Acquire()
	if line, _ := sess.ReadLine(); line != "one" {
		t.Fatalf("first line = %q, want one", line)
	}
	sess.Release()

	sess, _ = s.Acquire()
	defer sess.Release()
	if line, _ := sess.ReadLine(); line != "two" {
		t.Fatalf("second line = %q, want two", line)
	}
}

func TestNewWithIO_Interactive(t *testing.T) {
	s := NewWithIO(strings.NewReader(""), &bytes.Buffer{}, false)
	sess, err := s.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer sess.Release()
	if sess.Interactive() {
		t.Fatalf("Interactive() = true for a scripted surface")
	}
	if s.Width() != defaultWidth {
		t.Fatalf("Width() = %d, want %d", s.Width(), defaultWidth)
	}
}
