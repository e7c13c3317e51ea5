package spinner

import (
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerRendersMessage(t *testing.T) {
	var buf syncBuffer
	s := New("cloning repository")
	s.SetOutput(&buf)

	s.Start()
	time.Sleep(250 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "cloning repository") {
		t.Errorf("spinner output missing message: %q", buf.String())
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf syncBuffer
	s := New("idle")
	s.SetOutput(&buf)

	// Must not panic or block.
	s.Stop()
}

func TestSpinnerDoubleStart(t *testing.T) {
	var buf syncBuffer
	s := New("working")
	s.SetOutput(&buf)

	s.Start()
	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()
}
