package testkit

import (
	"io"
	"os"
	"sync"
	"testing"
	"time"
)

var (
	outSeam  io.Writer = os.Stdout
	limitVar           = 5
)

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("writer", func(t *testing.T) {
		Swap[io.Writer](t, &outSeam, io.Discard)
		if outSeam != io.Discard {
			t.Fatalf("swap did not take effect")
		}
	})
	if outSeam != os.Stdout {
		t.Fatalf("swap did not restore original writer")
	}

	t.Run("int", func(t *testing.T) {
		Swap(t, &limitVar, 42)
		if limitVar != 42 {
			t.Fatalf("swap failed, got %d want 42", limitVar)
		}
	})
	if limitVar != 5 {
		t.Fatalf("swap did not restore original, got %d want 5", limitVar)
	}
}

func TestSerial_GuardsConcurrentSubtests(t *testing.T) {
	var (
		mu  sync.Mutex
		seq []string
	)
	record := func(s string) {
		mu.Lock()
		seq = append(seq, s)
		mu.Unlock()
	}

	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"A", "B"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				record(name + "-start")
				time.Sleep(20 * time.Millisecond)
				record(name + "-end")
			})
		}
	})

	// parallel subtests have finished once the group returns
	if len(seq) != 4 {
		t.Fatalf("unexpected sequence length %d, seq=%v", len(seq), seq)
	}
	if seq[0][:1] != seq[1][:1] || seq[2][:1] != seq[3][:1] {
		t.Fatalf("expected grouped execution, got seq=%v", seq)
	}
}
