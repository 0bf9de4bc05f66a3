package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Faultbox/yarpgp/internal/config"
)

func TestTraceIsDeterministic(t *testing.T) {
	cfg := config.Default()

	run := func() string {
		w, err := buildWorld(cfg, false)
		if err != nil {
			t.Fatalf("buildWorld: %v", err)
		}
		var buf bytes.Buffer
		if err := trace(&buf, w, cfg, 200, ""); err != nil {
			t.Fatalf("trace: %v", err)
		}
		return buf.String()
	}

	first, second := run(), run()
	if first != second {
		t.Error("two runs of the demo scene produced different traces")
	}
	if lines := strings.Count(first, "\n"); lines != 200*3 {
		t.Errorf("expected 600 lines, got %d", lines)
	}
}

func TestTraceSingleEntity(t *testing.T) {
	cfg := config.Default()
	w, err := buildWorld(cfg, false)
	if err != nil {
		t.Fatalf("buildWorld: %v", err)
	}

	var buf bytes.Buffer
	if err := trace(&buf, w, cfg, 3, "guard"); err != nil {
		t.Fatalf("trace: %v", err)
	}

	want := "1\tguard\teast\t64.000\t48.000\n" +
		"2\tguard\teast\t64.990\t48.000\n" +
		"3\tguard\teast\t65.980\t48.000\n"
	if buf.String() != want {
		t.Errorf("trace =\n%s\nwant\n%s", buf.String(), want)
	}
}
