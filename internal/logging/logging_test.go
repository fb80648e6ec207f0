package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"info", false, false},
		{"verbose", true, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, test.verbose)
			logger.Debug("resolving location", "area", "build")
			logger.Info("generated", "target", "build")

			out := buf.String()
			if got := strings.Contains(out, "resolving location"); got != test.wantDebug {
				t.Errorf("debug line present = %v, want %v\n%s", got, test.wantDebug, out)
			}
			if !strings.Contains(out, "generated target=build") {
				t.Errorf("info line missing\n%s", out)
			}
			if strings.Contains(out, "\x1b[") {
				t.Errorf("colour used on a non-terminal writer\n%q", out)
			}
		})
	}
}

func TestDropsZeroAttributes(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Info("request", "url", "", "status", 200, "retries", 0)

	out := buf.String()
	if strings.Contains(out, "url=") {
		t.Errorf("empty string attribute was logged\n%s", out)
	}
	if !strings.Contains(out, "status=200") {
		t.Errorf("non-zero attribute missing\n%s", out)
	}
	if strings.Contains(out, "retries=") {
		t.Errorf("zero int attribute was logged\n%s", out)
	}
}
