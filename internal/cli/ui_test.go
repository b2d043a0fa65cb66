package cli

import (
	"bytes"
	"strings"
	"testing"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

func TestPrintStats(t *testing.T) {
	tests := []struct {
		name   string
		cells  int
		tabs   int
		pages  int
		cached bool
		want   string
	}{
		{"all", 7, 6, 4, false, "7 cells · 6 tabs · 4 pages · fresh"},
		{"zeros dropped", 7, 0, 0, true, "7 cells · cached"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureStdout(t)
			printStats(tt.cells, tt.tabs, tt.pages, tt.cached)
			if got := strings.TrimSpace(buf.String()); got != tt.want {
				t.Errorf("printStats() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintHelpers(t *testing.T) {
	buf := captureStdout(t)
	printSuccess("Exported %s", "net.txt")
	printFile("out/papermodel-all.png")
	printKeyValue("cells", "7")

	out := buf.String()
	for _, want := range []string{iconSuccess + " Exported net.txt", iconArrow + " out/papermodel-all.png", "cells"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
