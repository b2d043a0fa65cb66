package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/papernet/pkg/errors"
	papio "github.com/matzehuels/papernet/pkg/io"
	"github.com/matzehuels/papernet/pkg/netfile"
	"github.com/matzehuels/papernet/pkg/topology/topologytest"
)

// run executes the root command with isolated config and cache directories.
func run(t *testing.T, args ...string) error {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))

	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&logs)
	root.SetErr(&logs)
	return root.Execute()
}

func TestImportCreatesLayout(t *testing.T) {
	dir := t.TempDir()
	complexPath := filepath.Join(dir, "complex.json")
	if err := papio.ExportComplex(topologytest.MustBuild(topologytest.Flower(6)), complexPath); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "net.txt")

	if err := run(t, "import", complexPath, "-o", out, "--edge", "25"); err != nil {
		t.Fatalf("import error: %v", err)
	}

	n, err := netfile.Load(out)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !n.Created || n.Store.Len() != 7 {
		t.Fatalf("Load() = created %v with %d cells, want created with 7", n.Created, n.Store.Len())
	}
	if n.EdgeLength != 25 {
		t.Errorf("EdgeLength = %v, want 25", n.EdgeLength)
	}
	if roots := n.Store.Roots(); len(roots) != 1 || roots[0] != 0 {
		t.Errorf("Roots() = %v, want [0]", roots)
	}

	err = run(t, "import", complexPath, "-o", out)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("second import error = %v, want INVALID_INPUT", err)
	}
	if err := run(t, "import", complexPath, "-o", out, "--force"); err != nil {
		t.Errorf("import --force error: %v", err)
	}
}

func TestImportMissingComplex(t *testing.T) {
	dir := t.TempDir()
	err := run(t, "import", filepath.Join(dir, "absent.json"), "-o", filepath.Join(dir, "net.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("import error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLayoutCommand(t *testing.T) {
	path := writeNet(t)
	out := filepath.Join(t.TempDir(), "layout.json")

	if err := run(t, "layout", path, "-o", out); err != nil {
		t.Fatalf("layout error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Cells []struct {
			Vertices []any `json:"vertices"`
			Labels   []int `json:"labels"`
		} `json:"cells"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode layout: %v", err)
	}
	if len(doc.Cells) != 7 {
		t.Fatalf("cells = %d, want 7", len(doc.Cells))
	}
	for i, c := range doc.Cells {
		if len(c.Vertices) != len(c.Labels) {
			t.Errorf("cell %d has %d vertices and %d labels", i, len(c.Vertices), len(c.Labels))
		}
	}
}

func TestLayoutComplexRoundTrip(t *testing.T) {
	path := writeNet(t)
	out := filepath.Join(t.TempDir(), "complex.json")

	if err := run(t, "layout", path, "--complex", "-o", out); err != nil {
		t.Fatalf("layout --complex error: %v", err)
	}
	s, err := papio.ImportComplex(out)
	if err != nil {
		t.Fatalf("ImportComplex() error: %v", err)
	}
	if s.Len() != 7 {
		t.Errorf("Len() = %d, want 7", s.Len())
	}
}

func TestExportCommand(t *testing.T) {
	path := writeNet(t)
	out := t.TempDir()

	if err := run(t, "export", path, "-o", out, "--no-pages", "--prefix", "box"); err != nil {
		t.Fatalf("export error: %v", err)
	}
	for _, name := range []string{"box-all.png", "box-source.png"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "box-page00.png")); !os.IsNotExist(err) {
		t.Error("--no-pages should skip the page tiles")
	}
}

func TestNothingToLoadWarns(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")
	for _, cmd := range []string{"edit", "export"} {
		t.Run(cmd, func(t *testing.T) {
			out := captureStdout(t)
			if err := run(t, cmd, missing); err != nil {
				t.Fatalf("%s error = %v, want nil", cmd, err)
			}
			if !strings.Contains(out.String(), "Nothing to load") {
				t.Errorf("%s output = %q, want a nothing-to-load warning", cmd, out.String())
			}
		})
	}
}

func TestExportRejectsFormat(t *testing.T) {
	err := run(t, "export", writeNet(t), "-o", t.TempDir(), "--format", "gif")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("export error = %v, want INVALID_FORMAT", err)
	}
}

func TestCellTable(t *testing.T) {
	n, err := netfile.Load(writeNet(t))
	if err != nil {
		t.Fatal(err)
	}
	out := cellTable(n)

	for _, want := range []string{"Cell", "Neighbours", "root"} {
		if !strings.Contains(out, want) {
			t.Errorf("cellTable() missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got < n.Store.Len() {
		t.Errorf("cellTable() has %d lines, want at least %d", got, n.Store.Len())
	}
}

func TestJoinInts(t *testing.T) {
	if got := joinInts([]int{2, -1, 0}); got != "2 - 0" {
		t.Errorf("joinInts() = %q, want %q", got, "2 - 0")
	}
}
