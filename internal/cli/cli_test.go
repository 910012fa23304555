package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

const testKitchen = `
[kitchen]
name = "cli-test"

[[resources]]
name = "rack"
type = "oven_rack"
length = 4.0
width = 4.0

[[items]]
name = "cookie"
into = "rack"
length = 2.0
width = 2.0
count = 2
`

func writeKitchen(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kitchen.toml")
	if err := os.WriteFile(path, []byte(testKitchen), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// captureStdout runs fn with os.Stdout redirected and returns what it printed.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	runErr := fn()
	w.Close()
	out, _ := io.ReadAll(r)
	return string(out), runErr
}

func newTestCLI() *CLI {
	return New(io.Discard, log.FatalLevel)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := []string{"plan", "grid", "viz", "serve", "tui", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestPlanCommand(t *testing.T) {
	path := writeKitchen(t)
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"plan", path, "--utilization"})
	root.SetErr(io.Discard)

	out, err := captureStdout(t, root.Execute)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("cli-test")) {
		t.Errorf("output missing kitchen name:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte("2 placed")) {
		t.Errorf("output missing placement stats:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte("rack")) {
		t.Errorf("output missing rack utilization:\n%s", out)
	}
}

func TestPlanCommandMissingManifest(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"plan", filepath.Join(t.TempDir(), "missing.toml")})
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)

	if _, err := captureStdout(t, root.Execute); err == nil {
		t.Error("plan should fail for a missing manifest")
	}
}

func TestGridCommand(t *testing.T) {
	path := writeKitchen(t)
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"grid", path, "rack"})

	out, err := captureStdout(t, root.Execute)
	if err != nil {
		t.Fatalf("grid failed: %v", err)
	}
	// Two 2x2 cookies fill the top half of the 4x4 rack.
	if !bytes.Contains([]byte(out), []byte("####")) {
		t.Errorf("grid output missing occupied rows:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte("....")) {
		t.Errorf("grid output missing free rows:\n%s", out)
	}
}

func TestGridCommandEmptyFlag(t *testing.T) {
	path := writeKitchen(t)
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"grid", path, "rack", "--empty"})

	out, err := captureStdout(t, root.Execute)
	if err != nil {
		t.Fatalf("grid --empty failed: %v", err)
	}
	if bytes.Contains([]byte(out), []byte("#")) {
		t.Errorf("empty grid should have no occupied cells:\n%s", out)
	}
}

func TestGridCommandUnknownResource(t *testing.T) {
	path := writeKitchen(t)
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"grid", path, "freezer"})
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)

	if _, err := captureStdout(t, root.Execute); err == nil {
		t.Error("grid should fail for an unknown resource")
	}
}

func TestVizCommandWritesDOT(t *testing.T) {
	path := writeKitchen(t)
	out := filepath.Join(t.TempDir(), "kitchen.dot")

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"viz", path, "-o", out})

	if _, err := captureStdout(t, root.Execute); err != nil {
		t.Fatalf("viz failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("digraph kitchen {")) {
		t.Errorf("output is not DOT:\n%s", data)
	}
}

func TestVizCommandRejectsUnknownFormat(t *testing.T) {
	path := writeKitchen(t)
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"viz", path, "-f", "png"})
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)

	if _, err := captureStdout(t, root.Execute); err == nil {
		t.Error("viz should reject unsupported formats")
	}
}
