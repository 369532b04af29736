//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/seblak-bujangan/seblak/internal/bootstrap"
	"github.com/seblak-bujangan/seblak/internal/config"
	"github.com/seblak-bujangan/seblak/internal/project"
	"github.com/seblak-bujangan/seblak/internal/runner"
)

// testEnv holds an isolated project directory and a bin directory that is
// put first on PATH so fake streamlit/pip scripts shadow real ones.
type testEnv struct {
	ProjectDir string
	BinDir     string
	Out        *bytes.Buffer
	Env        *bootstrap.Env
}

// setupTestEnv creates the temp directories, prepends BinDir to PATH and
// builds a bootstrap.Env wired to a real ExecRunner.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake executables are shell scripts")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	env := &testEnv{
		ProjectDir: t.TempDir(),
		BinDir:     t.TempDir(),
		Out:        &bytes.Buffer{},
	}
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	layout, err := project.NewLayout(env.ProjectDir)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	settings, err := config.Load(env.ProjectDir, "")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	env.Env = &bootstrap.Env{
		Layout:   layout,
		Settings: settings,
		Runner:   &runner.ExecRunner{Stdin: strings.NewReader(""), Stdout: env.Out, Stderr: env.Out},
		Out:      env.Out,
	}
	return env
}

// writeFakeBin creates an executable shell script named name in BinDir.
func writeFakeBin(t *testing.T, binDir, name, body string) {
	t.Helper()
	path := filepath.Join(binDir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}
