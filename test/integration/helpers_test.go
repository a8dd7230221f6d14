//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	TemplateRoot string // STAMP_TEMPLATES — synthetic bundled template
	WorkDir      string // parent for scaffold destinations
}

// setupTestEnv creates an isolated synthetic template root and points the
// locator at it via STAMP_TEMPLATES. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		TemplateRoot: t.TempDir(),
		WorkDir:      t.TempDir(),
	}
	t.Setenv("STAMP_TEMPLATES", env.TemplateRoot)

	// Template manifest.
	writeFile(t, filepath.Join(env.TemplateRoot, "template.yaml"), `name: fastapi-backend
description: Synthetic template for integration tests
version: 1.0.0
min_tool_version: 0.1.0
`)

	// Payload files.
	writeFile(t, filepath.Join(env.TemplateRoot, "README.md"), "# Scaffolded App\n")
	writeFile(t, filepath.Join(env.TemplateRoot, "api", "app", "main.py"), "print('hello')\n")
	writeFile(t, filepath.Join(env.TemplateRoot, "api", "app", "__init__.py"), "")
	writeFile(t, filepath.Join(env.TemplateRoot, "api", "requirements.txt"), "fastapi\n")

	// Transient entries that must never be scaffolded.
	writeFile(t, filepath.Join(env.TemplateRoot, ".git", "config"), "[core]\n")
	writeFile(t, filepath.Join(env.TemplateRoot, "api", "__pycache__", "main.cpython-312.pyc"), "\x00")
	writeFile(t, filepath.Join(env.TemplateRoot, "api", ".env"), "SECRET=hunter2\n")
	writeFile(t, filepath.Join(env.TemplateRoot, "node_modules", "pkg", "index.js"), "module.exports = {}\n")

	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file at %s: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("%s is a directory, want file", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("%s should not exist", path)
	}
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if string(data) != want {
		t.Errorf("%s content = %q, want %q", path, string(data), want)
	}
}
