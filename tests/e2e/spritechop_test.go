// Package e2e contains end-to-end tests for the spritechop CLI.
// This package only drives the binary, so it can run against pre-built releases.
package e2e

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// getBinaryName returns the test binary name with platform-specific extension
func getBinaryName() string {
	if runtime.GOOS == "windows" {
		return "spritechop-test.exe"
	}
	return "spritechop-test"
}

// getBinaryPath returns the path to execute the test binary
// If SPRITECHOP_BINARY env var is set, use that instead (for CI with pre-built binaries)
func getBinaryPath(t *testing.T) string {
	if path := os.Getenv("SPRITECHOP_BINARY"); path != "" {
		return path
	}
	return filepath.Join(getProjectRoot(t), getBinaryName())
}

// prepareBinary skips unless E2E tests are enabled and builds the CLI when
// no pre-built binary is provided.
func prepareBinary(t *testing.T) string {
	t.Helper()
	if os.Getenv("SPRITECHOP_E2E") != "1" {
		t.Skip("Skipping E2E test (set SPRITECHOP_E2E=1 to run)")
	}

	if os.Getenv("SPRITECHOP_BINARY") == "" {
		buildCmd := exec.Command("go", "build", "-o", getBinaryName(), "./cmd/spritechop")
		buildCmd.Dir = getProjectRoot(t)
		if out, err := buildCmd.CombinedOutput(); err != nil {
			t.Fatalf("Failed to build CLI: %v\n%s", err, out)
		}
		t.Cleanup(func() { os.Remove(filepath.Join(getProjectRoot(t), getBinaryName())) })
	}

	return getBinaryPath(t)
}

// writeSheet writes a 320x138 sheet with four solid columns.
func writeSheet(t *testing.T, dir string) string {
	t.Helper()
	cols := []color.NRGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
		{R: 255, G: 255, A: 255},
	}
	img := image.NewNRGBA(image.Rect(0, 0, 320, 138))
	for y := 0; y < 138; y++ {
		for x := 0; x < 320; x++ {
			img.SetNRGBA(x, y, cols[x/80])
		}
	}

	path := filepath.Join(dir, "sheet.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create sheet: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode sheet: %v", err)
	}
	return path
}

// TestChop runs the CLI on a sprite sheet and checks the GIF it writes
func TestChop(t *testing.T) {
	bin := prepareBinary(t)
	dir := t.TempDir()
	sheet := writeSheet(t, dir)
	out := filepath.Join(dir, "walk.gif")

	cmd := exec.Command(bin, "-i", sheet, "-o", out, "-s", "80x114", "-f", "10", "0,0", "35,24", "159,24")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Command failed: %v\nstderr: %s", err, stderr.String())
	}

	if !strings.Contains(stdout.String(), out) {
		t.Errorf("Expected output path in stdout, got: %s", stdout.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if len(g.Image) != 3 {
		t.Errorf("Expected 3 frames, got %d", len(g.Image))
	}
	if g.Delay[0] != 10 {
		t.Errorf("Expected delay 10, got %d", g.Delay[0])
	}
}

// TestChopWithDebugOutput checks the debug directory layout
func TestChopWithDebugOutput(t *testing.T) {
	bin := prepareBinary(t)
	dir := t.TempDir()
	sheet := writeSheet(t, dir)
	debugDir := filepath.Join(dir, "debug")

	cmd := exec.Command(bin, "-d", "--debug-dir", debugDir,
		"-i", sheet, "-o", filepath.Join(dir, "walk.gif"), "-s", "80x114", "0,0", "80,0")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Command failed: %v\n%s", err, out)
	}

	for _, name := range []string{"frames/frame-0001.png", "frames/frame-0002.png", "origins.png"} {
		if _, err := os.Stat(filepath.Join(debugDir, name)); err != nil {
			t.Errorf("Expected %s in debug output: %v", name, err)
		}
	}
}

// TestOutOfBounds checks the exit status and cleanup on a bad origin
func TestOutOfBounds(t *testing.T) {
	bin := prepareBinary(t)
	dir := t.TempDir()
	sheet := writeSheet(t, dir)
	out := filepath.Join(dir, "walk.gif")

	cmd := exec.Command(bin, "-i", sheet, "-o", out, "-s", "80x114", "0,0", "300,24")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()

	exitErr, ok := err.(*exec.ExitError)
	if !ok || exitErr.ExitCode() != 1 {
		t.Fatalf("Expected exit code 1, got %v", err)
	}
	if !strings.Contains(stderr.String(), "300,24") {
		t.Errorf("Expected offending origin in diagnostic, got: %s", stderr.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("Expected partial output to be removed")
	}
}

// TestVersionFlag tests the --version flag
func TestVersionFlag(t *testing.T) {
	bin := prepareBinary(t)

	out, err := exec.Command(bin, "--version").CombinedOutput()
	if err != nil {
		t.Fatalf("Version command failed: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "spritechop") {
		t.Errorf("Expected 'spritechop' in version output, got: %s", out)
	}
}

// TestHelp tests that help lists the main options
func TestHelp(t *testing.T) {
	bin := prepareBinary(t)

	out, err := exec.Command(bin, "--help").CombinedOutput()
	if err != nil {
		t.Fatalf("Help command failed: %v\n%s", err, out)
	}
	for _, opt := range []string{"--input", "--output", "--size", "--output-size", "--delay", "--transparent"} {
		if !strings.Contains(string(out), opt) {
			t.Errorf("Expected %s option in help", opt)
		}
	}
}

// getProjectRoot returns the project root directory
func getProjectRoot(t *testing.T) string {
	// Start from current working directory and find go.mod
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("Could not find project root (go.mod)")
		}
		dir = parent
	}
}
