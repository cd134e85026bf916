// Package testutil provides shared test infrastructure for the fiscal simulator.
// It consolidates repository file lookup and numeric assertion helpers used
// across sim/ and sim/montecarlo/ test packages.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// RepoPath resolves a path relative to the repository root. The root is found
// relative to this source file: sim/internal/testutil/ → ../../../.
func RepoPath(t *testing.T, elem ...string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	parts := append([]string{filepath.Dir(thisFile), "..", "..", ".."}, elem...)
	return filepath.Join(parts...)
}

// DefaultsPath returns the repository's defaults.yaml, skipping the test when
// it is missing.
func DefaultsPath(t *testing.T) string {
	t.Helper()
	path := RepoPath(t, "defaults.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("defaults.yaml not found, skipping integration test")
	}
	return path
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
