package arch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFilesPerPackage = 20
	maxLinesPerFile    = 400
)

// TestPackageFileCount keeps packages small enough to read in one sitting.
func TestPackageFileCount(t *testing.T) {
	t.Parallel()

	for pkg, dir := range globalScanDirs(t) {
		if n := len(goFilesIn(t, dir)); n > maxFilesPerPackage {
			t.Errorf("package %s has %d .go files (limit: %d); consider splitting", pkg, n, maxFilesPerPackage)
		}
	}
}

// TestFileLineCount flags non-test source files that have grown too long.
func TestFileLineCount(t *testing.T) {
	t.Parallel()

	for _, dir := range globalScanDirs(t) {
		for _, f := range goFilesIn(t, dir) {
			data, err := os.ReadFile(f)
			if err != nil {
				t.Fatalf("reading %s: %v", f, err)
			}
			if n := bytes.Count(data, []byte("\n")); n > maxLinesPerFile {
				t.Errorf("%s has %d lines (limit: %d); consider decomposing", filepath.Base(f), n, maxLinesPerFile)
			}
		}
	}
}
