// Package testutil provides shared test infrastructure for the units
// packages: the golden conversion table and float assertion helpers.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// ConversionTable represents the structure of testdata/conversions.json.
type ConversionTable struct {
	Cases []ConversionCase `json:"cases"`
}

// ConversionCase is one expected conversion between two built-in kinds.
type ConversionCase struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Want   float64 `json:"want"`
}

// LoadConversionTable loads the golden conversion table from the testdata directory.
// The path is resolved relative to this source file: units/internal/testutil/ → testdata/.
func LoadConversionTable(t *testing.T) *ConversionTable {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "conversions.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read conversion table: %v", err)
	}

	var table ConversionTable
	if err := json.Unmarshal(data, &table); err != nil {
		t.Fatalf("Failed to parse conversion table: %v", err)
	}
	return &table
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
