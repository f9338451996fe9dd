package dataset

import (
	"bytes"
	_ "embed"
)

//go:embed trees.csv
var treesCSV []byte

// Trees returns the canonical 31-tree black cherry dataset (girth in inches,
// height in feet, volume in cubic feet). Used when no data file is given.
func Trees() *Dataset {
	ds, err := Read(bytes.NewReader(treesCSV))
	if err != nil {
		panic("dataset: embedded trees.csv is invalid: " + err.Error())
	}
	return ds
}
