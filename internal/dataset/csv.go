package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a dataset from a CSV file with a header row. Recognized columns
// are diameter (or girth), height, volume and species; order is free, names
// are matched case-insensitively. Species is optional.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ds, nil
}

// Read parses CSV observations from r. See Load for the expected schema.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var obs []Observation
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		o, err := cols.observation(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		obs = append(obs, o)
	}
	return New(obs)
}

type columns struct {
	diameter int
	height   int
	volume   int
	species  int
}

func columnIndex(header []string) (columns, error) {
	cols := columns{diameter: -1, height: -1, volume: -1, species: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "diameter", "girth":
			cols.diameter = i
		case "height":
			cols.height = i
		case "volume":
			cols.volume = i
		case "species":
			cols.species = i
		}
	}
	if cols.diameter < 0 || cols.height < 0 || cols.volume < 0 {
		return cols, fmt.Errorf("header %v: need diameter, height and volume columns", header)
	}
	return cols, nil
}

func (c columns) observation(rec []string) (Observation, error) {
	var o Observation
	var err error
	if o.Diameter, err = parseField(rec, c.diameter, "diameter"); err != nil {
		return o, err
	}
	if o.Height, err = parseField(rec, c.height, "height"); err != nil {
		return o, err
	}
	if o.Volume, err = parseField(rec, c.volume, "volume"); err != nil {
		return o, err
	}
	if c.species >= 0 && c.species < len(rec) {
		o.Species = strings.TrimSpace(rec[c.species])
	}
	return o, nil
}

func parseField(rec []string, idx int, name string) (float64, error) {
	if idx >= len(rec) {
		return 0, fmt.Errorf("missing %s field", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return v, nil
}
