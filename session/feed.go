package session

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ReadOutcomesCSV reads an outcomes file with rows of
// time,instrument,price,outcome where outcome is "win"/"w" or "loss"/"l".
// A header row starting with "time" is skipped.
func ReadOutcomesCSV(path string) ([]Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var out []Outcome

	firstRow, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	hasHeader := len(firstRow) > 0 && strings.EqualFold(strings.TrimSpace(firstRow[0]), "time")
	if !hasHeader {
		o, err := parseOutcomeRow(firstRow)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		o, err := parseOutcomeRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
}

func parseOutcomeRow(row []string) (Outcome, error) {
	if len(row) < 4 {
		return Outcome{}, fmt.Errorf("bad row (need 4 cols time,instrument,price,outcome): %v", row)
	}

	ts := strings.TrimSpace(row[0])
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t2, err2 := time.Parse(time.RFC3339Nano, ts)
		if err2 != nil {
			return Outcome{}, fmt.Errorf("bad time %q: %w", row[0], err)
		}
		t = t2
	}

	inst := strings.TrimSpace(row[1])

	price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return Outcome{}, fmt.Errorf("bad price %q: %w", row[2], err)
	}

	var win bool
	switch strings.ToLower(strings.TrimSpace(row[3])) {
	case "win", "w", "profit":
		win = true
	case "loss", "l", "lose":
		win = false
	default:
		return Outcome{}, fmt.Errorf("bad outcome %q (want win or loss)", row[3])
	}

	return Outcome{
		Time:       t,
		Instrument: inst,
		Price:      price,
		Win:        win,
	}, nil
}
