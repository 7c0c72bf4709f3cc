package models

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

var (
	// ErrMissingStateColumn is returned when the CSV header has no State
	// column. This is fatal: without the join key every downstream view
	// would silently render all zeros.
	ErrMissingStateColumn = errors.New("dataset has no State column")

	// ErrDuplicateState is returned when two rows share a state name.
	// Enrichment joins on state name, so duplicates would make the join
	// pick an arbitrary row.
	ErrDuplicateState = errors.New("duplicate state name in dataset")
)

// Table is the loaded dataset: one StateRecord per row, in file order.
type Table struct {
	Rows []StateRecord

	index map[string]int
}

// LoadTableFile reads the dataset from a CSV file on disk.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return LoadTable(f)
}

// LoadTable reads a CSV dataset with a header row. Every column named in
// record.go must be present; the State column must be unique per row.
func LoadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	if _, ok := cols[ColState]; !ok {
		return nil, ErrMissingStateColumn
	}

	required := []string{ColDeaths, ColPopulation}
	required = append(required, AgeColumns...)
	required = append(required, TypeColumns...)
	for _, race := range Races {
		for _, gender := range Genders {
			required = append(required, RaceSexColumn(gender, race))
		}
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("dataset is missing column %q", name)
		}
	}

	table := &Table{index: make(map[string]int)}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row: %w", err)
		}

		record, err := parseRecord(row, cols)
		if err != nil {
			return nil, fmt.Errorf("dataset line %d: %w", line, err)
		}
		if _, dup := table.index[record.State]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateState, record.State)
		}
		table.index[record.State] = len(table.Rows)
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

func parseRecord(row []string, cols map[string]int) (StateRecord, error) {
	field := func(name string) (float64, error) {
		raw := row[cols[name]]
		if raw == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", name, err)
		}
		return v, nil
	}

	record := StateRecord{
		State:        row[cols[ColState]],
		AgeRates:     make(map[string]float64, len(AgeColumns)),
		TypeTotals:   make(map[string]float64, len(TypeColumns)),
		RaceSexRates: make(map[string]float64, len(Races)*len(Genders)),
	}

	var err error
	if record.TotalDeaths, err = field(ColDeaths); err != nil {
		return record, err
	}
	if record.TotalPopulation, err = field(ColPopulation); err != nil {
		return record, err
	}
	for _, col := range AgeColumns {
		if record.AgeRates[col], err = field(col); err != nil {
			return record, err
		}
	}
	for _, col := range TypeColumns {
		if record.TypeTotals[col], err = field(col); err != nil {
			return record, err
		}
	}
	for _, race := range Races {
		for _, gender := range Genders {
			col := RaceSexColumn(gender, race)
			if record.RaceSexRates[col], err = field(col); err != nil {
				return record, err
			}
		}
	}

	return record, nil
}

// Lookup returns the record for a state name, matched exactly.
func (t *Table) Lookup(state string) (StateRecord, bool) {
	i, ok := t.index[state]
	if !ok {
		return StateRecord{}, false
	}
	return t.Rows[i], true
}

// States returns the distinct state names, sorted.
func (t *Table) States() []string {
	states := make([]string, 0, len(t.index))
	for name := range t.index {
		states = append(states, name)
	}
	sort.Strings(states)
	return states
}
