// Package csvdiff computes the set difference between two CSV files:
// the records of the left file that do not appear in the right file.
package csvdiff

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Options controls how records are compared.
type Options struct {
	// KeyColumn is the zero-based column used as the record identity.
	// A negative value compares whole records.
	KeyColumn int
	// HasHeader skips the first record of each input and carries the left
	// header through to the output.
	HasHeader bool
}

// Diff returns the records of left that are absent from right, in the order
// they appear in left. Duplicate left records are emitted once.
func Diff(left, right io.Reader, opts Options) ([][]string, error) {
	rightKeys, err := collectKeys(right, opts)
	if err != nil {
		return nil, fmt.Errorf("read right input: %w", err)
	}

	reader := csv.NewReader(left)
	reader.FieldsPerRecord = -1

	var result [][]string
	emitted := make(map[string]struct{})
	first := true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read left input: %w", err)
		}

		if first {
			first = false
			if opts.HasHeader {
				result = append(result, record)
				continue
			}
		}

		key, err := recordKey(record, opts)
		if err != nil {
			return nil, err
		}
		if _, ok := rightKeys[key]; ok {
			continue
		}
		if _, ok := emitted[key]; ok {
			continue
		}
		emitted[key] = struct{}{}
		result = append(result, record)
	}

	return result, nil
}

func collectKeys(r io.Reader, opts Options) (map[string]struct{}, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	keys := make(map[string]struct{})
	first := true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if first {
			first = false
			if opts.HasHeader {
				continue
			}
		}

		key, err := recordKey(record, opts)
		if err != nil {
			return nil, err
		}
		keys[key] = struct{}{}
	}

	return keys, nil
}

func recordKey(record []string, opts Options) (string, error) {
	if opts.KeyColumn < 0 {
		return strings.Join(record, "\x1f"), nil
	}
	if opts.KeyColumn >= len(record) {
		return "", fmt.Errorf("record has %d columns, key column %d out of range", len(record), opts.KeyColumn)
	}
	return record[opts.KeyColumn], nil
}
