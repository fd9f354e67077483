package requests

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"cpu-scheduler/internal/core"
)

// ReadCSV loads a process table with rows of either "arrival,burst" (ids assigned 1..n in file
// order) or "id,arrival,burst". Lines starting with '#' are ignored.
func ReadCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		line := i + 1
		fields := make([]string, len(row))
		for j := range row {
			fields[j] = strings.TrimSpace(row[j])
		}

		var pidField string
		switch len(fields) {
		case 2:
			pidField = fmt.Sprint(line)
		case 3:
			pidField, fields = fields[0], fields[1:]
		default:
			return nil, &core.InputParseError{Field: fmt.Sprintf("row %d", line), Value: strings.Join(row, ","), Err: fmt.Errorf("expected 2 or 3 fields, got %d", len(row))}
		}

		pid, err := ParseInt(fmt.Sprintf("row %d id", line), pidField)
		if err != nil {
			return nil, err
		}
		arrival, err := ParseInt(fmt.Sprintf("row %d arrival_time", line), fields[0])
		if err != nil {
			return nil, err
		}
		burst, err := ParseInt(fmt.Sprintf("row %d burst_time", line), fields[1])
		if err != nil {
			return nil, err
		}
		processes = append(processes, core.Process{ProcessId: pid, ArrivalTime: arrival, BurstTime: burst})
	}
	return processes, nil
}
