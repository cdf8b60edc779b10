package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	grapherrors "github.com/anishnya/simple-grapher/pkg/errors"
)

// Load reads a CSV file into a Table, keeping the first two columns as x
// and y. A leading row whose first two cells do not parse as numbers is
// treated as a header and skipped. Errors are reported as DataError with a
// kind describing the failure: missing file, empty table, or fewer than
// two columns.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, grapherrors.NewDataError(path, grapherrors.DataNotFound, err)
	}
	defer f.Close()

	return LoadReader(f, path)
}

// LoadReader parses CSV content from an arbitrary reader. The path is only
// used in error reporting.
func LoadReader(r io.Reader, path string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, grapherrors.NewDataError(path, grapherrors.DataParse, err)
	}

	if len(records) == 0 {
		return nil, grapherrors.NewDataError(path, grapherrors.DataEmpty, errors.New("file contains no rows"))
	}

	columns := len(records[0])
	if columns < 2 {
		return nil, grapherrors.NewDataError(path, grapherrors.DataSchema,
			fmt.Errorf("need at least 2 columns, found %d", columns))
	}

	start := 0
	if !numericRow(records[0]) {
		start = 1
	}

	table := &Table{Path: path, Columns: columns}
	for i := start; i < len(records); i++ {
		row := records[i]
		if len(row) < 2 {
			return nil, grapherrors.NewDataError(path, grapherrors.DataSchema,
				fmt.Errorf("row %d has %d columns, need at least 2", i+1, len(row)))
		}

		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, grapherrors.NewDataError(path, grapherrors.DataParse,
				fmt.Errorf("row %d column 1: %w", i+1, err))
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, grapherrors.NewDataError(path, grapherrors.DataParse,
				fmt.Errorf("row %d column 2: %w", i+1, err))
		}

		table.X = append(table.X, x)
		table.Y = append(table.Y, y)
	}

	if table.Len() == 0 {
		return nil, grapherrors.NewDataError(path, grapherrors.DataEmpty, errors.New("file contains no data rows"))
	}

	return table, nil
}

func numericRow(row []string) bool {
	if len(row) < 2 {
		return false
	}
	if _, err := strconv.ParseFloat(row[0], 64); err != nil {
		return false
	}
	if _, err := strconv.ParseFloat(row[1], 64); err != nil {
		return false
	}
	return true
}
