package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/vsinha/dockplan/pkg/application/dto"
)

// WriteInboundsCSV writes inbound rows with a header. Nothing is written for
// an empty list; the returned bool reports whether the file was created.
func WriteInboundsCSV(rows []dto.InboundRow, filename string) (bool, error) {
	if len(rows) == 0 {
		return false, nil
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Values())
	}
	return true, writeCSV(filename, dto.InboundHeader, records)
}

// WritePerformancesCSV writes performance rows with a header, skipping an
// empty list
func WritePerformancesCSV(rows []dto.PerformanceRow, filename string) (bool, error) {
	if len(rows) == 0 {
		return false, nil
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Values())
	}
	return true, writeCSV(filename, dto.PerformanceHeader, records)
}

func writeCSV(filename string, header []string, records [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return file.Close()
}
