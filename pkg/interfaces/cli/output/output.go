package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vsinha/dockplan/pkg/application/dto"
	"github.com/vsinha/dockplan/pkg/application/services/reporting"
)

// File names written into the output directory
const (
	InboundFile     = "inbound_schedule.csv"
	PerformanceFile = "slot_performances.csv"
	HistoryFile     = "inbound_history.csv"
	JSONFile        = "schedule.json"
	TextFile        = "schedule.txt"
	GanttFile       = "dock_schedule.svg"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	// Out receives console output; nil means stdout
	Out io.Writer
}

func (c Config) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Generate creates output for a scheduling run in the specified format
func Generate(result *dto.ScheduleResult, summary *dto.RunSummary, config Config) error {
	report := reporting.BuildReport(result)

	switch config.Format {
	case "text":
		return generateTextOutput(report, summary, config)
	case "json":
		return generateJSONOutput(report, summary, config)
	case "csv":
		return generateCSVOutput(report, config)
	case "gantt":
		return generateGanttOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput prints a summary and both tables, and saves a copy
// when an output directory is set
func generateTextOutput(report dto.Report, summary *dto.RunSummary, config Config) error {
	w := config.out()

	var file *os.File
	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := filepath.Join(config.OutputDir, TextFile)
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create text file: %w", err)
		}
		defer f.Close()
		file = f
		w = io.MultiWriter(w, f)
	}

	fmt.Fprintf(w, "📊 Dock Schedule Summary\n")
	fmt.Fprintf(w, "========================\n\n")

	if summary != nil {
		fmt.Fprintf(w, "Run: %s\n", summary.RunID)
		fmt.Fprintf(w, "Slots: %d\n", summary.Slots)
		fmt.Fprintf(w, "Inbounded Items: %d\n", summary.Inbounded)
		fmt.Fprintf(w, "Pending Items: %d\n", summary.Pending)
		fmt.Fprintf(w, "Dropped Items: %d\n", summary.Dropped)
		fmt.Fprintf(w, "Completed Orders: %d\n", summary.Completed)
		fmt.Fprintf(w, "Calculation Time: %v\n\n", summary.Duration)
	}

	if len(report.Inbounds) == 0 {
		fmt.Fprintf(w, "⚠️  Couldn't calculate schedules!\n\n")
	} else {
		writeInboundTable(w, "📋 Inbounds:", report.Inbounds)
	}

	if len(report.Performances) > 0 {
		fmt.Fprintf(w, "📈 Slot Performance:\n")
		fmt.Fprintf(w, "%-20s %-20s %-12s\n", "Slot Start", "Slot End", "Performance")
		fmt.Fprintf(w, "%-20s %-20s %-12s\n", "--------------------", "--------------------", "------------")
		for _, row := range report.Performances {
			fmt.Fprintf(w, "%-20s %-20s %-12s\n", row.SlotStartDate, row.SlotEndDate, row.Performance)
		}
		fmt.Fprintln(w)
	}

	if file != nil && config.Verbose {
		fmt.Fprintf(config.out(), "💾 Results saved to: %s\n", file.Name())
	}

	return nil
}

func writeInboundTable(w io.Writer, title string, rows []dto.InboundRow) {
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(w, "%-20s %-20s %-10s %-12s %-16s %-8s %-10s\n",
		"Slot Start", "Slot End", "Dock", "PO", "Item", "Qty", "Remaining")
	fmt.Fprintf(w, "%-20s %-20s %-10s %-12s %-16s %-8s %-10s\n",
		"--------------------", "--------------------", "----------", "------------", "----------------", "--------", "----------")

	for _, row := range rows {
		fmt.Fprintf(w, "%-20s %-20s %-10s %-12s %-16s %-8d %-10d\n",
			row.SlotStartDate,
			row.SlotEndDate,
			row.DockID,
			row.POID,
			row.ItemID,
			row.Quantity,
			row.DockCurrentCapacity)
	}
	fmt.Fprintln(w)
}

type jsonOutput struct {
	Summary *dto.RunSummary `json:"summary,omitempty"`
	dto.Report
}

// generateJSONOutput creates JSON output
func generateJSONOutput(report dto.Report, summary *dto.RunSummary, config Config) error {
	jsonData, err := json.MarshalIndent(jsonOutput{Summary: summary, Report: report}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return writeJSON(jsonData, JSONFile, config)
}

func writeJSON(jsonData []byte, name string, config Config) error {
	if config.OutputDir == "" {
		fmt.Fprintln(config.out(), string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, name)
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(config.out(), "💾 JSON results saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput writes the inbound and performance reports. Empty
// reports are skipped rather than written as header-only files.
func generateCSVOutput(report dto.Report, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	inboundFile := filepath.Join(config.OutputDir, InboundFile)
	wroteInbounds, err := WriteInboundsCSV(report.Inbounds, inboundFile)
	if err != nil {
		return fmt.Errorf("failed to write inbound CSV: %w", err)
	}

	performanceFile := filepath.Join(config.OutputDir, PerformanceFile)
	wrotePerformances, err := WritePerformancesCSV(report.Performances, performanceFile)
	if err != nil {
		return fmt.Errorf("failed to write performance CSV: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(config.out(), "💾 CSV results saved to:\n")
		if wroteInbounds {
			fmt.Fprintf(config.out(), "  Inbounds: %s\n", inboundFile)
		}
		if wrotePerformances {
			fmt.Fprintf(config.out(), "  Performances: %s\n", performanceFile)
		}
	}

	return nil
}

// generateGanttOutput writes the dock timeline chart
func generateGanttOutput(result *dto.ScheduleResult, config Config) error {
	svg := NewGanttChart(result).GenerateSVG(result)

	if config.OutputDir == "" {
		fmt.Fprintln(config.out(), svg)
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, GanttFile)
	if err := os.WriteFile(filename, []byte(svg), 0644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(config.out(), "💾 Dock chart saved to: %s\n", filename)
	}
	return nil
}

// GenerateHistory prints or saves stored inbound rows
func GenerateHistory(rows []dto.InboundRow, config Config) error {
	switch config.Format {
	case "text":
		if len(rows) == 0 {
			fmt.Fprintln(config.out(), "No inbounds found")
			return nil
		}
		writeInboundTable(config.out(), fmt.Sprintf("📦 Inbound History (%d rows):", len(rows)), rows)
		return nil
	case "json":
		if rows == nil {
			rows = []dto.InboundRow{}
		}
		jsonData, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return writeJSON(jsonData, "inbound_history.json", config)
	case "csv":
		if config.OutputDir == "" {
			return fmt.Errorf("output directory required for CSV format")
		}
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := filepath.Join(config.OutputDir, HistoryFile)
		if _, err := WriteInboundsCSV(rows, filename); err != nil {
			return fmt.Errorf("failed to write history CSV: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}
