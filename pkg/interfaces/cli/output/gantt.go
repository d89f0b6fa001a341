package output

import (
	"fmt"
	"hash/fnv"
	"html"
	"strings"
	"time"

	"github.com/vsinha/dockplan/pkg/application/dto"
	"github.com/vsinha/dockplan/pkg/domain/entities"
)

// GanttChart lays out one row per dock and one bar per PO unloaded in a slot
type GanttChart struct {
	Width        int
	Height       int
	MarginLeft   int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	RowHeight    int
	StartTime    time.Time
	EndTime      time.Time
}

// GanttBar is the items one PO unloaded at one dock during one slot
type GanttBar struct {
	DockID    entities.DockID
	POID      entities.POID
	Items     int
	Quantity  entities.Quantity
	Remaining entities.Quantity
	SlotStart time.Time
	SlotEnd   time.Time
	X         int
	Width     int
	Color     string
}

var barPalette = []string{"#4CAF50", "#2196F3", "#FF9800", "#9C27B0", "#009688", "#E91E63", "#795548", "#3F51B5"}

// NewGanttChart sizes a chart for the run's inbounds
func NewGanttChart(result *dto.ScheduleResult) *GanttChart {
	if len(result.Inbounds) == 0 {
		return &GanttChart{
			Width:        800,
			Height:       200,
			MarginLeft:   150,
			MarginTop:    50,
			MarginRight:  50,
			MarginBottom: 50,
			RowHeight:    25,
		}
	}

	startTime := result.Inbounds[0].SlotStart
	endTime := result.Inbounds[0].SlotEnd
	docks := make(map[entities.DockID]bool)
	for _, record := range result.Inbounds {
		if record.SlotStart.Before(startTime) {
			startTime = record.SlotStart
		}
		if record.SlotEnd.After(endTime) {
			endTime = record.SlotEnd
		}
		docks[record.DockID] = true
	}

	rowHeight := 30
	return &GanttChart{
		Width:        1200,
		Height:       len(docks)*rowHeight + 160,
		MarginLeft:   150,
		MarginTop:    60,
		MarginRight:  50,
		MarginBottom: 70,
		RowHeight:    rowHeight,
		StartTime:    startTime,
		EndTime:      endTime,
	}
}

// GenerateSVG renders the chart
func (gc *GanttChart) GenerateSVG(result *dto.ScheduleResult) string {
	if len(result.Inbounds) == 0 {
		return gc.generateEmptyChart()
	}

	var svg strings.Builder

	svg.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, gc.Width, gc.Height))
	svg.WriteString(`<defs><style>`)
	svg.WriteString(`.dock-label { font-family: Arial, sans-serif; font-size: 12px; fill: #333; }`)
	svg.WriteString(`.time-label { font-family: Arial, sans-serif; font-size: 10px; fill: #666; }`)
	svg.WriteString(`.title { font-family: Arial, sans-serif; font-size: 16px; font-weight: bold; fill: #333; }`)
	svg.WriteString(`.grid-line { stroke: #e0e0e0; stroke-width: 1; }`)
	svg.WriteString(`.po-bar { stroke: #333; stroke-width: 1; }`)
	svg.WriteString(`.po-text { font-family: Arial, sans-serif; font-size: 9px; fill: white; }`)
	svg.WriteString(`</style></defs>`)

	svg.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>`, gc.Width, gc.Height))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="30" class="title" text-anchor="middle">Dock Schedule</text>`, gc.Width/2))

	docks, rows := gc.organizeBars(gc.createBars(result.Inbounds))

	gc.drawTimeAxis(&svg, result.Performances)
	for i, dock := range docks {
		y := gc.MarginTop + i*gc.RowHeight

		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="dock-label" text-anchor="end">%s</text>`,
			gc.MarginLeft-15, y+gc.RowHeight/2+4, html.EscapeString(string(dock))))
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
			gc.MarginLeft, y+gc.RowHeight, gc.Width-gc.MarginRight, y+gc.RowHeight))

		for _, bar := range rows[dock] {
			gc.drawBar(&svg, bar, y)
		}
	}

	svg.WriteString(`</svg>`)
	return svg.String()
}

// xFor maps a time onto the chart's horizontal axis
func (gc *GanttChart) xFor(t time.Time) int {
	chartWidth := gc.Width - gc.MarginLeft - gc.MarginRight
	total := gc.EndTime.Sub(gc.StartTime)
	if total <= 0 {
		return gc.MarginLeft
	}
	return gc.MarginLeft + int(float64(t.Sub(gc.StartTime))/float64(total)*float64(chartWidth))
}

// createBars merges consecutive records of the same PO, dock and slot
func (gc *GanttChart) createBars(records []entities.InboundRecord) []GanttBar {
	var bars []GanttBar
	for _, record := range records {
		if n := len(bars); n > 0 {
			last := &bars[n-1]
			if last.DockID == record.DockID && last.POID == record.POID && last.SlotStart.Equal(record.SlotStart) {
				last.Items++
				last.Quantity += record.Quantity
				last.Remaining = record.DockRemainingCapacity
				continue
			}
		}

		x := gc.xFor(record.SlotStart)
		width := gc.xFor(record.SlotEnd) - x
		if width < 2 {
			width = 2
		}

		bars = append(bars, GanttBar{
			DockID:    record.DockID,
			POID:      record.POID,
			Items:     1,
			Quantity:  record.Quantity,
			Remaining: record.DockRemainingCapacity,
			SlotStart: record.SlotStart,
			SlotEnd:   record.SlotEnd,
			X:         x,
			Width:     width,
			Color:     barColor(record.POID),
		})
	}
	return bars
}

// organizeBars groups bars by dock, keeping docks in first-seen order
func (gc *GanttChart) organizeBars(bars []GanttBar) ([]entities.DockID, map[entities.DockID][]GanttBar) {
	var docks []entities.DockID
	rows := make(map[entities.DockID][]GanttBar)
	for _, bar := range bars {
		if _, seen := rows[bar.DockID]; !seen {
			docks = append(docks, bar.DockID)
		}
		rows[bar.DockID] = append(rows[bar.DockID], bar)
	}
	return docks, rows
}

// drawTimeAxis labels each slot boundary with its time and performance
func (gc *GanttChart) drawTimeAxis(svg *strings.Builder, samples []entities.PerformanceSample) {
	axisY := gc.Height - gc.MarginBottom

	for _, sample := range samples {
		// samples carry the slot end in SlotStart
		slotStart := sample.SlotEnd
		if slotStart.Before(gc.StartTime) || slotStart.After(gc.EndTime) {
			continue
		}
		x := gc.xFor(slotStart)
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
			x, gc.MarginTop, x, axisY))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="time-label" text-anchor="middle">%s</text>`,
			x, axisY+15, slotStart.Format("Jan 2 15:04")))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="time-label" text-anchor="middle">%.0f%% idle</text>`,
			x, axisY+28, sample.Performance*100))
	}

	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
		gc.MarginLeft, axisY, gc.Width-gc.MarginRight, axisY))
}

func (gc *GanttChart) drawBar(svg *strings.Builder, bar GanttBar, rowY int) {
	barHeight := gc.RowHeight - 4
	barY := rowY + 2

	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" class="po-bar">`,
		bar.X, barY, bar.Width, barHeight, bar.Color))
	svg.WriteString(fmt.Sprintf(`<title>PO: %s, Dock: %s, Items: %d, Qty: %d, Remaining: %d, Slot: %s - %s</title>`,
		html.EscapeString(string(bar.POID)), html.EscapeString(string(bar.DockID)),
		bar.Items, bar.Quantity, bar.Remaining,
		bar.SlotStart.Format("2006-01-02 15:04"), bar.SlotEnd.Format("15:04")))
	svg.WriteString(`</rect>`)

	if bar.Width > 40 {
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="po-text" text-anchor="middle">PO %s: %d</text>`,
			bar.X+bar.Width/2, barY+barHeight/2+3, html.EscapeString(string(bar.POID)), bar.Quantity))
	}
}

// barColor keeps one color per PO across docks and slots
func barColor(po entities.POID) string {
	h := fnv.New32a()
	h.Write([]byte(po))
	return barPalette[h.Sum32()%uint32(len(barPalette))]
}

func (gc *GanttChart) generateEmptyChart() string {
	return fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
		<rect width="%d" height="%d" fill="white"/>
		<text x="%d" y="%d" class="title" text-anchor="middle">No Inbounds Scheduled</text>
		<style>
			.title { font-family: Arial, sans-serif; font-size: 16px; fill: #666; }
		</style>
	</svg>`, gc.Width, gc.Height, gc.Width, gc.Height, gc.Width/2, gc.Height/2)
}
