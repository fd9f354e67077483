package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

// columns per simulated time unit in the gantt bar
const cellScale = 2

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	idleStyle  = lipgloss.NewStyle().Faint(true)
	palette    = []lipgloss.Color{"63", "205", "35", "214", "39", "168", "142", "99"}
)

func processStyle(pid int) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(palette[pid%len(palette)])
}

// Schedule writes the gantt chart, the per process table and the averages of one run.
func Schedule(w io.Writer, title string, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(title))
	Gantt(w, response.Timeline)
	Table(w, response)
	_, _ = fmt.Fprintf(w, "Average Waiting Time: %.2f\nAverage Turnaround Time: %.2f\n\n",
		response.AverageWaitingTime, response.AverageTurnAroundTime)
}

// Gantt draws the timeline as a single cpu bar with time marks below it. Idle gaps are shown
// explicitly even though the timeline only holds busy intervals.
func Gantt(w io.Writer, timeline []core.TimelineEntry) {
	var bar, ticks strings.Builder
	bar.WriteString("|")

	segment := func(label string, start, end int, style lipgloss.Style) {
		width := max(len(label)+2, (end-start)*cellScale)
		cell := style.Width(width).Align(lipgloss.Center).Render(label)
		bar.WriteString(cell)
		bar.WriteString("|")

		mark := strconv.Itoa(start)
		ticks.WriteString(mark)
		ticks.WriteString(strings.Repeat(" ", max(1, lipgloss.Width(cell)+1-len(mark))))
	}

	clock := 0
	for _, entry := range timeline {
		if entry.Start > clock {
			segment("idle", clock, entry.Start, idleStyle)
		}
		segment(fmt.Sprintf("P%d", entry.ProcessId), entry.Start, entry.End, processStyle(entry.ProcessId))
		clock = entry.End
	}
	ticks.WriteString(strconv.Itoa(clock))

	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}

func Table(w io.Writer, response responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Completion", "Turnaround", "Waiting", "Response"})
	for _, d := range response.Details {
		table.Append([]string{
			strconv.Itoa(d.ProcessId),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.CompletionTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
	})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%%  throughput: %.2f/t  idle: %d\n",
		response.CpuUtilization*100, response.CpuThroughput, response.IdleTime)
}
