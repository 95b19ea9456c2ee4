package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/parsum/internal/config"
	"github.com/agbru/parsum/internal/format"
	"github.com/agbru/parsum/internal/reduce"
	"github.com/agbru/parsum/internal/sysmon"
	"github.com/agbru/parsum/internal/ui"
)

// PrintExecutionConfig prints the input, transform, workers and host
// details shown in verbose mode.
func PrintExecutionConfig(cfg config.AppConfig, seq reduce.Sequence, host sysmon.HostInfo, out io.Writer) {
	fmt.Fprintf(out, "%s\n", ui.HeaderStyle().Render("--- Execution Configuration ---"))
	fmt.Fprintf(out, "Reducing %s%s%s elements with transform %s%s%s and a timeout of %s%s%s.\n",
		ui.ColorMagenta(), format.FormatInt(int64(len(seq))), ui.ColorReset(),
		ui.ColorMagenta(), cfg.Transform, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical / %s%d%s physical processors, GOMAXPROCS %d, Go %s.\n",
		ui.ColorCyan(), host.LogicalCPUs, ui.ColorReset(),
		ui.ColorCyan(), host.PhysicalCPUs, ui.ColorReset(),
		host.GOMAXPROCS, runtime.Version())
	fmt.Fprintf(out, "Host load: CPU %s%.1f%%%s / Mem %s%.1f%%%s.\n",
		ui.ColorCyan(), host.Load.CPUPercent, ui.ColorReset(),
		ui.ColorCyan(), host.Load.MemPercent, ui.ColorReset())
	if host.ModelName != "" {
		fmt.Fprintf(out, "CPU: %s\n", host.ModelName)
	}
	if len(host.Features) > 0 {
		fmt.Fprintf(out, "CPU features: %s\n", strings.Join(host.Features, ", "))
	}
	fmt.Fprintf(out, "Parallel workers: %s%d%s.\n", ui.ColorCyan(), cfg.Workers, ui.ColorReset())
}

// PrintExecutionMode states which reducers will run.
func PrintExecutionMode(reducers []reduce.Reducer, out io.Writer) {
	var modeDesc string
	switch len(reducers) {
	case 0:
		modeDesc = "no reducers selected"
	case 1:
		modeDesc = fmt.Sprintf("single reduction with the %s%s%s reducer",
			ui.ColorGreen(), reducers[0].Label(), ui.ColorReset())
	default:
		labels := make([]string, len(reducers))
		for i, r := range reducers {
			labels[i] = r.Label()
		}
		modeDesc = "comparison of " + strings.Join(labels, ", ")
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n%s\n", ui.HeaderStyle().Render("--- Results ---"))
}
