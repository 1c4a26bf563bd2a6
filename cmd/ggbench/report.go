package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/ggbench"
)

// newPrinter returns the printer used for reports. Counts are grouped by
// thousands.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

func stateName(saturated bool) string {
	if saturated {
		return "saturated"
	}
	return "growing"
}

// formatReport renders one report line.
func formatReport(p *message.Printer, bench string, d ggbench.PerfData) string {
	return p.Sprintf("%s: %.1f fps, %.2f ms, %d shapes, %s",
		bench, d.FPS, d.DrawTime, d.DrawCount, stateName(d.Saturated))
}
