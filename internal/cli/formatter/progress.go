package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is clamped to its width but the percentage is not, so overtime
// shows as e.g. 120%. Colors: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if width < 2 {
		width = 2
	}

	barPct := pct
	if barPct > 1 {
		barPct = 1
	}
	filled := int(barPct * float64(width))
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderTargetLine renders "12.50 / 160.00h  [█░░░] 8%" or just the total
// when target is 0.
func RenderTargetLine(total, target float64, width int) string {
	if target <= 0 {
		return Bold(FormatHours(total)) + Dim("h")
	}
	return fmt.Sprintf("%s %s  %s",
		Bold(FormatHours(total)),
		Dim("/ "+FormatHours(target)+"h"),
		RenderProgress(total/target, width))
}
