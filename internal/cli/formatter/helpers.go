package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HumanDate formats a calendar date as "Mon 2006-01-02".
func HumanDate(t time.Time) string {
	return t.Format("Mon 2006-01-02")
}

// FormatMinutes renders a nullable minute count, "-" when unknown.
func FormatMinutes(min *int) string {
	if min == nil {
		return "-"
	}
	if *min >= 60 {
		return fmt.Sprintf("%dh%02dm", *min/60, *min%60)
	}
	return fmt.Sprintf("%dm", *min)
}

// Checkbox renders a completion marker.
func Checkbox(completed bool) string {
	if completed {
		return StyleGreen.Render("✓")
	}
	return StyleDim.Render("·")
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}
