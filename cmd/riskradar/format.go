package main

import (
	"fmt"
	"math"

	"github.com/wspwll/risk-radar/internal/services/analytics"
)

func compactCurrency(n float64) string {
	abs := math.Abs(n)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("$%.2fB", n/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.2fM", n/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.2fK", n/1e3)
	}
	return fmt.Sprintf("$%.0f", n)
}

// formatChange renders a change as "▲ +50.0%". Undefined changes render
// empty, never as 0%.
func formatChange(c analytics.Change) string {
	if !c.Defined {
		return ""
	}
	sign := ""
	switch {
	case c.Percent > 0:
		sign = "+"
	case c.Percent < 0:
		sign = "−"
	}
	return fmt.Sprintf("%s %s%.1f%%", arrow(c.Direction()), sign, math.Abs(c.Percent))
}

func arrow(d analytics.Direction) string {
	switch d {
	case analytics.Up:
		return "▲"
	case analytics.Down:
		return "▼"
	case analytics.Flat:
		return "•"
	}
	return ""
}
