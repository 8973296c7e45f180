package main

import (
	"fmt"
	"regexp"
)

// ANSI escape codes for optional output colorization.
const (
	colorCyan   = "\033[96m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorRed    = "\033[91m"
	colorReset  = "\033[0m"
)

var colorizeOutput bool

func colorize(text, color string) string {
	if !colorizeOutput {
		return text
	}
	return color + text + colorReset
}

// colorizePattern wraps every match of re within text in the given
// color.
func colorizePattern(text string, re *regexp.Regexp, color string) string {
	if !colorizeOutput {
		return text
	}
	return re.ReplaceAllString(text, colorize("$0", color))
}

func cprintln(text, color string) {
	fmt.Fprintln(output, colorize(text, color))
}
