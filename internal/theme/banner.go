package theme

import (
	"fmt"
)

// Banner returns the kindred CLI banner.
func Banner() string {
	const magenta = "\033[35m"
	const cyan = "\033[36m"
	const yellow = "\033[33m"
	const reset = "\033[0m"

	art := "" +
		"  ·•·   " + magenta + "KINDRED" + reset + "   ·•·\n" +
		cyan + "   ♥──────♥──────♥\n" + reset +
		yellow + "  ─────────────────────────────\n" + reset +
		"   conversation-pattern profiling & matchmaking\n"
	return art
}

// PrintBanner prints the banner to stdout.
func PrintBanner() {
	fmt.Print(Banner())
}
