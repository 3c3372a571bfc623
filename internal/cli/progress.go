package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
)

const (
	labelWidth  = 50
	detailWidth = 60
)

// printProgress writes one aligned per-row progress line to stderr. Labels
// are padded by display width, not byte count, so rows with non-ASCII camp
// names keep the columns straight.
func printProgress(n, total int, label, detail string, ok bool) {
	mark := "✓"
	if !ok {
		mark = "✗"
	}
	label = runewidth.FillRight(runewidth.Truncate(label, labelWidth, "…"), labelWidth)
	detail = runewidth.Truncate(detail, detailWidth, "…")

	if total > 0 {
		fmt.Fprintf(os.Stderr, "[%d/%d] %s  %s %s\n", n, total, label, mark, detail)
		return
	}
	fmt.Fprintf(os.Stderr, "[%d] %s  %s %s\n", n, label, mark, detail)
}
