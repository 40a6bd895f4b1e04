package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/spress-import/internal/entities"
)

func printLine(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

func printTitle(w io.Writer, title string) {
	printLine(w, "%s\n%s\n", title, strings.Repeat("=", len(title)))
}

func printSection(w io.Writer, title string) {
	printLine(w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

// resultStatus labels a result for the report.
func resultStatus(r entities.ImportResult) string {
	switch {
	case r.HasError:
		return "error"
	case r.PreviouslyExisted:
		return "overwritten"
	default:
		return "created"
	}
}

// printResults writes one line per result and the totals. It returns the
// number of failed results.
func printResults(w io.Writer, results []entities.ImportResult) int {
	printLine(w, "Imported items:")

	var success, failed int
	for _, r := range results {
		destination := r.RelativePath
		if destination == "" {
			destination = "(none)"
		}
		printLine(w, " * [%s] %s -> %s", resultStatus(r), r.SourcePermalink, destination)

		if r.HasError {
			failed++
			printLine(w, "   Message: %s", r.Message)
		} else {
			success++
		}
	}

	printSection(w, "Results")
	printLine(w, " * Success: %d", success)
	printLine(w, " * Errors: %d", failed)

	return failed
}
