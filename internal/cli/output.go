package cli

import (
	"fmt"
	"io"
	"strconv"
)

// FormatSumLine returns "<label> sum: <value>".
func FormatSumLine(label string, sum int64) string {
	return fmt.Sprintf("%s sum: %d", label, sum)
}

// FormatQuietResult returns the aggregate alone, for scripting.
func FormatQuietResult(sum int64) string {
	return strconv.FormatInt(sum, 10)
}

// DisplayQuietResult writes FormatQuietResult and a newline to out.
func DisplayQuietResult(out io.Writer, sum int64) {
	fmt.Fprintln(out, FormatQuietResult(sum))
}
