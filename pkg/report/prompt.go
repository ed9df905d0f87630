package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// 🔐 Confirm asks the user to approve the pending renames. Only a typed
// "yes" (case-insensitive, surrounding whitespace ignored) approves;
// anything else, including EOF, declines.
func Confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprintln(out, "\nAre you sure you want to rename these files?")
	fmt.Fprint(out, "Type 'yes' to confirm: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) == "yes"
}
