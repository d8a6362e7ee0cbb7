package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints a yes/no prompt and reads the answer from r. Only an
// explicit "y" or "yes" counts as confirmation; anything else, including a
// closed input stream, declines.
func Confirm(w io.Writer, r io.Reader, prompt string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", WarningStyle.Render(prompt))

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
