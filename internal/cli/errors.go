package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/setop/internal/domain"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// exitCode maps an error to the process exit status. Errors without a kind
// come from cobra's flag parsing and count as usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var oe *domain.OpError
	if errors.As(err, &oe) {
		if oe.Kind == domain.KindUsage {
			return exitUsage
		}
		return exitFailure
	}
	return exitUsage
}

func printError(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Render("error:")
	fmt.Fprintf(w, "%s %s\n", label, userMessage(err))
}

// userMessage is the short diagnostic shown on stderr.
func userMessage(err error) string {
	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return err.Error()
	}

	cause := "unknown error"
	var pe *fs.PathError
	switch {
	case errors.As(oe.Err, &pe):
		cause = pe.Err.Error()
	case oe.Err != nil:
		cause = oe.Err.Error()
	}

	switch {
	case oe.Kind == domain.KindUsage:
		return cause
	case strings.HasPrefix(oe.Op, "config"):
		return fmt.Sprintf("config %s: %s", oe.Path, cause)
	case oe.Path != "":
		return fmt.Sprintf("%s: %s", oe.Path, cause)
	}
	return cause
}
