package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/fastygo/todo/domain"
)

// Styles colours CLI output. Colour can be switched off for pipes and tests.
type Styles struct {
	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	errorS  lipgloss.Style
	done    lipgloss.Style
	pending lipgloss.Style
}

func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		info:    r.NewStyle().Foreground(lipgloss.Color("6")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		errorS:  r.NewStyle().Foreground(lipgloss.Color("1")),
		done:    r.NewStyle().Foreground(lipgloss.Color("2")),
		pending: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (s Styles) Info(text string) string    { return s.info.Render(text) }
func (s Styles) Success(text string) string { return s.success.Render(text) }
func (s Styles) Warning(text string) string { return s.warning.Render(text) }
func (s Styles) Error(text string) string   { return s.errorS.Render(text) }

func (s Styles) status(completed bool) lipgloss.Style {
	if completed {
		return s.done
	}
	return s.pending
}

// StatusIcon is ✓ for completed tasks and ○ otherwise.
func StatusIcon(completed bool) string {
	if completed {
		return "✓"
	}
	return "○"
}

// Task renders "<icon> <id>: <title>".
func (s Styles) Task(t domain.Task) string {
	st := s.status(t.Completed)
	return fmt.Sprintf("%s %d: %s", st.Render(StatusIcon(t.Completed)), t.ID, st.Render(t.Title))
}

// Row renders one line of the task table.
func (s Styles) Row(t domain.Task) string {
	st := s.status(t.Completed)
	status := "Incomplete"
	if t.Completed {
		status = "Completed"
	}
	return fmt.Sprintf("%s | %s | %s",
		st.Render(fmt.Sprintf("%-4d", t.ID)),
		st.Render(fmt.Sprintf("%-20s", truncate(t.Title, 18))),
		st.Render(fmt.Sprintf("%s %s", StatusIcon(t.Completed), status)))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
