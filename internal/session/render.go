package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/taskmenu/internal/models"
)

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
)

// styles are bound to the session's writer so that pipes and test buffers
// receive plain text.
type styles struct {
	title   lipgloss.Style
	name    lipgloss.Style
	done    lipgloss.Style
	pending lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(primaryColor),
		name:    r.NewStyle().Bold(true),
		done:    r.NewStyle().Foreground(successColor),
		pending: r.NewStyle().Foreground(mutedColor),
		muted:   r.NewStyle().Foreground(mutedColor).Italic(true),
		success: r.NewStyle().Foreground(successColor),
		err:     r.NewStyle().Bold(true).Foreground(errorColor),
	}
}

func (st styles) menu() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(st.title.Render("What would you like to do? (eg: '1')"))
	b.WriteString("\n1. View tasks\n2. Add a task\n3. Complete task\n4. Delete task\n")
	b.WriteString(st.muted.Render("Anything else saves and exits"))
	b.WriteString("\n")
	return b.String()
}

// taskList renders tasks with their 1-based positions.
func (st styles) taskList(tasks []models.Task) string {
	if len(tasks) == 0 {
		return "\n" + st.muted.Render("No tasks") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, t := range tasks {
		doneStyle := st.pending
		if t.Done {
			doneStyle = st.done
		}
		fmt.Fprintf(&b, "\t%d. %s : %s : %s\n\t%s\n\n",
			i+1,
			st.name.Render(t.Name),
			t.DueDate,
			doneStyle.Render(fmt.Sprintf("Done - %t", t.Done)),
			t.Description,
		)
	}
	return b.String()
}
