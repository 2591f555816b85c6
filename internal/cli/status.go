package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"go.abhg.dev/carve/internal/carve"
)

// statusStyle is the set of styles for rendering a status report.
type statusStyle struct {
	Branch lipgloss.Style
	Hash   lipgloss.Style
	Time   lipgloss.Style
	Add    lipgloss.Style
	Del    lipgloss.Style
	Mod    lipgloss.Style
}

var (
	// _colorStatusStyle is used when writing to a terminal.
	_colorStatusStyle = statusStyle{
		Branch: lipgloss.NewStyle().Bold(true),
		Hash:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),  // yellow
		Time:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),  // gray
		Add:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // green
		Del:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // red
		Mod:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // yellow
	}

	// _plainStatusStyle renders text unchanged.
	_plainStatusStyle = statusStyle{
		Branch: lipgloss.NewStyle(),
		Hash:   lipgloss.NewStyle(),
		Time:   lipgloss.NewStyle(),
		Add:    lipgloss.NewStyle(),
		Del:    lipgloss.NewStyle(),
		Mod:    lipgloss.NewStyle(),
	}
)

// statusStyleFor picks styles for the writer:
// colors on a terminal, plain text everywhere else.
func statusStyleFor(w io.Writer) statusStyle {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return _colorStatusStyle
	}
	return _plainStatusStyle
}

// forCode picks the style for a diff status code.
// Rename and copy codes carry a similarity score ("R100"),
// so match on the first letter only.
func (s statusStyle) forCode(code string) lipgloss.Style {
	if code == "" {
		return s.Mod
	}

	switch code[0] {
	case 'A':
		return s.Add
	case 'D':
		return s.Del
	default:
		return s.Mod
	}
}

// renderStatus writes a human-readable description
// of the split in progress, if any.
func renderStatus(
	w io.Writer,
	report *carve.StatusReport,
	id carve.Identity,
	now time.Time,
) (err error) {
	style := statusStyleFor(w)
	out := bufio.NewWriter(w)
	defer func() {
		err = errors.Join(err, out.Flush())
	}()

	if !report.InProgress {
		fmt.Fprintln(out, "no split in progress")
		return nil
	}

	started := humanize.RelTime(report.StartedAt, now, "ago", "from now")
	fmt.Fprintf(out, "Splitting %v\n", style.Branch.Render(report.Branch))
	fmt.Fprintf(out, "  Original commit: %v %v %v\n",
		style.Hash.Render(report.Tip.Short()),
		report.TipSubject,
		style.Time.Render("(started "+started+")"),
	)
	fmt.Fprintf(out, "  Slices committed: %v\n", report.Slices)
	fmt.Fprintln(out)

	if !report.AtBase {
		fmt.Fprintln(out, "HEAD is not at the split base.")
		fmt.Fprintf(out, "The next '%v --continue' will roll back the split.\n", id.Git)
		return nil
	}

	if len(report.Staged) == 0 {
		fmt.Fprintln(out, "Nothing is staged for the next slice yet.")
	} else {
		fmt.Fprintln(out, "Staged for the next slice:")
		for _, file := range report.Staged {
			fmt.Fprintf(out, "  %v %v\n", style.forCode(file.Status).Render(file.Status), file.Path)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Continue with '%v --continue'; abort with '%v --abort'.\n", id.Git, id.Git)
	return nil
}
