package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// Renderer draws a View.
type Renderer interface {
	Render(v View) error
}

// LogNotifier writes notifications through a structured logger.
type LogNotifier struct {
	logger *slog.Logger
}

var _ Notifier = (*LogNotifier)(nil)

// NewLogNotifier creates a LogNotifier. A nil logger uses slog.Default.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogNotifier{logger: logger}
}

// Success logs message at info level.
func (n *LogNotifier) Success(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, message, slog.String("notification", "success"))
}

// Error logs message at error level.
func (n *LogNotifier) Error(ctx context.Context, message string) {
	n.logger.ErrorContext(ctx, message, slog.String("notification", "error"))
}

// TerminalRenderer draws a View as styled text. Styles degrade to plain
// text when w is not a terminal.
type TerminalRenderer struct {
	w io.Writer

	title  lipgloss.Style
	quote  lipgloss.Style
	author lipgloss.Style
	muted  lipgloss.Style
	alert  lipgloss.Style
}

var _ Renderer = (*TerminalRenderer)(nil)

// NewTerminalRenderer creates a TerminalRenderer writing to w.
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	r := lipgloss.NewRenderer(w)

	return &TerminalRenderer{
		w:      w,
		title:  r.NewStyle().Bold(true),
		quote:  r.NewStyle().Italic(true),
		author: r.NewStyle().Foreground(lipgloss.Color("245")),
		muted:  r.NewStyle().Faint(true),
		alert:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Render writes the quote panel, the available actions and the saved list.
func (t *TerminalRenderer) Render(v View) error {
	var b strings.Builder

	switch v.Content {
	case ContentError:
		b.WriteString(t.alert.Render(v.Message))
		b.WriteString("\n")
	case ContentQuote:
		b.WriteString(t.quote.Render(`"` + v.Quote.Text + `"`))
		b.WriteString("\n")
		b.WriteString(t.author.Render("- " + v.Quote.Author))
		b.WriteString("\n")
	default:
		b.WriteString(t.muted.Render("Loading..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.actions(v))
	b.WriteString("\n\n")
	b.WriteString(t.savedList(v.SavedQuotes))

	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *TerminalRenderer) actions(v View) string {
	next := "[n] Next quote"
	switch {
	case v.Loading:
		next = "[n] Loading..."
	case !v.CanRefetch:
		next = t.muted.Render(next)
	}

	parts := []string{next}

	if v.ShowSave {
		save := "[s] Save quote"
		switch {
		case v.Saving:
			save = "[s] Saving..."
		case !v.CanSave:
			save = t.muted.Render(save)
		}
		parts = append(parts, save)
	}

	parts = append(parts, "[l] Saved quotes", "[q] Quit")

	return strings.Join(parts, "  ")
}

func (t *TerminalRenderer) savedList(quotes []domain.Quote) string {
	var b strings.Builder

	b.WriteString(t.title.Render("Saved Quotes"))
	b.WriteString(" ")
	b.WriteString(t.muted.Render(fmt.Sprintf("%d Saved", len(quotes))))
	b.WriteString("\n")

	if len(quotes) == 0 {
		b.WriteString(t.muted.Render("You have not saved any quotes yet."))
		b.WriteString("\n")
		return b.String()
	}

	for _, q := range quotes {
		b.WriteString("  ")
		b.WriteString(t.quote.Render(`"` + q.Text + `"`))
		b.WriteString("\n  ")
		b.WriteString(t.author.Render("- " + q.Author))
		b.WriteString("\n")
	}

	return b.String()
}
