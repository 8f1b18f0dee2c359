// Package observability provides logging setup and formatted output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/devfolio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintDashboard outputs the admin dashboard counters.
func (p *Printer) PrintDashboard(name string, stats types.DashboardStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Owner:       %s\n", name))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Projects:    %d\n", stats.Projects))
	sb.WriteString(fmt.Sprintf("Skills:      %d\n", stats.Skills))
	sb.WriteString(fmt.Sprintf("Experience:  %d\n", stats.ExperienceEntries))
	sb.WriteString(fmt.Sprintf("Unread:      %d", stats.UnreadMessages))

	p.printBox("PORTFOLIO STATUS", sb.String())
}

// PrintMessages outputs the newest contact messages, marking unread ones.
func (p *Printer) PrintMessages(messages []types.ContactMessage) {
	if len(messages) == 0 {
		p.printBox("INBOX", "No messages yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d messages:\n\n", len(messages)))

	count := min(len(messages), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := messages[i]
		marker := " "
		if !m.Read {
			marker = "●"
		}
		sb.WriteString(fmt.Sprintf("%s %s <%s>\n", marker, m.Name, m.Email))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(m.Message, 50)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(messages) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more messages", len(messages)-maxItemsToShow))
	}

	p.printBox("INBOX", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOptimization outputs the optimizer report.
func (p *Printer) PrintOptimization(result *types.OptimizationResult, projects []types.Project) {
	if result == nil {
		return
	}

	titles := make(map[string]string, len(projects))
	for _, proj := range projects {
		titles[proj.ID] = proj.Title
	}

	var sb strings.Builder
	sb.WriteString("Improved Bio:\n")
	sb.WriteString(wrap(result.ImprovedBio, boxWidth-6, "  "))
	sb.WriteString("\n")

	if len(result.ProjectSuggestions) > 0 {
		sb.WriteString("\nProject Suggestions:\n")
		for _, s := range result.ProjectSuggestions {
			label := titles[s.ProjectID]
			if label == "" {
				label = s.ProjectID
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", label))
			sb.WriteString(wrap(s.Suggestion, boxWidth-8, "    "))
			sb.WriteString("\n")
		}
	}

	if result.GeneralFeedback != "" {
		sb.WriteString("\nGeneral Feedback:\n")
		sb.WriteString(wrap(result.GeneralFeedback, boxWidth-6, "  "))
	}

	p.printBox("PORTFOLIO OPTIMIZATION", strings.TrimSuffix(sb.String(), "\n"))
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, indent+line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, indent+line)
	return strings.Join(lines, "\n")
}
