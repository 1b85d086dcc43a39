package telegram

import (
	"fmt"
	"strings"

	"smart-task-input/internal/smartinput"
	pkgSmartinput "smart-task-input/pkg/smartinput"
)

const (
	startMessage = "👋 Welcome to *Smart Task Input*!\n\n" +
		"Type a task the way you would say it and I will show you how it reads:\n" +
		"• 📅 dates like _tomorrow_, _next monday_, _in 3 days_, _jan 20_\n" +
		"• ⏰ times like _3pm_, _9:30am_, _at 15:00_\n" +
		"• 📁 `#project`, 🏷 `@label`, 🚩 `p1`..`p4`\n\n" +
		"Send /help for an example."
	helpMessage = "*How to use:*\n\n" +
		"Send one task per message, for example:\n" +
		"`Fix bug tomorrow 3pm #backend @urgent p1 // repro on staging`\n\n" +
		"Only the first date, time, project, label and priority are used. " +
		"Everything after `//` becomes a note."
)

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// escapeMarkdown escapes the legacy Markdown entity characters.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// formatDraft renders a draft preview as legacy Markdown.
func formatDraft(out smartinput.DraftOutput) string {
	d := out.Draft

	var b strings.Builder
	fmt.Fprintf(&b, "✅ *%s*\n", escapeMarkdown(d.Title))
	if d.HasDue() {
		if d.AllDay {
			fmt.Fprintf(&b, "📅 %s\n", d.Due.Format("Mon, Jan 2 2006"))
		} else {
			fmt.Fprintf(&b, "📅 %s (%s)\n", d.Due.Format("Mon, Jan 2 2006 15:04"), escapeMarkdown(d.Timezone))
		}
		if out.Parsed.Result.DateDefaulted {
			b.WriteString("    _no date given, using today_\n")
		}
	}
	if d.Project != "" {
		fmt.Fprintf(&b, "📁 #%s\n", escapeMarkdown(d.Project))
	}
	if d.Label != "" {
		fmt.Fprintf(&b, "🏷 @%s\n", escapeMarkdown(d.Label))
	}
	if d.Priority > 0 {
		fmt.Fprintf(&b, "🚩 P%d\n", d.Priority)
	}
	if d.Notes != "" {
		fmt.Fprintf(&b, "📝 %s\n", escapeMarkdown(d.Notes))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatMissingTitle explains a rejected line and lists what was recognized.
func formatMissingTitle(res pkgSmartinput.Result) string {
	var found []string
	if res.Date != nil {
		found = append(found, "date "+res.Date.String())
	}
	if res.Time != nil {
		found = append(found, "time "+res.Time.String())
	}
	if res.Project != "" {
		found = append(found, "project #"+res.Project)
	}
	if res.Label != "" {
		found = append(found, "label @"+res.Label)
	}
	if res.Priority > 0 {
		found = append(found, fmt.Sprintf("priority P%d", res.Priority))
	}

	msg := "⚠️ I only found task details, not a title."
	if len(found) > 0 {
		msg += " Recognized: " + escapeMarkdown(strings.Join(found, ", ")) + "."
	}
	return msg + "\nAdd a few words describing the task."
}
