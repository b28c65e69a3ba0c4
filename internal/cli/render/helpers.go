package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	nameStyle          = color.New(color.FgCyan, color.Bold)
	faintStyle         = color.New(color.Faint)
	okStyle            = color.New(color.FgGreen)
	badStyle           = color.New(color.FgRed)
	warnStyle          = color.New(color.FgYellow)

	titleCaser = cases.Title(language.English)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warnStyle.Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return badStyle.Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return okStyle.Sprintf("✅ %s", message)
}

// sectionTitle renders a bold section heading, e.g. "gas reporter" -> "Gas Reporter"
func sectionTitle(title string) string {
	return sectionHeaderStyle.Sprint(titleCaser.String(title))
}

// yesNo renders a boolean setting
func yesNo(b bool) string {
	if b {
		return okStyle.Sprint("yes")
	}
	return faintStyle.Sprint("no")
}

// orNotSet renders an empty value as a faint placeholder
func orNotSet(s string) string {
	if s == "" {
		return faintStyle.Sprint("(not set)")
	}
	return s
}

// newTable returns a borderless left-aligned table writer
func newTable(header ...any) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingLeft:  "  ",
		PaddingRight: "  ",
	}
	t.Style().Format.Header = text.FormatDefault

	if len(header) > 0 {
		t.AppendHeader(table.Row(header))
	}
	return t
}
