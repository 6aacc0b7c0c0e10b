package handler

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer   = message.NewPrinter(language.English)
	titleCase = cases.Title(language.English)
)

// formatPoints renders an amount with thousands separators.
func formatPoints(n int64) string {
	return printer.Sprintf("%d", n)
}

// displayGrade renders a grade or tier label such as "SSR" or "common" for messages.
// Short all-caps labels are kept as they are.
func displayGrade(grade string) string {
	if len(grade) <= 3 && strings.ToUpper(grade) == grade {
		return grade
	}
	return titleCase.String(strings.ToLower(grade))
}
