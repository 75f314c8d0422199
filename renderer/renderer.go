package renderer

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/mortgage"
	"github.com/etnz/mortgage/date"
)

//go:embed templates/*.md
var templates embed.FS

// partials are shared by every report.
var partials = map[string]string{
	"title":    "title.md",
	"schedule": "schedule.md",
}

// Markdown renders a calculation result with a yearly schedule.
func Markdown(result mortgage.Result) string {
	return MarkdownBy(result, date.Yearly)
}

// MarkdownBy renders a calculation result with a schedule summarized by period.
func MarkdownBy(result mortgage.Result, p date.Period) string {
	r, err := NewReport(result, p)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return renderReport(r)
}

// ScheduleMarkdown renders only the schedule of a result.
func ScheduleMarkdown(result mortgage.Result, p date.Period) string {
	r, err := NewReport(result, p)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	if r.Table == nil {
		return fmt.Sprintf("# %s\n\nThis calculation has no amortization schedule.\n", r.Title)
	}
	return renderTemplate("schedule_report", "schedule_report.md", partials, funcs(r.Currency), r)
}

func renderReport(r *Report) string {
	file := strings.ReplaceAll(string(r.Result.What()), "-", "_") + ".md"
	return renderTemplate("report", file, partials, funcs(r.Currency), r)
}

// Outcomes renders the evaluation of a scenario book: a list of key figures,
// then the failures. With details, the full report of each scenario follows.
func Outcomes(outcomes []mortgage.Outcome, details bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Scenarios\n\n")
	if len(outcomes) == 0 {
		fmt.Fprintf(&b, "The book is empty.\n")
		return b.String()
	}
	fmt.Fprintln(&b, "| # | Scenario | Calculation | Key Figure |")
	fmt.Fprintln(&b, "|---:|:---|:---|:---|")
	for i, o := range outcomes {
		headline := "*failed*"
		if o.Err == nil {
			headline = Headline(o.Result)
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, o.Scenario.Label(), o.Scenario.What(), headline)
	}
	fmt.Fprintln(&b)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "## Errors\n\n")
		failed := false
		for i, o := range outcomes {
			if o.Err != nil {
				failed = true
				fmt.Fprintf(w, "* #%d %s: %v\n", i+1, o.Scenario.Label(), o.Err)
			}
		}
		fmt.Fprintln(w)
		return failed
	})

	if details {
		for _, o := range outcomes {
			if o.Err != nil {
				continue
			}
			// demote the report headings below the list title.
			report := strings.ReplaceAll(Markdown(o.Result), "\n#", "\n##")
			b.WriteString("#" + report + "\n")
		}
	}
	return b.String()
}

// funcs are the template helpers, amounts are formatted in currency.
func funcs(currency string) template.FuncMap {
	return template.FuncMap{
		"money":      func(v float64) mortgage.Money { return mortgage.M(v, currency) },
		"term":       func(months int) mortgage.Term { return mortgage.Months(months) },
		"capitalize": capitalize,
	}
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, fm template.FuncMap, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(fm).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
