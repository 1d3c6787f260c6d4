// Package renderer renders finance reports to markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"math"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// renderTemplate renders the template in file, with the helper functions available.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

var funcs = template.FuncMap{
	"percent": percent,
	"number":  number,
}

// Money formats an amount in currency, e.g. "$115.00". An unknown currency is printed as a plain number.
func Money(amount float64, currency string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprint(amount)
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return fmt.Sprintf("%.2f", amount)
	}
	dec := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// percent formats a decimal ratio as a percentage, e.g. "26.00%".
func percent(ratio float64) string { return fmt.Sprintf("%.2f%%", ratio*100) }

// number formats a value with four decimals.
func number(v float64) string { return fmt.Sprintf("%.4f", v) }
