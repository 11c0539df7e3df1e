// Package core provides the template helpers shared by every page.
package core

import (
	"bytes"
	"errors"
	"html/template"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Deps holds the dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

var vndPrinter = message.NewPrinter(language.Vietnamese)

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl": deps.ContentTemplateFor,
		"formatVND":   FormatVND,
		"fieldError":  FieldError,
		"decimal":     FormatDecimal,
	}

	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own html/template set; values were escaped above.
		return template.HTML(buf.String()), nil
	}
	return funcs
}

// FormatVND formats an amount in Vietnamese dong with dot grouping, e.g. "150.000 ₫".
func FormatVND(amount float64) string {
	return vndPrinter.Sprintf("%d ₫", int64(math.Round(amount)))
}

// FormatDecimal renders an optional number as a plain form value: no exponent, no
// grouping, "" for nil.
func FormatDecimal(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case *float64:
		if n == nil {
			return ""
		}
		return strconv.FormatFloat(*n, 'f', -1, 64)
	default:
		return ""
	}
}

// FieldError returns the message for field, or "" when the field is valid.
func FieldError(errs map[string]string, field string) string {
	if errs == nil {
		return ""
	}
	return errs[field]
}
