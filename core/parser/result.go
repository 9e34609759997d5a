package parser

import "strings"

// Result is the outcome of parsing one text.
type Result struct {
	Matched bool
	Rule    string
	Fields  map[string]Value

	description string
}

// Get returns a field of the match.
func (r Result) Get(name string) (Value, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// Text returns the rendered field or "" when it was not extracted.
func (r Result) Text(name string) string {
	if v, ok := r.Fields[name]; ok {
		return v.String()
	}
	return ""
}

// Flag reports whether a flag field is set.
func (r Result) Flag(name string) bool {
	v, ok := r.Fields[name]
	return ok && v.Kind == KindBool && v.Bool
}

// Apply writes the extracted fields into dst. Fields the rule did not extract
// keep whatever the caller already put there.
func (r Result) Apply(dst map[string]string) {
	for name, v := range r.Fields {
		dst[name] = v.String()
	}
}

// Describe renders the rule's description template. Placeholders not
// extracted by the rule are looked up in extra.
func (r Result) Describe(extra map[string]string) string {
	if !r.Matched || r.description == "" {
		return ""
	}
	return Render(r.description, func(name string) (string, bool) {
		if v, ok := r.Fields[name]; ok {
			return v.String(), true
		}
		s, ok := extra[name]
		return s, ok
	})
}

// Render expands a description template.
//
//	{field}       the field value, empty when unknown
//	{?flag:text}  text when the flag value is "true"
//
// Braces that do not close are copied literally.
func Render(tmpl string, lookup func(string) (string, bool)) string {
	var b strings.Builder
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		end += open

		b.WriteString(tmpl[:open])
		token := tmpl[open+1 : end]
		if cond, ok := strings.CutPrefix(token, "?"); ok {
			name, text, _ := strings.Cut(cond, ":")
			if v, ok := lookup(name); ok && v == "true" {
				b.WriteString(text)
			}
		} else if v, ok := lookup(token); ok {
			b.WriteString(v)
		}
		tmpl = tmpl[end+1:]
	}
}
