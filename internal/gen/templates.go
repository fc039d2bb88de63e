// Package gen renders canned response text keyed by sentiment label.
package gen

import (
	"fmt"
	"strings"
	"text/template"
)

var templates = map[string]*template.Template{
	"POSITIVE": template.Must(template.New("POSITIVE").Parse(
		"Hey {{.Name}}, love the energy! Next step: {{.CallToAction}}")),
	"NEGATIVE": template.Must(template.New("NEGATIVE").Parse(
		"Hi {{.Name}}, I hear you. Simple plan: {{.CallToAction}}")),
	"NEUTRAL": template.Must(template.New("NEUTRAL").Parse(
		"Hi {{.Name}}, here’s a balanced next step: {{.CallToAction}}")),
}

var defaultCallToAction = map[string]string{
	"POSITIVE": "reply when ready.",
	"NEGATIVE": "take a breath and try again.",
	"NEUTRAL":  "review and proceed.",
}

// Render fills in the template for the given sentiment label.
// Unrecognized labels fall back to NEUTRAL. The user map may supply
// "name" and the context map "call_to_action"; both have defaults.
func Render(label string, user, context map[string]string) (string, error) {
	label = strings.ToUpper(label)
	if _, ok := templates[label]; !ok {
		label = "NEUTRAL"
	}

	name := user["name"]
	if name == "" {
		name = "there"
	}
	cta := context["call_to_action"]
	if cta == "" {
		cta = defaultCallToAction[label]
	}

	var sb strings.Builder
	data := struct{ Name, CallToAction string }{name, cta}
	if err := templates[label].Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", label, err)
	}

	return strings.TrimSpace(sb.String()), nil
}
