// Package style resolves the CSS declarations of frame and text nodes from their own
// properties and the layout of their parent.
package style

import (
	"strings"

	"github.com/kataras/figma2css/pkg/figma"
)

// Declaration is a single CSS property and its value.
type Declaration struct {
	Property string
	Value    string
}

// Declarations is an ordered set of CSS declarations. A property appears at most once.
type Declarations []Declaration

// Set adds the property, or replaces its value in place when already present.
// Empty values are ignored.
func (d *Declarations) Set(property, value string) {
	if value == "" {
		return
	}

	for i := range *d {
		if (*d)[i].Property == property {
			(*d)[i].Value = value
			return
		}
	}

	*d = append(*d, Declaration{Property: property, Value: value})
}

// Get returns the value of property.
func (d Declarations) Get(property string) (string, bool) {
	for _, decl := range d {
		if decl.Property == property {
			return decl.Value, true
		}
	}

	return "", false
}

// Has reports whether the property is declared.
func (d Declarations) Has(property string) bool {
	_, ok := d.Get(property)
	return ok
}

// Replace rewrites every occurrence of from inside the values of the given properties.
func (d Declarations) Replace(from, to string, properties ...string) {
	if from == "" {
		return
	}

	for i := range d {
		for _, p := range properties {
			if d[i].Property == p {
				d[i].Value = strings.ReplaceAll(d[i].Value, from, to)
			}
		}
	}
}

// Px formats an optional length in pixels. Absent lengths yield "".
func Px(v *float64) string {
	if v == nil {
		return ""
	}

	return px(*v)
}

func px(v float64) string {
	return figma.FormatFloat(v) + "px"
}
