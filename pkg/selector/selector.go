// Package selector derives CSS selectors and markup classes from node names.
//
// Plain names become class selectors. Variant names encode properties as
// comma separated "property=value" pairs, where a value may carry a secondary
// token after a semicolon:
//
//	"State=Hover"              -> :hover
//	"Size=Large, State=Active" -> [size="large"]:active
//	"Type=Primary;Icon"        -> [type="primary"].icon
//	"State=Disabled;Focus"     -> [state="disabled"]:focus
package selector

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

var pseudoClasses = map[string]bool{
	"hover":         true,
	"active":        true,
	"focus":         true,
	"focus-visible": true,
	"focus-within":  true,
}

// IsPseudo reports whether the kebab-cased value names a supported pseudo-class.
func IsPseudo(value string) bool {
	return pseudoClasses[value]
}

var nameReplacer = strings.NewReplacer(
	"/", " ",
	"â€¢", " ",
	"•", " ",
	".", " ",
	":", " ",
	"\u00a0", " ",
)

// Kebab normalises a display or style name into a kebab-cased identifier.
func Kebab(name string) string {
	name = nameReplacer.Replace(name)
	return strcase.ToKebab(strings.Join(strings.Fields(name), " "))
}

// NameOr returns name, or a name derived from the node id when name kebab-cases to
// nothing ("•" or "/" alone), so every node still gets a class of its own.
func NameOr(name, id string) string {
	if Kebab(name) != "" {
		return name
	}
	return "node " + id
}

// Ident escapes s for use as a CSS identifier, e.g. a class name. Non-ASCII runes
// pass through; a leading digit is written as a hex escape.
func Ident(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == 0:
			b.WriteRune('\uFFFD')
		case r < 0x20 || r == 0x7f:
			hexEscape(&b, r)
		case r >= '0' && r <= '9':
			if i == 0 || (i == 1 && s[0] == '-') {
				hexEscape(&b, r)
			} else {
				b.WriteRune(r)
			}
		case r == '-':
			if s == "-" {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		case r >= 0x80, r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// quote returns s as a double-quoted CSS string.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == 0:
			b.WriteRune('\uFFFD')
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			hexEscape(&b, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// hexEscape writes r as a CSS hex escape. The trailing space ends the escape.
func hexEscape(b *strings.Builder, r rune) {
	b.WriteByte('\\')
	b.WriteString(strconv.FormatInt(int64(r), 16))
	b.WriteByte(' ')
}

// IsVariant reports whether the name encodes variant properties.
func IsVariant(name string) bool {
	return strings.Contains(name, "=")
}

// Attr is a markup attribute derived from a variant property.
type Attr struct {
	Key   string
	Value string
}

type segment struct {
	property  string
	value     string
	secondary string
	plain     bool
}

func parse(name string) []segment {
	var segments []segment
	for _, part := range strings.Split(name, ", ") {
		property, value, ok := strings.Cut(part, "=")
		if !ok {
			segments = append(segments, segment{value: Kebab(part), plain: true})
			continue
		}

		seg := segment{property: Kebab(property)}
		if seg.property == "" {
			// "=Large" has no property to select on.
			segments = append(segments, segment{value: Kebab(value), plain: true})
			continue
		}
		primary, secondary, _ := strings.Cut(value, ";")
		seg.value = Kebab(primary)
		seg.secondary = Kebab(secondary)
		segments = append(segments, seg)
	}

	return segments
}

// Build returns the selector fragment for a node name. Attribute and class fragments
// of every segment come first, followed by all pseudo-class fragments. A plain name
// that kebab-cases to nothing has no fragment.
func Build(name string) string {
	if !IsVariant(name) {
		return class(Kebab(name))
	}

	var attrs, pseudos strings.Builder
	for _, seg := range parse(name) {
		switch {
		case seg.plain:
			attrs.WriteString(class(seg.value))
		case seg.secondary == "" && seg.value == "default":
			// the default state is the base rule.
		case seg.secondary == "" && IsPseudo(seg.value):
			pseudos.WriteString(":" + seg.value)
		case seg.secondary == "":
			attrs.WriteString(attribute(seg.property, seg.value))
		default:
			attrs.WriteString(attribute(seg.property, seg.value))
			if IsPseudo(seg.secondary) {
				pseudos.WriteString(":" + seg.secondary)
			} else {
				attrs.WriteString(class(seg.secondary))
			}
		}
	}

	return attrs.String() + pseudos.String()
}

func class(name string) string {
	if name == "" {
		return ""
	}
	return "." + Ident(name)
}

func attribute(property, value string) string {
	return "[" + Ident(property) + "=" + quote(value) + "]"
}

// Nest returns the selector of a node called name placed under the prefix selector.
// Plain names select descendants of the prefix; variant names qualify the prefix itself.
// A name without a fragment leaves the prefix as is.
func Nest(prefix, name string) string {
	fragment := Build(name)
	switch {
	case fragment == "":
		return prefix
	case prefix == "":
		return fragment
	case IsVariant(name):
		return prefix + fragment
	default:
		return prefix + " " + fragment
	}
}

// Variant returns the markup side of a variant name: the classes and attributes an
// element needs so that Build's selector matches it. Pseudo-class states have no
// markup counterpart.
func Variant(name string) ([]string, []Attr) {
	if !IsVariant(name) {
		if class := Kebab(name); class != "" {
			return []string{class}, nil
		}
		return nil, nil
	}

	var (
		classes []string
		attrs   []Attr
	)
	for _, seg := range parse(name) {
		switch {
		case seg.plain:
			if seg.value != "" {
				classes = append(classes, seg.value)
			}
		case seg.secondary == "" && (seg.value == "default" || IsPseudo(seg.value)):
			// states are not attributes.
		default:
			attrs = append(attrs, Attr{Key: seg.property, Value: seg.value})
			if seg.secondary != "" && !IsPseudo(seg.secondary) {
				classes = append(classes, seg.secondary)
			}
		}
	}

	return classes, attrs
}
