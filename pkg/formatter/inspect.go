package formatter

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Inspect parses a stylesheet and returns the number of rulesets in it.
// It fails on the first grammar error and on selectors with a class that has no
// name or an attribute that is not closed right after its value.
func Inspect(stylesheet string) (int, error) {
	p := css.NewParser(parse.NewInputString(stylesheet), false)

	rules := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return rules, errors.Wrapf(err, "stylesheet rule %d", rules+1)
			}
			return rules, nil
		case css.BeginRulesetGrammar:
			if err := checkSelector(p.Values()); err != nil {
				return rules, errors.Wrapf(err, "stylesheet rule %d", rules+1)
			}
			rules++
		case css.CommentGrammar, css.QualifiedRuleGrammar, css.DeclarationGrammar, css.CustomPropertyGrammar, css.EndRulesetGrammar:
			// ruleset content.
		default:
			return rules, errors.Newf("unexpected %s %q in stylesheet", gt, data)
		}
	}
}

// checkSelector walks the tokens of one selector.
func checkSelector(tokens []css.Token) error {
	if len(tokens) == 0 {
		return errors.New("empty selector")
	}

	at := func(i int, tt css.TokenType) bool {
		return i < len(tokens) && tokens[i].TokenType == tt
	}

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch {
		case t.TokenType == css.DelimToken && string(t.Data) == ".":
			if !at(i+1, css.IdentToken) {
				return errors.Newf("class selector without a name in %q", selectorText(tokens))
			}
		case t.TokenType == css.LeftBracketToken:
			j := i + 1
			if !at(j, css.IdentToken) {
				return errors.Newf("attribute selector without a name in %q", selectorText(tokens))
			}
			j++
			if at(j, css.DelimToken) && string(tokens[j].Data) == "=" {
				j++
				if !at(j, css.StringToken) && !at(j, css.IdentToken) {
					return errors.Newf("attribute selector without a value in %q", selectorText(tokens))
				}
				j++
			}
			if !at(j, css.RightBracketToken) {
				return errors.Newf("unbalanced attribute selector in %q", selectorText(tokens))
			}
			i = j
		}
	}
	return nil
}

func selectorText(tokens []css.Token) string {
	var b []byte
	for _, t := range tokens {
		b = append(b, t.Data...)
	}
	return string(b)
}
