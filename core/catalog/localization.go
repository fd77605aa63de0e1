package catalog

import (
	"strings"

	"econ-cdn/core/utils"
)

// Localization is the token table plus its collision-preserving inverse.
type Localization struct {
	tokens map[string]string
	byText map[string][]string
	byFold map[string][]string
}

// NewLocalization inverts a raw localization tree. Every leaf value appends its key to
// the candidate list of that value, so colliding tokens are kept in discovery order.
func NewLocalization(root Tree) *Localization {
	l := &Localization{
		tokens: make(map[string]string),
		byText: make(map[string][]string),
		byFold: make(map[string][]string),
	}
	if root != nil {
		l.invert(root)
	}
	return l
}

func (l *Localization) invert(t Tree) {
	for _, key := range t.Keys() {
		v, _ := t.Get(key)
		if sub, ok := asTree(v); ok {
			l.invert(sub)
			continue
		}
		if v == nil {
			continue
		}
		text := utils.ToString(v)
		l.tokens[strings.ToLower(key)] = text
		l.byText[text] = append(l.byText[text], key)
		fold := strings.ToLower(text)
		l.byFold[fold] = append(l.byFold[fold], key)
	}
}

// Tokens returns every token whose display string equals text, in discovery order.
func (l *Localization) Tokens(text string) []string {
	if l == nil {
		return nil
	}
	return l.byText[text]
}

// TokensFold is Tokens with case-insensitive matching of text.
func (l *Localization) TokensFold(text string) []string {
	if l == nil {
		return nil
	}
	return l.byFold[strings.ToLower(text)]
}

// Text returns the display string of a token. A leading "#" is ignored.
func (l *Localization) Text(token string) (string, bool) {
	if l == nil {
		return "", false
	}
	text, ok := l.tokens[strings.ToLower(strings.TrimPrefix(token, "#"))]
	return text, ok
}

// Len returns the number of distinct tokens.
func (l *Localization) Len() int {
	if l == nil {
		return 0
	}
	return len(l.tokens)
}
