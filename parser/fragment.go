package parser

import (
	"strings"
)

var (
	attrEscaper = strings.NewReplacer("&", "&amp;", "\u00A0", "&nbsp;", "\"", "&quot;")
	textEscaper = strings.NewReplacer("&", "&amp;", "\u00A0", "&nbsp;", "<", "&lt;", ">", "&gt;")
)

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	if attrVal {
		return attrEscaper.Replace(s)
	}
	return textEscaper.Replace(s)
}

// FragmentState is the state the tokenizer starts in when parsing a fragment
// whose context element is named context.
// https://html.spec.whatwg.org/#parsing-html-fragments
func FragmentState(context string, scriptingEnabled bool) State {
	switch context {
	case "title", "textarea":
		return RCDataState
	case "style", "xmp", "iframe", "noembed", "noframes":
		return RawTextState
	case "script":
		return ScriptDataState
	case "noscript":
		if scriptingEnabled {
			return RawTextState
		}
		return DataState
	case "plaintext":
		return PlaintextState
	default:
		return DataState
	}
}

// isRawTextParent reports whether text inside the named element is
// serialized without escaping.
func isRawTextParent(name string) bool {
	switch name {
	case "style", "script", "xmp", "iframe", "noembed", "noframes", "plaintext", "noscript":
		return true
	default:
		return false
	}
}

// SerializeTokens writes tokens back out as HTML, escaping text and
// attribute values the way the fragment serialization algorithm does.
// Tokenizing the result yields the same tokens, minus parse errors and
// whatever was only recoverable from malformed input.
func SerializeTokens(tokens []Token) string {
	var (
		b   strings.Builder
		raw bool
	)
	for _, t := range tokens {
		switch t.TokenType {
		case StartTagToken:
			b.WriteString("<" + t.TagName)
			for _, a := range t.Attributes {
				b.WriteString(" " + a.Name + "=" + "\"" + escapeString(a.Value, true) + "\"")
			}
			if t.SelfClosing {
				b.WriteString("/")
			}
			b.WriteString(">")
			raw = !t.SelfClosing && isRawTextParent(t.TagName)
		case EndTagToken:
			b.WriteString("</" + t.TagName + ">")
			raw = false
		case CharacterToken:
			if raw {
				b.WriteString(t.Data)
			} else {
				b.WriteString(escapeString(t.Data, false))
			}
		case CommentToken:
			b.WriteString("<!--" + t.Data + "-->")
		case DocTypeToken:
			b.WriteString("<!DOCTYPE " + t.TagName)
			if t.HasPublicIdentifier {
				b.WriteString(" PUBLIC \"" + t.PublicIdentifier + "\"")
				if t.HasSystemIdentifier {
					b.WriteString(" \"" + t.SystemIdentifier + "\"")
				}
			} else if t.HasSystemIdentifier {
				b.WriteString(" SYSTEM \"" + t.SystemIdentifier + "\"")
			}
			b.WriteString(">")
		}
	}
	return b.String()
}
