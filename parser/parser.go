package parser

// Progress is the feedback a tree builder hands back to the tokenizer after
// each token: the state to continue in and whether CDATA sections are
// recognized.
type Progress struct {
	TokenizerState State
	AllowCDATA     bool
}

func MakeProgress(tokenizerState State, allowCDATA bool) *Progress {
	return &Progress{
		TokenizerState: tokenizerState,
		AllowCDATA:     allowCDATA,
	}
}

// Parser drives an HTMLTokenizer the way a tree builder would without
// building a tree: it switches the content model after raw text start tags
// and allows CDATA sections inside svg and math.
type Parser struct {
	Tokenizer *HTMLTokenizer

	// foreignDepth counts the svg and math elements currently open.
	foreignDepth int
}

func NewParser(b []byte, opts ...Option) *Parser {
	return &Parser{
		Tokenizer: NewHTMLTokenizer(b, opts...),
	}
}

// Next returns the next token, applying its effect on the tokenizer before
// anything after it is read.
func (p *Parser) Next() (Token, bool) {
	t, ok := p.Tokenizer.NextToken()
	if !ok {
		return t, false
	}
	if progress := p.processToken(&t); progress != nil {
		p.Tokenizer.SetState(progress.TokenizerState)
		p.Tokenizer.AllowCDATA(progress.AllowCDATA)
	}
	return t, true
}

// Tokens drains the parser.
func (p *Parser) Tokens() []Token {
	var tokens []Token
	for {
		t, ok := p.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, t)
	}
}

func isForeignRoot(name string) bool {
	return name == "svg" || name == "math"
}

// breaksOutOfForeignContent reports whether t is one of the HTML start tags
// that close every open svg and math element.
// https://html.spec.whatwg.org/#parsing-main-inforeign
func breaksOutOfForeignContent(t *Token) bool {
	switch t.TagName {
	case "b", "big", "blockquote", "body", "br", "center", "code", "dd", "div",
		"dl", "dt", "em", "embed", "h1", "h2", "h3", "h4", "h5", "h6", "head",
		"hr", "i", "img", "li", "listing", "menu", "meta", "nobr", "ol", "p",
		"pre", "ruby", "s", "small", "span", "strong", "strike", "sub", "sup",
		"table", "tt", "u", "ul", "var":
		return true
	case "font":
		for _, name := range []string{"color", "face", "size"} {
			if _, ok := t.Attr(name); ok {
				return true
			}
		}
	}
	return false
}

func (p *Parser) processToken(t *Token) *Progress {
	switch t.TokenType {
	case StartTagToken:
		if p.foreignDepth > 0 && breaksOutOfForeignContent(t) {
			p.foreignDepth = 0
			return MakeProgress(DataState, false)
		}
		if isForeignRoot(t.TagName) {
			if !t.SelfClosing {
				p.foreignDepth++
			}
			return MakeProgress(DataState, p.foreignDepth > 0)
		}
		if p.foreignDepth > 0 {
			return nil
		}
		// Scripting is assumed to be enabled, so noscript is raw text.
		if s := FragmentState(t.TagName, true); s != DataState {
			return MakeProgress(s, false)
		}
	case EndTagToken:
		if p.foreignDepth > 0 && (t.TagName == "br" || t.TagName == "p") {
			p.foreignDepth = 0
			return MakeProgress(DataState, false)
		}
		if isForeignRoot(t.TagName) && p.foreignDepth > 0 {
			p.foreignDepth--
			return MakeProgress(DataState, p.foreignDepth > 0)
		}
	}
	return nil
}
