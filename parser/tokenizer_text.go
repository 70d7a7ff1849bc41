package parser

func (p *HTMLTokenizer) dataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEndOfFile()
	}
	switch r {
	case '&':
		p.returnState = DataState
		p.refStart = p.charStart
		return false, CharacterReferenceState
	case '<':
		p.markStart = p.charStart
		return false, TagOpenState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitCharacter(r)
		return false, DataState
	default:
		p.emitCharacter(r)
		return false, DataState
	}
}

func (p *HTMLTokenizer) rcDataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEndOfFile()
	}
	switch r {
	case '&':
		p.returnState = RCDataState
		p.refStart = p.charStart
		return false, CharacterReferenceState
	case '<':
		p.markStart = p.charStart
		return false, RCDataLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitCharacter('\uFFFD')
		return false, RCDataState
	default:
		p.emitCharacter(r)
		return false, RCDataState
	}
}

func (p *HTMLTokenizer) rawTextStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEndOfFile()
	}
	switch r {
	case '<':
		p.markStart = p.charStart
		return false, RawTextLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitCharacter('\uFFFD')
		return false, RawTextState
	default:
		p.emitCharacter(r)
		return false, RawTextState
	}
}

func (p *HTMLTokenizer) scriptDataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEndOfFile()
	}
	switch r {
	case '<':
		p.markStart = p.charStart
		return false, ScriptDataLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitCharacter('\uFFFD')
		return false, ScriptDataState
	default:
		p.emitCharacter(r)
		return false, ScriptDataState
	}
}

func (p *HTMLTokenizer) plaintextStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitEndOfFile()
	}
	switch r {
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitCharacter('\uFFFD')
		return false, PlaintextState
	default:
		p.emitCharacter(r)
		return false, PlaintextState
	}
}

// emitLessThanSolidus emits the "</" that opened a rejected end tag.
func (p *HTMLTokenizer) emitLessThanSolidus() {
	p.emit(characterToken('<', p.markStart), characterToken('/', p.markStart+1))
}

// lessThanSignStateParser is shared by the RCDATA and RAWTEXT less-than
// sign states.
func (p *HTMLTokenizer) lessThanSignStateParser(r rune, eof bool, endTagOpen, text State) (bool, State) {
	if !eof && r == '/' {
		p.tempBuffer.Reset()
		return false, endTagOpen
	}
	p.emit(characterToken('<', p.markStart))
	return true, text
}

// endTagOpenStateParserIn is shared by the RCDATA, RAWTEXT, script data and
// script data escaped end tag open states.
func (p *HTMLTokenizer) endTagOpenStateParserIn(r rune, eof bool, endTagName, text State) (bool, State) {
	if !eof && isASCIIAlpha(r) {
		p.newToken(EndTagToken, p.markStart)
		return true, endTagName
	}
	p.emitLessThanSolidus()
	return true, text
}

// endTagNameStateParser is shared by the RCDATA, RAWTEXT, script data and
// script data escaped end tag name states. The tag only closes the text
// when it matches the last start tag; otherwise everything read since the
// '<' is emitted as characters.
func (p *HTMLTokenizer) endTagNameStateParser(r rune, eof bool, self, text State) (bool, State) {
	anythingElse := func() (bool, State) {
		p.current = nil
		p.emitLessThanSolidus()
		p.emitString(p.tempBuffer.String(), p.markStart+2)
		return true, text
	}
	if eof {
		return anythingElse()
	}
	switch {
	case r == '\t' || r == '\n' || r == '\f' || r == ' ':
		if p.isAppropriateEndTagToken() {
			return false, BeforeAttributeNameState
		}
		return anythingElse()
	case r == '/':
		if p.isAppropriateEndTagToken() {
			return false, SelfClosingStartTagState
		}
		return anythingElse()
	case r == '>':
		if p.isAppropriateEndTagToken() {
			return false, p.emitCurrentTag()
		}
		return anythingElse()
	case isASCIIAlpha(r):
		p.current.WriteName(toLower(r))
		p.tempBuffer.WriteRune(r)
		return false, self
	default:
		return anythingElse()
	}
}

func (p *HTMLTokenizer) rcDataLessThanSignStateParser(r rune, eof bool) (bool, State) {
	return p.lessThanSignStateParser(r, eof, RCDataEndTagOpenState, RCDataState)
}

func (p *HTMLTokenizer) rcDataEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	return p.endTagOpenStateParserIn(r, eof, RCDataEndTagNameState, RCDataState)
}

func (p *HTMLTokenizer) rcDataEndTagNameStateParser(r rune, eof bool) (bool, State) {
	return p.endTagNameStateParser(r, eof, RCDataEndTagNameState, RCDataState)
}

func (p *HTMLTokenizer) rawTextLessThanSignStateParser(r rune, eof bool) (bool, State) {
	return p.lessThanSignStateParser(r, eof, RawTextEndTagOpenState, RawTextState)
}

func (p *HTMLTokenizer) rawTextEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	return p.endTagOpenStateParserIn(r, eof, RawTextEndTagNameState, RawTextState)
}

func (p *HTMLTokenizer) rawTextEndTagNameStateParser(r rune, eof bool) (bool, State) {
	return p.endTagNameStateParser(r, eof, RawTextEndTagNameState, RawTextState)
}

func (p *HTMLTokenizer) scriptDataLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.emit(characterToken('<', p.markStart))
		return true, ScriptDataState
	}
	switch r {
	case '/':
		p.tempBuffer.Reset()
		return false, ScriptDataEndTagOpenState
	case '!':
		p.emit(characterToken('<', p.markStart))
		p.emitCharacter('!')
		return false, ScriptDataEscapeStartState
	default:
		p.emit(characterToken('<', p.markStart))
		return true, ScriptDataState
	}
}

func (p *HTMLTokenizer) scriptDataEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	return p.endTagOpenStateParserIn(r, eof, ScriptDataEndTagNameState, ScriptDataState)
}

func (p *HTMLTokenizer) scriptDataEndTagNameStateParser(r rune, eof bool) (bool, State) {
	return p.endTagNameStateParser(r, eof, ScriptDataEndTagNameState, ScriptDataState)
}

func (p *HTMLTokenizer) scriptDataEscapeStartStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == '-' {
		p.emitCharacter('-')
		return false, ScriptDataEscapeStartDashState
	}
	return true, ScriptDataState
}

func (p *HTMLTokenizer) scriptDataEscapeStartDashStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == '-' {
		p.emitCharacter('-')
		return false, ScriptDataEscapedDashDashState
	}
	return true, ScriptDataState
}

func (p *HTMLTokenizer) scriptDataEscapedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFInScriptHTMLCommentLikeText)
		return p.emitEndOfFile()
	}
	switch r {
	case '-':
		p.emitCharacter('-')
		return false, ScriptDataEscapedDashState
	case '<':
		p.markStart = p.charStart
		return false, ScriptDataEscapedLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitCharacter('\uFFFD')
		return false, ScriptDataEscapedState
	default:
		p.emitCharacter(r)
		return false, ScriptDataEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataEscapedDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFInScriptHTMLCommentLikeText)
		return p.emitEndOfFile()
	}
	switch r {
	case '-':
		p.emitCharacter('-')
		return false, ScriptDataEscapedDashDashState
	case '<':
		p.markStart = p.charStart
		return false, ScriptDataEscapedLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitCharacter('\uFFFD')
		return false, ScriptDataEscapedState
	default:
		p.emitCharacter(r)
		return false, ScriptDataEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataEscapedDashDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFInScriptHTMLCommentLikeText)
		return p.emitEndOfFile()
	}
	switch r {
	case '-':
		p.emitCharacter('-')
		return false, ScriptDataEscapedDashDashState
	case '<':
		p.markStart = p.charStart
		return false, ScriptDataEscapedLessThanSignState
	case '>':
		p.emitCharacter('>')
		return false, ScriptDataState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitCharacter('\uFFFD')
		return false, ScriptDataEscapedState
	default:
		p.emitCharacter(r)
		return false, ScriptDataEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataEscapedLessThanSignStateParser(r rune, eof bool) (bool, State) {
	switch {
	case !eof && r == '/':
		p.tempBuffer.Reset()
		return false, ScriptDataEscapedEndTagOpenState
	case !eof && isASCIIAlpha(r):
		p.tempBuffer.Reset()
		p.emit(characterToken('<', p.markStart))
		return true, ScriptDataDoubleEscapeStartState
	default:
		p.emit(characterToken('<', p.markStart))
		return true, ScriptDataEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataEscapedEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	return p.endTagOpenStateParserIn(r, eof, ScriptDataEscapedEndTagNameState, ScriptDataEscapedState)
}

func (p *HTMLTokenizer) scriptDataEscapedEndTagNameStateParser(r rune, eof bool) (bool, State) {
	return p.endTagNameStateParser(r, eof, ScriptDataEscapedEndTagNameState, ScriptDataEscapedState)
}

// doubleEscapeBoundaryStateParser is shared by the double escape start and
// end states: a "script" word delimited by whitespace, '/' or '>' toggles
// between onScript and otherwise.
func (p *HTMLTokenizer) doubleEscapeBoundaryStateParser(r rune, eof bool, self, onScript, otherwise State) (bool, State) {
	if eof {
		return true, otherwise
	}
	switch {
	case r == '\t' || r == '\n' || r == '\f' || r == ' ' || r == '/' || r == '>':
		p.emitCharacter(r)
		if p.tempBuffer.String() == "script" {
			return false, onScript
		}
		return false, otherwise
	case isASCIIAlpha(r):
		p.emitCharacter(r)
		p.tempBuffer.WriteRune(toLower(r))
		return false, self
	default:
		return true, otherwise
	}
}

func (p *HTMLTokenizer) scriptDataDoubleEscapeStartStateParser(r rune, eof bool) (bool, State) {
	return p.doubleEscapeBoundaryStateParser(r, eof, ScriptDataDoubleEscapeStartState, ScriptDataDoubleEscapedState, ScriptDataEscapedState)
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFInScriptHTMLCommentLikeText)
		return p.emitEndOfFile()
	}
	switch r {
	case '-':
		p.emitCharacter('-')
		return false, ScriptDataDoubleEscapedDashState
	case '<':
		p.emitCharacter('<')
		return false, ScriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitCharacter('\uFFFD')
		return false, ScriptDataDoubleEscapedState
	default:
		p.emitCharacter(r)
		return false, ScriptDataDoubleEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFInScriptHTMLCommentLikeText)
		return p.emitEndOfFile()
	}
	switch r {
	case '-':
		p.emitCharacter('-')
		return false, ScriptDataDoubleEscapedDashDashState
	case '<':
		p.emitCharacter('<')
		return false, ScriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitCharacter('\uFFFD')
		return false, ScriptDataDoubleEscapedState
	default:
		p.emitCharacter(r)
		return false, ScriptDataDoubleEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedDashDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFInScriptHTMLCommentLikeText)
		return p.emitEndOfFile()
	}
	switch r {
	case '-':
		p.emitCharacter('-')
		return false, ScriptDataDoubleEscapedDashDashState
	case '<':
		p.emitCharacter('<')
		return false, ScriptDataDoubleEscapedLessThanSignState
	case '>':
		p.emitCharacter('>')
		return false, ScriptDataState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.emitCharacter('\uFFFD')
		return false, ScriptDataDoubleEscapedState
	default:
		p.emitCharacter(r)
		return false, ScriptDataDoubleEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == '/' {
		p.tempBuffer.Reset()
		p.emitCharacter('/')
		return false, ScriptDataDoubleEscapeEndState
	}
	return true, ScriptDataDoubleEscapedState
}

func (p *HTMLTokenizer) scriptDataDoubleEscapeEndStateParser(r rune, eof bool) (bool, State) {
	return p.doubleEscapeBoundaryStateParser(r, eof, ScriptDataDoubleEscapeEndState, ScriptDataEscapedState, ScriptDataDoubleEscapedState)
}
