package parser

func (p *HTMLTokenizer) tagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFBeforeTagName)
		p.emit(characterToken('<', p.markStart))
		return p.emitEndOfFile()
	}
	switch {
	case r == '!':
		return false, MarkupDeclarationOpenState
	case r == '/':
		return false, EndTagOpenState
	case isASCIIAlpha(r):
		p.newToken(StartTagToken, p.markStart)
		return true, TagNameState
	case r == '?':
		p.parseError(UnexpectedQuestionMarkInsteadOfTagName)
		p.newToken(CommentToken, p.markStart)
		return true, BogusCommentState
	default:
		p.parseError(InvalidFirstCharacterOfTagName)
		p.emit(characterToken('<', p.markStart))
		return true, DataState
	}
}

func (p *HTMLTokenizer) endTagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFBeforeTagName)
		p.emitLessThanSolidus()
		return p.emitEndOfFile()
	}
	switch {
	case isASCIIAlpha(r):
		p.newToken(EndTagToken, p.markStart)
		return true, TagNameState
	case r == '>':
		p.parseError(MissingEndTagName)
		return false, DataState
	default:
		p.parseError(InvalidFirstCharacterOfTagName)
		p.newToken(CommentToken, p.markStart)
		return true, BogusCommentState
	}
}

func (p *HTMLTokenizer) tagNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEndOfFile()
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '>':
		return false, p.emitCurrentTag()
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.current.WriteName('\uFFFD')
		return false, TagNameState
	default:
		p.current.WriteName(toLower(r))
		return false, TagNameState
	}
}

func (p *HTMLTokenizer) beforeAttributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, AfterAttributeNameState
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeAttributeNameState
	case '/', '>':
		return true, AfterAttributeNameState
	case '=':
		// set that attribute's name to the current input character, and its value to the empty string.
		p.parseError(UnexpectedEqualsSignBeforeAttributeName)
		p.current.StartAttribute()
		p.current.WriteAttributeName(r)
		return false, AttributeNameState
	default:
		p.current.StartAttribute()
		return true, AttributeNameState
	}
}

// leaveAttributeName reports a name that is already on the tag. The pair is
// still parsed; CommitAttribute drops it later.
func (p *HTMLTokenizer) leaveAttributeName() {
	if p.current.IsDuplicateAttribute() {
		p.parseError(DuplicateAttribute)
	}
}

func (p *HTMLTokenizer) attributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.leaveAttributeName()
		return true, AfterAttributeNameState
	}
	switch r {
	case '\t', '\n', '\f', ' ', '/', '>':
		p.leaveAttributeName()
		return true, AfterAttributeNameState
	case '=':
		p.leaveAttributeName()
		return false, BeforeAttributeValueState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.current.WriteAttributeName('\uFFFD')
		return false, AttributeNameState
	case '"', '\'', '<':
		p.parseError(UnexpectedCharacterInAttributeName)
		p.current.WriteAttributeName(r)
		return false, AttributeNameState
	default:
		p.current.WriteAttributeName(toLower(r))
		return false, AttributeNameState
	}
}

func (p *HTMLTokenizer) afterAttributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEndOfFile()
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, AfterAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '=':
		return false, BeforeAttributeValueState
	case '>':
		return false, p.emitCurrentTag()
	default:
		p.current.StartAttribute()
		return true, AttributeNameState
	}
}

func (p *HTMLTokenizer) beforeAttributeValueStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, AttributeValueUnquotedState
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeAttributeValueState
	case '"':
		return false, AttributeValueDoubleQuotedState
	case '\'':
		return false, AttributeValueSingleQuotedState
	case '>':
		p.parseError(MissingAttributeValue)
		return false, p.emitCurrentTag()
	default:
		return true, AttributeValueUnquotedState
	}
}

// attributeValueQuotedStateParser is shared by the double and single quoted
// attribute value states.
func (p *HTMLTokenizer) attributeValueQuotedStateParser(r rune, eof bool, quote rune, self State) (bool, State) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEndOfFile()
	}
	switch r {
	case quote:
		p.current.CommitAttribute()
		return false, AfterAttributeValueQuotedState
	case '&':
		p.returnState = self
		p.refStart = p.charStart
		return false, CharacterReferenceState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.current.WriteAttributeValue('\uFFFD')
		return false, self
	default:
		p.current.WriteAttributeValue(r)
		return false, self
	}
}

func (p *HTMLTokenizer) attributeValueDoubleQuotedStateParser(r rune, eof bool) (bool, State) {
	return p.attributeValueQuotedStateParser(r, eof, '"', AttributeValueDoubleQuotedState)
}

func (p *HTMLTokenizer) attributeValueSingleQuotedStateParser(r rune, eof bool) (bool, State) {
	return p.attributeValueQuotedStateParser(r, eof, '\'', AttributeValueSingleQuotedState)
}

func (p *HTMLTokenizer) attributeValueUnquotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEndOfFile()
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		p.current.CommitAttribute()
		return false, BeforeAttributeNameState
	case '&':
		p.returnState = AttributeValueUnquotedState
		p.refStart = p.charStart
		return false, CharacterReferenceState
	case '>':
		return false, p.emitCurrentTag()
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.current.WriteAttributeValue('\uFFFD')
		return false, AttributeValueUnquotedState
	case '"', '\'', '<', '=', '`':
		p.parseError(UnexpectedCharacterInUnquotedAttributeValue)
		p.current.WriteAttributeValue(r)
		return false, AttributeValueUnquotedState
	default:
		p.current.WriteAttributeValue(r)
		return false, AttributeValueUnquotedState
	}
}

func (p *HTMLTokenizer) afterAttributeValueQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEndOfFile()
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeAttributeNameState
	case '/':
		return false, SelfClosingStartTagState
	case '>':
		return false, p.emitCurrentTag()
	default:
		p.parseError(MissingWhitespaceBetweenAttributes)
		return true, BeforeAttributeNameState
	}
}

func (p *HTMLTokenizer) selfClosingStartTagStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFInTag)
		return p.emitEndOfFile()
	}
	switch r {
	case '>':
		p.current.EnableSelfClosing()
		return false, p.emitCurrentTag()
	default:
		p.parseError(UnexpectedSolidusInTag)
		return true, BeforeAttributeNameState
	}
}
