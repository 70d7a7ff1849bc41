package parser

// eofInDoctype emits the DOCTYPE in progress in quirks mode, followed by the
// end-of-file token.
func (p *HTMLTokenizer) eofInDoctype() (bool, State) {
	p.parseError(EOFInDoctype)
	p.current.EnableForceQuirks()
	return p.emitCurrentAndEndOfFile()
}

// quirksDoctype flags the DOCTYPE for quirks mode and emits it.
func (p *HTMLTokenizer) quirksDoctype(code ErrorCode) (bool, State) {
	p.parseError(code)
	p.current.EnableForceQuirks()
	p.emitCurrent()
	return false, DataState
}

// bogusDoctype flags the DOCTYPE for quirks mode and hands r to the bogus
// DOCTYPE state.
func (p *HTMLTokenizer) bogusDoctype(code ErrorCode) (bool, State) {
	p.parseError(code)
	p.current.EnableForceQuirks()
	return true, BogusDoctypeState
}

func (p *HTMLTokenizer) doctypeStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.newToken(DocTypeToken, p.markStart)
		return p.eofInDoctype()
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeDoctypeNameState
	case '>':
		return true, BeforeDoctypeNameState
	default:
		p.parseError(MissingWhitespaceBeforeDoctypeName)
		return true, BeforeDoctypeNameState
	}
}

func (p *HTMLTokenizer) beforeDoctypeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.newToken(DocTypeToken, p.markStart)
		return p.eofInDoctype()
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeDoctypeNameState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.newToken(DocTypeToken, p.markStart).WriteName('\uFFFD')
		return false, DoctypeNameState
	case '>':
		p.newToken(DocTypeToken, p.markStart)
		return p.quirksDoctype(MissingDoctypeName)
	default:
		p.newToken(DocTypeToken, p.markStart).WriteName(toLower(r))
		return false, DoctypeNameState
	}
}

func (p *HTMLTokenizer) doctypeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.eofInDoctype()
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, AfterDoctypeNameState
	case '>':
		p.emitCurrent()
		return false, DataState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.current.WriteName('\uFFFD')
		return false, DoctypeNameState
	default:
		p.current.WriteName(toLower(r))
		return false, DoctypeNameState
	}
}

func (p *HTMLTokenizer) afterDoctypeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.eofInDoctype()
	}
	switch {
	case r == '\t' || r == '\n' || r == '\f' || r == ' ':
		return false, AfterDoctypeNameState
	case r == '>':
		p.emitCurrent()
		return false, DataState
	case p.input.MatchFold("PUBLIC"):
		p.mustSkip(len("PUBLIC") - 1)
		return false, AfterDoctypePublicKeywordState
	case p.input.MatchFold("SYSTEM"):
		p.mustSkip(len("SYSTEM") - 1)
		return false, AfterDoctypeSystemKeywordState
	default:
		return p.bogusDoctype(InvalidCharacterSequenceAfterDoctypeName)
	}
}

// afterDoctypeKeywordStateParser is shared by the states that follow the
// PUBLIC and SYSTEM keywords.
func (p *HTMLTokenizer) afterDoctypeKeywordStateParser(r rune, eof bool, public bool) (bool, State) {
	if eof {
		return p.eofInDoctype()
	}
	before, dq, sq := BeforeDoctypeSystemIdentifierState, DoctypeSystemIdentifierDoubleQuotedState, DoctypeSystemIdentifierSingleQuotedState
	missingWhitespace, missing, missingQuote := MissingWhitespaceAfterDoctypeSystemKeyword, MissingDoctypeSystemIdentifier, MissingQuoteBeforeDoctypeSystemIdentifier
	if public {
		before, dq, sq = BeforeDoctypePublicIdentifierState, DoctypePublicIdentifierDoubleQuotedState, DoctypePublicIdentifierSingleQuotedState
		missingWhitespace, missing, missingQuote = MissingWhitespaceAfterDoctypePublicKeyword, MissingDoctypePublicIdentifier, MissingQuoteBeforeDoctypePublicIdentifier
	}

	switch r {
	case '\t', '\n', '\f', ' ':
		return false, before
	case '"', '\'':
		p.parseError(missingWhitespace)
		p.setDoctypeIdentifierEmpty(public)
		if r == '"' {
			return false, dq
		}
		return false, sq
	case '>':
		return p.quirksDoctype(missing)
	default:
		return p.bogusDoctype(missingQuote)
	}
}

// beforeDoctypeIdentifierStateParser is shared by the states that come
// before the public and system identifiers.
func (p *HTMLTokenizer) beforeDoctypeIdentifierStateParser(r rune, eof bool, public bool) (bool, State) {
	if eof {
		return p.eofInDoctype()
	}
	self, dq, sq := BeforeDoctypeSystemIdentifierState, DoctypeSystemIdentifierDoubleQuotedState, DoctypeSystemIdentifierSingleQuotedState
	missing, missingQuote := MissingDoctypeSystemIdentifier, MissingQuoteBeforeDoctypeSystemIdentifier
	if public {
		self, dq, sq = BeforeDoctypePublicIdentifierState, DoctypePublicIdentifierDoubleQuotedState, DoctypePublicIdentifierSingleQuotedState
		missing, missingQuote = MissingDoctypePublicIdentifier, MissingQuoteBeforeDoctypePublicIdentifier
	}

	switch r {
	case '\t', '\n', '\f', ' ':
		return false, self
	case '"':
		p.setDoctypeIdentifierEmpty(public)
		return false, dq
	case '\'':
		p.setDoctypeIdentifierEmpty(public)
		return false, sq
	case '>':
		return p.quirksDoctype(missing)
	default:
		return p.bogusDoctype(missingQuote)
	}
}

func (p *HTMLTokenizer) setDoctypeIdentifierEmpty(public bool) {
	if public {
		p.current.SetPublicIdentifierEmpty()
		return
	}
	p.current.SetSystemIdentifierEmpty()
}

// doctypeIdentifierQuotedStateParser is shared by the four quoted DOCTYPE
// identifier states.
func (p *HTMLTokenizer) doctypeIdentifierQuotedStateParser(r rune, eof bool, quote rune, public bool, self State) (bool, State) {
	if eof {
		return p.eofInDoctype()
	}
	write, after, abrupt := p.current.WriteSystemIdentifier, AfterDoctypeSystemIdentifierState, AbruptDoctypeSystemIdentifier
	if public {
		write, after, abrupt = p.current.WritePublicIdentifier, AfterDoctypePublicIdentifierState, AbruptDoctypePublicIdentifier
	}

	switch r {
	case quote:
		return false, after
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		write('\uFFFD')
		return false, self
	case '>':
		return p.quirksDoctype(abrupt)
	default:
		write(r)
		return false, self
	}
}

func (p *HTMLTokenizer) afterDoctypePublicKeywordStateParser(r rune, eof bool) (bool, State) {
	return p.afterDoctypeKeywordStateParser(r, eof, true)
}

func (p *HTMLTokenizer) beforeDoctypePublicIdentifierStateParser(r rune, eof bool) (bool, State) {
	return p.beforeDoctypeIdentifierStateParser(r, eof, true)
}

func (p *HTMLTokenizer) doctypePublicIdentifierDoubleQuotedStateParser(r rune, eof bool) (bool, State) {
	return p.doctypeIdentifierQuotedStateParser(r, eof, '"', true, DoctypePublicIdentifierDoubleQuotedState)
}

func (p *HTMLTokenizer) doctypePublicIdentifierSingleQuotedStateParser(r rune, eof bool) (bool, State) {
	return p.doctypeIdentifierQuotedStateParser(r, eof, '\'', true, DoctypePublicIdentifierSingleQuotedState)
}

func (p *HTMLTokenizer) afterDoctypePublicIdentifierStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.eofInDoctype()
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BetweenDoctypePublicAndSystemIdentifiersState
	case '>':
		p.emitCurrent()
		return false, DataState
	case '"':
		p.parseError(MissingWhitespaceBetweenDoctypePublicAndSystemIDs)
		p.current.SetSystemIdentifierEmpty()
		return false, DoctypeSystemIdentifierDoubleQuotedState
	case '\'':
		p.parseError(MissingWhitespaceBetweenDoctypePublicAndSystemIDs)
		p.current.SetSystemIdentifierEmpty()
		return false, DoctypeSystemIdentifierSingleQuotedState
	default:
		return p.bogusDoctype(MissingQuoteBeforeDoctypeSystemIdentifier)
	}
}

func (p *HTMLTokenizer) betweenDoctypePublicAndSystemIdentifiersStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.eofInDoctype()
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BetweenDoctypePublicAndSystemIdentifiersState
	case '>':
		p.emitCurrent()
		return false, DataState
	case '"':
		p.current.SetSystemIdentifierEmpty()
		return false, DoctypeSystemIdentifierDoubleQuotedState
	case '\'':
		p.current.SetSystemIdentifierEmpty()
		return false, DoctypeSystemIdentifierSingleQuotedState
	default:
		return p.bogusDoctype(MissingQuoteBeforeDoctypeSystemIdentifier)
	}
}

func (p *HTMLTokenizer) afterDoctypeSystemKeywordStateParser(r rune, eof bool) (bool, State) {
	return p.afterDoctypeKeywordStateParser(r, eof, false)
}

func (p *HTMLTokenizer) beforeDoctypeSystemIdentifierStateParser(r rune, eof bool) (bool, State) {
	return p.beforeDoctypeIdentifierStateParser(r, eof, false)
}

func (p *HTMLTokenizer) doctypeSystemIdentifierDoubleQuotedStateParser(r rune, eof bool) (bool, State) {
	return p.doctypeIdentifierQuotedStateParser(r, eof, '"', false, DoctypeSystemIdentifierDoubleQuotedState)
}

func (p *HTMLTokenizer) doctypeSystemIdentifierSingleQuotedStateParser(r rune, eof bool) (bool, State) {
	return p.doctypeIdentifierQuotedStateParser(r, eof, '\'', false, DoctypeSystemIdentifierSingleQuotedState)
}

func (p *HTMLTokenizer) afterDoctypeSystemIdentifierStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.eofInDoctype()
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, AfterDoctypeSystemIdentifierState
	case '>':
		p.emitCurrent()
		return false, DataState
	default:
		// Not a quirks trigger, unlike the other malformed identifiers.
		p.parseError(UnexpectedCharacterAfterDoctypeSystemIdentifier)
		return true, BogusDoctypeState
	}
}

func (p *HTMLTokenizer) bogusDoctypeStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitCurrentAndEndOfFile()
	}
	switch r {
	case '>':
		p.emitCurrent()
		return false, DataState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		return false, BogusDoctypeState
	default:
		return false, BogusDoctypeState
	}
}
