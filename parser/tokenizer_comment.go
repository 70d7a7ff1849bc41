package parser

// markupDeclarationOpenStateParser looks at the characters following "<!".
// r has already been consumed, so a keyword match skips one byte less than
// its length.
func (p *HTMLTokenizer) markupDeclarationOpenStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof:
	case p.input.Match("--"):
		p.mustSkip(1)
		p.newToken(CommentToken, p.markStart)
		return false, CommentStartState
	case p.input.MatchFold("DOCTYPE"):
		p.mustSkip(len("DOCTYPE") - 1)
		return false, DoctypeState
	case p.input.Match("[CDATA["):
		p.mustSkip(len("[CDATA[") - 1)
		if p.allowCDATA {
			return false, CDataSectionState
		}
		p.parseError(CDATAInHTMLContent)
		p.newToken(CommentToken, p.markStart).WriteDataString("[CDATA[")
		return false, BogusCommentState
	}
	p.parseError(IncorrectlyOpenedComment)
	p.newToken(CommentToken, p.markStart)
	return true, BogusCommentState
}

// eofInComment emits the comment in progress and then the end-of-file token.
func (p *HTMLTokenizer) eofInComment() (bool, State) {
	p.parseError(EOFInComment)
	return p.emitCurrentAndEndOfFile()
}

func (p *HTMLTokenizer) commentStartStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, CommentState
	}
	switch r {
	case '-':
		return false, CommentStartDashState
	case '>':
		p.parseError(AbruptClosingOfEmptyComment)
		p.emitCurrent()
		return false, DataState
	default:
		return true, CommentState
	}
}

func (p *HTMLTokenizer) commentStartDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.eofInComment()
	}
	switch r {
	case '-':
		return false, CommentEndState
	case '>':
		p.parseError(AbruptClosingOfEmptyComment)
		p.emitCurrent()
		return false, DataState
	default:
		p.current.WriteData('-')
		return true, CommentState
	}
}

func (p *HTMLTokenizer) commentStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.eofInComment()
	}
	switch r {
	case '<':
		p.current.WriteData(r)
		return false, CommentLessThanSignState
	case '-':
		return false, CommentEndDashState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.current.WriteData('\uFFFD')
		return false, CommentState
	default:
		p.current.WriteData(r)
		return false, CommentState
	}
}

func (p *HTMLTokenizer) commentLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return true, CommentState
	}
	switch r {
	case '!':
		p.current.WriteData(r)
		return false, CommentLessThanSignBangState
	case '<':
		p.current.WriteData(r)
		return false, CommentLessThanSignState
	default:
		return true, CommentState
	}
}

func (p *HTMLTokenizer) commentLessThanSignBangStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == '-' {
		return false, CommentLessThanSignBangDashState
	}
	return true, CommentState
}

func (p *HTMLTokenizer) commentLessThanSignBangDashStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == '-' {
		return false, CommentLessThanSignBangDashDashState
	}
	return true, CommentEndDashState
}

func (p *HTMLTokenizer) commentLessThanSignBangDashDashStateParser(r rune, eof bool) (bool, State) {
	if !eof && r != '>' {
		p.parseError(NestedComment)
	}
	return true, CommentEndState
}

func (p *HTMLTokenizer) commentEndDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.eofInComment()
	}
	switch r {
	case '-':
		return false, CommentEndState
	default:
		p.current.WriteData('-')
		return true, CommentState
	}
}

func (p *HTMLTokenizer) commentEndStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.eofInComment()
	}
	switch r {
	case '>':
		p.emitCurrent()
		return false, DataState
	case '!':
		return false, CommentEndBangState
	case '-':
		p.current.WriteData('-')
		return false, CommentEndState
	default:
		p.current.WriteDataString("--")
		return true, CommentState
	}
}

func (p *HTMLTokenizer) commentEndBangStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.eofInComment()
	}
	switch r {
	case '-':
		p.current.WriteDataString("--!")
		return false, CommentEndDashState
	case '>':
		p.parseError(IncorrectlyClosedComment)
		p.emitCurrent()
		return false, DataState
	default:
		p.current.WriteDataString("--!")
		return true, CommentState
	}
}

func (p *HTMLTokenizer) bogusCommentStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return p.emitCurrentAndEndOfFile()
	}
	switch r {
	case '>':
		p.emitCurrent()
		return false, DataState
	case '\u0000':
		p.parseError(UnexpectedNullCharacter)
		p.current.WriteData('\uFFFD')
		return false, BogusCommentState
	default:
		p.current.WriteData(r)
		return false, BogusCommentState
	}
}

func (p *HTMLTokenizer) cdataSectionStateParser(r rune, eof bool) (bool, State) {
	if eof {
		p.parseError(EOFInCDATA)
		return p.emitEndOfFile()
	}
	switch r {
	case ']':
		return false, CDataSectionBracketState
	default:
		p.emitCharacter(r)
		return false, CDataSectionState
	}
}

func (p *HTMLTokenizer) cdataSectionBracketStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == ']' {
		return false, CDataSectionEndState
	}
	p.emit(characterToken(']', p.charStart-1))
	return true, CDataSectionState
}

func (p *HTMLTokenizer) cdataSectionEndStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof:
	case r == ']':
		p.emit(characterToken(']', p.charStart-2))
		return false, CDataSectionEndState
	case r == '>':
		return false, DataState
	}
	p.emit(characterToken(']', p.charStart-2), characterToken(']', p.charStart-1))
	return true, CDataSectionState
}
