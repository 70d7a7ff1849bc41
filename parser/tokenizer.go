package parser

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// HTMLTokenizer holds state for the various state of the tokenizer.
type HTMLTokenizer struct {
	input                     *ByteCursor
	returnState, currentState State

	// current is the token in progress, nil between tokens. It always points
	// at builder so storage is reused from one token to the next.
	current *TokenBuilder
	builder TokenBuilder

	tempBuffer              strings.Builder
	characterReferenceCode  int
	lastEmittedStartTagName string
	allowCDATA              bool

	emittedTokens []Token
	done          bool
	emitEOF       bool
	coalesce      bool

	// charStart is the offset of the character being processed, markStart
	// the offset of the '<' that opened the current markup and refStart the
	// offset of the '&' that opened the current character reference.
	charStart, markStart, refStart int

	log     *logrus.Entry
	onError func(ParseError)
	errs    []ParseError
	locator *Locator
}

// Option configures an HTMLTokenizer.
type Option func(*HTMLTokenizer)

// WithLogger routes parse errors (Debug) and state tracing (Trace) to l.
func WithLogger(l *logrus.Logger) Option {
	return func(p *HTMLTokenizer) {
		p.log = logrus.NewEntry(l)
	}
}

// WithErrorHandler calls fn for every parse error as it is raised.
func WithErrorHandler(fn func(ParseError)) Option {
	return func(p *HTMLTokenizer) {
		p.onError = fn
	}
}

// WithInitialState starts the tokenizer in s instead of the data state.
func WithInitialState(s State) Option {
	return func(p *HTMLTokenizer) {
		p.currentState = s
	}
}

// WithLastStartTag seeds the name used by the appropriate end tag check in
// the RCDATA, RAWTEXT and script data states.
func WithLastStartTag(name string) Option {
	return func(p *HTMLTokenizer) {
		p.lastEmittedStartTagName = name
	}
}

// WithCDATA treats <![CDATA[ as a CDATA section, as a tree builder does
// when the adjusted current node is not an HTML element.
func WithCDATA(allow bool) Option {
	return func(p *HTMLTokenizer) {
		p.allowCDATA = allow
	}
}

// WithCoalescedText merges adjacent character tokens into a single token.
func WithCoalescedText() Option {
	return func(p *HTMLTokenizer) {
		p.coalesce = true
	}
}

// WithEOFToken makes NextToken return the final end-of-file token before
// reporting exhaustion.
func WithEOFToken() Option {
	return func(p *HTMLTokenizer) {
		p.emitEOF = true
	}
}

// NewHTMLTokenizer creates a tokenizer over the complete document in b.
func NewHTMLTokenizer(b []byte, opts ...Option) *HTMLTokenizer {
	p := &HTMLTokenizer{
		input:         NewByteCursor(b),
		currentState:  DataState,
		returnState:   DataState,
		emittedTokens: []Token{},
		log:           logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetState switches the tokenizer into s before the next character is read.
// A tree builder uses this to enter RCDATA, RAWTEXT, script data or
// PLAINTEXT after the matching start tag.
func (p *HTMLTokenizer) SetState(s State) {
	p.currentState = s
}

// State is the current tokenizer state.
func (p *HTMLTokenizer) State() State {
	return p.currentState
}

// AllowCDATA toggles CDATA section recognition, see WithCDATA.
func (p *HTMLTokenizer) AllowCDATA(allow bool) {
	p.allowCDATA = allow
}

// Errors returns every parse error raised so far.
func (p *HTMLTokenizer) Errors() []ParseError {
	return p.errs
}

// Offset is the number of input bytes consumed so far.
func (p *HTMLTokenizer) Offset() int {
	return p.input.Pos()
}

// NextToken returns the next token. It returns false once the input is
// exhausted and no token is pending.
func (p *HTMLTokenizer) NextToken() (Token, bool) {
	token, ok := p.takeLastEmittedToken()
	if !ok || !p.coalesce || token.TokenType != CharacterToken {
		return token, ok
	}

	var run strings.Builder
	run.WriteString(token.Data)
	for p.fill() && p.emittedTokens[0].TokenType == CharacterToken {
		run.WriteString(p.emittedTokens[0].Data)
		p.emittedTokens = p.emittedTokens[1:]
	}
	token.Data = run.String()
	return token, true
}

// Tokens drains the tokenizer.
func (p *HTMLTokenizer) Tokens() []Token {
	var tokens []Token
	for {
		t, ok := p.NextToken()
		if !ok {
			return tokens
		}
		tokens = append(tokens, t)
	}
}

func (p *HTMLTokenizer) takeLastEmittedToken() (Token, bool) {
	if !p.fill() {
		return Token{}, false
	}
	ret := p.emittedTokens[0]
	p.emittedTokens = p.emittedTokens[1:]
	if ret.TokenType == EndOfFileToken && !p.emitEOF {
		return Token{}, false
	}
	return ret, true
}

// fill runs the state machine until a token is queued. Some states emit more
// than one token at a time and sometimes none, so loop until at least one is
// available or the end-of-file token has been taken.
func (p *HTMLTokenizer) fill() bool {
	for len(p.emittedTokens) == 0 {
		if p.done {
			return false
		}
		if p.input.EOF() {
			p.charStart = p.input.Pos()
			p.processRune(0, true)
			if !p.done {
				panic(errors.Wrapf(ErrUnknownState, "%s did not handle end of input", p.currentState))
			}
			continue
		}
		p.processRune(p.nextInputCharacter(), false)
	}
	return true
}

// nextInputCharacter consumes one code point, normalizing CR and CRLF to LF
// and reporting input stream parse errors.
func (p *HTMLTokenizer) nextInputCharacter() rune {
	p.charStart = p.input.Pos()
	r, _, err := p.input.ReadRune()
	if err != nil {
		panic(err)
	}

	switch {
	case r == '\r':
		if b, err := p.input.Peek(0); err == nil && b == '\n' {
			p.mustSkip(1)
		}
		return '\n'
	case isNonCharacter(int(r)):
		p.parseError(NoncharacterInInputStream)
	case r != 0 && isControl(int(r)) && !isASCIIWhitespace(int(r)):
		p.parseError(ControlCharacterInInputStream)
	}
	return r
}

func (p *HTMLTokenizer) mustSkip(n int) {
	if err := p.input.Skip(n); err != nil {
		panic(err)
	}
}

// processRune feeds r to the current state, and keeps feeding it to the
// next state for as long as the handlers ask for it to be reconsumed.
func (p *HTMLTokenizer) processRune(r rune, eof bool) {
	reconsume := true
	for reconsume {
		reconsume, p.currentState = p.stateToParser(p.currentState)(r, eof)
		if p.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
			p.log.WithFields(logrus.Fields{
				"rune":      string(r),
				"eof":       eof,
				"state":     p.currentState.String(),
				"reconsume": reconsume,
			}).Trace("[TOKEN]")
		}
	}
}

// parseError records a recoverable error at the current character.
func (p *HTMLTokenizer) parseError(code ErrorCode) {
	e := ParseError{
		Code:   code,
		Offset: p.charStart,
		State:  p.currentState,
		Token:  CharacterToken,
	}
	if p.current != nil {
		e.Token = p.current.Kind()
	}
	p.errs = append(p.errs, e)
	if p.onError != nil {
		p.onError(e)
	}
	if p.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		if p.locator == nil {
			p.locator = NewLocator(p.input.Bytes())
		}
		line, col := p.locator.Position(e.Offset)
		p.log.WithFields(logrus.Fields{
			"code":   string(e.Code),
			"offset": e.Offset,
			"line":   line,
			"column": col,
			"state":  e.State.String(),
			"token":  e.Token.String(),
		}).Debug("parse error")
	}
}

// newToken starts a token of the given kind at position.
func (p *HTMLTokenizer) newToken(kind TokenType, position int) *TokenBuilder {
	p.builder.Reset(kind, position)
	p.current = &p.builder
	return p.current
}

func (p *HTMLTokenizer) emit(tokens ...Token) {
	for _, token := range tokens {
		if token.TokenType == StartTagToken {
			p.lastEmittedStartTagName = token.TagName
		}
		p.emittedTokens = append(p.emittedTokens, token)
	}
}

// emitCharacter emits r as a character token at the current character.
func (p *HTMLTokenizer) emitCharacter(r rune) {
	p.emit(characterToken(r, p.charStart))
}

// emitString emits each code point of s as a character token, starting at
// offset.
func (p *HTMLTokenizer) emitString(s string, offset int) {
	for i, r := range s {
		p.emit(characterToken(r, offset+i))
	}
}

// emitCurrent emits the token in progress and forgets it.
func (p *HTMLTokenizer) emitCurrent() {
	p.emit(p.current.Token())
	p.current = nil
}

// emitCurrentTag emits the start or end tag in progress and returns the data
// state.
func (p *HTMLTokenizer) emitCurrentTag() State {
	if p.current.Kind() == EndTagToken {
		if p.current.HasAttributes() {
			p.parseError(EndTagWithAttributes)
		}
		if p.current.selfClosing {
			p.parseError(EndTagWithTrailingSolidus)
		}
	}
	p.emitCurrent()
	return DataState
}

// emitEndOfFile emits the end-of-file token, after which the tokenizer
// only drains its queue.
func (p *HTMLTokenizer) emitEndOfFile() (bool, State) {
	p.emit(Token{TokenType: EndOfFileToken, Position: p.input.Len()})
	p.current = nil
	p.done = true
	return false, DataState
}

// emitCurrentAndEndOfFile emits the comment or DOCTYPE in progress followed
// by the end-of-file token.
func (p *HTMLTokenizer) emitCurrentAndEndOfFile() (bool, State) {
	p.emitCurrent()
	return p.emitEndOfFile()
}

func (p *HTMLTokenizer) isAppropriateEndTagToken() bool {
	return p.lastEmittedStartTagName != "" && p.lastEmittedStartTagName == p.current.Name()
}

// a parserStateHandler takes in a rune and a bool representing the end of
// file and returns whether to reconsume the rune and the state to transition
// to.
type parserStateHandler func(in rune, eof bool) (bool, State)

func (p *HTMLTokenizer) stateToParser(state State) parserStateHandler {
	switch state {
	case DataState:
		return p.dataStateParser
	case RCDataState:
		return p.rcDataStateParser
	case RawTextState:
		return p.rawTextStateParser
	case ScriptDataState:
		return p.scriptDataStateParser
	case PlaintextState:
		return p.plaintextStateParser
	case TagOpenState:
		return p.tagOpenStateParser
	case EndTagOpenState:
		return p.endTagOpenStateParser
	case TagNameState:
		return p.tagNameStateParser
	case RCDataLessThanSignState:
		return p.rcDataLessThanSignStateParser
	case RCDataEndTagOpenState:
		return p.rcDataEndTagOpenStateParser
	case RCDataEndTagNameState:
		return p.rcDataEndTagNameStateParser
	case RawTextLessThanSignState:
		return p.rawTextLessThanSignStateParser
	case RawTextEndTagOpenState:
		return p.rawTextEndTagOpenStateParser
	case RawTextEndTagNameState:
		return p.rawTextEndTagNameStateParser
	case ScriptDataLessThanSignState:
		return p.scriptDataLessThanSignStateParser
	case ScriptDataEndTagOpenState:
		return p.scriptDataEndTagOpenStateParser
	case ScriptDataEndTagNameState:
		return p.scriptDataEndTagNameStateParser
	case ScriptDataEscapeStartState:
		return p.scriptDataEscapeStartStateParser
	case ScriptDataEscapeStartDashState:
		return p.scriptDataEscapeStartDashStateParser
	case ScriptDataEscapedState:
		return p.scriptDataEscapedStateParser
	case ScriptDataEscapedDashState:
		return p.scriptDataEscapedDashStateParser
	case ScriptDataEscapedDashDashState:
		return p.scriptDataEscapedDashDashStateParser
	case ScriptDataEscapedLessThanSignState:
		return p.scriptDataEscapedLessThanSignStateParser
	case ScriptDataEscapedEndTagOpenState:
		return p.scriptDataEscapedEndTagOpenStateParser
	case ScriptDataEscapedEndTagNameState:
		return p.scriptDataEscapedEndTagNameStateParser
	case ScriptDataDoubleEscapeStartState:
		return p.scriptDataDoubleEscapeStartStateParser
	case ScriptDataDoubleEscapedState:
		return p.scriptDataDoubleEscapedStateParser
	case ScriptDataDoubleEscapedDashState:
		return p.scriptDataDoubleEscapedDashStateParser
	case ScriptDataDoubleEscapedDashDashState:
		return p.scriptDataDoubleEscapedDashDashStateParser
	case ScriptDataDoubleEscapedLessThanSignState:
		return p.scriptDataDoubleEscapedLessThanSignStateParser
	case ScriptDataDoubleEscapeEndState:
		return p.scriptDataDoubleEscapeEndStateParser
	case BeforeAttributeNameState:
		return p.beforeAttributeNameStateParser
	case AttributeNameState:
		return p.attributeNameStateParser
	case AfterAttributeNameState:
		return p.afterAttributeNameStateParser
	case BeforeAttributeValueState:
		return p.beforeAttributeValueStateParser
	case AttributeValueDoubleQuotedState:
		return p.attributeValueDoubleQuotedStateParser
	case AttributeValueSingleQuotedState:
		return p.attributeValueSingleQuotedStateParser
	case AttributeValueUnquotedState:
		return p.attributeValueUnquotedStateParser
	case AfterAttributeValueQuotedState:
		return p.afterAttributeValueQuotedStateParser
	case SelfClosingStartTagState:
		return p.selfClosingStartTagStateParser
	case BogusCommentState:
		return p.bogusCommentStateParser
	case MarkupDeclarationOpenState:
		return p.markupDeclarationOpenStateParser
	case CommentStartState:
		return p.commentStartStateParser
	case CommentStartDashState:
		return p.commentStartDashStateParser
	case CommentState:
		return p.commentStateParser
	case CommentLessThanSignState:
		return p.commentLessThanSignStateParser
	case CommentLessThanSignBangState:
		return p.commentLessThanSignBangStateParser
	case CommentLessThanSignBangDashState:
		return p.commentLessThanSignBangDashStateParser
	case CommentLessThanSignBangDashDashState:
		return p.commentLessThanSignBangDashDashStateParser
	case CommentEndDashState:
		return p.commentEndDashStateParser
	case CommentEndState:
		return p.commentEndStateParser
	case CommentEndBangState:
		return p.commentEndBangStateParser
	case DoctypeState:
		return p.doctypeStateParser
	case BeforeDoctypeNameState:
		return p.beforeDoctypeNameStateParser
	case DoctypeNameState:
		return p.doctypeNameStateParser
	case AfterDoctypeNameState:
		return p.afterDoctypeNameStateParser
	case AfterDoctypePublicKeywordState:
		return p.afterDoctypePublicKeywordStateParser
	case BeforeDoctypePublicIdentifierState:
		return p.beforeDoctypePublicIdentifierStateParser
	case DoctypePublicIdentifierDoubleQuotedState:
		return p.doctypePublicIdentifierDoubleQuotedStateParser
	case DoctypePublicIdentifierSingleQuotedState:
		return p.doctypePublicIdentifierSingleQuotedStateParser
	case AfterDoctypePublicIdentifierState:
		return p.afterDoctypePublicIdentifierStateParser
	case BetweenDoctypePublicAndSystemIdentifiersState:
		return p.betweenDoctypePublicAndSystemIdentifiersStateParser
	case AfterDoctypeSystemKeywordState:
		return p.afterDoctypeSystemKeywordStateParser
	case BeforeDoctypeSystemIdentifierState:
		return p.beforeDoctypeSystemIdentifierStateParser
	case DoctypeSystemIdentifierDoubleQuotedState:
		return p.doctypeSystemIdentifierDoubleQuotedStateParser
	case DoctypeSystemIdentifierSingleQuotedState:
		return p.doctypeSystemIdentifierSingleQuotedStateParser
	case AfterDoctypeSystemIdentifierState:
		return p.afterDoctypeSystemIdentifierStateParser
	case BogusDoctypeState:
		return p.bogusDoctypeStateParser
	case CDataSectionState:
		return p.cdataSectionStateParser
	case CDataSectionBracketState:
		return p.cdataSectionBracketStateParser
	case CDataSectionEndState:
		return p.cdataSectionEndStateParser
	case CharacterReferenceState:
		return p.characterReferenceStateParser
	case NamedCharacterReferenceState:
		return p.namedCharacterReferenceStateParser
	case AmbiguousAmpersandState:
		return p.ambiguousAmpersandStateParser
	case NumericCharacterReferenceState:
		return p.numericCharacterReferenceStateParser
	case HexadecimalCharacterReferenceStartState:
		return p.hexadecimalCharacterReferenceStartStateParser
	case DecimalCharacterReferenceStartState:
		return p.decimalCharacterReferenceStartStateParser
	case HexadecimalCharacterReferenceState:
		return p.hexadecimalCharacterReferenceStateParser
	case DecimalCharacterReferenceState:
		return p.decimalCharacterReferenceStateParser
	case NumericCharacterReferenceEndState:
		return p.numericCharacterReferenceEndStateParser
	}

	panic(errors.Wrapf(ErrUnknownState, "no handler for %s", state))
}

func isNonCharacter(code int) bool {
	if code >= 0xFDD0 && code <= 0xFDEF {
		return true
	}

	switch code {
	case 0xFFFE, 0xFFFF, 0x1FFFE, 0x1FFFF, 0x2FFFE, 0x2FFFF, 0x3FFFE, 0x3FFFF, 0x4FFFE, 0x4FFFF, 0x5FFFE, 0x5FFFF, 0x6FFFE, 0x6FFFF, 0x7FFFE, 0x7FFFF, 0x8FFFE, 0x8FFFF, 0x9FFFE, 0x9FFFF, 0xAFFFE, 0xAFFFF, 0xBFFFE, 0xBFFFF, 0xCFFFE, 0xCFFFF, 0xDFFFE, 0xDFFFF, 0xEFFFE, 0xEFFFF, 0xFFFFE, 0xFFFFF, 0x10FFFE, 0x10FFFF:
		return true
	default:
		return false
	}
}

func isC0Control(code int) bool {
	return code >= 0x00 && code <= 0x1F
}

func isControl(code int) bool {
	return isC0Control(code) || (code >= 0x7F && code <= 0x9F)
}

func isASCIIWhitespace(code int) bool {
	switch code {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	default:
		return false
	}
}

func isSurrogate(code int) bool {
	return code >= 0xD800 && code <= 0xDFFF
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isASCIILower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isASCIIAlpha(r rune) bool {
	return isASCIIUpper(r) || isASCIILower(r)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIAlphanumeric(r rune) bool {
	return isASCIIAlpha(r) || isASCIIDigit(r)
}

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'A' && r <= 'F') || (r >= 'a' && r <= 'f')
}

func toLower(r rune) rune {
	if isASCIIUpper(r) {
		return r + 0x20
	}
	return r
}
