package parser

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2"
)

// Structural failures. These mean the tokenizer or its caller has a bug and
// are raised as panics wrapping one of these values.
var (
	ErrOutOfRange   = errors.New("cursor out of range")
	ErrUnderflow    = errors.New("cursor underflow")
	ErrUnknownState = errors.New("unknown tokenizer state")
)

// ErrorCode is the WHATWG name of a tokenizer parse error.
type ErrorCode string

const (
	AbruptClosingOfEmptyComment                       ErrorCode = "abrupt-closing-of-empty-comment"
	AbruptDoctypePublicIdentifier                     ErrorCode = "abrupt-doctype-public-identifier"
	AbruptDoctypeSystemIdentifier                     ErrorCode = "abrupt-doctype-system-identifier"
	AbsenceOfDigitsInNumericCharacterReference        ErrorCode = "absence-of-digits-in-numeric-character-reference"
	CDATAInHTMLContent                                ErrorCode = "cdata-in-html-content"
	CharacterReferenceOutsideUnicodeRange             ErrorCode = "character-reference-outside-unicode-range"
	ControlCharacterInInputStream                     ErrorCode = "control-character-in-input-stream"
	ControlCharacterReference                         ErrorCode = "control-character-reference"
	DuplicateAttribute                                ErrorCode = "duplicate-attribute"
	EndTagWithAttributes                              ErrorCode = "end-tag-with-attributes"
	EndTagWithTrailingSolidus                         ErrorCode = "end-tag-with-trailing-solidus"
	EOFBeforeTagName                                  ErrorCode = "eof-before-tag-name"
	EOFInCDATA                                        ErrorCode = "eof-in-cdata"
	EOFInComment                                      ErrorCode = "eof-in-comment"
	EOFInDoctype                                      ErrorCode = "eof-in-doctype"
	EOFInScriptHTMLCommentLikeText                    ErrorCode = "eof-in-script-html-comment-like-text"
	EOFInTag                                          ErrorCode = "eof-in-tag"
	IncorrectlyClosedComment                          ErrorCode = "incorrectly-closed-comment"
	IncorrectlyOpenedComment                          ErrorCode = "incorrectly-opened-comment"
	InvalidCharacterSequenceAfterDoctypeName          ErrorCode = "invalid-character-sequence-after-doctype-name"
	InvalidFirstCharacterOfTagName                    ErrorCode = "invalid-first-character-of-tag-name"
	MissingAttributeValue                             ErrorCode = "missing-attribute-value"
	MissingDoctypeName                                ErrorCode = "missing-doctype-name"
	MissingDoctypePublicIdentifier                    ErrorCode = "missing-doctype-public-identifier"
	MissingDoctypeSystemIdentifier                    ErrorCode = "missing-doctype-system-identifier"
	MissingEndTagName                                 ErrorCode = "missing-end-tag-name"
	MissingQuoteBeforeDoctypePublicIdentifier         ErrorCode = "missing-quote-before-doctype-public-identifier"
	MissingQuoteBeforeDoctypeSystemIdentifier         ErrorCode = "missing-quote-before-doctype-system-identifier"
	MissingSemicolonAfterCharacterReference           ErrorCode = "missing-semicolon-after-character-reference"
	MissingWhitespaceAfterDoctypePublicKeyword        ErrorCode = "missing-whitespace-after-doctype-public-keyword"
	MissingWhitespaceAfterDoctypeSystemKeyword        ErrorCode = "missing-whitespace-after-doctype-system-keyword"
	MissingWhitespaceBeforeDoctypeName                ErrorCode = "missing-whitespace-before-doctype-name"
	MissingWhitespaceBetweenAttributes                ErrorCode = "missing-whitespace-between-attributes"
	MissingWhitespaceBetweenDoctypePublicAndSystemIDs ErrorCode = "missing-whitespace-between-doctype-public-and-system-identifiers"
	NestedComment                                     ErrorCode = "nested-comment"
	NoncharacterCharacterReference                    ErrorCode = "noncharacter-character-reference"
	NoncharacterInInputStream                         ErrorCode = "noncharacter-in-input-stream"
	NullCharacterReference                            ErrorCode = "null-character-reference"
	SurrogateCharacterReference                       ErrorCode = "surrogate-character-reference"
	// SurrogateInInputStream is never raised: UTF-8 decoding already turns
	// an encoded surrogate into U+FFFD.
	SurrogateInInputStream                            ErrorCode = "surrogate-in-input-stream"
	UnexpectedCharacterAfterDoctypeSystemIdentifier   ErrorCode = "unexpected-character-after-doctype-system-identifier"
	UnexpectedCharacterInAttributeName                ErrorCode = "unexpected-character-in-attribute-name"
	UnexpectedCharacterInUnquotedAttributeValue       ErrorCode = "unexpected-character-in-unquoted-attribute-value"
	UnexpectedEqualsSignBeforeAttributeName           ErrorCode = "unexpected-equals-sign-before-attribute-name"
	UnexpectedNullCharacter                           ErrorCode = "unexpected-null-character"
	UnexpectedQuestionMarkInsteadOfTagName            ErrorCode = "unexpected-question-mark-instead-of-tag-name"
	UnexpectedSolidusInTag                            ErrorCode = "unexpected-solidus-in-tag"
	UnknownNamedCharacterReference                    ErrorCode = "unknown-named-character-reference"
)

// ParseError is a recoverable tokenization error. It never changes the
// token stream; it only reports where the input deviated from the standard.
type ParseError struct {
	Code   ErrorCode
	Offset int       // byte offset of the character that triggered the error
	State  State     // state the tokenizer was in
	Token  TokenType // type of the token in progress, if any
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d in %s", e.Code, e.Offset, e.State)
}

// Position resolves the error offset against the original input and returns
// the 1-based line and column together with the offending line.
func (e ParseError) Position(input []byte) (line, col int, context string) {
	return parse.Position(bytes.NewReader(input), e.Offset)
}

// Locator resolves byte offsets to 1-based line and column numbers. It
// resumes from the last offset it resolved, so a run of offsets in
// nondecreasing order costs one pass over the input. An earlier offset
// restarts from the beginning.
type Locator struct {
	input  []byte
	offset int
	line   int
	col    int
}

func NewLocator(input []byte) *Locator {
	return &Locator{input: input, line: 1, col: 1}
}

// Position agrees with ParseError.Position for offsets on a code point
// boundary.
func (l *Locator) Position(offset int) (line, col int) {
	if offset > len(l.input) {
		offset = len(l.input)
	}
	// the '\n' of a CRLF pair belongs to the '\r'
	if 0 < offset && offset < len(l.input) && l.input[offset-1] == '\r' && l.input[offset] == '\n' {
		return l.Position(offset - 1)
	}
	if offset < l.offset {
		l.offset, l.line, l.col = 0, 1, 1
	}
	if offset == l.offset {
		return l.line, l.col
	}

	dline, dcol, _ := parse.Position(bytes.NewReader(l.input[l.offset:offset]), offset-l.offset)
	if dline == 1 {
		l.col += dcol - 1
	} else {
		l.line += dline - 1
		l.col = dcol
	}
	l.offset = offset
	return l.line, l.col
}
