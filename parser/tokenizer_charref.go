package parser

import (
	"github.com/heathj/html5tok/parser/entity"
)

// maxCodePoint bounds the numeric reference accumulator. Anything at or above
// it is reported as outside the Unicode range, so there is no need to keep
// counting.
const maxCodePoint = 0x110000

// numericCharacterReferenceEndStateTable remaps C1 controls named by a
// numeric reference to the characters windows-1252 puts there.
var numericCharacterReferenceEndStateTable = map[int]rune{
	0x80: 0x20AC,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8E: 0x017D,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: 0x203A,
	0x9C: 0x0153,
	0x9E: 0x017E,
	0x9F: 0x0178,
}

func wasConsumedByAttribute(s State) bool {
	switch s {
	case AttributeValueDoubleQuotedState, AttributeValueSingleQuotedState, AttributeValueUnquotedState:
		return true
	default:
		return false
	}
}

// flushCodePointsAsCharacterReference hands the temporary buffer to the
// attribute value, or emits it as characters positioned at the '&' that
// started the reference.
func (p *HTMLTokenizer) flushCodePointsAsCharacterReference() {
	if wasConsumedByAttribute(p.returnState) {
		p.current.WriteAttributeValueString(p.tempBuffer.String())
		return
	}
	for _, r := range p.tempBuffer.String() {
		p.emit(characterToken(r, p.refStart))
	}
}

func (p *HTMLTokenizer) characterReferenceStateParser(r rune, eof bool) (bool, State) {
	p.tempBuffer.Reset()
	p.tempBuffer.WriteByte('&')
	switch {
	case eof:
	case isASCIIAlphanumeric(r):
		return true, NamedCharacterReferenceState
	case r == '#':
		p.tempBuffer.WriteRune(r)
		return false, NumericCharacterReferenceState
	}
	p.flushCodePointsAsCharacterReference()
	return true, p.returnState
}

// namedCharacterReferenceStateParser matches the longest entity name that
// starts at r. r is ASCII, so stepping back one byte puts the cursor at the
// start of the candidate name.
func (p *HTMLTokenizer) namedCharacterReferenceStateParser(r rune, eof bool) (bool, State) {
	if err := p.input.Unread(); err != nil {
		panic(err)
	}
	name, value, ok := entity.Match(p.input.PeekRemaining())
	if !ok {
		p.mustSkip(1)
		p.flushCodePointsAsCharacterReference()
		return true, AmbiguousAmpersandState
	}
	p.mustSkip(len(name))

	terminated := name[len(name)-1] == ';'
	if !terminated && wasConsumedByAttribute(p.returnState) {
		// Legacy names directly followed by '=' or an alphanumeric are
		// left alone inside attribute values, e.g. href="?a=1&copy=2".
		if next, err := p.input.Peek(0); err == nil && (next == '=' || isASCIIAlphanumeric(rune(next))) {
			p.tempBuffer.WriteString(name)
			p.flushCodePointsAsCharacterReference()
			return false, p.returnState
		}
	}
	if !terminated {
		p.parseError(MissingSemicolonAfterCharacterReference)
	}
	p.tempBuffer.Reset()
	p.tempBuffer.WriteString(value)
	p.flushCodePointsAsCharacterReference()
	return false, p.returnState
}

func (p *HTMLTokenizer) ambiguousAmpersandStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof:
	case isASCIIAlphanumeric(r):
		if wasConsumedByAttribute(p.returnState) {
			p.current.WriteAttributeValue(r)
		} else {
			p.emitCharacter(r)
		}
		return false, AmbiguousAmpersandState
	case r == ';':
		p.parseError(UnknownNamedCharacterReference)
	}
	return true, p.returnState
}

func (p *HTMLTokenizer) numericCharacterReferenceStateParser(r rune, eof bool) (bool, State) {
	p.characterReferenceCode = 0
	if !eof && (r == 'x' || r == 'X') {
		p.tempBuffer.WriteRune(r)
		return false, HexadecimalCharacterReferenceStartState
	}
	return true, DecimalCharacterReferenceStartState
}

// absenceOfDigits gives back "&#" or "&#x" as plain text.
func (p *HTMLTokenizer) absenceOfDigits() (bool, State) {
	p.parseError(AbsenceOfDigitsInNumericCharacterReference)
	p.flushCodePointsAsCharacterReference()
	return true, p.returnState
}

func (p *HTMLTokenizer) hexadecimalCharacterReferenceStartStateParser(r rune, eof bool) (bool, State) {
	if !eof && isASCIIHexDigit(r) {
		return true, HexadecimalCharacterReferenceState
	}
	return p.absenceOfDigits()
}

func (p *HTMLTokenizer) decimalCharacterReferenceStartStateParser(r rune, eof bool) (bool, State) {
	if !eof && isASCIIDigit(r) {
		return true, DecimalCharacterReferenceState
	}
	return p.absenceOfDigits()
}

// accumulate adds one digit to the reference code, saturating at
// maxCodePoint.
func (p *HTMLTokenizer) accumulate(base, digit int) {
	p.characterReferenceCode = p.characterReferenceCode*base + digit
	if p.characterReferenceCode > maxCodePoint {
		p.characterReferenceCode = maxCodePoint
	}
}

func (p *HTMLTokenizer) hexadecimalCharacterReferenceStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof:
	case isASCIIDigit(r):
		p.accumulate(16, int(r-'0'))
		return false, HexadecimalCharacterReferenceState
	case r >= 'A' && r <= 'F':
		p.accumulate(16, int(r-'A'+10))
		return false, HexadecimalCharacterReferenceState
	case r >= 'a' && r <= 'f':
		p.accumulate(16, int(r-'a'+10))
		return false, HexadecimalCharacterReferenceState
	case r == ';':
		return false, NumericCharacterReferenceEndState
	}
	p.parseError(MissingSemicolonAfterCharacterReference)
	return true, NumericCharacterReferenceEndState
}

func (p *HTMLTokenizer) decimalCharacterReferenceStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof:
	case isASCIIDigit(r):
		p.accumulate(10, int(r-'0'))
		return false, DecimalCharacterReferenceState
	case r == ';':
		return false, NumericCharacterReferenceEndState
	}
	p.parseError(MissingSemicolonAfterCharacterReference)
	return true, NumericCharacterReferenceEndState
}

// numericCharacterReferenceEndStateParser is entered either after the ';'
// was consumed, in which case r is the character following the reference,
// or with r reconsumed. Either way r belongs to the return state.
func (p *HTMLTokenizer) numericCharacterReferenceEndStateParser(r rune, eof bool) (bool, State) {
	code := p.characterReferenceCode
	switch {
	case code == 0x00:
		p.parseError(NullCharacterReference)
		code = 0xFFFD
	case code > 0x10FFFF:
		p.parseError(CharacterReferenceOutsideUnicodeRange)
		code = 0xFFFD
	case isSurrogate(code):
		p.parseError(SurrogateCharacterReference)
		code = 0xFFFD
	case isNonCharacter(code):
		p.parseError(NoncharacterCharacterReference)
	case code == 0x0D || (isControl(code) && !isASCIIWhitespace(code)):
		p.parseError(ControlCharacterReference)
		if v, ok := numericCharacterReferenceEndStateTable[code]; ok {
			code = int(v)
		}
	}

	p.tempBuffer.Reset()
	p.tempBuffer.WriteRune(rune(code))
	p.flushCodePointsAsCharacterReference()
	return true, p.returnState
}
