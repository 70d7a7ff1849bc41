package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenize drains a coalescing tokenizer over in and returns its tokens with
// positions cleared, together with the codes of every parse error raised.
func tokenize(t *testing.T, in string, opts ...Option) ([]Token, []ErrorCode) {
	t.Helper()
	p := NewHTMLTokenizer([]byte(in), append([]Option{WithCoalescedText()}, opts...)...)
	tokens := p.Tokens()
	for i := range tokens {
		tokens[i].Position = 0
	}
	var codes []ErrorCode
	for _, e := range p.Errors() {
		codes = append(codes, e.Code)
	}
	return tokens, codes
}

func text(s string) Token {
	return Token{TokenType: CharacterToken, Data: s}
}

func startTag(name string, attrs ...Attribute) Token {
	return Token{TokenType: StartTagToken, TagName: name, Attributes: attrs}
}

func endTag(name string) Token {
	return Token{TokenType: EndTagToken, TagName: name}
}

type tokenizerAttributeAccuracyTestcase struct {
	inHTML string            // snippet of HTML to tokenize (should only be one element)
	attrs  map[string]string // expected attributes on the first token that is produced
}

var tokenizerAttributeAccuracyTests = []tokenizerAttributeAccuracyTestcase{
	{"<head></head>", map[string]string{}},
	{"<script src='123' onload='test'></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<a href='https://google.com' onclick='alert(1)'>Click this</a>", map[string]string{
		"href":    "https://google.com",
		"onclick": "alert(1)",
	}},
	{"<script src='123' src='456'></script>", map[string]string{
		"src": "123",
	}},
	{"<script src=123 onload=test></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<script src='123' onload='test' ></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<script =src='123'onload='test' ></script>", map[string]string{
		"=src":   "123",
		"onload": "test",
	}},
	{"<script src></script>", map[string]string{
		"src": "",
	}},
	{"<script src test></script>", map[string]string{
		"src":  "",
		"test": "",
	}},
	{"<script src = 'x' ></script>", map[string]string{
		"src": "x",
	}},
	{"<script 'asd></script>", map[string]string{
		"'asd": "",
	}},
	{"<script <asd></script>", map[string]string{
		"<asd": "",
	}},
	{"<script ABC=123></script>", map[string]string{
		"abc": "123",
	}},
	{"<script abc='\u0000123'></script>", map[string]string{
		"abc": "\uFFFD123",
	}},
	{"<script abc=></script>", map[string]string{
		"abc": "",
	}},
	{"<script\tabc=123></script>", map[string]string{
		"abc": "123",
	}},
	{"<a href=\"?a=1&amp;b=2&copy=3\">", map[string]string{
		"href": "?a=1&b=2&copy=3",
	}},
}

// TestTokenizerAttributeAccuracy makes sure that we have the correct
// attribute names and values on the first token.
func TestTokenizerAttributeAccuracy(t *testing.T) {
	for _, tt := range tokenizerAttributeAccuracyTests {
		runTestTokenizerAttributeAccuracy(tt, t)
	}
}

func runTestTokenizerAttributeAccuracy(tt tokenizerAttributeAccuracyTestcase, t *testing.T) {
	t.Run(tt.inHTML, func(t *testing.T) {
		t.Parallel()
		p := NewHTMLTokenizer([]byte(tt.inHTML))
		token, ok := p.NextToken()
		require.True(t, ok)
		require.Equal(t, StartTagToken, token.TokenType)
		assert.Len(t, token.Attributes, len(tt.attrs))
		for k, v := range tt.attrs {
			got, ok := token.Attr(k)
			if assert.True(t, ok, "missing attribute %q", k) {
				assert.Equal(t, v, got)
			}
		}
	})
}

type stateMachineTestCase struct {
	inRune            rune  // the rune to pass to the startingState
	startingState     State // the state to start from
	shouldReconsume   bool  // the expectation if the next state should reconsume
	nextExpectedState State // the next state
}

// TestStateParsers checks that each handler of the state machine returns the
// next expected state. Flows that depend on earlier input are covered by the
// end-to-end tests instead.
func TestStateParsers(t *testing.T) {
	stateParserTests := []stateMachineTestCase{
		{'&', DataState, false, CharacterReferenceState},
		{'<', DataState, false, TagOpenState},
		{'\u0000', DataState, false, DataState},
		{'a', DataState, false, DataState},
		{'A', DataState, false, DataState},

		{'&', RCDataState, false, CharacterReferenceState},
		{'<', RCDataState, false, RCDataLessThanSignState},
		{'\u0000', RCDataState, false, RCDataState},
		{'#', RCDataState, false, RCDataState},

		{'<', RawTextState, false, RawTextLessThanSignState},
		{'&', RawTextState, false, RawTextState},
		{'\u0000', RawTextState, false, RawTextState},

		{'<', ScriptDataState, false, ScriptDataLessThanSignState},
		{'&', ScriptDataState, false, ScriptDataState},
		{'\u0000', ScriptDataState, false, ScriptDataState},

		{'<', PlaintextState, false, PlaintextState},
		{'\u0000', PlaintextState, false, PlaintextState},

		{'!', TagOpenState, false, MarkupDeclarationOpenState},
		{'/', TagOpenState, false, EndTagOpenState},
		{'a', TagOpenState, true, TagNameState},
		{'Z', TagOpenState, true, TagNameState},
		{'?', TagOpenState, true, BogusCommentState},
		{'1', TagOpenState, true, DataState},

		{'a', EndTagOpenState, true, TagNameState},
		{'>', EndTagOpenState, false, DataState},
		{'1', EndTagOpenState, true, BogusCommentState},

		{'\t', TagNameState, false, BeforeAttributeNameState},
		{'\n', TagNameState, false, BeforeAttributeNameState},
		{'\f', TagNameState, false, BeforeAttributeNameState},
		{' ', TagNameState, false, BeforeAttributeNameState},
		{'/', TagNameState, false, SelfClosingStartTagState},
		{'>', TagNameState, false, DataState},
		{'a', TagNameState, false, TagNameState},
		{'\u0000', TagNameState, false, TagNameState},

		{'/', RCDataLessThanSignState, false, RCDataEndTagOpenState},
		{'a', RCDataLessThanSignState, true, RCDataState},
		{'a', RCDataEndTagOpenState, true, RCDataEndTagNameState},
		{'1', RCDataEndTagOpenState, true, RCDataState},
		{'a', RCDataEndTagNameState, false, RCDataEndTagNameState},
		{' ', RCDataEndTagNameState, true, RCDataState},
		{'>', RCDataEndTagNameState, true, RCDataState},

		{'/', RawTextLessThanSignState, false, RawTextEndTagOpenState},
		{'a', RawTextLessThanSignState, true, RawTextState},
		{'a', RawTextEndTagOpenState, true, RawTextEndTagNameState},
		{'1', RawTextEndTagOpenState, true, RawTextState},
		{'a', RawTextEndTagNameState, false, RawTextEndTagNameState},
		{'/', RawTextEndTagNameState, true, RawTextState},

		{'/', ScriptDataLessThanSignState, false, ScriptDataEndTagOpenState},
		{'!', ScriptDataLessThanSignState, false, ScriptDataEscapeStartState},
		{'a', ScriptDataLessThanSignState, true, ScriptDataState},
		{'a', ScriptDataEndTagOpenState, true, ScriptDataEndTagNameState},
		{'1', ScriptDataEndTagOpenState, true, ScriptDataState},
		{'a', ScriptDataEndTagNameState, false, ScriptDataEndTagNameState},
		{'-', ScriptDataEscapeStartState, false, ScriptDataEscapeStartDashState},
		{'a', ScriptDataEscapeStartState, true, ScriptDataState},
		{'-', ScriptDataEscapeStartDashState, false, ScriptDataEscapedDashDashState},
		{'a', ScriptDataEscapeStartDashState, true, ScriptDataState},
		{'-', ScriptDataEscapedState, false, ScriptDataEscapedDashState},
		{'<', ScriptDataEscapedState, false, ScriptDataEscapedLessThanSignState},
		{'a', ScriptDataEscapedState, false, ScriptDataEscapedState},
		{'-', ScriptDataEscapedDashState, false, ScriptDataEscapedDashDashState},
		{'<', ScriptDataEscapedDashState, false, ScriptDataEscapedLessThanSignState},
		{'a', ScriptDataEscapedDashState, false, ScriptDataEscapedState},
		{'-', ScriptDataEscapedDashDashState, false, ScriptDataEscapedDashDashState},
		{'>', ScriptDataEscapedDashDashState, false, ScriptDataState},
		{'a', ScriptDataEscapedDashDashState, false, ScriptDataEscapedState},
		{'/', ScriptDataEscapedLessThanSignState, false, ScriptDataEscapedEndTagOpenState},
		{'s', ScriptDataEscapedLessThanSignState, true, ScriptDataDoubleEscapeStartState},
		{'1', ScriptDataEscapedLessThanSignState, true, ScriptDataEscapedState},
		{'a', ScriptDataEscapedEndTagOpenState, true, ScriptDataEscapedEndTagNameState},
		{'1', ScriptDataEscapedEndTagOpenState, true, ScriptDataEscapedState},
		{'a', ScriptDataEscapedEndTagNameState, false, ScriptDataEscapedEndTagNameState},
		{'s', ScriptDataDoubleEscapeStartState, false, ScriptDataDoubleEscapeStartState},
		{' ', ScriptDataDoubleEscapeStartState, false, ScriptDataEscapedState},
		{'1', ScriptDataDoubleEscapeStartState, true, ScriptDataEscapedState},
		{'-', ScriptDataDoubleEscapedState, false, ScriptDataDoubleEscapedDashState},
		{'<', ScriptDataDoubleEscapedState, false, ScriptDataDoubleEscapedLessThanSignState},
		{'a', ScriptDataDoubleEscapedState, false, ScriptDataDoubleEscapedState},
		{'-', ScriptDataDoubleEscapedDashState, false, ScriptDataDoubleEscapedDashDashState},
		{'a', ScriptDataDoubleEscapedDashState, false, ScriptDataDoubleEscapedState},
		{'-', ScriptDataDoubleEscapedDashDashState, false, ScriptDataDoubleEscapedDashDashState},
		{'>', ScriptDataDoubleEscapedDashDashState, false, ScriptDataState},
		{'/', ScriptDataDoubleEscapedLessThanSignState, false, ScriptDataDoubleEscapeEndState},
		{'a', ScriptDataDoubleEscapedLessThanSignState, true, ScriptDataDoubleEscapedState},
		{' ', ScriptDataDoubleEscapeEndState, false, ScriptDataDoubleEscapedState},
		{'s', ScriptDataDoubleEscapeEndState, false, ScriptDataDoubleEscapeEndState},

		{' ', BeforeAttributeNameState, false, BeforeAttributeNameState},
		{'/', BeforeAttributeNameState, true, AfterAttributeNameState},
		{'>', BeforeAttributeNameState, true, AfterAttributeNameState},
		{'=', BeforeAttributeNameState, false, AttributeNameState},
		{'a', BeforeAttributeNameState, true, AttributeNameState},

		{' ', AttributeNameState, true, AfterAttributeNameState},
		{'/', AttributeNameState, true, AfterAttributeNameState},
		{'=', AttributeNameState, false, BeforeAttributeValueState},
		{'a', AttributeNameState, false, AttributeNameState},
		{'"', AttributeNameState, false, AttributeNameState},

		{' ', AfterAttributeNameState, false, AfterAttributeNameState},
		{'/', AfterAttributeNameState, false, SelfClosingStartTagState},
		{'=', AfterAttributeNameState, false, BeforeAttributeValueState},
		{'>', AfterAttributeNameState, false, DataState},
		{'a', AfterAttributeNameState, true, AttributeNameState},

		{' ', BeforeAttributeValueState, false, BeforeAttributeValueState},
		{'"', BeforeAttributeValueState, false, AttributeValueDoubleQuotedState},
		{'\'', BeforeAttributeValueState, false, AttributeValueSingleQuotedState},
		{'>', BeforeAttributeValueState, false, DataState},
		{'a', BeforeAttributeValueState, true, AttributeValueUnquotedState},

		{'"', AttributeValueDoubleQuotedState, false, AfterAttributeValueQuotedState},
		{'&', AttributeValueDoubleQuotedState, false, CharacterReferenceState},
		{'\'', AttributeValueDoubleQuotedState, false, AttributeValueDoubleQuotedState},
		{'\'', AttributeValueSingleQuotedState, false, AfterAttributeValueQuotedState},
		{'&', AttributeValueSingleQuotedState, false, CharacterReferenceState},
		{'"', AttributeValueSingleQuotedState, false, AttributeValueSingleQuotedState},
		{' ', AttributeValueUnquotedState, false, BeforeAttributeNameState},
		{'&', AttributeValueUnquotedState, false, CharacterReferenceState},
		{'>', AttributeValueUnquotedState, false, DataState},
		{'`', AttributeValueUnquotedState, false, AttributeValueUnquotedState},

		{' ', AfterAttributeValueQuotedState, false, BeforeAttributeNameState},
		{'/', AfterAttributeValueQuotedState, false, SelfClosingStartTagState},
		{'>', AfterAttributeValueQuotedState, false, DataState},
		{'a', AfterAttributeValueQuotedState, true, BeforeAttributeNameState},

		{'>', SelfClosingStartTagState, false, DataState},
		{'a', SelfClosingStartTagState, true, BeforeAttributeNameState},

		{'a', MarkupDeclarationOpenState, true, BogusCommentState},

		{'-', CommentStartState, false, CommentStartDashState},
		{'>', CommentStartState, false, DataState},
		{'a', CommentStartState, true, CommentState},
		{'-', CommentStartDashState, false, CommentEndState},
		{'>', CommentStartDashState, false, DataState},
		{'a', CommentStartDashState, true, CommentState},
		{'<', CommentState, false, CommentLessThanSignState},
		{'-', CommentState, false, CommentEndDashState},
		{'a', CommentState, false, CommentState},
		{'!', CommentLessThanSignState, false, CommentLessThanSignBangState},
		{'<', CommentLessThanSignState, false, CommentLessThanSignState},
		{'a', CommentLessThanSignState, true, CommentState},
		{'-', CommentLessThanSignBangState, false, CommentLessThanSignBangDashState},
		{'a', CommentLessThanSignBangState, true, CommentState},
		{'-', CommentLessThanSignBangDashState, false, CommentLessThanSignBangDashDashState},
		{'a', CommentLessThanSignBangDashState, true, CommentEndDashState},
		{'>', CommentLessThanSignBangDashDashState, true, CommentEndState},
		{'a', CommentLessThanSignBangDashDashState, true, CommentEndState},
		{'-', CommentEndDashState, false, CommentEndState},
		{'a', CommentEndDashState, true, CommentState},
		{'>', CommentEndState, false, DataState},
		{'!', CommentEndState, false, CommentEndBangState},
		{'-', CommentEndState, false, CommentEndState},
		{'a', CommentEndState, true, CommentState},
		{'-', CommentEndBangState, false, CommentEndDashState},
		{'>', CommentEndBangState, false, DataState},
		{'a', CommentEndBangState, true, CommentState},
		{'>', BogusCommentState, false, DataState},
		{'a', BogusCommentState, false, BogusCommentState},

		{']', CDataSectionState, false, CDataSectionBracketState},
		{'a', CDataSectionState, false, CDataSectionState},
		{']', CDataSectionBracketState, false, CDataSectionEndState},
		{'a', CDataSectionBracketState, true, CDataSectionState},
		{']', CDataSectionEndState, false, CDataSectionEndState},
		{'>', CDataSectionEndState, false, DataState},
		{'a', CDataSectionEndState, true, CDataSectionState},

		{' ', DoctypeState, false, BeforeDoctypeNameState},
		{'>', DoctypeState, true, BeforeDoctypeNameState},
		{'a', DoctypeState, true, BeforeDoctypeNameState},
		{' ', BeforeDoctypeNameState, false, BeforeDoctypeNameState},
		{'a', BeforeDoctypeNameState, false, DoctypeNameState},
		{'\u0000', BeforeDoctypeNameState, false, DoctypeNameState},
		{'>', BeforeDoctypeNameState, false, DataState},
		{' ', DoctypeNameState, false, AfterDoctypeNameState},
		{'>', DoctypeNameState, false, DataState},
		{'a', DoctypeNameState, false, DoctypeNameState},
		{' ', AfterDoctypeNameState, false, AfterDoctypeNameState},
		{'>', AfterDoctypeNameState, false, DataState},
		{'a', AfterDoctypeNameState, true, BogusDoctypeState},
		{' ', AfterDoctypePublicKeywordState, false, BeforeDoctypePublicIdentifierState},
		{'"', AfterDoctypePublicKeywordState, false, DoctypePublicIdentifierDoubleQuotedState},
		{'\'', AfterDoctypePublicKeywordState, false, DoctypePublicIdentifierSingleQuotedState},
		{'>', AfterDoctypePublicKeywordState, false, DataState},
		{'a', AfterDoctypePublicKeywordState, true, BogusDoctypeState},
		{' ', BeforeDoctypePublicIdentifierState, false, BeforeDoctypePublicIdentifierState},
		{'"', BeforeDoctypePublicIdentifierState, false, DoctypePublicIdentifierDoubleQuotedState},
		{'\'', BeforeDoctypePublicIdentifierState, false, DoctypePublicIdentifierSingleQuotedState},
		{'>', BeforeDoctypePublicIdentifierState, false, DataState},
		{'a', BeforeDoctypePublicIdentifierState, true, BogusDoctypeState},
		{'"', DoctypePublicIdentifierDoubleQuotedState, false, AfterDoctypePublicIdentifierState},
		{'\'', DoctypePublicIdentifierDoubleQuotedState, false, DoctypePublicIdentifierDoubleQuotedState},
		{'>', DoctypePublicIdentifierDoubleQuotedState, false, DataState},
		{'\'', DoctypePublicIdentifierSingleQuotedState, false, AfterDoctypePublicIdentifierState},
		{'a', DoctypePublicIdentifierSingleQuotedState, false, DoctypePublicIdentifierSingleQuotedState},
		{' ', AfterDoctypePublicIdentifierState, false, BetweenDoctypePublicAndSystemIdentifiersState},
		{'>', AfterDoctypePublicIdentifierState, false, DataState},
		{'"', AfterDoctypePublicIdentifierState, false, DoctypeSystemIdentifierDoubleQuotedState},
		{'\'', AfterDoctypePublicIdentifierState, false, DoctypeSystemIdentifierSingleQuotedState},
		{'a', AfterDoctypePublicIdentifierState, true, BogusDoctypeState},
		{' ', BetweenDoctypePublicAndSystemIdentifiersState, false, BetweenDoctypePublicAndSystemIdentifiersState},
		{'>', BetweenDoctypePublicAndSystemIdentifiersState, false, DataState},
		{'"', BetweenDoctypePublicAndSystemIdentifiersState, false, DoctypeSystemIdentifierDoubleQuotedState},
		{'\'', BetweenDoctypePublicAndSystemIdentifiersState, false, DoctypeSystemIdentifierSingleQuotedState},
		{'a', BetweenDoctypePublicAndSystemIdentifiersState, true, BogusDoctypeState},
		{' ', AfterDoctypeSystemKeywordState, false, BeforeDoctypeSystemIdentifierState},
		{'"', AfterDoctypeSystemKeywordState, false, DoctypeSystemIdentifierDoubleQuotedState},
		{'>', AfterDoctypeSystemKeywordState, false, DataState},
		{'a', AfterDoctypeSystemKeywordState, true, BogusDoctypeState},
		{'\'', BeforeDoctypeSystemIdentifierState, false, DoctypeSystemIdentifierSingleQuotedState},
		{'>', BeforeDoctypeSystemIdentifierState, false, DataState},
		{'"', DoctypeSystemIdentifierDoubleQuotedState, false, AfterDoctypeSystemIdentifierState},
		{'>', DoctypeSystemIdentifierDoubleQuotedState, false, DataState},
		{'\'', DoctypeSystemIdentifierSingleQuotedState, false, AfterDoctypeSystemIdentifierState},
		{' ', AfterDoctypeSystemIdentifierState, false, AfterDoctypeSystemIdentifierState},
		{'>', AfterDoctypeSystemIdentifierState, false, DataState},
		{'a', AfterDoctypeSystemIdentifierState, true, BogusDoctypeState},
		{'>', BogusDoctypeState, false, DataState},
		{'a', BogusDoctypeState, false, BogusDoctypeState},
		{'\u0000', BogusDoctypeState, false, BogusDoctypeState},

		{'a', CharacterReferenceState, true, NamedCharacterReferenceState},
		{'1', CharacterReferenceState, true, NamedCharacterReferenceState},
		{'#', CharacterReferenceState, false, NumericCharacterReferenceState},
		{' ', CharacterReferenceState, true, DataState},
		{'a', AmbiguousAmpersandState, false, AmbiguousAmpersandState},
		{';', AmbiguousAmpersandState, true, DataState},
		{' ', AmbiguousAmpersandState, true, DataState},
		{'x', NumericCharacterReferenceState, false, HexadecimalCharacterReferenceStartState},
		{'X', NumericCharacterReferenceState, false, HexadecimalCharacterReferenceStartState},
		{'1', NumericCharacterReferenceState, true, DecimalCharacterReferenceStartState},
		{'f', HexadecimalCharacterReferenceStartState, true, HexadecimalCharacterReferenceState},
		{'g', HexadecimalCharacterReferenceStartState, true, DataState},
		{'1', DecimalCharacterReferenceStartState, true, DecimalCharacterReferenceState},
		{'a', DecimalCharacterReferenceStartState, true, DataState},
		{'F', HexadecimalCharacterReferenceState, false, HexadecimalCharacterReferenceState},
		{'9', HexadecimalCharacterReferenceState, false, HexadecimalCharacterReferenceState},
		{';', HexadecimalCharacterReferenceState, false, NumericCharacterReferenceEndState},
		{'g', HexadecimalCharacterReferenceState, true, NumericCharacterReferenceEndState},
		{'9', DecimalCharacterReferenceState, false, DecimalCharacterReferenceState},
		{';', DecimalCharacterReferenceState, false, NumericCharacterReferenceEndState},
		{'a', DecimalCharacterReferenceState, true, NumericCharacterReferenceEndState},
		{'a', NumericCharacterReferenceEndState, true, DataState},
	}

	for _, tt := range stateParserTests {
		runStateParserTest(tt, t)
	}
}

// tokenKindFor picks the kind of token a handler for s expects to be in
// progress.
func tokenKindFor(s State) TokenType {
	name := s.String()
	switch {
	case strings.Contains(name, "Comment"):
		return CommentToken
	case strings.Contains(name, "Doctype"):
		return DocTypeToken
	default:
		return StartTagToken
	}
}

func runStateParserTest(testcase stateMachineTestCase, t *testing.T) {
	testName := fmt.Sprintf("%s-%#U", testcase.startingState, testcase.inRune)
	t.Run(testName, func(t *testing.T) {
		t.Parallel()
		p := NewHTMLTokenizer(nil)
		p.newToken(tokenKindFor(testcase.startingState), 0)
		reconsume, state := p.stateToParser(testcase.startingState)(testcase.inRune, false)
		assert.Equal(t, testcase.nextExpectedState, state)
		assert.Equal(t, testcase.shouldReconsume, reconsume)
	})
}

type parserStatefulnessTestCase struct {
	inHTML     string                                // the HTML to tokenize
	startState State                                 // the starting state of the tokenizer
	testFunc   func(*HTMLTokenizer) (string, string) // looks inside the tokenizer, returns got and expected
	setup      func(*HTMLTokenizer)                  // run before tokenization
}

func inStartTag(p *HTMLTokenizer) { p.newToken(StartTagToken, 0) }

func inAttribute(p *HTMLTokenizer) { p.newToken(StartTagToken, 0).StartAttribute() }

func inComment(p *HTMLTokenizer) { p.newToken(CommentToken, 0) }

func inDoctype(p *HTMLTokenizer) { p.newToken(DocTypeToken, 0) }

// TestParseStatefulness runs input through the state machine without
// reaching the end-of-file handlers, which would discard the token in
// progress, and then inspects the tokenizer.
func TestParseStatefulness(t *testing.T) {
	name := func(want string) func(*HTMLTokenizer) (string, string) {
		return func(p *HTMLTokenizer) (string, string) { return p.current.Name(), want }
	}
	data := func(want string) func(*HTMLTokenizer) (string, string) {
		return func(p *HTMLTokenizer) (string, string) { return p.current.data.String(), want }
	}
	attrValue := func(want string) func(*HTMLTokenizer) (string, string) {
		return func(p *HTMLTokenizer) (string, string) { return p.current.attributeValue.String(), want }
	}
	attrName := func(want string) func(*HTMLTokenizer) (string, string) {
		return func(p *HTMLTokenizer) (string, string) { return p.current.AttributeName(), want }
	}
	tempBuffer := func(want string) func(*HTMLTokenizer) (string, string) {
		return func(p *HTMLTokenizer) (string, string) { return p.tempBuffer.String(), want }
	}
	charRef := func(want int) func(*HTMLTokenizer) (string, string) {
		return func(p *HTMLTokenizer) (string, string) {
			return fmt.Sprint(p.characterReferenceCode), fmt.Sprint(want)
		}
	}
	returnState := func(want State) func(*HTMLTokenizer) (string, string) {
		return func(p *HTMLTokenizer) (string, string) { return p.returnState.String(), want.String() }
	}
	forceQuirks := func(p *HTMLTokenizer) (string, string) {
		if p.current != nil {
			return fmt.Sprint(p.current.forceQuirks), "true"
		}
		return fmt.Sprint(p.emittedTokens[len(p.emittedTokens)-1].ForceQuirks), "true"
	}

	parserStatefulnessTestCases := []parserStatefulnessTestCase{
		{"&", DataState, returnState(DataState), nil},
		{"&", RCDataState, returnState(RCDataState), nil},
		{"&", AttributeValueUnquotedState, returnState(AttributeValueUnquotedState), inAttribute},
		{"&", AttributeValueDoubleQuotedState, returnState(AttributeValueDoubleQuotedState), inAttribute},
		{"b", TagOpenState, name("b"), nil},
		{"ba", TagOpenState, name("ba"), nil},
		{"bAc", TagOpenState, name("bac"), nil},
		{"bA\u0000c", TagOpenState, name("ba\uFFFDc"), nil},
		{"a", EndTagOpenState, name("a"), nil},
		{"P", EndTagOpenState, name("p"), nil},
		{"1", EndTagOpenState, data("1"), nil},
		{"?x", TagOpenState, data("?x"), nil},
		{"U", TagNameState, name("u"), inStartTag},
		{"<", TagNameState, name("<"), inStartTag},
		{"U", RCDataEndTagNameState, name("u"), inStartTag},
		{"U", RawTextEndTagNameState, name("u"), inStartTag},
		{"U", ScriptDataEndTagNameState, name("u"), inStartTag},
		{"U", ScriptDataEscapedEndTagNameState, name("u"), inStartTag},
		{"U", RCDataEndTagNameState, tempBuffer("U"), inStartTag},
		{"U", ScriptDataDoubleEscapeStartState, tempBuffer("u"), nil},
		{"U", ScriptDataDoubleEscapeEndState, tempBuffer("u"), nil},
		{"U", AttributeNameState, attrName("u"), inAttribute},
		{"1", AttributeNameState, attrName("1"), inAttribute},
		{"\u0000", AttributeNameState, attrName("\uFFFD"), inAttribute},
		{"=", BeforeAttributeNameState, attrName("="), inStartTag},
		{"\u0000", AttributeValueDoubleQuotedState, attrValue("\uFFFD"), inAttribute},
		{"A", AttributeValueDoubleQuotedState, attrValue("A"), inAttribute},
		{"\u0000", AttributeValueSingleQuotedState, attrValue("\uFFFD"), inAttribute},
		{"a'b", AttributeValueUnquotedState, attrValue("a'b"), inAttribute},
		{"\u0000", AttributeValueUnquotedState, attrValue("\uFFFD"), inAttribute},
		{">", SelfClosingStartTagState, func(p *HTMLTokenizer) (string, string) {
			return fmt.Sprint(p.emittedTokens[0].SelfClosing), "true"
		}, inStartTag},
		{"\u0000", BogusCommentState, data("\uFFFD"), inComment},
		{"!", BogusCommentState, data("!"), inComment},
		{"3", CommentStartDashState, data("-3"), inComment},
		{"<", CommentState, data("<"), inComment},
		{"\u0000", CommentState, data("\uFFFD"), inComment},
		{"<!", CommentState, data("<!"), inComment},
		{"a", CommentEndDashState, data("-a"), inComment},
		{"-", CommentEndState, data("-"), inComment},
		{"A", CommentEndState, data("--A"), inComment},
		{"-", CommentEndBangState, data("--!"), inComment},
		{"@", CommentEndBangState, data("--!@"), inComment},
		{"A", BeforeDoctypeNameState, name("a"), nil},
		{"\u0000", BeforeDoctypeNameState, name("\uFFFD"), nil},
		{">", BeforeDoctypeNameState, forceQuirks, nil},
		{"A", DoctypeNameState, name("a"), inDoctype},
		{"x", AfterDoctypeNameState, forceQuirks, inDoctype},
		{">", BeforeDoctypePublicIdentifierState, forceQuirks, inDoctype},
		{"A", BeforeDoctypePublicIdentifierState, forceQuirks, inDoctype},
		{">", DoctypePublicIdentifierDoubleQuotedState, forceQuirks, inDoctype},
		{"A", AfterDoctypePublicIdentifierState, forceQuirks, inDoctype},
		{"!", BetweenDoctypePublicAndSystemIdentifiersState, forceQuirks, inDoctype},
		{">", AfterDoctypeSystemKeywordState, forceQuirks, inDoctype},
		{"\u0000a", DoctypePublicIdentifierDoubleQuotedState, func(p *HTMLTokenizer) (string, string) {
			return p.current.publicID.String(), "\uFFFDa"
		}, inDoctype},
		{"\u0000a", DoctypeSystemIdentifierSingleQuotedState, func(p *HTMLTokenizer) (string, string) {
			return p.current.systemID.String(), "\uFFFDa"
		}, inDoctype},
		{"x", AfterDoctypeSystemIdentifierState, func(p *HTMLTokenizer) (string, string) {
			return fmt.Sprint(p.current.forceQuirks), "false"
		}, inDoctype},
		{"a", AmbiguousAmpersandState, attrValue("a"), func(p *HTMLTokenizer) {
			inAttribute(p)
			p.returnState = AttributeValueDoubleQuotedState
		}},
		{"X", NumericCharacterReferenceState, tempBuffer("X"), nil},
		{"x", NumericCharacterReferenceState, tempBuffer("x"), nil},
		{"1", HexadecimalCharacterReferenceState, charRef(1), nil},
		{"22", HexadecimalCharacterReferenceState, charRef(34), nil},
		{"FF", HexadecimalCharacterReferenceState, charRef(255), nil},
		{"ff", HexadecimalCharacterReferenceState, charRef(255), nil},
		{"134", DecimalCharacterReferenceState, charRef(134), nil},
		{"FFFFFFFFFFFFFFFFFFFFFFFF", HexadecimalCharacterReferenceState, charRef(maxCodePoint), nil},
		{"99999999999999999999999999", DecimalCharacterReferenceState, charRef(maxCodePoint), nil},
	}

	for _, testcase := range parserStatefulnessTestCases {
		runParserStatefulnessTest(testcase, t)
	}
}

func runParserStatefulnessTest(testcase parserStatefulnessTestCase, t *testing.T) {
	testName := fmt.Sprintf("%s-%q", testcase.startState, testcase.inHTML)
	t.Run(testName, func(t *testing.T) {
		t.Parallel()
		p := NewHTMLTokenizer([]byte(testcase.inHTML), WithInitialState(testcase.startState))
		if testcase.setup != nil {
			testcase.setup(p)
		}
		for !p.input.EOF() {
			p.processRune(p.nextInputCharacter(), false)
		}
		answer, expected := testcase.testFunc(p)
		assert.Equal(t, expected, answer)
	})
}

func TestTokenizerStartingStates(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		state   State
		lastTag string
		want    []Token
	}{
		{"rcdata", "a<b>&amp;</title>", RCDataState, "title", []Token{text("a<b>&"), endTag("title")}},
		{"rcdata other end tag", "x</p></title >", RCDataState, "title", []Token{text("x</p>"), endTag("title")}},
		{"rcdata no last start tag", "x</title>", RCDataState, "", []Token{text("x</title>")}},
		{"rcdata end tag case", "x</TiTlE>", RCDataState, "title", []Token{text("x"), endTag("title")}},
		{"rawtext", "<!-- &amp; --></style>", RawTextState, "style", []Token{text("<!-- &amp; -->"), endTag("style")}},
		{"script escaped", "<!--<script></script>--></script>", ScriptDataState, "script", []Token{text("<!--<script></script>-->"), endTag("script")}},
		{"script escaped end", "<!-- </script>x", ScriptDataState, "script", []Token{text("<!-- "), endTag("script"), text("x")}},
		{"plaintext", "</plaintext><b>", PlaintextState, "plaintext", []Token{text("</plaintext><b>")}},
		{"cdata section", "x]]>y", CDataSectionState, "", []Token{text("xy")}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, _ := tokenize(t, tt.in, WithInitialState(tt.state), WithLastStartTag(tt.lastTag))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizerSetStateBetweenTokens(t *testing.T) {
	p := NewHTMLTokenizer([]byte("<title><b>&lt;</title><p>"), WithCoalescedText())

	tok, ok := p.NextToken()
	require.True(t, ok)
	assert.Equal(t, "title", tok.TagName)
	assert.Equal(t, DataState, p.State())

	p.SetState(RCDataState)
	var rest []Token
	for {
		tok, ok := p.NextToken()
		if !ok {
			break
		}
		tok.Position = 0
		rest = append(rest, tok)
	}
	assert.Equal(t, []Token{text("<b><"), endTag("title"), startTag("p")}, rest)
}

func TestTokenizerAllowCDATA(t *testing.T) {
	in := "<![CDATA[a]b]]c<x>]]>"

	got, codes := tokenize(t, in, WithCDATA(true))
	assert.Equal(t, []Token{text("a]b]]c<x>")}, got)
	assert.Empty(t, codes)

	got, codes = tokenize(t, in)
	assert.Equal(t, []Token{{TokenType: CommentToken, Data: "[CDATA[a]b]]c<x"}, text("]]>")}, got)
	assert.Equal(t, []ErrorCode{CDATAInHTMLContent}, codes)

	p := NewHTMLTokenizer([]byte("<![CDATA[x]]>"))
	p.AllowCDATA(true)
	tok, ok := p.NextToken()
	require.True(t, ok)
	assert.Equal(t, "x", tok.Data)
}

func TestTokenizerEndOfFileToken(t *testing.T) {
	p := NewHTMLTokenizer([]byte("ab"), WithEOFToken(), WithCoalescedText())

	tok, ok := p.NextToken()
	require.True(t, ok)
	assert.Equal(t, "ab", tok.Data)

	tok, ok = p.NextToken()
	require.True(t, ok)
	assert.Equal(t, EndOfFileToken, tok.TokenType)
	assert.Equal(t, 2, tok.Position)

	for i := 0; i < 3; i++ {
		_, ok = p.NextToken()
		assert.False(t, ok)
	}
}

func TestTokenizerEmptyInput(t *testing.T) {
	p := NewHTMLTokenizer(nil)
	_, ok := p.NextToken()
	assert.False(t, ok)
	assert.Empty(t, p.Errors())

	p = NewHTMLTokenizer([]byte{}, WithEOFToken())
	tok, ok := p.NextToken()
	require.True(t, ok)
	assert.Equal(t, EndOfFileToken, tok.TokenType)
}

func TestTokenizerCharacterGranularity(t *testing.T) {
	p := NewHTMLTokenizer([]byte("aé<b>"))
	var got []Token
	for {
		tok, ok := p.NextToken()
		if !ok {
			break
		}
		got = append(got, tok)
	}
	require.Len(t, got, 3)
	assert.Equal(t, Token{TokenType: CharacterToken, Position: 0, Data: "a"}, got[0])
	assert.Equal(t, Token{TokenType: CharacterToken, Position: 1, Data: "é"}, got[1])
	assert.Equal(t, StartTagToken, got[2].TokenType)
	assert.Equal(t, 3, got[2].Position)
}

func TestTokenizerNewlineNormalization(t *testing.T) {
	got, codes := tokenize(t, "a\r\nb\rc\n\r<p\r\nid=x>")
	assert.Equal(t, []Token{text("a\nb\nc\n\n"), startTag("p", Attribute{"id", "x"})}, got)
	assert.Empty(t, codes)
}

func TestTokenizerInputStreamErrors(t *testing.T) {
	tests := []struct {
		in    string
		codes []ErrorCode
	}{
		{"\x01", []ErrorCode{ControlCharacterInInputStream}},
		{"\u007F", []ErrorCode{ControlCharacterInInputStream}},
		{"\u0085", []ErrorCode{ControlCharacterInInputStream}},
		{"\uFDD0", []ErrorCode{NoncharacterInInputStream}},
		{"\U0010FFFF", []ErrorCode{NoncharacterInInputStream}},
		{"\t\n\f ", nil},
		{"\x00", []ErrorCode{UnexpectedNullCharacter}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			got, codes := tokenize(t, tt.in)
			assert.Equal(t, []Token{text(tt.in)}, got)
			assert.Equal(t, tt.codes, codes)
		})
	}
}

func TestEncodedSurrogateDecodesToReplacement(t *testing.T) {
	got, codes := tokenize(t, "a\xed\xa0\x80b")
	assert.Equal(t, []Token{text("a\uFFFD\uFFFD\uFFFDb")}, got)
	assert.Empty(t, codes)
}

func TestParseErrorContext(t *testing.T) {
	var seen []ParseError
	in := "<p>\n<a \x00>"
	p := NewHTMLTokenizer([]byte(in), WithErrorHandler(func(e ParseError) {
		seen = append(seen, e)
	}))
	p.Tokens()

	require.Len(t, seen, 1)
	assert.Equal(t, seen, p.Errors())

	e := seen[0]
	assert.Equal(t, UnexpectedNullCharacter, e.Code)
	assert.Equal(t, strings.IndexByte(in, 0), e.Offset)
	assert.Equal(t, AttributeNameState, e.State)
	assert.Equal(t, StartTagToken, e.Token)
	assert.Contains(t, e.Error(), "unexpected-null-character")

	line, col, _ := e.Position([]byte(in))
	assert.Equal(t, 2, line)
	assert.Equal(t, 4, col)
}

func TestParseErrorsAreLoggedAtDebug(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	NewHTMLTokenizer([]byte("a\x00"), WithLogger(logger)).Tokens()

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "parse error", entry.Message)
	assert.Equal(t, "unexpected-null-character", entry.Data["code"])
	assert.Equal(t, 1, entry.Data["offset"])
	assert.Equal(t, 1, entry.Data["line"])
	assert.Equal(t, 2, entry.Data["column"])
	assert.Equal(t, DataState.String(), entry.Data["state"])
}

func TestStateTracingAtTrace(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)

	NewHTMLTokenizer([]byte("<a>"), WithLogger(logger)).Tokens()

	var states []string
	for _, e := range hook.AllEntries() {
		if e.Message == "[TOKEN]" {
			states = append(states, e.Data["state"].(string))
		}
	}
	// '<', 'a' handled twice for the reconsume, '>' and the end of file
	assert.Equal(t, []string{
		TagOpenState.String(),
		TagNameState.String(),
		TagNameState.String(),
		DataState.String(),
		DataState.String(),
	}, states)
}

func TestNoLoggingAtInfo(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)

	NewHTMLTokenizer([]byte("<a b b>\x00"), WithLogger(logger)).Tokens()
	assert.Empty(t, hook.AllEntries())
}

func TestUnknownStatePanics(t *testing.T) {
	p := NewHTMLTokenizer(nil)
	assert.Panics(t, func() { p.stateToParser(State(255)) })
}

// corpus is a spread of well-formed and malformed markup used by the
// property tests below.
var corpus = []string{
	"",
	"plain text",
	"<!DOCTYPE html><html lang=en><head><title>x</title></head><body></body></html>",
	"<p class=\"a b\" id='c' data-x=y>Hello &amp; goodbye</p>",
	"<a href=\"?a=1&copy=2&not\">&notit; &notin; &#x26; &#38 &#0; &#x110000;</a>",
	"<!-- comment --><!----><!--><!---><!-- a --!><!-- <!-- -->",
	"<![CDATA[x]]><?php ?><!bogus></ >< a>",
	"<div\x00 a\x00=\"\x00\">\x00</div>",
	"<!DOCTYPE html PUBLIC \"-//W3C//DTD HTML 4.01//EN\" \"http://www.w3.org/TR/html4/strict.dtd\">",
	"<!doctype html system 'about:legacy-compat'><!DOCTYPE><!DOCTYPE html x>",
	"a\r\nb\rc",
	"<a b=1 b=2 c></a d=1></br/>",
	"&#x80;&#x9F;&#x81;&#xD800;&#xFFFE;&#13;",
	"<a b='&amp",
	"<!--",
	"<!DOCTYPE html PUBLIC \"x",
	"é 日本 \U0001F600 \xff\xfe",
	"&",
	"</",
	"<",
}

func TestTokenizerConsumesWholeInput(t *testing.T) {
	for _, in := range corpus {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			p := NewHTMLTokenizer([]byte(in))
			p.Tokens()
			assert.Equal(t, len(in), p.Offset())
			_, ok := p.NextToken()
			assert.False(t, ok)
		})
	}
}

func TestTokenizerIsDeterministic(t *testing.T) {
	for _, in := range corpus {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			a := NewHTMLTokenizer([]byte(in))
			b := NewHTMLTokenizer([]byte(in))
			assert.Equal(t, a.Tokens(), b.Tokens())
			assert.Equal(t, a.Errors(), b.Errors())
		})
	}
}

func TestTokenPositionsAreMonotonic(t *testing.T) {
	for _, in := range corpus {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			p := NewHTMLTokenizer([]byte(in), WithEOFToken())
			last := 0
			for _, tok := range p.Tokens() {
				assert.GreaterOrEqual(t, tok.Position, last, "%s", tok)
				assert.LessOrEqual(t, tok.Position, len(in))
				last = tok.Position
			}
		})
	}
}

func TestErrorReportingDoesNotChangeTokens(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	for _, in := range corpus {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			quiet := NewHTMLTokenizer([]byte(in)).Tokens()
			noisy := NewHTMLTokenizer([]byte(in), WithLogger(logger), WithErrorHandler(func(ParseError) {})).Tokens()
			assert.Equal(t, quiet, noisy)
		})
	}
}

func TestCoalescingKeepsText(t *testing.T) {
	flatten := func(tokens []Token) string {
		var b strings.Builder
		for _, tok := range tokens {
			if tok.TokenType == CharacterToken {
				b.WriteString(tok.Data)
			} else {
				b.WriteString(tok.String())
			}
		}
		return b.String()
	}
	for _, in := range corpus {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			single := NewHTMLTokenizer([]byte(in)).Tokens()
			coalesced := NewHTMLTokenizer([]byte(in), WithCoalescedText()).Tokens()
			assert.Equal(t, flatten(single), flatten(coalesced))
			assert.LessOrEqual(t, len(coalesced), len(single))
			for i := 1; i < len(coalesced); i++ {
				assert.False(t, coalesced[i-1].TokenType == CharacterToken && coalesced[i].TokenType == CharacterToken)
			}
		})
	}
}
