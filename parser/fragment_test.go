package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeTokens(t *testing.T) {
	tests := []struct {
		name string
		in   []Token
		want string
	}{
		{
			"attributes are quoted and escaped",
			[]Token{startTag("a", Attribute{"href", "/x?a=1&b=2"}, Attribute{"title", "say \"hi\"\u00A0<3"})},
			`<a href="/x?a=1&amp;b=2" title="say &quot;hi&quot;&nbsp;<3">`,
		},
		{
			"text is escaped",
			[]Token{text("<&>\u00A0\"")},
			"&lt;&amp;&gt;&nbsp;\"",
		},
		{
			"raw text is left alone",
			[]Token{startTag("script"), text("a<b && c"), endTag("script"), text("<")},
			"<script>a<b && c</script>&lt;",
		},
		{
			"rcdata is escaped",
			[]Token{startTag("title"), text("a<b"), endTag("title")},
			"<title>a&lt;b</title>",
		},
		{
			"self-closing raw text parent",
			[]Token{{TokenType: StartTagToken, TagName: "style", SelfClosing: true}, text("<")},
			"<style/>&lt;",
		},
		{
			"comment",
			[]Token{{TokenType: CommentToken, Data: " x "}},
			"<!-- x -->",
		},
		{
			"doctype name only",
			[]Token{{TokenType: DocTypeToken, TagName: "html"}},
			"<!DOCTYPE html>",
		},
		{
			"doctype system",
			[]Token{{TokenType: DocTypeToken, TagName: "html", SystemIdentifier: "about:legacy-compat", HasSystemIdentifier: true}},
			`<!DOCTYPE html SYSTEM "about:legacy-compat">`,
		},
		{
			"doctype public and system",
			[]Token{{
				TokenType:           DocTypeToken,
				TagName:             "html",
				PublicIdentifier:    "-//W3C//DTD HTML 4.01//EN",
				HasPublicIdentifier: true,
				SystemIdentifier:    "http://www.w3.org/TR/html4/strict.dtd",
				HasSystemIdentifier: true,
			}},
			`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
		},
		{
			"end of file writes nothing",
			[]Token{text("a"), {TokenType: EndOfFileToken}},
			"a",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SerializeTokens(tt.in))
		})
	}
}

var roundTripDocuments = []string{
	`<!DOCTYPE html><html><head><title>a &lt; b</title></head><body></body></html>`,
	`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
	`<p class="a" id=b>Fish &amp; chips&nbsp;&copy; 2024</p>`,
	`<a href='/x?a=1&amp;b=2' title="&quot;q&quot;">x</a>`,
	`<!-- note --><br/><img src=x alt="">`,
	`<script>if (a<b && c>d) { x = "</p>" }</script><p>x < y</p>`,
	`<style>p > a { content: "&amp;" }</style>`,
	`<textarea>&lt;/textarea></textarea>`,
	`<svg><path d="M0 0"/></svg>`,
}

// TestSerializeRoundTrip checks that serialized tokens tokenize back to
// themselves.
func TestSerializeRoundTrip(t *testing.T) {
	for _, in := range roundTripDocuments {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			first := normalizeTokens(NewParser([]byte(in), WithCoalescedText()).Tokens())
			out := SerializeTokens(first)
			second := normalizeTokens(NewParser([]byte(out), WithCoalescedText()).Tokens())
			assert.Equal(t, first, second, out)
		})
	}
}

func TestFragmentState(t *testing.T) {
	tests := []struct {
		context   string
		scripting bool
		want      State
	}{
		{"title", true, RCDataState},
		{"textarea", false, RCDataState},
		{"style", true, RawTextState},
		{"iframe", true, RawTextState},
		{"script", false, ScriptDataState},
		{"noscript", true, RawTextState},
		{"noscript", false, DataState},
		{"plaintext", true, PlaintextState},
		{"div", true, DataState},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FragmentState(tt.context, tt.scripting), tt.context)
	}
}
