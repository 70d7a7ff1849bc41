package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenBuilderAttributes(t *testing.T) {
	b := NewTokenBuilder(StartTagToken)
	for _, r := range "div" {
		b.WriteName(r)
	}

	b.StartAttribute()
	b.WriteAttributeName('a')
	b.WriteAttributeValueString("1")
	assert.False(t, b.IsDuplicateAttribute())
	assert.True(t, b.CommitAttribute())

	b.StartAttribute()
	b.WriteAttributeName('a')
	b.WriteAttributeValue('2')
	assert.True(t, b.IsDuplicateAttribute())
	assert.Equal(t, "a", b.AttributeName())

	// starting the next attribute commits (and drops) the duplicate
	b.StartAttribute()
	b.WriteAttributeName('b')
	assert.True(t, b.HasAttributes())

	tok := b.Token()
	assert.Equal(t, StartTagToken, tok.TokenType)
	assert.Equal(t, "div", tok.TagName)
	assert.Equal(t, []Attribute{{"a", "1"}, {"b", ""}}, tok.Attributes)

	v, ok := tok.Attr("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	_, ok = tok.Attr("c")
	assert.False(t, ok)
}

func TestTokenBuilderEndTagDropsAttributes(t *testing.T) {
	b := NewTokenBuilder(EndTagToken)
	b.WriteName('p')
	b.StartAttribute()
	b.WriteAttributeName('x')
	b.EnableSelfClosing()

	tok := b.Token()
	assert.Equal(t, "p", tok.TagName)
	assert.Empty(t, tok.Attributes)
	assert.False(t, tok.SelfClosing)
}

func TestTokenBuilderDoctype(t *testing.T) {
	b := NewTokenBuilder(DocTypeToken)
	b.WriteName('h')
	b.SetPublicIdentifierEmpty()
	b.SetSystemIdentifierEmpty()
	b.WriteSystemIdentifier('s')
	b.EnableForceQuirks()

	tok := b.Token()
	assert.Equal(t, Token{
		TokenType:           DocTypeToken,
		TagName:             "h",
		ForceQuirks:         true,
		SystemIdentifier:    "s",
		HasPublicIdentifier: true,
		HasSystemIdentifier: true,
	}, tok)
}

func TestTokenBuilderReset(t *testing.T) {
	b := NewTokenBuilder(CommentToken)
	b.WriteDataString("old")
	b.Reset(CommentToken, 7)
	b.WriteData('x')
	assert.Equal(t, 7, b.Position())

	tok := b.Token()
	assert.Equal(t, "x", tok.Data)
	assert.Equal(t, 7, tok.Position)
	assert.Equal(t, CommentToken, b.Kind())
}

func TestTokenEqualIgnoresPosition(t *testing.T) {
	a := characterToken('a', 0)
	b := characterToken('a', 5)
	assert.True(t, a.Equal(&b))

	c := characterToken('b', 0)
	assert.False(t, a.Equal(&c))

	s1 := Token{TokenType: StartTagToken, TagName: "a", Attributes: []Attribute{{"x", "1"}}}
	s2 := Token{TokenType: StartTagToken, TagName: "a", Attributes: []Attribute{{"x", "2"}}}
	assert.False(t, s1.Equal(&s2))
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{TokenType: StartTagToken, TagName: "a", Attributes: []Attribute{{"href", "x"}}, SelfClosing: true}, `<a href="x" />`},
		{Token{TokenType: EndTagToken, TagName: "a"}, "</a>"},
		{Token{TokenType: CommentToken, Data: " c "}, "<!-- c -->"},
		{Token{TokenType: DocTypeToken, TagName: "html"}, "<!DOCTYPE html>"},
		{Token{TokenType: DocTypeToken, TagName: "html", HasPublicIdentifier: true, PublicIdentifier: "p", ForceQuirks: true}, `<!DOCTYPE html PUBLIC "p" quirks>`},
		{characterToken('\n', 0), `"\n"`},
		{Token{TokenType: EndOfFileToken}, "EOF"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tok.String())
	}
}
