package parser

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=TokenType
type TokenType uint

const (
	CharacterToken TokenType = iota
	StartTagToken
	EndTagToken
	EndOfFileToken
	CommentToken
	DocTypeToken
)

// Attribute is a single name/value pair on a tag.
type Attribute struct {
	Name  string
	Value string
}

// Token is a concrete token that is ready to be emitted. Which fields are
// meaningful depends on TokenType:
//
//	StartTag, EndTag  TagName, Attributes, SelfClosing
//	Comment           Data
//	Character         Data (one code point, or a run when coalescing)
//	DOCTYPE           TagName (empty when missing), ForceQuirks and the
//	                  optional public and system identifiers
type Token struct {
	TokenType           TokenType
	Position            int
	TagName             string
	Attributes          []Attribute
	SelfClosing         bool
	Data                string
	ForceQuirks         bool
	PublicIdentifier    string
	SystemIdentifier    string
	HasPublicIdentifier bool
	HasSystemIdentifier bool
}

// Attr returns the value of the named attribute.
func (t *Token) Attr(name string) (string, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Equal compares everything but the source position.
func (t *Token) Equal(o *Token) bool {
	if t.TokenType != o.TokenType ||
		t.TagName != o.TagName ||
		t.SelfClosing != o.SelfClosing ||
		t.Data != o.Data ||
		t.ForceQuirks != o.ForceQuirks ||
		t.PublicIdentifier != o.PublicIdentifier ||
		t.SystemIdentifier != o.SystemIdentifier ||
		t.HasPublicIdentifier != o.HasPublicIdentifier ||
		t.HasSystemIdentifier != o.HasSystemIdentifier ||
		len(t.Attributes) != len(o.Attributes) {
		return false
	}
	for i := range t.Attributes {
		if t.Attributes[i] != o.Attributes[i] {
			return false
		}
	}
	return true
}

func (t Token) String() string {
	switch t.TokenType {
	case StartTagToken, EndTagToken:
		var b strings.Builder
		b.WriteByte('<')
		if t.TokenType == EndTagToken {
			b.WriteByte('/')
		}
		b.WriteString(t.TagName)
		for _, a := range t.Attributes {
			fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
		}
		if t.SelfClosing {
			b.WriteString(" /")
		}
		b.WriteByte('>')
		return b.String()
	case CommentToken:
		return fmt.Sprintf("<!--%s-->", t.Data)
	case DocTypeToken:
		s := fmt.Sprintf("<!DOCTYPE %s", t.TagName)
		if t.HasPublicIdentifier {
			s += fmt.Sprintf(" PUBLIC %q", t.PublicIdentifier)
		}
		if t.HasSystemIdentifier {
			s += fmt.Sprintf(" SYSTEM %q", t.SystemIdentifier)
		}
		if t.ForceQuirks {
			s += " quirks"
		}
		return s + ">"
	case CharacterToken:
		return fmt.Sprintf("%q", t.Data)
	case EndOfFileToken:
		return "EOF"
	}
	return fmt.Sprintf("Token(%d)", uint(t.TokenType))
}

// TokenBuilder is the token currently under construction. Only one exists
// per tokenizer; it is reset to a kind whenever a state starts a new token.
type TokenBuilder struct {
	kind           TokenType
	position       int
	attributes     []Attribute
	attributeKey   strings.Builder
	attributeValue strings.Builder
	pendingAttr    bool
	name           strings.Builder
	data           strings.Builder
	publicID       strings.Builder
	systemID       strings.Builder
	hasPublicID    bool
	hasSystemID    bool
	selfClosing    bool
	forceQuirks    bool
}

// NewTokenBuilder returns a builder for a token of the given kind.
func NewTokenBuilder(kind TokenType) *TokenBuilder {
	t := &TokenBuilder{}
	t.Reset(kind, 0)
	return t
}

// Reset clears every field and retargets the builder at kind. Storage is
// reused between tokens.
func (t *TokenBuilder) Reset(kind TokenType, position int) {
	t.kind = kind
	t.position = position
	t.attributes = nil
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.pendingAttr = false
	t.name.Reset()
	t.data.Reset()
	t.publicID.Reset()
	t.systemID.Reset()
	t.hasPublicID = false
	t.hasSystemID = false
	t.selfClosing = false
	t.forceQuirks = false
}

// Kind is the type of token being built.
func (t *TokenBuilder) Kind() TokenType {
	return t.kind
}

// Position is the byte offset at which the token started.
func (t *TokenBuilder) Position() int {
	return t.position
}

// EnableSelfClosing changes to the self-closing flag to "set".
func (t *TokenBuilder) EnableSelfClosing() {
	t.selfClosing = true
}

// EnableForceQuirks changes to the force-quirks flag to "on".
func (t *TokenBuilder) EnableForceQuirks() {
	t.forceQuirks = true
}

// WriteName appends to the tag or DOCTYPE name.
func (t *TokenBuilder) WriteName(r rune) {
	t.name.WriteRune(r)
}

// Name is the tag or DOCTYPE name built so far.
func (t *TokenBuilder) Name() string {
	return t.name.String()
}

// WriteData appends to the comment or character data.
func (t *TokenBuilder) WriteData(r rune) {
	t.data.WriteRune(r)
}

// WriteDataString appends s to the comment or character data.
func (t *TokenBuilder) WriteDataString(s string) {
	t.data.WriteString(s)
}

// SetPublicIdentifierEmpty marks the public identifier present and empty.
func (t *TokenBuilder) SetPublicIdentifierEmpty() {
	t.publicID.Reset()
	t.hasPublicID = true
}

// WritePublicIdentifier appends a rune to the public identifier.
func (t *TokenBuilder) WritePublicIdentifier(r rune) {
	t.publicID.WriteRune(r)
}

// SetSystemIdentifierEmpty marks the system identifier present and empty.
func (t *TokenBuilder) SetSystemIdentifierEmpty() {
	t.systemID.Reset()
	t.hasSystemID = true
}

// WriteSystemIdentifier appends a rune to the system identifier.
func (t *TokenBuilder) WriteSystemIdentifier(r rune) {
	t.systemID.WriteRune(r)
}

// StartAttribute begins a new attribute with an empty name and value. An
// attribute that is still open is committed first.
func (t *TokenBuilder) StartAttribute() {
	if t.pendingAttr {
		t.CommitAttribute()
	}
	t.pendingAttr = true
}

// WriteAttributeName appends a character to the current attribute's name.
func (t *TokenBuilder) WriteAttributeName(r rune) {
	t.attributeKey.WriteRune(r)
}

// WriteAttributeValue appends a character to the current attribute's value.
func (t *TokenBuilder) WriteAttributeValue(r rune) {
	t.attributeValue.WriteRune(r)
}

// WriteAttributeValueString appends s to the current attribute's value.
func (t *TokenBuilder) WriteAttributeValueString(s string) {
	t.attributeValue.WriteString(s)
}

// AttributeName is the name of the attribute being built.
func (t *TokenBuilder) AttributeName() string {
	return t.attributeKey.String()
}

// IsDuplicateAttribute reports whether the pending attribute's name was
// already committed on this tag.
func (t *TokenBuilder) IsDuplicateAttribute() bool {
	k := t.attributeKey.String()
	for _, a := range t.attributes {
		if a.Name == k {
			return true
		}
	}
	return false
}

// CommitAttribute ends the creation of a name/value pair. The first
// occurrence of a name wins; later duplicates are parsed and then dropped.
// It returns false when the pair was dropped as a duplicate.
func (t *TokenBuilder) CommitAttribute() bool {
	if !t.pendingAttr {
		return true
	}
	kept := !t.IsDuplicateAttribute()
	if kept {
		t.attributes = append(t.attributes, Attribute{
			Name:  t.attributeKey.String(),
			Value: t.attributeValue.String(),
		})
	}
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.pendingAttr = false
	return kept
}

// HasAttributes reports whether any attribute was started on the tag.
func (t *TokenBuilder) HasAttributes() bool {
	return len(t.attributes) > 0 || t.pendingAttr
}

// Token freezes the builder contents into an emit-ready Token. Any open
// attribute is committed first. End tags never carry attributes or the
// self-closing flag.
func (t *TokenBuilder) Token() Token {
	switch t.kind {
	case StartTagToken:
		t.CommitAttribute()
		return Token{
			TokenType:   StartTagToken,
			Position:    t.position,
			TagName:     t.name.String(),
			Attributes:  t.attributes,
			SelfClosing: t.selfClosing,
		}
	case EndTagToken:
		t.CommitAttribute()
		return Token{
			TokenType: EndTagToken,
			Position:  t.position,
			TagName:   t.name.String(),
		}
	case CommentToken:
		return Token{
			TokenType: CommentToken,
			Position:  t.position,
			Data:      t.data.String(),
		}
	case DocTypeToken:
		return Token{
			TokenType:           DocTypeToken,
			Position:            t.position,
			TagName:             t.name.String(),
			ForceQuirks:         t.forceQuirks,
			PublicIdentifier:    t.publicID.String(),
			SystemIdentifier:    t.systemID.String(),
			HasPublicIdentifier: t.hasPublicID,
			HasSystemIdentifier: t.hasSystemID,
		}
	case CharacterToken:
		return Token{
			TokenType: CharacterToken,
			Position:  t.position,
			Data:      t.data.String(),
		}
	case EndOfFileToken:
		return Token{TokenType: EndOfFileToken, Position: t.position}
	}
	panic(fmt.Sprintf("token builder has unknown kind %d", uint(t.kind)))
}

// characterToken creates a character token holding r.
func characterToken(r rune, position int) Token {
	return Token{
		TokenType: CharacterToken,
		Position:  position,
		Data:      string(r),
	}
}
