package tokenizer

import "github.com/jcorbin/mdtok"

// character_reference delimits "&name;", "&#123;", and "&#x1F600;" forms.
// Decoding the name table (and validating that a decimal/hex codepoint is
// legal) is explicitly out of scope per SPEC_FULL.md §1/§11: this construct
// only recognizes and bounds the reference, leaving interpretation to an
// external collaborator.
const (
	referenceModeNamed = iota
	referenceModeDecimal
	referenceModeHex
)

func init() {
	registerConstruct(Construct{
		Name:  "character-reference",
		Start: nameCharacterReferenceStart,
		Enabled: func(c *mdtok.Constructs) bool {
			return c.CharacterReference
		},
	})
	register(nameCharacterReferenceStart, characterReferenceStart)
	register(nameCharacterReferenceOpen, characterReferenceOpen)
	register(nameCharacterReferenceNumeric, characterReferenceNumeric)
	register(nameCharacterReferenceValue, characterReferenceValue)
	register(nameCharacterReferenceEnd, characterReferenceEnd)
}

func characterReferenceStart(t *Tokenizer) State {
	if !t.current.IsByte('&') {
		return Nok()
	}
	t.Enter(mdtok.CharacterReference)
	t.Enter(mdtok.CharacterReferenceMarker)
	return Next(nameCharacterReferenceOpen)
}

func characterReferenceOpen(t *Tokenizer) State {
	t.Exit(mdtok.CharacterReferenceMarker)
	if t.current.IsByte('#') {
		return Next(nameCharacterReferenceNumeric)
	}
	if b, ok := t.current.Byte(); ok && isASCIIAlnum(b) {
		t.ts.sizeB = referenceModeNamed
		t.ts.size = 0
		t.Enter(mdtok.CharacterReferenceValue)
		return Retry(nameCharacterReferenceValue)
	}
	t.ts.resetRun()
	return Nok()
}

func characterReferenceNumeric(t *Tokenizer) State {
	if t.current.IsByte('x') || t.current.IsByte('X') {
		t.ts.sizeB = referenceModeHex
		t.ts.size = 0
		t.Enter(mdtok.CharacterReferenceValue)
		return Next(nameCharacterReferenceValue)
	}
	t.ts.sizeB = referenceModeDecimal
	t.ts.size = 0
	t.Enter(mdtok.CharacterReferenceValue)
	return Retry(nameCharacterReferenceValue)
}

func characterReferenceValue(t *Tokenizer) State {
	b, isByte := t.current.Byte()
	switch t.ts.sizeB {
	case referenceModeHex:
		if isByte && isHexDigit(b) && t.ts.size < 6 {
			t.ts.size++
			return Next(nameCharacterReferenceValue)
		}
	case referenceModeDecimal:
		if isByte && isDigit(b) && t.ts.size < 7 {
			t.ts.size++
			return Next(nameCharacterReferenceValue)
		}
	default: // referenceModeNamed
		if isByte && isASCIIAlnum(b) && t.ts.size < 31 {
			t.ts.size++
			return Next(nameCharacterReferenceValue)
		}
	}

	if t.ts.size == 0 || !t.current.IsByte(';') {
		t.ts.resetRun()
		return Nok()
	}
	t.Exit(mdtok.CharacterReferenceValue)
	t.Enter(mdtok.CharacterReferenceMarker)
	t.ts.resetRun()
	return Next(nameCharacterReferenceEnd)
}

func characterReferenceEnd(t *Tokenizer) State {
	t.Exit(mdtok.CharacterReferenceMarker)
	t.Exit(mdtok.CharacterReference)
	return Ok()
}

func isASCIIAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
