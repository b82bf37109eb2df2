package tokenizer

import "github.com/jcorbin/mdtok"

// character_escape: a backslash followed by one ASCII punctuation byte.
// Grounded on original_source/src/content/string.rs's before_data state,
// which dispatches `tokenizer.attempt(Name::CharacterEscapeStart, ok, nok)`
// before falling through to data; SPEC_FULL.md §11 names this construct
// explicitly as the one code-text's start state inspects via the preceding
// event.
func init() {
	registerConstruct(Construct{
		Name:  "character-escape",
		Start: nameCharacterEscapeStart,
		Enabled: func(c *mdtok.Constructs) bool {
			return c.CharacterEscape
		},
	})
	register(nameCharacterEscapeStart, characterEscapeStart)
	register(nameCharacterEscapeInside, characterEscapeInside)
	register(nameCharacterEscapeValue, characterEscapeValue)
}

func characterEscapeStart(t *Tokenizer) State {
	if !t.current.IsByte('\\') {
		return Nok()
	}
	t.Enter(mdtok.CharacterEscape)
	t.Enter(mdtok.CharacterEscapeMarker)
	return Next(nameCharacterEscapeInside)
}

func characterEscapeInside(t *Tokenizer) State {
	b, ok := t.current.Byte()
	if !ok || !isASCIIPunctuation(b) {
		return Nok()
	}
	t.Exit(mdtok.CharacterEscapeMarker)
	t.Enter(mdtok.CharacterEscapeValue)
	return Next(nameCharacterEscapeValue)
}

func characterEscapeValue(t *Tokenizer) State {
	t.Exit(mdtok.CharacterEscapeValue)
	t.Exit(mdtok.CharacterEscape)
	return Ok()
}

func isASCIIPunctuation(b byte) bool {
	switch {
	case b >= '!' && b <= '/':
	case b >= ':' && b <= '@':
	case b >= '[' && b <= '`':
	case b >= '{' && b <= '~':
	default:
		return false
	}
	return true
}
