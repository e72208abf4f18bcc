package typox

import "strings"

// keyboardAdjacent lists the neighbours of each key on a qwerty layout
var keyboardAdjacent = map[string]string{
	"q": "wa", "w": "qase", "e": "wsdr", "r": "edft", "t": "rfgy",
	"y": "tghu", "u": "yhji", "i": "ujko", "o": "iklp", "p": "ol",
	"a": "qws", "s": "qwedazx", "d": "erfcsx", "f": "rtdgvcj",
	"g": "tyfhvbn", "h": "yugjnb", "j": "uikhmnf", "k": "ijolm", "l": "okp",
	"z": "asx", "x": "zsdc", "c": "xdfv", "v": "cfgb", "b": "vghn", "n": "bhjm", "m": "njk,",
	".": ",/", ",": "m.",
	"-": "^",
}

// symmetricKeyPairs are keys mirrored across the home row (f <-> j)
var symmetricKeyPairs = [][2]string{{"f", "j"}, {"d", "k"}, {"s", "l"}, {"a", ";"}}

// homoglyphPairs are visually confusable sequences ("а" in the fifth pair
// is the cyrillic small a)
var homoglyphPairs = [][2]string{{"1", "l"}, {"0", "o"}, {"i", "l"}, {"rn", "m"}, {"а", "a"}, {"b", "d"}}

// generatorHomoglyphs drives candidate generation
var generatorHomoglyphs = map[string][]string{
	"1": {"l"}, "l": {"1", "i"}, "0": {"o"}, "o": {"0"},
	"i": {"l"}, "r": {"m"}, "b": {"d"}, "d": {"b"},
}

// tldMismatchPairs are (correct suffix, typo suffix) pairs tested in order
var tldMismatchPairs = [][2]string{
	{"jp", "co.jp"}, {"co.jp", "jp"},
	{"com", "co.jp"}, {"co.jp", "com"},
	{"ne.jp", "co.jp"}, {"co.jp", "ne.jp"},
	{"go.jp", "co.jp"}, {"co.jp", "go.jp"},
}

// tldAlternatives maps a suffix to the suffixes users confuse it with
var tldAlternatives = map[string][]string{
	"jp":    {"co.jp"},
	"co.jp": {"jp", "com", "ne.jp", "go.jp"},
	"com":   {"co.jp"},
	"ne.jp": {"co.jp"},
	"go.jp": {"co.jp"},
}

// IsKeyboardAdjacent reports whether c2 sits next to c1 on the keyboard
func IsKeyboardAdjacent(c1, c2 string) bool {
	c1, c2 = strings.ToLower(c1), strings.ToLower(c2)
	if c2 == "" {
		return false
	}
	neighbours, ok := keyboardAdjacent[c1]
	return ok && strings.Contains(neighbours, c2)
}

// IsSymmetricKey reports whether c1 and c2 mirror each other across the home row
func IsSymmetricKey(c1, c2 string) bool {
	return inPairs(symmetricKeyPairs, c1, c2)
}

// IsHomoglyph reports whether c1 and c2 are visually confusable
func IsHomoglyph(c1, c2 string) bool {
	return inPairs(homoglyphPairs, c1, c2)
}

func inPairs(pairs [][2]string, c1, c2 string) bool {
	c1, c2 = strings.ToLower(c1), strings.ToLower(c2)
	for _, p := range pairs {
		if (c1 == p[0] && c2 == p[1]) || (c1 == p[1] && c2 == p[0]) {
			return true
		}
	}
	return false
}

// KeyboardAdjacency returns a copy of the adjacency table
func KeyboardAdjacency() map[string]string {
	out := make(map[string]string, len(keyboardAdjacent))
	for k, v := range keyboardAdjacent {
		out[k] = v
	}
	return out
}

// SymmetricKeyPairs returns a copy of the symmetric key pairs
func SymmetricKeyPairs() [][2]string {
	return append([][2]string(nil), symmetricKeyPairs...)
}

// HomoglyphPairs returns a copy of the classifier homoglyph pairs
func HomoglyphPairs() [][2]string {
	return append([][2]string(nil), homoglyphPairs...)
}

// GeneratorHomoglyphs returns a copy of the homoglyphs used for generation
func GeneratorHomoglyphs() map[string][]string {
	out := make(map[string][]string, len(generatorHomoglyphs))
	for k, v := range generatorHomoglyphs {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// TLDAlternatives returns a copy of the suffix confusion map
func TLDAlternatives() map[string][]string {
	out := make(map[string][]string, len(tldAlternatives))
	for k, v := range tldAlternatives {
		out[k] = append([]string(nil), v...)
	}
	return out
}
