package vietqr

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// vietnameseLetters lists every toned or hooked Vietnamese letter per base.
var vietnameseLetters = []struct {
	base     rune
	variants string
}{
	{'a', "àáạảãâầấậẩẫăằắặẳẵ"},
	{'e', "èéẹẻẽêềếệểễ"},
	{'i', "ìíịỉĩ"},
	{'o', "òóọỏõôồốộổỗơờớợởỡ"},
	{'u', "ùúụủũưừứựửữ"},
	{'y', "ỳýỵỷỹ"},
	{'d', "đ"},
	{'A', "ÀÁẠẢÃÂẦẤẬẨẪĂẰẮẶẲẴ"},
	{'E', "ÈÉẸẺẼÊỀẾỆỂỄ"},
	{'I', "ÌÍỊỈĨ"},
	{'O', "ÒÓỌỎÕÔỒỐỘỔỖƠỜỚỢỞỠ"},
	{'U', "ÙÚỤỦŨƯỪỨỰỬỮ"},
	{'Y', "ỲÝỴỶỸ"},
	{'D', "Đ"},
}

var toneTable = buildToneTable()

func buildToneTable() map[rune]rune {
	table := make(map[rune]rune, 134)
	for _, group := range vietnameseLetters {
		for _, r := range group.variants {
			table[r] = group.base
		}
	}
	return table
}

func stripTone(r rune) rune {
	if base, ok := toneTable[r]; ok {
		return base
	}
	return r
}

// restrictCharset maps anything outside [A-Za-z0-9 ] to a space.
func restrictCharset(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
		return r
	default:
		return ' '
	}
}

// toneTransformer is built per call; transform.Chain keeps internal state.
func toneTransformer() transform.Transformer {
	return transform.Chain(
		runes.Map(stripTone),
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(restrictCharset),
	)
}

// RemoveTones converts Vietnamese text to plain ASCII letters, digits and
// spaces, trimmed at both ends.
//
//	RemoveTones("Nguyễn Văn A") == "Nguyen Van A"
func RemoveTones(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(toneTransformer(), s)
	if err != nil {
		// Only reachable on malformed UTF-8; fall back to the rune-wise path.
		out = strings.Map(func(r rune) rune { return restrictCharset(stripTone(r)) }, s)
	}
	return strings.TrimSpace(out)
}

// truncateMemo cuts an ASCII memo to at most n bytes.
func truncateMemo(memo string, n int) (string, bool) {
	if len(memo) <= n {
		return memo, false
	}
	return memo[:n], true
}
