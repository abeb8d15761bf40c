// Package translit converts Malayalam text to a Latin-alphabet
// approximation suitable for the English name fields of a voter record.
// It is rule-based: a curated known-name table is consulted first, then
// a character cascade over conjuncts, matras, consonants and vowels.
package translit

import (
	"strings"
	"unicode"
)

const virama = '്'

// joinerMarks are the trailing marks OCR leaves dangling on name words:
// the virama plus zero-width joiner/non-joiner.
const joinerMarks = "്‌‍"

var zwReplacer = strings.NewReplacer("‍", "", "‌", "")

// knownNamesTrimmed indexes knownNames by key with trailing joiner
// marks removed, so OCR variants of the same name still hit the table.
var knownNamesTrimmed = func() map[string]string {
	m := make(map[string]string, len(knownNames))
	for ml, en := range knownNames {
		m[strings.TrimRight(ml, joinerMarks)] = en
	}
	return m
}()

// Transliterate converts Malayalam text to English, word by word.
// It is a total function: unmapped ASCII passes through unchanged and
// unmapped foreign characters are dropped. Pure-ASCII input returns
// as-is without entering the cascade.
func Transliterate(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	// OCR sprinkles zero-width joiners through Malayalam text; strip
	// them before any matching.
	text = zwReplacer.Replace(text)

	if isPlainASCII(text) {
		return text
	}

	words := strings.Fields(text)
	result := make([]string, 0, len(words))
	for _, word := range words {
		if en, ok := lookupKnownName(word); ok {
			result = append(result, en)
			continue
		}
		result = append(result, transliterateWord(word))
	}
	return strings.Join(result, " ")
}

// lookupKnownName matches a word against the known-name table, either
// exactly or with trailing joiner marks stripped from both sides.
func lookupKnownName(word string) (string, bool) {
	if en, ok := knownNames[word]; ok {
		return en, true
	}
	if en, ok := knownNamesTrimmed[strings.TrimRight(word, joinerMarks)]; ok {
		return en, true
	}
	return "", false
}

// transliterateWord runs the grapheme cascade over a single word. The
// scan is index-based with lookahead of up to four runes past the
// current consonant: conjuncts win over single consonants, a matra
// overrides the inherent vowel, and a bare consonant only receives the
// inherent "a" mid-word (Malayalam names drop it word-finally).
func transliterateWord(word string) string {
	rs := []rune(word)
	n := len(rs)
	var b strings.Builder

	for i := 0; i < n; {
		r := rs[i]
		c := string(r)

		if !isMalayalam(r) {
			if sp, ok := specials[c]; ok {
				b.WriteString(sp)
			} else if r <= unicode.MaxASCII {
				b.WriteRune(r)
			}
			i++
			continue
		}

		if sp, ok := specials[c]; ok {
			b.WriteString(sp)
			i++
			continue
		}
		if v, ok := vowels[c]; ok {
			b.WriteString(v)
			i++
			continue
		}
		// A stray matra with no consonant to attach to still reads as
		// its vowel sound.
		if m, ok := matras[c]; ok {
			b.WriteString(m)
			i++
			continue
		}

		cons, ok := consonants[c]
		if !ok {
			// Malayalam rune with no mapping (digits, archaic signs).
			i++
			continue
		}

		if i+2 < n && rs[i+1] == virama {
			if width, cluster, matched := matchConjunct(rs, i); matched {
				i = emitConjunct(&b, rs, i, width, cluster)
				continue
			}
			// Virama with no recognized conjunct: the consonant's
			// inherent vowel is killed, nothing more.
			b.WriteString(cons)
			i += 2
			continue
		}

		if i+1 < n {
			if m, ok := matras[string(rs[i+1])]; ok {
				b.WriteString(cons)
				b.WriteString(m)
				i += 2
				continue
			}
		}

		b.WriteString(cons)
		if inheritsVowel(rs, i+1) {
			b.WriteString("a")
		}
		i++
	}

	out := b.String()
	if out == "" {
		// Word consumed entirely by zero-width marks.
		return word
	}
	return capitalize(out)
}

// matchConjunct tries the conjunct table at position i, longest window
// first so five-rune clusters like ndra beat their three-rune prefix.
func matchConjunct(rs []rune, i int) (width int, cluster string, ok bool) {
	for _, w := range []int{5, 3} {
		if i+w <= len(rs) {
			if cl, found := conjuncts[string(rs[i:i+w])]; found {
				return w, cl, true
			}
		}
	}
	return 0, "", false
}

// emitConjunct writes a matched conjunct cluster and resolves the vowel
// that follows it, returning the next scan position. A trailing matra
// replaces the cluster's inherent vowel; otherwise the mid-word default
// applies.
func emitConjunct(b *strings.Builder, rs []rune, i, width int, cluster string) int {
	next := i + width
	if next < len(rs) {
		if m, ok := matras[string(rs[next])]; ok {
			b.WriteString(strings.TrimSuffix(cluster, "a"))
			b.WriteString(m)
			return next + 1
		}
	}
	b.WriteString(cluster)
	if inheritsVowel(rs, next) {
		b.WriteString("a")
	}
	return next
}

// inheritsVowel is the one place the inherent-"a" rule lives: a
// consonant (or conjunct) keeps its inherent vowel only mid-word, when
// the following rune is neither a matra nor a virama.
func inheritsVowel(rs []rune, next int) bool {
	if next >= len(rs) {
		return false
	}
	if rs[next] == virama {
		return false
	}
	_, isMatra := matras[string(rs[next])]
	return !isMatra
}

func isMalayalam(r rune) bool {
	return r >= 0x0d00 && r <= 0x0d7f
}

func isPlainASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
