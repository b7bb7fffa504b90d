package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/kbukum/fnkit/collection"
	"github.com/kbukum/fnkit/pipe"
	"github.com/kbukum/fnkit/validation"
)

var (
	lower = cases.Lower(language.Und)
	upper = cases.Upper(language.Und)

	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	dashes          = regexp.MustCompile(`-+`)
)

// Capitalize upper-cases the first character of s and keeps the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return upper.String(string(r)) + s[size:]
}

// Normalize lower-cases s, strips accents and drops every character that is
// not an ASCII letter or digit: "Čiabuviai  $#%" gives "ciabuviai".
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, lower.String(s))
	if err != nil {
		stripped = lower.String(s)
	}
	return nonAlphanumeric.ReplaceAllString(stripped, "")
}

// Slugify turns s into a lower-case, dash separated slug. Each space
// separated word is normalized; empty words and repeated dashes collapse.
func Slugify(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = Normalize(w)
	}
	slug := dashes.ReplaceAllString(strings.Join(words, "-"), "-")
	return strings.Trim(slug, "-")
}

// NameCase is a naming convention for ToNameCase.
type NameCase string

const (
	PascalCase NameCase = "PascalCase"
	CamelCase  NameCase = "camelCase"
	SnakeCase  NameCase = "snake_case"
	KebabCase  NameCase = "kebab-case"
	TrainCase  NameCase = "Train-Case"
)

var nameCases = []string{string(PascalCase), string(CamelCase), string(SnakeCase), string(KebabCase), string(TrainCase)}

// ToNameCase rewrites s in the given naming convention. Words are separated
// by spaces, dashes, any other non-alphanumeric character and lower-to-upper
// case changes.
//
//	text.ToNameCase("testIs Test", text.KebabCase) // "test-is-test"
func ToNameCase(s string, to NameCase) (string, error) {
	if err := validation.New().
		Required("to", string(to)).
		OneOf("to", string(to), nameCases).
		Error(); err != nil {
		return "", err
	}
	words, err := pipe.Pipe[[]string](strings.Split(s, " "),
		collection.FlatMapWith(func(w string) []string { return strings.Split(w, "-") }),
		collection.FlatMapWith(splitWords),
		collection.MapWith(Normalize),
		collection.FilterWith(func(w string) bool { return w != "" }),
	)
	if err != nil {
		return "", err
	}

	switch to {
	case KebabCase:
		return strings.Join(words, "-"), nil
	case SnakeCase:
		return strings.Join(words, "_"), nil
	case PascalCase:
		return strings.Join(collection.Map(words, Capitalize), ""), nil
	case TrainCase:
		return strings.Join(collection.Map(words, Capitalize), "-"), nil
	default:
		return strings.Join(collection.MapIndexed(words, func(w string, i int, _ []string) string {
			if i == 0 {
				return w
			}
			return Capitalize(w)
		}), ""), nil
	}
}

// splitWords splits w on characters that are neither letters nor digits and
// before an upper-case letter that follows a lower-case letter or digit.
func splitWords(w string) []string {
	var (
		words []string
		cur   strings.Builder
		prev  rune
	)
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for _, r := range w {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
		prev = r
	}
	flush()
	return words
}
