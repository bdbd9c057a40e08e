package exposure

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"breachcheck/pkg/domain"
)

// commonPasswords is a short list of passwords found at the top of every leak.
var commonPasswords = map[string]struct{}{ //nolint: gochecknoglobals
	"123456": {}, "123456789": {}, "12345678": {}, "12345": {}, "1234567": {},
	"password": {}, "qwerty": {}, "abc123": {}, "111111": {}, "123123": {},
	"admin": {}, "letmein": {}, "welcome": {}, "iloveyou": {}, "monkey": {},
	"dragon": {}, "football": {}, "000000": {}, "qwerty123": {}, "password1": {},
}

// Password pattern tags.
const (
	PatternShort         = "short"
	PatternOnlyDigits    = "only_digits"
	PatternOnlyLetters   = "only_letters"
	PatternRepeatedChars = "repeated_chars"
	PatternSequential    = "sequential"
	PatternCommon        = "common_password"
)

type charClasses struct {
	lower, upper, digit, symbol bool
}

func classesOf(pw string) charClasses {
	var c charClasses
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsDigit(r):
			c.digit = true
		case !unicode.IsLetter(r):
			c.symbol = true
		}
	}

	return c
}

// StrengthScore is the additive heuristic behind ClassifyStrength. Length is
// counted in characters.
func StrengthScore(pw string) int {
	n := utf8.RuneCountInString(pw)
	c := classesOf(pw)

	score := 0
	if n >= 8 {
		score += 2
	}
	if n >= 12 {
		score += 2
	}
	if c.lower {
		score++
	}
	if c.upper {
		score++
	}
	if c.digit {
		score++
	}
	if c.symbol {
		score += 2
	}

	return score
}

// ClassifyStrength maps a password to its strength label.
func ClassifyStrength(pw string) domain.PasswordStrength {
	switch s := StrengthScore(pw); {
	case s <= 2:
		return domain.StrengthVeryWeak
	case s <= 4:
		return domain.StrengthWeak
	case s <= 6:
		return domain.StrengthModerate
	case s <= 8:
		return domain.StrengthStrong
	default:
		return domain.StrengthVeryStrong
	}
}

// Entropy estimates the password entropy in bits as length × log2(pool size).
func Entropy(pw string) float64 {
	c := classesOf(pw)
	pool := 0
	if c.lower {
		pool += 26
	}
	if c.upper {
		pool += 26
	}
	if c.digit {
		pool += 10
	}
	if c.symbol {
		pool += 33
	}
	if pool == 0 {
		return 0
	}

	return float64(utf8.RuneCountInString(pw)) * math.Log2(float64(pool))
}

// Patterns returns the weakness patterns found in pw.
func Patterns(pw string) []string {
	runes := []rune(pw)
	out := []string{}

	if len(runes) < 8 {
		out = append(out, PatternShort)
	}
	if len(runes) > 0 {
		digits, letters := true, true
		for _, r := range runes {
			digits = digits && unicode.IsDigit(r)
			letters = letters && unicode.IsLetter(r)
		}
		if digits {
			out = append(out, PatternOnlyDigits)
		}
		if letters {
			out = append(out, PatternOnlyLetters)
		}
	}
	if hasRun(runes, func(prev, cur rune) bool { return cur == prev }) {
		out = append(out, PatternRepeatedChars)
	}
	if hasRun(runes, func(prev, cur rune) bool { return cur == prev+1 }) ||
		hasRun(runes, func(prev, cur rune) bool { return cur == prev-1 }) {
		out = append(out, PatternSequential)
	}
	if _, ok := commonPasswords[strings.ToLower(pw)]; ok {
		out = append(out, PatternCommon)
	}

	return out
}

// hasRun reports whether three consecutive runes satisfy step pairwise.
func hasRun(runes []rune, step func(prev, cur rune) bool) bool {
	run := 1
	for i := 1; i < len(runes); i++ {
		if step(unicode.ToLower(runes[i-1]), unicode.ToLower(runes[i])) {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}

	return false
}

// CrackTime returns a rough offline cracking time label for an entropy in bits.
func CrackTime(bits float64) string {
	switch {
	case bits < 28:
		return "Instantáneo"
	case bits < 36:
		return "Minutos"
	case bits < 50:
		return "Días"
	case bits < 60:
		return "Meses"
	case bits < 80:
		return "Años"
	default:
		return "Siglos"
	}
}
