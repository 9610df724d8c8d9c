package crypto

import (
	"strings"
	"unicode/utf8"
)

const (
	CriterionLength    = "Length insufficient"
	CriterionLowercase = "Missing lowercase letter"
	CriterionUppercase = "Missing uppercase letter"
	CriterionDigit     = "Missing digit"
	CriterionSpecial   = "Missing special character"

	MaxScore = 5
)

// scoredSpecialChars is narrower than specialChars: '>', '<' and '.' do not count.
const scoredSpecialChars = "!@#$%^&*?/+=_-"

// Criteria lists every criterion in reporting order.
var Criteria = []string{
	CriterionLength,
	CriterionLowercase,
	CriterionUppercase,
	CriterionDigit,
	CriterionSpecial,
}

// StrengthReport is the outcome of Score. Failures maps each criterion name to
// true when the password fails it.
type StrengthReport struct {
	Score    int
	Failures map[string]bool
}

// Failed returns the failed criteria in reporting order.
func (r StrengthReport) Failed() []string {
	failed := []string{}
	for _, c := range Criteria {
		if r.Failures[c] {
			failed = append(failed, c)
		}
	}
	return failed
}

// Passed reports whether no criterion failed.
func (r StrengthReport) Passed() bool {
	return r.Score == MaxScore
}

// Score checks password against the five strength criteria. Any input is valid.
func Score(password string) StrengthReport {
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(scoredSpecialChars, r):
			hasSpecial = true
		}
	}

	failures := map[string]bool{
		CriterionLength:    utf8.RuneCountInString(password) < MinLength,
		CriterionLowercase: !hasLower,
		CriterionUppercase: !hasUpper,
		CriterionDigit:     !hasDigit,
		CriterionSpecial:   !hasSpecial,
	}

	score := MaxScore
	for _, failed := range failures {
		if failed {
			score--
		}
	}

	return StrengthReport{Score: score, Failures: failures}
}
