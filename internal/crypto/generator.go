package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*?/+=_-><."

	allChars = lowercaseChars + uppercaseChars + digitChars + specialChars

	MinLength = 8

	groupSize = 4
	separator = '-'
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrLengthTooShort  = fmt.Errorf("%w: password length must be at least %d characters for best security", ErrInvalidArgument, MinLength)
)

var requiredSets = []string{lowercaseChars, uppercaseChars, digitChars, specialChars}

// Generator produces random passwords from a Source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src. A nil src uses CryptoSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

// Generate returns a password of length characters holding at least one
// lowercase letter, uppercase letter, digit and special character. With
// separators set, a hyphen is placed between every group of four characters;
// hyphens do not count toward length.
func (g *Generator) Generate(length int, separators bool) (string, error) {
	if length < MinLength {
		return "", ErrLengthTooShort
	}

	result := make([]byte, length)

	// One character from every class first.
	for i, charset := range requiredSets {
		ch, err := g.randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(requiredSets); i < length; i++ {
		ch, err := g.randChar(allChars)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := g.shuffle(result); err != nil {
		return "", err
	}

	if separators {
		return group(result), nil
	}
	return string(result), nil
}

func (g *Generator) randChar(charset string) (byte, error) {
	n, err := g.src.Intn(len(charset))
	if err != nil {
		return 0, fmt.Errorf("drawing character: %w", err)
	}
	return charset[n], nil
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.src.Intn(i + 1)
		if err != nil {
			return fmt.Errorf("shuffling: %w", err)
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

// group joins data in chunks of groupSize with separator between them.
func group(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) + len(data)/groupSize)
	for i, ch := range data {
		if i > 0 && i%groupSize == 0 {
			sb.WriteByte(separator)
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}
