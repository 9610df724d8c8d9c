package service

import (
	"errors"
	"fmt"

	"github.com/passadmin/passadmin-go/internal/crypto"
	"github.com/passadmin/passadmin-go/internal/model"
)

var ErrLengthTooLong = errors.New("password length exceeds the allowed maximum")

// GeneratorOptions holds the defaults and limits applied to generation requests.
type GeneratorOptions struct {
	DefaultLength     int
	DefaultSeparators bool
	MaxLength         int
}

// DefaultGeneratorOptions returns 12 characters with separators, capped at 128.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		DefaultLength:     12,
		DefaultSeparators: true,
		MaxLength:         128,
	}
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen  *crypto.Generator
	opts GeneratorOptions
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(gen *crypto.Generator, opts GeneratorOptions) *GeneratorService {
	return &GeneratorService{gen: gen, opts: opts}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = s.opts.DefaultLength
	}
	if s.opts.MaxLength > 0 && length > s.opts.MaxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, s.opts.MaxLength)
	}
	separators := boolOrDefault(req.Separators, s.opts.DefaultSeparators)

	password, err := s.gen.Generate(length, separators)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password:   password,
		Length:     length,
		Separators: separators,
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
