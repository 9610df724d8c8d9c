package service

import (
	"github.com/passadmin/passadmin-go/internal/crypto"
	"github.com/passadmin/passadmin-go/internal/model"
)

// StrengthService scores user-supplied passwords.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Check scores req.Password. It never fails.
func (s *StrengthService) Check(req model.StrengthRequest) model.StrengthResponse {
	report := crypto.Score(req.Password)

	return model.StrengthResponse{
		Score:    report.Score,
		MaxScore: crypto.MaxScore,
		Criteria: report.Failures,
		Failed:   report.Failed(),
	}
}
