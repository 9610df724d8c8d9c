package model

// StrengthRequest carries a password to score.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse reports the score and every criterion, with Failed listing
// the failed ones in a fixed order.
type StrengthResponse struct {
	Score    int             `json:"score"`
	MaxScore int             `json:"max_score"`
	Criteria map[string]bool `json:"criteria"`
	Failed   []string        `json:"failed"`
}
