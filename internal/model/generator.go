package model

// GenerateRequest represents a password generation request.
// Zero Length and nil Separators fall back to the configured defaults.
type GenerateRequest struct {
	Length     int   `json:"length"`
	Separators *bool `json:"separators"`
}

// GenerateResponse represents a password generation response. Length counts
// password characters only, not separators.
type GenerateResponse struct {
	Password   string `json:"password"`
	Length     int    `json:"length"`
	Separators bool   `json:"separators"`
}
