package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signClaims(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return s
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken("ci-runner", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty string")
	}
}

func TestGenerateTokenRejectsEmptyInputs(t *testing.T) {
	if _, err := GenerateToken("ci-runner", "", time.Hour); err != ErrEmptySecret {
		t.Errorf("GenerateToken() error = %v, want %v", err, ErrEmptySecret)
	}
	if _, err := GenerateToken("", "test-secret", time.Hour); err != ErrEmptySubject {
		t.Errorf("GenerateToken() error = %v, want %v", err, ErrEmptySubject)
	}
}

func TestValidateTokenValid(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken("ci-runner", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.Subject != "ci-runner" {
		t.Errorf("ValidateToken() Subject = %q, want %q", claims.Subject, "ci-runner")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("not-a-valid-token", "test-secret")
	if err != ErrInvalidToken {
		t.Errorf("ValidateToken() error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("ci-runner", "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	if _, err := ValidateToken(token, "wrong-secret"); err == nil {
		t.Error("ValidateToken() expected error for wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken("ci-runner", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	if _, err := ValidateToken(token, "test-secret"); err == nil {
		t.Error("ValidateToken() expected error for expired token")
	}
}

func TestValidateTokenRejectsForeignClaims(t *testing.T) {
	secret := "test-secret"
	now := time.Now()

	tests := []struct {
		name   string
		claims jwt.RegisteredClaims
	}{
		{
			name: "wrong issuer",
			claims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				Subject:   "ci-runner",
				Audience:  jwt.ClaimStrings{tokenAudience},
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		},
		{
			name: "wrong audience",
			claims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				Subject:   "ci-runner",
				Audience:  jwt.ClaimStrings{"wrong-audience"},
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		},
		{
			name: "missing subject",
			claims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				Audience:  jwt.ClaimStrings{tokenAudience},
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signClaims(t, Claims{RegisteredClaims: tt.claims}, secret)
			if _, err := ValidateToken(token, secret); err != ErrInvalidToken {
				t.Errorf("ValidateToken() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}
