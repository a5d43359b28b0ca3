package auth

import (
	"testing"
	"time"
)

func TestGenerateJWT(t *testing.T) {
	secret := "test-secret-key-minimum-32-characters-long"

	token, err := GenerateJWT(1, "test@example.com", "sales_rep", nil, secret, 24)
	if err != nil {
		t.Fatalf("Failed to generate JWT: %v", err)
	}

	if token == "" {
		t.Error("Token should not be empty")
	}

	if len(token) < 10 {
		t.Error("Token seems too short")
	}
}

func TestValidateJWT(t *testing.T) {
	userID := 123
	email := "test@example.com"
	role := "manager"
	orgID := 7
	secret := "test-secret-key-minimum-32-characters-long"

	token, err := GenerateJWT(userID, email, role, &orgID, secret, 24)
	if err != nil {
		t.Fatalf("Failed to generate JWT: %v", err)
	}

	claims, err := ValidateJWT(token, secret)
	if err != nil {
		t.Fatalf("Failed to validate JWT: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("Expected UserID %d, got %d", userID, claims.UserID)
	}

	if claims.Email != email {
		t.Errorf("Expected Email %s, got %s", email, claims.Email)
	}

	if claims.Role != role {
		t.Errorf("Expected Role %s, got %s", role, claims.Role)
	}

	if claims.OrganizationID == nil || *claims.OrganizationID != orgID {
		t.Errorf("Expected OrganizationID %d, got %v", orgID, claims.OrganizationID)
	}
}

func TestValidateJWTWithWrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, "test@example.com", "sales_rep", nil, "correct-secret-key-for-signing-tokens", 24)
	if err != nil {
		t.Fatalf("Failed to generate JWT: %v", err)
	}

	if _, err := ValidateJWT(token, "a-completely-different-secret-key-here"); err == nil {
		t.Error("Validation should fail with the wrong secret")
	}
}

func TestValidateExpiredJWT(t *testing.T) {
	secret := "test-secret-key-minimum-32-characters-long"

	// Negative expiration makes the token already expired
	token, err := GenerateJWT(1, "test@example.com", "sales_rep", nil, secret, -1)
	if err != nil {
		t.Fatalf("Failed to generate JWT: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := ValidateJWT(token, secret); err == nil {
		t.Error("Validation should fail for an expired token")
	}
}
