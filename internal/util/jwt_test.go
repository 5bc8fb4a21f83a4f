package util

import (
	"testing"
	"time"

	"vendor_risk_backend/internal/model"
)

func testUser() *model.User {
	u := &model.User{
		Email:     "compliance@acme.com",
		FirstName: "Sarah",
		LastName:  "Chen",
		Role:      model.ComplianceOfficer,
		CompanyID: "company-1",
	}
	u.ID = 42
	return u
}

func TestJWTRoundTrip(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"

	token, err := GenerateJWT(testUser(), secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, secret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.CompanyID != "company-1" {
		t.Errorf("CompanyID = %q, want company-1", claims.CompanyID)
	}
	if claims.Role != model.ComplianceOfficer {
		t.Errorf("Role = %q, want COMPLIANCE_OFFICER", claims.Role)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), "0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "another-secret-another-secret-ab"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestJWTRejectsExpired(t *testing.T) {
	token, err := GenerateJWT(testUser(), "0123456789abcdef0123456789abcdef", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "0123456789abcdef0123456789abcdef"); err == nil {
		t.Error("expected error for expired token")
	}
}
