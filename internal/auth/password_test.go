package auth

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := ComparePassword(hashed, "s3cret"); err != nil {
		t.Errorf("ComparePassword: %v", err)
	}
	if err := ComparePassword(hashed, "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	// A misconfigured cost of 99 would otherwise fail every registration.
	hashed, err := HashPassword("s3cret", 99)
	if err != nil {
		t.Fatalf("HashPassword with out-of-range cost: %v", err)
	}
	if err := ComparePassword(hashed, "s3cret"); err != nil {
		t.Errorf("ComparePassword: %v", err)
	}
}
