package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"abc1!x", true},
		{"secure9$password", true},
		{"short", false},
		{"noNumbers!", false},
		{"noSpecial9", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidatePassword(tc.password); got != tc.valid {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tc.password, got, tc.valid)
		}
	}
}

func TestIsValidObjectID(t *testing.T) {
	if !IsValidObjectID("507f1f77bcf86cd799439011") {
		t.Error("valid 24-hex id rejected")
	}
	for _, id := range []string{"", "zzz", "507f1f77bcf86cd79943901", "507f1f77bcf86cd7994390111"} {
		if IsValidObjectID(id) {
			t.Errorf("IsValidObjectID(%q) = true, want false", id)
		}
	}
}
