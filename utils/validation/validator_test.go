package validation

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+91 98765-43210", "919876543210"},
		{"9876543210", "9876543210"},
		{"(022) 1234 5678", "02212345678"},
		{"12345678901234567890", "123456789012345"},
		{"no digits here", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCoerceNumericString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"85", "85"},
		{" 72.5 ", "72.5"},
		{"eighty", ""},
		{"3 years", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := CoerceNumericString(tc.in); got != tc.want {
			t.Errorf("CoerceNumericString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"asha@example.com", "a.b+c@sub.domain.in"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plainaddress", "@no-local.com", "user@", "user@domain"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello\x00world  "); got != "helloworld" {
		t.Errorf("SanitizeString = %q", got)
	}
}
