package services

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidateAndNormalizeMissingFields(t *testing.T) {
	cases := []struct {
		name    string
		input   LeadInput
		missing []string
	}{
		{"all missing", LeadInput{}, []string{"fullName", "email", "phone"}},
		{"whitespace only", LeadInput{FullName: "  ", Email: " ", Phone: "---"}, []string{"fullName", "email", "phone"}},
		{"phone missing", LeadInput{FullName: "Asha Rao", Email: "asha@example.com"}, []string{"phone"}},
		{"email missing", LeadInput{FullName: "Asha Rao", Phone: "9876543210"}, []string{"email"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAndNormalize(&tc.input)
			var failure *ValidationFailure
			if !errors.As(err, &failure) {
				t.Fatalf("expected ValidationFailure, got %v", err)
			}
			if !reflect.DeepEqual(failure.MissingFields, tc.missing) {
				t.Errorf("missing fields = %v, want %v", failure.MissingFields, tc.missing)
			}
		})
	}
}

func TestValidateAndNormalizePhone(t *testing.T) {
	input := LeadInput{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "+91 98765-43210",
	}
	if err := ValidateAndNormalize(&input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Phone != "919876543210" {
		t.Errorf("phone = %q, want 919876543210", input.Phone)
	}

	long := LeadInput{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "12345678901234567890",
	}
	if err := ValidateAndNormalize(&long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(long.Phone) != 15 {
		t.Errorf("phone not truncated to 15 digits: %q", long.Phone)
	}
}

func TestValidateAndNormalizeNumericCoercion(t *testing.T) {
	input := LeadInput{
		FullName:         "Asha Rao",
		Email:            "asha@example.com",
		Phone:            "9876543210",
		LastScorePercent: "eighty",
		ExperienceYears:  "3.5",
	}
	if err := ValidateAndNormalize(&input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.LastScorePercent != "" {
		t.Errorf("non-numeric score not cleared: %q", input.LastScorePercent)
	}
	if input.ExperienceYears != "3.5" {
		t.Errorf("numeric experience dropped: %q", input.ExperienceYears)
	}
}

func TestValidateAndNormalizeDefaultSource(t *testing.T) {
	input := LeadInput{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9876543210",
	}
	if err := ValidateAndNormalize(&input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Source != "website" {
		t.Errorf("default source = %q, want website", input.Source)
	}

	input.Source = "google-ads"
	if err := ValidateAndNormalize(&input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Source != "google-ads" {
		t.Errorf("explicit source overwritten: %q", input.Source)
	}
}

func TestSanitizeProgramIDs(t *testing.T) {
	cases := []struct {
		name string
		in   []int64
		want []uint
	}{
		{"dedupes keeping first-seen order", []int64{3, 3, 7}, []uint{3, 7}},
		{"drops non-positive ids", []int64{0, -4, 5}, []uint{5}},
		{"empty input", nil, []uint{}},
		{"preserves order", []int64{9, 2, 9, 1}, []uint{9, 2, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeProgramIDs(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SanitizeProgramIDs(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
