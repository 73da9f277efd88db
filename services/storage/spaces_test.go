package storage

import "testing"

func TestKeyFromURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://cdn.edumitra.in/brochures/abc.pdf", "brochures/abc.pdf"},
		{"https://bucket.blr1.digitaloceanspaces.com/heros/img.png", "heros/img.png"},
		{"not a url at all://", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := KeyFromURL(tc.in); got != tc.want {
			t.Errorf("KeyFromURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
