package diagram

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"vpc-1", "vpc_1"},
		{"subnet-0a1b2c3d", "subnet_0a1b2c3d"},
		{"us-east-1a", "us_east_1a"},
		{"already_clean", "already_clean"},
		{"---", "___"},
		{"", ""},
	}

	for _, tc := range cases {
		got := Sanitize(tc.in)
		if got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if strings.Contains(got, "-") {
			t.Errorf("Sanitize(%q) = %q still contains a hyphen", tc.in, got)
		}
		// Idempotence: sanitizing twice must change nothing.
		if again := Sanitize(got); again != got {
			t.Errorf("Sanitize not idempotent: %q -> %q -> %q", tc.in, got, again)
		}
	}
}
