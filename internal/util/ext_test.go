package util

import "testing"

func TestSafeExt(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"receipt.jpg", ".jpg"},
		{"RECEIPT.JPG", ".jpg"},
		{"archive.tar.gz", ".gz"},
		{"noext", ""},
		{"trailingdot.", ""},
		{"weird.j*p?g", ".jpg"},
		{"  padded.png  ", ".png"},
		{"", ""},
		{"dir/slash.pdf", ".pdf"},
	}
	for _, c := range cases {
		if got := SafeExt(c.in); got != c.want {
			t.Errorf("SafeExt(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
