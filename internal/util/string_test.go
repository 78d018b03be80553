package util

import "testing"

func TestTruncateString(t *testing.T) {
	cases := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 7, "this is"},
		{"", 5, ""},
		{"한글 텍스트 자르기", 5, "한글 텍스"},
	}

	for _, tc := range cases {
		if got := TruncateString(tc.input, tc.max); got != tc.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tc.input, tc.max, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  MiXeD Case  "); got != "mixed case" {
		t.Errorf("got %q", got)
	}
}
