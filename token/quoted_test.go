package token

import "testing"

type unquoteTest struct {
	in  string
	out string
	err bool
}

func TestUnquote(t *testing.T) {
	tts := []unquoteTest{
		{in: `""`, out: ""},
		{in: `"hi"`, out: "hi"},
		{in: `"a\"b"`, out: `a"b`},
		{in: `"\\"`, out: `\`},
		{in: `"\n\t\r\b\f\/"`, out: "\n\t\r\b\f/"},
		{in: `"é"`, out: "é"},
		{in: `"😀"`, out: "😀"},
		{in: `"\q"`, err: true},
		{in: `"\u12"`, err: true},
		{in: `"no close`, err: true},
		{in: `plain`, err: true},
	}
	for _, tt := range tts {
		got, err := Unquote([]byte(tt.in))
		if tt.err {
			if err == nil {
				t.Errorf("%q: expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.out {
			t.Errorf("%q: got %q, want %q", tt.in, got, tt.out)
		}
	}
}
