package extract

import "testing"

func Test_matchBrace(t *testing.T) {
	cases := []struct {
		src  string
		open int
		want int
	}{
		{"{}", 0, 1},
		{"x = {a: {b: 1}};", 4, 14},
		{`{ s: "}", t: '{' }`, 0, 17},
		{"{ // }\n}", 0, 7},
		{"{ /* } */ }", 0, 10},
		{"{ `${a}}` }", 0, 10},
		{"{ a: /[{]/ }", 0, 11},
		{`{ u: /x\/\//.test(u), v: 1 }`, 0, 27},
		{"{ n: a / b, m: {} }", 0, 18},
		{"{ f() { return /}/.test(s) } }", 0, 29},
		{"{\n/{/.test(s)\n}", 0, 14},
		{"{ {", 0, -1},
		{"abc", 0, -1},
		{"{}", 5, -1},
	}
	for _, c := range cases {
		if got := matchBrace(c.src, c.open); got != c.want {
			t.Fatalf("matchBrace(%q, %d) = %d want %d", c.src, c.open, got, c.want)
		}
	}
}

func Test_skipComment(t *testing.T) {
	if got := skipComment("a / b", 2); got != 3 {
		t.Fatalf("division: %d", got)
	}
	if got := skipComment("//x", 0); got != 3 {
		t.Fatalf("line comment at eof: %d", got)
	}
	if got := skipComment("/* open", 0); got != 7 {
		t.Fatalf("unterminated block: %d", got)
	}
}

func Test_regexAllowed(t *testing.T) {
	cases := []struct {
		src  string
		at   int
		want bool
	}{
		{"s.replace(/a/g)", 10, true},
		{"x = /a/", 4, true},
		{"(u) => /a/", 7, true},
		{"  /a/", 2, true},
		{"return /a/", 7, true},
		{"a / b", 2, false},
		{"f(x) / 2", 5, false},
		{"total/2", 5, false},
	}
	for _, c := range cases {
		if got := regexAllowed(c.src, c.at); got != c.want {
			t.Fatalf("regexAllowed(%q, %d) = %v want %v", c.src, c.at, got, c.want)
		}
	}
}

func Test_skipRegex(t *testing.T) {
	if got := skipRegex(`/[/]x/g`, 0); got != 6 {
		t.Fatalf("slash in class: %d", got)
	}
	if got := skipRegex(`/a\/b/`, 0); got != 6 {
		t.Fatalf("escaped slash: %d", got)
	}
	if got := skipRegex("/open\n}", 0); got != 5 {
		t.Fatalf("unterminated: %d", got)
	}
}
