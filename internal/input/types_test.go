package input

import "testing"

func TestParseArg(t *testing.T) {
	tests := []struct {
		kind  string
		value string
		want  Arg
		ok    bool
	}{
		{"", "", NoArg{}, true},
		{"direction", "previous", DirPrevious, true},
		{"direction", "next", DirNext, true},
		{"direction", "sideways", nil, false},
		{"zoom", "out", ZoomOut, true},
		{"zoom", "reset", ZoomReset, true},
		{"delete", "word", DeleteWord, true},
		{"scroll", "half-up", ScrollHalfUp, true},
		{"scroll", "bottom", ScrollBottom, true},
		{"scroll", "left", nil, false},
		{"text", ":open ", Text(":open "), true},
		{"flag", "true", Flag(true), true},
		{"flag", "", Flag(false), true},
		{"flag", "maybe", nil, false},
		{"color", "red", nil, false},
	}

	for _, tt := range tests {
		got, ok := ParseArg(tt.kind, tt.value)
		if ok != tt.ok {
			t.Errorf("ParseArg(%q, %q) ok = %v, want %v", tt.kind, tt.value, ok, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseArg(%q, %q) = %v, want %v", tt.kind, tt.value, got, tt.want)
		}
	}
}

func TestDirectionReverse(t *testing.T) {
	if DirNext.Reverse() != DirPrevious || DirPrevious.Reverse() != DirNext {
		t.Error("Reverse() should swap directions")
	}
}

func TestArgStrings(t *testing.T) {
	tests := []struct {
		arg  Arg
		want string
	}{
		{NoArg{}, ""},
		{DirPrevious, "previous"},
		{ZoomIn, "in"},
		{DeleteLine, "line"},
		{ScrollTop, "top"},
		{Text("abc"), "abc"},
		{Flag(true), "true"},
	}

	for _, tt := range tests {
		if got := tt.arg.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.arg, got, tt.want)
		}
	}
}
