package key

import "testing"

func TestEventResolve(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  Event
	}{
		{
			name:  "shifted rune drops consumed shift",
			event: Event{Key: KeyRune, Rune: 'G', Modifiers: ModShift, Consumed: ModShift},
			want:  Event{Key: KeyRune, Rune: 'G'},
		},
		{
			name:  "ctrl survives",
			event: Event{Key: KeyRune, Rune: 'c', Modifiers: ModCtrl},
			want:  Event{Key: KeyRune, Rune: 'c', Modifiers: ModCtrl},
		},
		{
			name:  "meta is masked out",
			event: Event{Key: KeyRune, Rune: 'j', Modifiers: ModMeta},
			want:  Event{Key: KeyRune, Rune: 'j'},
		},
		{
			name:  "shift on special key is kept",
			event: Event{Key: KeyTab, Modifiers: ModShift},
			want:  Event{Key: KeyTab, Modifiers: ModShift},
		},
		{
			name:  "ctrl with consumed shift",
			event: Event{Key: KeyRune, Rune: '+', Modifiers: ModCtrl | ModShift, Consumed: ModShift},
			want:  Event{Key: KeyRune, Rune: '+', Modifiers: ModCtrl},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.event.Resolve()
			if got != tt.want {
				t.Errorf("Resolve() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestEventMatches(t *testing.T) {
	tests := []struct {
		event Event
		spec  string
		want  bool
	}{
		{Event{Key: KeyRune, Rune: 'G', Modifiers: ModShift, Consumed: ModShift}, "G", true},
		{Event{Key: KeyRune, Rune: 'g'}, "G", false},
		{Event{Key: KeyRune, Rune: 'c', Modifiers: ModCtrl}, "<C-c>", true},
		{Event{Key: KeyRune, Rune: 'c'}, "<C-c>", false},
		{Event{Key: KeyEscape}, "Esc", true},
		{Event{Key: KeyEscape, Modifiers: ModMeta}, "Esc", true},
		{Event{Key: KeyRune, Rune: 'a'}, "not a spec", false},
	}

	for _, tt := range tests {
		if got := tt.event.Matches(tt.spec); got != tt.want {
			t.Errorf("%s.Matches(%q) = %v, want %v", tt.event.String(), tt.spec, got, tt.want)
		}
	}
}

func TestEventIsChar(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewRuneEvent('a', ModNone), true},
		{Event{Key: KeyRune, Rune: 'A', Modifiers: ModShift, Consumed: ModShift}, true},
		{NewRuneEvent('a', ModCtrl), false},
		{NewRuneEvent('\x01', ModNone), false},
		{NewSpecialEvent(KeyEnter, ModNone), false},
	}

	for _, tt := range tests {
		if got := tt.event.IsChar(); got != tt.want {
			t.Errorf("%#v.IsChar() = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('c', ModCtrl), "C-c"},
		{NewSpecialEvent(KeyTab, ModShift), "S-Tab"},
		{NewSpecialEvent(KeyEscape, ModNone), "Esc"},
		{NewRuneEvent(' ', ModNone), "Space"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	if got := KeyFromName(" ESC "); got != KeyEscape {
		t.Errorf("KeyFromName(ESC) = %v", got)
	}
	if got := KeyFromName("nope"); got != KeyNone {
		t.Errorf("KeyFromName(nope) = %v", got)
	}
	if KeyF3.String() != "F3" || !KeyF3.IsFunctionKey() || KeyF3.IsArrowKey() {
		t.Error("KeyF3 classification wrong")
	}
}

func TestModifierString(t *testing.T) {
	m := ModCtrl | ModShift
	if got := m.String(); got != "Ctrl+Shift" {
		t.Errorf("String() = %q", got)
	}
	if m.Without(ModCtrl) != ModShift {
		t.Error("Without(ModCtrl) did not remove Ctrl")
	}
	if ModifierFromName("CTRL") != ModCtrl {
		t.Error("ModifierFromName is case sensitive")
	}
}
