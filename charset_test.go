package img2ascii

import (
	"errors"
	"testing"
)

func TestParseCharRange(t *testing.T) {
	tests := []struct {
		in      string
		lo, hi  rune
		wantErr bool
	}{
		{"a", 'a', 'a', false},
		{"~", '~', '~', false},
		{"space", ' ', ' ', false},
		{" ", ' ', ' ', false},
		{"all", FirstPrintable, LastPrintable, false},
		{"0-9", '0', '9', false},
		{"z-a", 'a', 'z', false},
		{"---", '-', '-', false},
		{"", 0, 0, true},
		{"ab", 0, 0, true},
		{"abc", 0, 0, true},
		{"a-", 0, 0, true},
		{"a-bc", 0, 0, true},
		{"\t", 0, 0, true},
		{"é", 0, 0, true},
		{"a-é", 0, 0, true},
		{"ALL", 0, 0, true},
	}
	for _, tt := range tests {
		lo, hi, err := ParseCharRange(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidCharRange) {
				t.Errorf("ParseCharRange(%q): expected ErrInvalidCharRange, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || lo != tt.lo || hi != tt.hi {
			t.Errorf("ParseCharRange(%q) = %q, %q, %v; want %q, %q", tt.in, lo, hi, err, tt.lo, tt.hi)
		}
	}
}

func TestCharacterSetMembership(t *testing.T) {
	cs := NewCharacterSet()
	if err := cs.AddRange("c-a"); err != nil {
		t.Fatal(err)
	}
	if err := cs.AddRange("space"); err != nil {
		t.Fatal(err)
	}

	got := string(cs.Runes())
	if got != " abc" {
		t.Errorf("Runes() = %q, want \" abc\"", got)
	}
	if !cs.Contains('b') || cs.Contains('d') {
		t.Error("Contains reports wrong membership")
	}

	if err := cs.RemoveRange("b"); err != nil {
		t.Fatal(err)
	}
	if got := string(cs.Runes()); got != " ac" {
		t.Errorf("after remove Runes() = %q, want \" ac\"", got)
	}

	if err := cs.AddRange("nope"); !errors.Is(err, ErrInvalidCharRange) {
		t.Errorf("expected ErrInvalidCharRange, got %v", err)
	}
	if err := cs.RemoveRange(""); !errors.Is(err, ErrInvalidCharRange) {
		t.Errorf("expected ErrInvalidCharRange, got %v", err)
	}

	all := NewCharacterSet()
	all.Add(FirstPrintable, LastPrintable)
	if all.Len() != 95 {
		t.Errorf("printable ASCII has 95 characters, got %d", all.Len())
	}
}

func TestCharacterSetVersion(t *testing.T) {
	cs := NewCharacterSet('a')
	v := cs.Version()

	cs.Add('a', 'a')
	if cs.Version() != v {
		t.Error("adding an existing member should not change the version")
	}
	cs.Remove('x', 'z')
	if cs.Version() != v {
		t.Error("removing absent runes should not change the version")
	}

	cs.Add('a', 'b')
	if cs.Version() == v {
		t.Error("adding a new member should change the version")
	}
	v = cs.Version()
	cs.Remove('a', 'a')
	if cs.Version() == v {
		t.Error("removing a member should change the version")
	}
}
