package digest

import "testing"

func TestSHA256KnownVector(t *testing.T) {
	h := NewSHA256()

	got, err := h.Sum("abc")
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestSHA256DigestLength(t *testing.T) {
	h := NewSHA256()

	for _, input := range []string{"", "a", "correct-horse", "éè"} {
		got, err := h.Sum(input)
		if err != nil {
			t.Fatalf("Sum(%q) failed: %v", input, err)
		}
		if len(got) != 64 {
			t.Fatalf("expected 64 hex chars for %q, got %d", input, len(got))
		}
	}
}

func TestRollingKnownVectors(t *testing.T) {
	h := NewRolling()

	cases := map[string]string{
		"":    "00000000",
		"a":   "00000061",
		"abc": "00017862",
	}
	for input, want := range cases {
		got, err := h.Sum(input)
		if err != nil {
			t.Fatalf("Sum(%q) failed: %v", input, err)
		}
		if got != want {
			t.Fatalf("Sum(%q): expected %s, got %s", input, want, got)
		}
	}
}

func TestRollingWrapsAt32Bits(t *testing.T) {
	h := NewRolling()

	long := make([]byte, 4096)
	for i := range long {
		long[i] = byte('a' + i%26)
	}

	got, err := h.Sum(string(long))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("expected 8 hex chars, got %d (%s)", len(got), got)
	}

	again, err := h.Sum(string(long))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if got != again {
		t.Fatalf("expected deterministic output, got %s then %s", got, again)
	}
}

func TestRollingCodePointsNotBytes(t *testing.T) {
	h := NewRolling()

	// U+00E9 must contribute its code point (0xE9), not its UTF-8 bytes.
	got, err := h.Sum("é")
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if got != "000000e9" {
		t.Fatalf("expected 000000e9, got %s", got)
	}
}
