package crypto

import "testing"

func TestHash_Deterministic(t *testing.T) {
	h1 := Hash(1, "two", []int{3, 4})
	h2 := Hash(1, "two", []int{3, 4})
	if h1 != h2 {
		t.Errorf("Hash is not deterministic: %s != %s", h1, h2)
	}
}

func TestHash_ArgOrderSignificant(t *testing.T) {
	a := Hash("a", "b")
	b := Hash("b", "a")
	if a == b {
		t.Error("Hash(a, b) should differ from Hash(b, a)")
	}
}

func TestHash_DifferentInputs(t *testing.T) {
	h1 := Hash("input A")
	h2 := Hash("input B")
	if h1 == h2 {
		t.Error("different inputs produced the same hash")
	}
}

func TestHash_Length(t *testing.T) {
	h := Hash("anything")
	if len(h) != 64 {
		t.Errorf("Hash() length = %d, want 64", len(h))
	}
}

func TestHexToBinary(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0000"},
		{"f", "1111"},
		{"a1", "10100001"},
		{"00", "00000000"},
	}

	for _, tt := range tests {
		if got := HexToBinary(tt.input); got != tt.want {
			t.Errorf("HexToBinary(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHexToBinary_LeadingZeros(t *testing.T) {
	bin := HexToBinary("0f79bf")
	want := "0000111101111001101111"
	if bin[:len(want)] != want {
		t.Errorf("HexToBinary leading bits = %q, want prefix %q", bin, want)
	}
}
