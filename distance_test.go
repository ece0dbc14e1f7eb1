package spellcore

import "testing"

func TestEditDistance(t *testing.T) {
	tests := []struct {
		Name string
		A    string
		B    string
		Want int
	}{
		{
			Name: "Identical strings",
			A:    "mountain",
			B:    "mountain",
			Want: 0,
		},
		{
			Name: "Empty against non-empty",
			A:    "",
			B:    "word",
			Want: 4,
		},
		{
			Name: "Non-empty against empty",
			A:    "word",
			B:    "",
			Want: 4,
		},
		{
			Name: "Both empty",
			A:    "",
			B:    "",
			Want: 0,
		},
		{
			Name: "Substitutions and insertion",
			A:    "kitten",
			B:    "sitting",
			Want: 3,
		},
		{
			Name: "Single substitution",
			A:    "wrold",
			B:    "world",
			Want: 2,
		},
		{
			Name: "Case difference counts as an edit",
			A:    "Hello",
			B:    "hello",
			Want: 1,
		},
		{
			Name: "Overlapping words",
			A:    "flaw",
			B:    "lawn",
			Want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := editDistance(tt.A, tt.B)
			if got != tt.Want {
				t.Errorf("editDistance(%q, %q) = %d, want %d",
					tt.A, tt.B, got, tt.Want)
			}
		})
	}
}
