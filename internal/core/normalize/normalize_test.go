package normalize

import "testing"

// Lot numbers fold accents and width, drop interior spaces and uppercase
func TestLotNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "L-001", want: "L-001"},
		{name: "lowercase", in: "l-001", want: "L-001"},
		{name: "padded", in: "  l - 001  ", want: "L-001"},
		{name: "accented", in: "lé-001", want: "LE-001"},
		{name: "fullwidth", in: "Ｌ-００１", want: "L-001"},
		{name: "zero width joiner", in: "L-‍001", want: "L-001"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LotNumber(tt.in); got != tt.want {
				t.Fatalf("LotNumber(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Labels fold to title case so accent and case variants collide
func TestLabel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "upper accented", in: "CAFÉ", want: "Cafe"},
		{name: "mixed", in: "cacao  brut", want: "Cacao Brut"},
		{name: "already canonical", in: "Cafe Torrefie", want: "Cafe Torrefie"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.in); got != tt.want {
				t.Fatalf("Label(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Operators lowercase and trim
func TestOperator(t *testing.T) {
	t.Parallel()
	if got := Operator("  Alice  "); got != "alice" {
		t.Fatalf("Operator = %q, want alice", got)
	}
	if got := Operator("José"); got != "jose" {
		t.Fatalf("Operator = %q, want jose", got)
	}
}

// Same input through concurrent calls stays stable (pooled transformer chains)
func TestConcurrentFold(t *testing.T) {
	t.Parallel()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				if got := LotNumber("lé-001"); got != "LE-001" {
					t.Errorf("LotNumber = %q", got)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
