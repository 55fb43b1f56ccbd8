package rules

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		alive     bool
		neighbors int
		want      Transition
	}{
		{"alive with none dies", true, 0, Underpopulation},
		{"alive with one dies", true, 1, Underpopulation},
		{"alive with two survives", true, 2, Survival},
		{"alive with three survives", true, 3, Survival},
		{"alive with four dies", true, 4, Overpopulation},
		{"alive with eight dies", true, 8, Overpopulation},
		{"dead with three is born", false, 3, Reproduction},
		{"dead with two stays dead", false, 2, Unchanged},
		{"dead with four stays dead", false, 4, Unchanged},
		{"dead with none stays dead", false, 0, Unchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.alive, tt.neighbors)
			if got != tt.want {
				t.Fatalf("Classify(%v, %d) = %v, want %v", tt.alive, tt.neighbors, got, tt.want)
			}
			if ApplyConwayRules(tt.neighbors, tt.alive) != tt.want.Alive() {
				t.Fatalf("ApplyConwayRules(%d, %v) disagrees with Classify", tt.neighbors, tt.alive)
			}
		})
	}
}

func TestTransitionString(t *testing.T) {
	if got := Reproduction.String(); got != "reproduction" {
		t.Fatalf("Reproduction.String() = %q", got)
	}
	if got := Transition(42).String(); got != "unknown" {
		t.Fatalf("Transition(42).String() = %q", got)
	}
}
