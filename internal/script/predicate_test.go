package script

import "testing"

func TestPredicateEvaluatesJSFunction(t *testing.T) {
	p, err := NewPredicate[int]("function(v) { return v > 3; }", 0)
	if err != nil {
		t.Fatalf("NewPredicate: %v", err)
	}

	if p.Test(2) {
		t.Fatal("Test(2) = true, want false")
	}
	if !p.Test(5) {
		t.Fatal("Test(5) = false, want true")
	}
}
