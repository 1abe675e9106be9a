package rbg

import "testing"

func TestOSRandomProducesDistinctScalars(t *testing.T) {
	src := OSRandom()
	a, err := src.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	b, err := src.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	if a.Equal(b) {
		t.Errorf("two independent draws collided (probability ~2^-255)")
	}
}
