package dpf

import "testing"

func TestReduce(t *testing.T) {
	cases := []struct {
		in   uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{fieldPrime - 1, fieldPrime - 1},
		{fieldPrime, 0},
		{fieldPrime + 1, 1},
	}
	for _, c := range cases {
		if got := reduce(c.in); got != c.want {
			t.Errorf("reduce(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestReduceAdd(t *testing.T) {
	if got := reduceAdd(fieldPrime - 1 + fieldPrime - 1); got != fieldPrime-2 {
		t.Errorf("reduceAdd(2p-2) = %d, want %d", got, fieldPrime-2)
	}
	if got := reduceAdd(5); got != 5 {
		t.Errorf("reduceAdd(5) = %d, want 5", got)
	}
}

func TestNeg(t *testing.T) {
	if neg(0) != 0 {
		t.Errorf("neg(0) should be 0")
	}
	if got := neg(1); got != fieldPrime-1 {
		t.Errorf("neg(1) = %d, want %d", got, fieldPrime-1)
	}
	if got := reduceAdd(neg(5) + 5); got != 0 {
		t.Errorf("neg(5)+5 should reduce to 0, got %d", got)
	}
}

func TestModP(t *testing.T) {
	if got := modP(1); got != 1 {
		t.Errorf("modP(1) = %d, want 1", got)
	}
	if got := modP(-1); got != fieldPrime-1 {
		t.Errorf("modP(-1) = %d, want %d", got, fieldPrime-1)
	}
	if got := modP(int64(fieldPrime)); got != 0 {
		t.Errorf("modP(p) = %d, want 0", got)
	}
	if got := modP(1 - int64(fieldPrime-1) + int64(fieldPrime-1)); got != 1 {
		t.Errorf("modP(1-x+x) = %d, want 1", got)
	}
}
