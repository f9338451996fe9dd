package randstream

import "testing"

func TestStreamsAreDeterministic(t *testing.T) {
	a := New(20, 3, 0)
	b := New(20, 3, 0)
	for i := 0; i < 10; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("same derivation must produce the same stream")
		}
	}
}

func TestStreamsDiffer(t *testing.T) {
	tests := []struct {
		name string
		a, b []uint32
	}{
		{name: "replication", a: []uint32{0, 0}, b: []uint32{1, 0}},
		{name: "attempt", a: []uint32{5, 0}, b: []uint32{5, 1}},
		{name: "depth", a: []uint32{5}, b: []uint32{5, 0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := New(20, test.a...)
			b := New(20, test.b...)
			same := true
			for i := 0; i < 8; i++ {
				if a.Uint32() != b.Uint32() {
					same = false
					break
				}
			}
			if same {
				t.Errorf("streams %v and %v must differ", test.a, test.b)
			}
		})
	}
}

func TestZeroSeedDoesNotStall(t *testing.T) {
	// xorshift locks at zero state; the derivation must never seed with it.
	rng := New(0)
	if rng.Uint32() == 0 && rng.Uint32() == 0 && rng.Uint32() == 0 {
		t.Errorf("stream from zero base appears stuck at zero")
	}
}
