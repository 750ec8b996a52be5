package halcore

import "testing"

func TestEdgeStringRoundTrip(t *testing.T) {
	for _, e := range []Edge{EdgeNone, EdgeRising, EdgeFalling, EdgeBoth} {
		if got := ParseEdge(EdgeToString(e)); got != e {
			t.Fatalf("ParseEdge(EdgeToString(%d)) = %d", e, got)
		}
	}
	if ParseEdge("hi_to_lo") != EdgeFalling {
		t.Fatal("hi_to_lo alias should map to falling")
	}
}

func TestParsePull(t *testing.T) {
	if ParsePull("up") != PullUp || ParsePull("down") != PullDown || ParsePull("") != PullNone {
		t.Fatal("pull parsing mismatch")
	}
}
