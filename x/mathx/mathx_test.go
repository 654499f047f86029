package mathx

import "testing"

func TestRoundDiv(t *testing.T) {
	cases := []struct{ a, b, want uint32 }{
		{16_000_000, 115200, 139},
		{16_000_000, 9600, 1667},
		{10, 4, 3}, // 2.5 rounds up
		{9, 4, 2},  // 2.25 rounds down
		{7, 0, 0},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := RoundDiv(c.a, c.b); got != c.want {
			t.Errorf("RoundDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	if got := CeilDiv[uint](10, 4); got != 3 {
		t.Fatalf("CeilDiv(10,4) = %d", got)
	}
	if got := CeilDiv[uint](8, 4); got != 2 {
		t.Fatalf("CeilDiv(8,4) = %d", got)
	}
	if got := CeilDiv[uint](8, 0); got != 0 {
		t.Fatalf("CeilDiv(8,0) = %d", got)
	}
}

func TestClampBetweenAbs(t *testing.T) {
	if Clamp(20, 0, 15) != 15 || Clamp(-1, 0, 15) != 0 || Clamp(3, 15, 0) != 3 {
		t.Fatal("Clamp")
	}
	if !Between(9, 0, 15) || Between(16, 15, 0) {
		t.Fatal("Between")
	}
	if Abs(int32(-4)) != 4 || Abs(int32(4)) != 4 {
		t.Fatal("Abs")
	}
}
