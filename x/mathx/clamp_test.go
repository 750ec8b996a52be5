package mathx

import "testing"

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(7, 0, 10) != 7 {
		t.Fatal("clamp failed")
	}
	if Clamp(uint8(9), 8, 5) != 8 {
		t.Fatal("swapped bounds failed")
	}
}

func TestOrDefault(t *testing.T) {
	if OrDefault(uint32(0), 115200) != 115200 || OrDefault(uint32(9600), 115200) != 9600 {
		t.Fatal("OrDefault failed")
	}
}
