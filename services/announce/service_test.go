package announce

import (
	"testing"

	"mcuctl-go/internal/platform"
	"mcuctl-go/transport"
)

func TestSend(t *testing.T) {
	u := platform.NewHostUART()
	if err := Send(transport.New(transport.FromUART(u))); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got := string(u.TX()); got != Sentence {
		t.Fatalf("tx = %q", got)
	}
	if marks := u.FlushMarks(); len(marks) != 1 || marks[0] != len(Sentence) {
		t.Fatalf("flush marks = %v", marks)
	}
}
