//go:build !(rp2040 || rp2350)

package platform

import (
	"testing"

	"mcuctl-go/errcode"
	"mcuctl-go/internal/halcore"
	"mcuctl-go/types"
)

func resetTaken(t *testing.T) {
	Release()
	t.Cleanup(Release)
}

func TestTakeOnce(t *testing.T) {
	resetTaken(t)
	cfg := BoardConfig{Serial: types.DefaultSerial(), ButtonPin: 14}

	b, err := Take(cfg)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if b.Serial == nil || b.ButtonA == nil || b.Debug == nil {
		t.Fatalf("incomplete board: %+v", b)
	}
	if _, err := Take(cfg); errcode.Of(err) != errcode.ResourceTaken {
		t.Fatalf("second Take = %v, want resource_taken", err)
	}
}

func TestTakeBadPinReleasesBoard(t *testing.T) {
	resetTaken(t)
	if _, err := Take(BoardConfig{ButtonPin: 40}); errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("Take(pin 40) = %v", err)
	}
	if _, err := Take(BoardConfig{ButtonPin: 2}); err != nil {
		t.Fatalf("Take after failed attempt: %v", err)
	}
}

func TestFakePinEdges(t *testing.T) {
	p := NewFakePin(14, false)
	_ = p.ConfigureInput(halcore.PullUp)
	if !p.Get() || p.Pull() != halcore.PullUp {
		t.Fatal("pull-up input should idle high")
	}
	fired := 0
	_ = p.SetIRQ(halcore.EdgeFalling, func() { fired++ })

	p.Press()
	p.Set(true) // no edge
	p.Press()
	if fired != 2 {
		t.Fatalf("falling edges seen = %d, want 2", fired)
	}
	_ = p.ClearIRQ()
	p.Press()
	if fired != 2 {
		t.Fatal("cleared IRQ still fired")
	}
}

func TestHostUARTTranscript(t *testing.T) {
	u := NewHostUART()
	u.Inject([]byte("ab"))
	buf := make([]byte, 4)
	if n, _ := u.Read(buf); n != 2 || string(buf[:n]) != "ab" || !u.Drained() {
		t.Fatalf("read %q", buf[:n])
	}

	u.SetTXBusy(1)
	if n, _ := u.Write([]byte("x")); n != 0 {
		t.Fatal("busy transmitter should refuse first poll")
	}
	if n, _ := u.Write([]byte("x")); n != 1 {
		t.Fatal("transmitter should accept after stall")
	}
	_ = u.Flush()
	if string(u.TX()) != "x" || len(u.FlushMarks()) != 1 || u.FlushMarks()[0] != 1 {
		t.Fatalf("tx=%q marks=%v", u.TX(), u.FlushMarks())
	}

	u.InjectFault(errcode.Overrun)
	if u.Fault() != errcode.Overrun || u.Fault() != nil {
		t.Fatal("fault should be reported once")
	}
}
