package linebuf

import (
	"bytes"
	"errors"
	"math/rand"
	"slices"
	"testing"

	"mcuctl-go/errcode"
)

func pushAll(t *testing.T, l *Buffer, p []byte) {
	t.Helper()
	for i, b := range p {
		if err := l.Push(b); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
}

func TestReverseEmitMatchesReversedInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n <= DefaultCapacity; n++ {
		in := make([]byte, n)
		for i := range in {
			in[i] = byte('a' + rng.Intn(26))
		}
		l := New(DefaultCapacity)
		pushAll(t, l, in)

		var out bytes.Buffer
		if err := l.Emit(&out, Reverse); err != nil {
			t.Fatalf("Emit: %v", err)
		}
		want := slices.Clone(in)
		slices.Reverse(want)
		if !bytes.Equal(out.Bytes(), want) {
			t.Fatalf("n=%d: reverse emit = %q, want %q", n, out.Bytes(), want)
		}
		if !bytes.Equal(l.Bytes(), in) {
			t.Fatalf("n=%d: Emit mutated buffer", n)
		}
	}
}

func TestOverflowLeavesContents(t *testing.T) {
	l := New(DefaultCapacity)
	in := bytes.Repeat([]byte("a"), 40)
	var err error
	accepted := 0
	for _, b := range in {
		if err = l.Push(b); err != nil {
			break
		}
		accepted++
	}
	if accepted != 32 {
		t.Fatalf("accepted %d pushes, want 32", accepted)
	}
	if errcode.Of(err) != errcode.BufferFull {
		t.Fatalf("33rd push = %v, want buffer_full", err)
	}
	before := l.Bytes()
	if err := l.Push('z'); !errors.Is(err, errcode.BufferFull) {
		t.Fatalf("push on full = %v", err)
	}
	if l.Len() != 32 || !bytes.Equal(l.Bytes(), before) || !l.Full() {
		t.Fatal("rejected push changed the buffer")
	}
}

func TestClearThenPushMatchesFresh(t *testing.T) {
	for _, seq := range [][]byte{nil, []byte("x"), []byte("hello"), bytes.Repeat([]byte("q"), 35)} {
		used := New(DefaultCapacity)
		pushAll(t, used, []byte("some earlier line"))
		used.Clear()
		fresh := New(DefaultCapacity)

		for i, b := range seq {
			e1, e2 := used.Push(b), fresh.Push(b)
			if e1 != e2 {
				t.Fatalf("push %d: cleared=%v fresh=%v", i, e1, e2)
			}
		}
		if !bytes.Equal(used.Bytes(), fresh.Bytes()) || used.Cap() != fresh.Cap() {
			t.Fatalf("cleared %q != fresh %q", used.Bytes(), fresh.Bytes())
		}
	}
}

func TestAllIsRestartable(t *testing.T) {
	l := New(4)
	pushAll(t, l, []byte("abc"))

	seq := l.All(Forward)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if string(first) != "abc" || string(second) != "abc" {
		t.Fatalf("traversals = %q, %q", first, second)
	}
	if got := string(slices.Collect(l.All(Reverse))); got != "cba" {
		t.Fatalf("reverse = %q", got)
	}

	// Early stop.
	for b := range l.All(Reverse) {
		if b != 'c' {
			t.Fatalf("first reverse byte = %q", b)
		}
		break
	}
}

type failWriter struct{ n int }

func (w *failWriter) WriteByte(byte) error {
	if w.n == 0 {
		return errcode.Transport
	}
	w.n--
	return nil
}

func TestEmitStopsOnError(t *testing.T) {
	l := New(8)
	pushAll(t, l, []byte("abcd"))
	w := &failWriter{n: 2}
	if err := l.Emit(w, Forward); err != errcode.Transport {
		t.Fatalf("Emit = %v", err)
	}
	if l.Len() != 4 {
		t.Fatal("failed emit mutated buffer")
	}
}

func TestNewClampsCapacity(t *testing.T) {
	if New(0).Cap() != 1 || New(-3).Cap() != 1 {
		t.Fatal("capacity should be at least 1")
	}
}

func TestEmptyAndFull(t *testing.T) {
	l := New(2)
	if !l.Empty() || l.Full() {
		t.Fatal("fresh buffer should be empty")
	}
	pushAll(t, l, []byte("ab"))
	if l.Empty() || !l.Full() {
		t.Fatal("buffer at capacity should be full")
	}
	l.Clear()
	if !l.Empty() || l.Len() != 0 || l.Cap() != 2 {
		t.Fatalf("after Clear: len=%d cap=%d", l.Len(), l.Cap())
	}
}
