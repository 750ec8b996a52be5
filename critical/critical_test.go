package critical

import (
	"sync"
	"testing"
)

func TestCellStartsEmptyAndAccessIsNoop(t *testing.T) {
	var c Cell[*int]
	if c.Installed() {
		t.Fatal("new cell should be empty")
	}
	called := false
	if c.WithAccess(func(Token, *int) { called = true }) {
		t.Fatal("WithAccess on empty cell should report false")
	}
	if called {
		t.Fatal("WithAccess on empty cell must not run fn")
	}
}

func TestCellInstallOnce(t *testing.T) {
	var c Cell[string]
	first, second := false, false
	Do(func(cs Token) {
		first = c.Install(cs, "gpiote")
		second = c.Install(cs, "other")
	})
	if !first || second {
		t.Fatalf("install results = %v,%v; want true,false", first, second)
	}
	var got string
	if !c.WithAccess(func(_ Token, v string) { got = v }) {
		t.Fatal("WithAccess should run once installed")
	}
	if got != "gpiote" {
		t.Fatalf("inner value = %q, want first install", got)
	}
}

func TestSectionsAreMutuallyExclusive(t *testing.T) {
	var c Cell[*int]
	n := 0
	Do(func(cs Token) { c.Install(cs, &n) })

	const workers, iters = 4, 500
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				c.WithAccess(func(_ Token, p *int) { *p++ })
			}
		}()
	}
	wg.Wait()
	if n != workers*iters {
		t.Fatalf("counter = %d, want %d", n, workers*iters)
	}
}
