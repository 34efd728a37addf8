package hal

import "testing"

func TestSweepPointerStaysOnSurface(t *testing.T) {
	p := newSweepPointer(320, 240, 60)
	for i := 0; i < 1000; i++ {
		p.step()
		select {
		case ev := <-p.Events():
			if ev.X < 0 || ev.X >= 320 || ev.Y < 0 || ev.Y >= 240 {
				t.Fatalf("step %d: event (%d,%d) off the 320x240 surface", i, ev.X, ev.Y)
			}
		default:
			t.Fatalf("step %d: no event emitted", i)
		}
	}
}

func TestSweepPointerMoves(t *testing.T) {
	p := newSweepPointer(320, 240, 60)
	p.step()
	first := <-p.Events()
	moved := false
	for i := 0; i < 60; i++ {
		p.step()
		ev := <-p.Events()
		if ev != first {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatalf("sweep pointer never left (%d,%d)", first.X, first.Y)
	}
}
