package overlay

import (
	"sync"
	"testing"
)

func TestStyleAllocator_CyclesPalette(t *testing.T) {
	reg := NewRegistry(nil, Options{})
	n := len(DefaultPalette())
	overlays := make([]*ObjectOverlay, n+1)
	for i := range overlays {
		overlays[i] = reg.NewOverlay(i)
	}
	if overlays[n].Style() != overlays[0].Style() {
		t.Fatalf("overlay %d style=%v want first style=%v", n+1, overlays[n].Style(), overlays[0].Style())
	}
	for i := 1; i < n; i++ {
		if overlays[i].Style() == overlays[0].Style() {
			t.Fatalf("overlay %d repeated the first style before the palette wrapped", i+1)
		}
	}
}

func TestStyleAllocator_CustomPaletteAndConcurrency(t *testing.T) {
	p := Palette{{Stroke: ColorRed}, {Stroke: ColorGreen}}
	a := NewStyleAllocator(p)
	if a.Len() != 2 {
		t.Fatalf("len=%d", a.Len())
	}
	var wg sync.WaitGroup
	var mu sync.Mutex
	counts := map[VisualStyle]int{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := a.Next()
			mu.Lock()
			counts[s]++
			mu.Unlock()
		}()
	}
	wg.Wait()
	if counts[p[0]] != 50 || counts[p[1]] != 50 {
		t.Fatalf("expected even split, got %v", counts)
	}
}
