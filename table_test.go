package colorlut

import (
	"errors"
	"testing"
)

func TestTableRelease(t *testing.T) {
	table := BuildIdentity()
	table.Release()
	table.Release() // idempotent

	if !table.Released() {
		t.Fatal("Released() = false after Release")
	}
	if _, err := table.Pixels(); !errors.Is(err, ErrTableReleased) {
		t.Errorf("Pixels() error = %v, want ErrTableReleased", err)
	}
	if _, err := table.RGBA8(); !errors.Is(err, ErrTableReleased) {
		t.Errorf("RGBA8() error = %v, want ErrTableReleased", err)
	}
	if got := table.At(0, 0); got != Transparent {
		t.Errorf("At() on released table = %+v, want transparent", got)
	}

	var nilTable *Table
	nilTable.Release()
}

func TestTableAtClamps(t *testing.T) {
	table := BuildIdentity()
	defer table.Release()

	if got, want := table.At(-5, -5), table.At(0, 0); got != want {
		t.Errorf("At(-5,-5) = %+v, want %+v", got, want)
	}
	if got, want := table.At(Side+3, Side), table.At(Side-1, Side-1); got != want {
		t.Errorf("At(beyond) = %+v, want %+v", got, want)
	}
}

func TestTableRGBA8(t *testing.T) {
	table := BuildIdentity()
	defer table.Release()

	data, err := table.RGBA8()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != Samples*4 {
		t.Fatalf("len = %d, want %d", len(data), Samples*4)
	}
	// last texel is white
	last := data[len(data)-4:]
	for k, v := range last {
		if v != 255 {
			t.Errorf("last texel byte %d = %d, want 255", k, v)
		}
	}
	// texel (1, 0) is red 1/15
	if got, want := data[4], uint8(17); got != want {
		t.Errorf("texel (1,0) red = %d, want %d", got, want)
	}
}

func TestTablePixmap(t *testing.T) {
	table := BuildIdentity()
	defer table.Release()

	pm, err := table.Pixmap()
	if err != nil {
		t.Fatal(err)
	}
	if pm.Width() != Side || pm.Height() != Side {
		t.Errorf("pixmap size = %dx%d, want %dx%d", pm.Width(), pm.Height(), Side, Side)
	}
}

func TestTableSlotReplace(t *testing.T) {
	var s tableSlot
	if _, ok := s.load(); ok {
		t.Fatal("empty slot reports a table")
	}

	t1 := BuildIdentity()
	s.replace(t1)
	s.replace(t1)
	if t1.Released() {
		t.Fatal("replacing a table with itself released it")
	}

	t2 := BuildIdentity()
	s.replace(t2)
	if !t1.Released() {
		t.Error("previous table not released on replace")
	}
	if got, _ := s.load(); got != t2 {
		t.Error("slot does not hold the new table")
	}

	s.clear()
	if !t2.Released() {
		t.Error("clear did not release the table")
	}
	if _, ok := s.load(); ok {
		t.Error("slot not empty after clear")
	}
}
