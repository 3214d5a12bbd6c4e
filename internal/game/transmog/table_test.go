package transmog

import (
	"sync"
	"testing"
)

func TestTable_SetLookRemove(t *testing.T) {
	tbl := NewTable()

	if _, ok := tbl.Look(1); ok {
		t.Error("Look() ok = true on empty table")
	}

	tbl.Set(100, 1, 5001)
	entry, ok := tbl.Look(1)
	if !ok || entry != 5001 {
		t.Errorf("Look(1) = %d, %v, want 5001, true", entry, ok)
	}
	if tbl.Count() != 1 {
		t.Errorf("Count() = %d, want 1", tbl.Count())
	}

	// Replace
	tbl.Set(100, 1, 5002)
	entry, _ = tbl.Look(1)
	if entry != 5002 {
		t.Errorf("Look(1) after replace = %d, want 5002", entry)
	}
	if tbl.Count() != 1 {
		t.Errorf("Count() after replace = %d, want 1", tbl.Count())
	}

	if !tbl.Remove(1) {
		t.Error("Remove(1) = false, want true")
	}
	if _, ok := tbl.Look(1); ok {
		t.Error("Look(1) ok = true after Remove")
	}
	if tbl.Remove(1) {
		t.Error("Remove(1) second time = true, want false")
	}
}

func TestTable_OwnerIndex(t *testing.T) {
	tbl := NewTable()
	tbl.Set(100, 1, 5001)
	tbl.Set(100, 2, 5002)
	tbl.Set(200, 3, 5003)

	looks := tbl.OwnerLooks(100)
	if len(looks) != 2 {
		t.Fatalf("OwnerLooks(100) len = %d, want 2", len(looks))
	}
	if looks[1] != 5001 || looks[2] != 5002 {
		t.Errorf("OwnerLooks(100) = %v", looks)
	}

	// Снимок: мутация возвращённой map не задевает таблицу
	looks[1] = 9999
	if entry, _ := tbl.Look(1); entry != 5001 {
		t.Errorf("Look(1) = %d after snapshot mutation, want 5001", entry)
	}

	if got := tbl.OwnerLooks(999); got != nil {
		t.Errorf("OwnerLooks(999) = %v, want nil", got)
	}
}

func TestTable_EvictOwner(t *testing.T) {
	tbl := NewTable()
	tbl.Set(100, 1, 5001)
	tbl.Set(100, 2, 5002)
	tbl.Set(200, 3, 5003)

	if got := tbl.EvictOwner(100); got != 2 {
		t.Errorf("EvictOwner(100) = %d, want 2", got)
	}
	if _, ok := tbl.Look(1); ok {
		t.Error("Look(1) survived eviction")
	}
	if entry, ok := tbl.Look(3); !ok || entry != 5003 {
		t.Error("Look(3) lost by another owner's eviction")
	}
	if tbl.Count() != 1 {
		t.Errorf("Count() = %d, want 1", tbl.Count())
	}

	if got := tbl.EvictOwner(100); got != 0 {
		t.Errorf("EvictOwner(100) second time = %d, want 0", got)
	}
}

func TestTable_RehomesItem(t *testing.T) {
	tbl := NewTable()
	tbl.Set(100, 1, 5001)
	// Item changed hands, new owner applies a look
	tbl.Set(200, 1, 5002)

	if got := tbl.OwnerLooks(100); got != nil {
		t.Errorf("OwnerLooks(100) = %v, want nil after re-home", got)
	}
	looks := tbl.OwnerLooks(200)
	if looks[1] != 5002 {
		t.Errorf("OwnerLooks(200) = %v, want item 1 → 5002", looks)
	}
}

func TestTable_Concurrent(t *testing.T) {
	tbl := NewTable()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(owner int64) {
			defer wg.Done()
			for g := uint32(0); g < 100; g++ {
				guid := uint32(owner)*1000 + g
				tbl.Set(owner, guid, int32(g))
				tbl.Look(guid)
				tbl.OwnerLooks(owner)
			}
			tbl.EvictOwner(owner)
		}(int64(i + 1))
	}
	wg.Wait()

	if tbl.Count() != 0 {
		t.Errorf("Count() = %d after all evictions, want 0", tbl.Count())
	}
}
