package dialog

import (
	"testing"
	"time"
)

func TestSessionStoreDefaultsToIdle(t *testing.T) {
	s := NewSessionStore()
	if _, ok := s.Get(1).(Idle); !ok {
		t.Fatalf("fresh user state = %T, expected Idle", s.Get(1))
	}
	if s.Len() != 0 {
		t.Fatalf("Get must not create a session, len = %d", s.Len())
	}
}

func TestSessionStoreEvictIdle(t *testing.T) {
	s := NewSessionStore()
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	s.Set(1, ChoosingProduct{})
	s.Set(2, ChoosingContainer{})
	now = now.Add(time.Hour)
	s.Touch(2)

	evicted := s.EvictIdle(30 * time.Minute)
	if evicted != 1 {
		t.Fatalf("evicted = %d, expected 1", evicted)
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, expected 1", s.Len())
	}
	if _, ok := s.Get(1).(Idle); !ok {
		t.Fatalf("evicted user must read as Idle, got %T", s.Get(1))
	}
	if _, ok := s.Get(2).(ChoosingContainer); !ok {
		t.Fatalf("touched user must survive eviction, got %T", s.Get(2))
	}
}

func TestCartStoreCountsAndOrder(t *testing.T) {
	c := NewCartStore()
	if !c.Empty(7) {
		t.Fatal("fresh cart must be empty")
	}

	if n := c.Add(7, "Молоко"); n != 1 {
		t.Fatalf("first add = %d, expected 1", n)
	}
	c.Add(7, "Сыр")
	if n := c.Add(7, "Молоко"); n != 2 {
		t.Fatalf("second add = %d, expected 2", n)
	}
	if n := c.Add(7, "Молоко"); n != 3 {
		t.Fatalf("third add = %d, expected 3", n)
	}

	entries := c.Entries(7)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, expected 2 distinct products", len(entries))
	}
	if entries[0].Product != "Молоко" || entries[0].Quantity != 3 {
		t.Fatalf("entries[0] = %+v, expected Молоко x3", entries[0])
	}
	if entries[1].Product != "Сыр" || entries[1].Quantity != 1 {
		t.Fatalf("entries[1] = %+v, expected Сыр x1", entries[1])
	}

	c.Clear(7)
	if !c.Empty(7) {
		t.Fatal("cart must be empty after Clear")
	}
}

func TestCartStoreIsolatesUsers(t *testing.T) {
	c := NewCartStore()
	c.Add(1, "Яйца")
	if !c.Empty(2) {
		t.Fatal("user 2 cart must stay empty")
	}
}

func TestDraftComplete(t *testing.T) {
	d := NewDraftStore()
	if d.Get(5).Complete() {
		t.Fatal("empty draft must be incomplete")
	}
	d.SetInterval(5, "Ежедневно")
	d.AddProduct(5, "Кефир")
	if d.Get(5).Complete() {
		t.Fatal("draft without minimum must be incomplete")
	}
	d.SetMinimum(5, "2")
	if !d.Get(5).Complete() {
		t.Fatal("draft with all fields must be complete")
	}

	d.Reset(5)
	if d.Get(5).Complete() {
		t.Fatal("reset draft must be incomplete")
	}
}
