package dialog

import "sync"

// Draft is an auto-order configuration in progress. Products is append-only
// and keeps duplicates; Interval and MinQuantity stay empty until the user
// sets them.
type Draft struct {
	Products    []string
	Interval    string
	MinQuantity string
}

// Complete reports whether every required field has been provided.
func (d Draft) Complete() bool {
	return d.Interval != "" && d.MinQuantity != "" && len(d.Products) > 0
}

// DraftStore keeps the per-user auto-order draft. Re-entering the wizard
// resets the draft; fields are mutated in place as steps complete.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[UserID]*Draft
}

// NewDraftStore constructs an empty in-memory store.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[UserID]*Draft)}
}

func (s *DraftStore) draft(user UserID) *Draft {
	d, ok := s.drafts[user]
	if !ok {
		d = &Draft{}
		s.drafts[user] = d
	}
	return d
}

// Reset replaces the user's draft with a fresh empty one.
func (s *DraftStore) Reset(user UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[user] = &Draft{}
}

// AddProduct appends a product to the draft list. Duplicates are kept.
func (s *DraftStore) AddProduct(user UserID, product string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draft(user)
	d.Products = append(d.Products, product)
}

// SetInterval records the recurrence interval.
func (s *DraftStore) SetInterval(user UserID, interval string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft(user).Interval = interval
}

// SetMinimum records the minimum-stock value as entered.
func (s *DraftStore) SetMinimum(user UserID, min string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft(user).MinQuantity = min
}

// Get returns a copy of the user's draft, empty if none exists.
func (s *DraftStore) Get(user UserID) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[user]
	if !ok {
		return Draft{}
	}
	out := *d
	out.Products = append([]string(nil), d.Products...)
	return out
}
