package dialog

import (
	"context"
	"testing"
)

func newTestEngine() *Engine {
	return NewEngine(NewSessionStore(), NewCartStore(), NewDraftStore())
}

func TestEngineExposesItsStores(t *testing.T) {
	sessions := NewSessionStore()
	carts := NewCartStore()
	drafts := NewDraftStore()
	e := NewEngine(sessions, carts, drafts)

	if e.Sessions() != sessions || e.Carts() != carts || e.Drafts() != drafts {
		t.Fatal("engine accessors must return the stores passed to NewEngine")
	}
}

func TestEngineUnmatchedTextIsIgnored(t *testing.T) {
	e := newTestEngine()
	res := e.Handle(context.Background(), Event{User: 1, Text: "привет"})
	if res.Outcome != Ignored {
		t.Fatalf("outcome = %v, expected Ignored", res.Outcome)
	}
	if res.Reply != nil {
		t.Fatal("ignored result must carry no reply")
	}
	if _, ok := e.Sessions().Get(1).(Idle); !ok {
		t.Fatalf("ignored event must not move state, got %T", e.Sessions().Get(1))
	}
}

func TestEngineEmptyTextIsIgnored(t *testing.T) {
	e := newTestEngine()
	if err := e.OnAny("go", func(t *Turn) *Reply { return &Reply{Text: "ok"} }); err != nil {
		t.Fatalf("register: %v", err)
	}
	for _, text := range []string{"", "   ", "\n"} {
		if res := e.Handle(context.Background(), Event{User: 1, Text: text}); res.Outcome != Ignored {
			t.Fatalf("text %q: outcome = %v, expected Ignored", text, res.Outcome)
		}
	}
}

func TestEngineTrimsTriggerText(t *testing.T) {
	e := newTestEngine()
	if err := e.OnAny("go", func(t *Turn) *Reply { return &Reply{Text: "ok"} }); err != nil {
		t.Fatalf("register: %v", err)
	}
	res := e.Handle(context.Background(), Event{User: 1, Text: "  go \n"})
	if res.Outcome != Replied {
		t.Fatalf("outcome = %v, expected Replied", res.Outcome)
	}
}

func TestEngineRejectsDuplicateTriggers(t *testing.T) {
	e := newTestEngine()
	effect := func(t *Turn) *Reply { return nil }

	if err := e.OnAny("кнопка", effect); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if err := e.OnAny("кнопка", effect); err == nil {
		t.Fatal("second OnAny for the same label must fail")
	}
	if err := e.On("кнопка", Any(), effect); err == nil {
		t.Fatal("On must reject a label already claimed by OnAny")
	}

	if err := e.On("выбор", Is[Idle](), effect); err != nil {
		t.Fatalf("scoped registration: %v", err)
	}
	if err := e.On("выбор", Is[ChoosingProduct](), effect); err == nil {
		t.Fatal("second On for the same label must fail even with a different scope")
	}
}

func TestEngineScopedRuleRequiresMatchingState(t *testing.T) {
	e := newTestEngine()
	if err := e.On("да", Is[ChoosingProduct](), func(t *Turn) *Reply {
		return &Reply{Text: "выбран"}
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if res := e.Handle(context.Background(), Event{User: 1, Text: "да"}); res.Outcome != Ignored {
		t.Fatalf("outcome from Idle = %v, expected Ignored", res.Outcome)
	}

	e.Sessions().Set(1, ChoosingProduct{})
	res := e.Handle(context.Background(), Event{User: 1, Text: "да"})
	if res.Outcome != Replied || res.Reply.Text != "выбран" {
		t.Fatalf("result from ChoosingProduct = %+v", res)
	}
}

func TestEngineUniversalBeatsScoped(t *testing.T) {
	e := newTestEngine()
	if err := e.OnAny("стоп", func(t *Turn) *Reply { return &Reply{Text: "везде"} }); err != nil {
		t.Fatalf("register: %v", err)
	}
	e.OnText(Any(), func(t *Turn) *Reply { return &Reply{Text: "текст"} })

	e.Sessions().Set(1, ChoosingContainer{})
	res := e.Handle(context.Background(), Event{User: 1, Text: "стоп"})
	if res.Reply == nil || res.Reply.Text != "везде" {
		t.Fatalf("universal trigger must win, got %+v", res)
	}
}

func TestEngineStateCommittedBeforeReply(t *testing.T) {
	e := newTestEngine()
	if err := e.OnAny("дальше", func(tn *Turn) *Reply {
		tn.SetState(ChoosingProduct{})
		if _, ok := e.Sessions().Get(tn.User).(ChoosingProduct); !ok {
			t.Fatal("SetState must land in the store before the reply is built")
		}
		return &Reply{Text: "ок"}
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if res := e.Handle(context.Background(), Event{User: 9, Text: "дальше"}); res.Outcome != Replied {
		t.Fatalf("outcome = %v, expected Replied", res.Outcome)
	}
}

func TestEngineInFlow(t *testing.T) {
	e := newTestEngine()
	if e.InFlow(3) {
		t.Fatal("fresh user must not be in flow")
	}
	e.Sessions().Set(3, EnteringMinimum{})
	if !e.InFlow(3) {
		t.Fatal("user with wizard state must be in flow")
	}
	e.Sessions().Set(3, Idle{})
	if e.InFlow(3) {
		t.Fatal("Idle must not count as in flow")
	}
}

func TestEngineStartRunsStartEffect(t *testing.T) {
	e := newTestEngine()
	e.Carts().Add(4, "Сыр")
	e.Sessions().Set(4, ChoosingProduct{})
	e.SetStart(func(t *Turn) *Reply {
		t.Carts().Clear(t.User)
		t.SetState(Idle{})
		return &Reply{Text: "привет"}
	})

	res := e.Start(context.Background(), 4)
	if res.Outcome != Replied || res.Reply.Text != "привет" {
		t.Fatalf("start result = %+v", res)
	}
	if !e.Carts().Empty(4) {
		t.Fatal("start effect must be able to clear the cart")
	}
	if _, ok := e.Sessions().Get(4).(Idle); !ok {
		t.Fatalf("state after start = %T, expected Idle", e.Sessions().Get(4))
	}
}
