package flows

import (
	"context"
	"strings"
	"testing"

	"github.com/selfil/selfilbot/internal/dialog"
	"github.com/selfil/selfilbot/internal/inventory"
	"github.com/selfil/selfilbot/internal/texts"
)

func newFlowEngine(t *testing.T, variant Variant) *dialog.Engine {
	t.Helper()
	e := dialog.NewEngine(dialog.NewSessionStore(), dialog.NewCartStore(), dialog.NewDraftStore())
	if err := Register(e, variant, Deps{Catalog: inventory.NewMemoryCatalog()}); err != nil {
		t.Fatalf("register flows: %v", err)
	}
	return e
}

func send(t *testing.T, e *dialog.Engine, user dialog.UserID, text string) dialog.Result {
	t.Helper()
	return e.Handle(context.Background(), dialog.Event{User: user, Text: text})
}

func sendReplied(t *testing.T, e *dialog.Engine, user dialog.UserID, text string) *dialog.Reply {
	t.Helper()
	res := send(t, e, user, text)
	if res.Outcome != dialog.Replied || res.Reply == nil {
		t.Fatalf("message %q: expected a reply, got %+v", text, res)
	}
	return res.Reply
}

func TestStartResetsSession(t *testing.T) {
	e := newFlowEngine(t, VariantWizard)
	e.Carts().Add(1, texts.BtnMilk)
	e.Sessions().Set(1, dialog.ChoosingProduct{})

	res := e.Start(context.Background(), 1)
	if res.Outcome != dialog.Replied || res.Reply.Text != texts.Welcome {
		t.Fatalf("start result = %+v", res)
	}
	if _, ok := e.Sessions().Get(1).(dialog.Idle); !ok {
		t.Fatalf("state after start = %T, expected Idle", e.Sessions().Get(1))
	}
	if !e.Carts().Empty(1) {
		t.Fatal("start must clear the cart")
	}
}

func TestFreeTextInIdleIsIgnored(t *testing.T) {
	e := newFlowEngine(t, VariantWizard)
	res := send(t, e, 1, "просто текст")
	if res.Outcome != dialog.Ignored {
		t.Fatalf("outcome = %v, expected Ignored", res.Outcome)
	}
}

func TestCartScenario(t *testing.T) {
	e := newFlowEngine(t, VariantWizard)
	e.Start(context.Background(), 1)

	sendReplied(t, e, 1, texts.BtnChooseProduct)
	if _, ok := e.Sessions().Get(1).(dialog.ChoosingProduct); !ok {
		t.Fatalf("state = %T, expected ChoosingProduct", e.Sessions().Get(1))
	}

	r := sendReplied(t, e, 1, texts.BtnMilk)
	if !strings.Contains(r.Text, "1 в корзине") {
		t.Fatalf("first add reply = %q", r.Text)
	}
	r = sendReplied(t, e, 1, texts.BtnMilk)
	if !strings.Contains(r.Text, "2 в корзине") {
		t.Fatalf("second add reply = %q", r.Text)
	}

	r = sendReplied(t, e, 1, texts.BtnFinishPurchase)
	if !strings.Contains(r.Text, texts.CartSummaryHeader) || !strings.Contains(r.Text, texts.BtnMilk+": 2") {
		t.Fatalf("summary = %q", r.Text)
	}
	if _, ok := e.Sessions().Get(1).(dialog.Idle); !ok {
		t.Fatalf("state after checkout = %T, expected Idle", e.Sessions().Get(1))
	}
	if !e.Carts().Empty(1) {
		t.Fatal("checkout must clear the cart")
	}
}

func TestCheckoutWithEmptyCart(t *testing.T) {
	e := newFlowEngine(t, VariantWizard)
	e.Start(context.Background(), 1)
	sendReplied(t, e, 1, texts.BtnChooseProduct)

	r := sendReplied(t, e, 1, texts.BtnFinishPurchase)
	if r.Text != texts.CartEmpty {
		t.Fatalf("empty checkout reply = %q", r.Text)
	}
	if _, ok := e.Sessions().Get(1).(dialog.Idle); !ok {
		t.Fatalf("state = %T, expected Idle", e.Sessions().Get(1))
	}
}

func TestBackToMenuPreservesCart(t *testing.T) {
	e := newFlowEngine(t, VariantWizard)
	e.Start(context.Background(), 1)
	sendReplied(t, e, 1, texts.BtnChooseProduct)
	sendReplied(t, e, 1, texts.BtnMilk)

	r := sendReplied(t, e, 1, texts.BtnBackToMenu)
	if r.Text != texts.MainMenuTitle {
		t.Fatalf("back reply = %q", r.Text)
	}
	if _, ok := e.Sessions().Get(1).(dialog.Idle); !ok {
		t.Fatalf("state = %T, expected Idle", e.Sessions().Get(1))
	}
	if e.Carts().Empty(1) {
		t.Fatal("back to menu must not clear the cart")
	}

	sendReplied(t, e, 1, texts.BtnChooseProduct)
	r = sendReplied(t, e, 1, texts.BtnFinishPurchase)
	if !strings.Contains(r.Text, texts.BtnMilk+": 1") {
		t.Fatalf("summary after re-entry = %q", r.Text)
	}
}

func TestBackToMenuWorksFromEveryFlow(t *testing.T) {
	enter := [][]string{
		{texts.BtnChooseProduct},
		{texts.BtnChooseContainer},
		{texts.BtnChooseContainer, "C-1"},
		{texts.BtnChooseContainer, "C-1", texts.BtnAddProduct},
		{texts.BtnSetupAutoOrder},
		{texts.BtnSetupAutoOrder, texts.BtnInterval},
		{texts.BtnSetupAutoOrder, texts.BtnProductList},
		{texts.BtnSetupAutoOrder, texts.BtnMinimum},
	}
	for _, path := range enter {
		e := newFlowEngine(t, VariantWizard)
		e.Start(context.Background(), 1)
		for _, msg := range path {
			sendReplied(t, e, 1, msg)
		}
		r := sendReplied(t, e, 1, texts.BtnBackToMenu)
		if r.Text != texts.MainMenuTitle {
			t.Fatalf("path %v: back reply = %q", path, r.Text)
		}
		if _, ok := e.Sessions().Get(1).(dialog.Idle); !ok {
			t.Fatalf("path %v: state = %T, expected Idle", path, e.Sessions().Get(1))
		}
	}
}

func TestOrderContainerIsStateless(t *testing.T) {
	e := newFlowEngine(t, VariantWizard)
	e.Start(context.Background(), 1)
	sendReplied(t, e, 1, texts.BtnChooseProduct)

	r := sendReplied(t, e, 1, texts.BtnOrderContainer)
	if r.Text != texts.OrderContainerReply || !r.Markdown {
		t.Fatalf("order container reply = %+v", r)
	}
	if _, ok := e.Sessions().Get(1).(dialog.ChoosingProduct); !ok {
		t.Fatalf("state = %T, expected ChoosingProduct unchanged", e.Sessions().Get(1))
	}
}

func TestAutoOrderWizardCompletionGate(t *testing.T) {
	e := newFlowEngine(t, VariantWizard)
	e.Start(context.Background(), 1)
	sendReplied(t, e, 1, texts.BtnSetupAutoOrder)

	r := sendReplied(t, e, 1, texts.BtnFinishAutoOrder)
	if r.Text != texts.AutoOrderIncomplete {
		t.Fatalf("incomplete finish reply = %q", r.Text)
	}
	if _, ok := e.Sessions().Get(1).(dialog.SettingUpAutoOrder); !ok {
		t.Fatalf("state = %T, expected SettingUpAutoOrder unchanged", e.Sessions().Get(1))
	}
}

func TestAutoOrderWizardFullWalk(t *testing.T) {
	e := newFlowEngine(t, VariantWizard)
	e.Start(context.Background(), 1)

	sendReplied(t, e, 1, texts.BtnSetupAutoOrder)

	sendReplied(t, e, 1, texts.BtnInterval)
	r := sendReplied(t, e, 1, texts.BtnWeekly)
	if !strings.Contains(r.Text, texts.BtnWeekly) {
		t.Fatalf("interval reply = %q", r.Text)
	}

	sendReplied(t, e, 1, texts.BtnProductList)
	sendReplied(t, e, 1, texts.BtnKefir)
	sendReplied(t, e, 1, texts.BtnBread)
	sendReplied(t, e, 1, texts.BtnFinishProducts)

	sendReplied(t, e, 1, texts.BtnMinimum)
	sendReplied(t, e, 1, "3")

	r = sendReplied(t, e, 1, texts.BtnFinishAutoOrder)
	for _, want := range []string{texts.BtnWeekly, texts.BtnKefir, texts.BtnBread, "3"} {
		if !strings.Contains(r.Text, want) {
			t.Fatalf("summary %q missing %q", r.Text, want)
		}
	}
	if _, ok := e.Sessions().Get(1).(dialog.Idle); !ok {
		t.Fatalf("state after finish = %T, expected Idle", e.Sessions().Get(1))
	}
}

func TestAutoOrderEntryResetsDraft(t *testing.T) {
	e := newFlowEngine(t, VariantWizard)
	e.Start(context.Background(), 1)

	sendReplied(t, e, 1, texts.BtnSetupAutoOrder)
	sendReplied(t, e, 1, texts.BtnInterval)
	sendReplied(t, e, 1, texts.BtnDaily)
	sendReplied(t, e, 1, texts.BtnBackToMenu)

	sendReplied(t, e, 1, texts.BtnSetupAutoOrder)
	if e.Drafts().Get(1).Interval != "" {
		t.Fatal("re-entering the wizard must reset the draft")
	}
}

func TestContainerScenario(t *testing.T) {
	e := newFlowEngine(t, VariantWizard)
	e.Start(context.Background(), 1)

	r := sendReplied(t, e, 1, texts.BtnChooseContainer)
	if r.Text != texts.ContainerPrompt {
		t.Fatalf("prompt = %q", r.Text)
	}

	r = sendReplied(t, e, 1, "C-42")
	if !strings.Contains(r.Text, "C-42") {
		t.Fatalf("chosen reply = %q", r.Text)
	}
	st, ok := e.Sessions().Get(1).(dialog.ContainerActions)
	if !ok || st.ContainerID != "C-42" {
		t.Fatalf("state = %#v, expected ContainerActions{C-42}", e.Sessions().Get(1))
	}

	sendReplied(t, e, 1, texts.BtnAddProduct)
	r = sendReplied(t, e, 1, "Рис")
	if !strings.Contains(r.Text, "Рис") || !strings.Contains(r.Text, "C-42") {
		t.Fatalf("add confirmation = %q", r.Text)
	}
	st, ok = e.Sessions().Get(1).(dialog.ContainerActions)
	if !ok || st.ContainerID != "C-42" {
		t.Fatalf("state after add = %#v, expected ContainerActions{C-42}", e.Sessions().Get(1))
	}

	sendReplied(t, e, 1, texts.BtnRemoveProduct)
	r = sendReplied(t, e, 1, "Рис")
	if !strings.Contains(r.Text, "удален") {
		t.Fatalf("remove confirmation = %q", r.Text)
	}
}

func TestContainerContentsAndInfo(t *testing.T) {
	e := newFlowEngine(t, VariantWizard)
	e.Start(context.Background(), 1)
	sendReplied(t, e, 1, texts.BtnChooseContainer)
	sendReplied(t, e, 1, "C-7")

	r := sendReplied(t, e, 1, texts.BtnViewContents)
	if !strings.Contains(r.Text, "C-7") || !strings.Contains(r.Text, "- ") {
		t.Fatalf("contents reply = %q", r.Text)
	}
	if _, ok := e.Sessions().Get(1).(dialog.ContainerActions); !ok {
		t.Fatalf("viewing contents must not change state, got %T", e.Sessions().Get(1))
	}

	r = sendReplied(t, e, 1, texts.BtnContainerInfo)
	if !strings.Contains(r.Text, "C-7") {
		t.Fatalf("info reply = %q", r.Text)
	}
}

func TestQuickOrderFullWalk(t *testing.T) {
	e := newFlowEngine(t, VariantQuick)
	e.Start(context.Background(), 1)

	r := sendReplied(t, e, 1, texts.BtnSetupAutoOrder)
	if r.Text != texts.ChooseAutoOrderProductPrompt {
		t.Fatalf("entry reply = %q", r.Text)
	}

	r = sendReplied(t, e, 1, texts.BtnKefir)
	if r.Text != texts.QuickEnterContainerPrompt {
		t.Fatalf("product reply = %q", r.Text)
	}

	sendReplied(t, e, 1, "C-9")
	sendReplied(t, e, 1, "5")
	r = sendReplied(t, e, 1, texts.BtnDaily)
	for _, want := range []string{texts.BtnKefir, "C-9", "5", texts.BtnDaily} {
		if !strings.Contains(r.Text, want) {
			t.Fatalf("summary %q missing %q", r.Text, want)
		}
	}
	if _, ok := e.Sessions().Get(1).(dialog.Idle); !ok {
		t.Fatalf("state after quick walk = %T, expected Idle", e.Sessions().Get(1))
	}
}

func TestRegisterRejectsUnknownVariant(t *testing.T) {
	e := dialog.NewEngine(dialog.NewSessionStore(), dialog.NewCartStore(), dialog.NewDraftStore())
	err := Register(e, Variant("both"), Deps{Catalog: inventory.NewMemoryCatalog()})
	if err == nil {
		t.Fatal("unknown variant must fail registration")
	}
}

func TestRegisterRejectsDoubleRegistration(t *testing.T) {
	e := dialog.NewEngine(dialog.NewSessionStore(), dialog.NewCartStore(), dialog.NewDraftStore())
	cat := inventory.NewMemoryCatalog()
	if err := Register(e, VariantWizard, Deps{Catalog: cat}); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if err := Register(e, VariantQuick, Deps{Catalog: cat}); err == nil {
		t.Fatal("second registration must fail on duplicate triggers")
	}
}
