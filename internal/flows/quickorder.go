package flows

import (
	"fmt"

	"github.com/selfil/selfilbot/internal/dialog"
	"github.com/selfil/selfilbot/internal/texts"
)

var quickProductsMenu = dialog.NewMenu(
	[]string{texts.BtnGroats, texts.BtnKefir},
	[]string{texts.BtnButter, texts.BtnBread},
	[]string{texts.BtnBackToMenu},
)

func quickAt(step dialog.QuickStep) dialog.Matcher {
	return func(s dialog.State) bool {
		draft, ok := s.(dialog.QuickOrderDraft)
		return ok && draft.Step == step
	}
}

// registerQuickOrder wires the superseded single-product wizard: pick one
// product, then walk container -> minimum -> interval in a fixed order.
func registerQuickOrder(e *dialog.Engine) error {
	if err := e.On(texts.BtnSetupAutoOrder, dialog.Is[dialog.Idle](), func(t *dialog.Turn) *dialog.Reply {
		t.SetState(dialog.SettingUpAutoOrder{})
		return menuReply(texts.ChooseAutoOrderProductPrompt, quickProductsMenu)
	}); err != nil {
		return err
	}

	for _, product := range autoOrderProducts {
		product := product
		if err := e.On(product, dialog.Is[dialog.SettingUpAutoOrder](), func(t *dialog.Turn) *dialog.Reply {
			t.SetState(dialog.QuickOrderDraft{Product: product, Step: dialog.QuickEnterContainer})
			return &dialog.Reply{Text: texts.QuickEnterContainerPrompt}
		}); err != nil {
			return err
		}
	}

	e.OnText(quickAt(dialog.QuickEnterContainer), func(t *dialog.Turn) *dialog.Reply {
		draft := t.State().(dialog.QuickOrderDraft)
		draft.Container = t.Text
		draft.Step = dialog.QuickEnterMinimum
		t.SetState(draft)
		return &dialog.Reply{Text: texts.EnterMinimumPrompt}
	})

	e.OnText(quickAt(dialog.QuickEnterMinimum), func(t *dialog.Turn) *dialog.Reply {
		draft := t.State().(dialog.QuickOrderDraft)
		draft.MinQuantity = t.Text
		draft.Step = dialog.QuickChooseInterval
		t.SetState(draft)
		return menuReply(texts.ChooseIntervalPrompt, intervalMenu)
	})

	for _, interval := range intervalLabels {
		interval := interval
		if err := e.On(interval, quickAt(dialog.QuickChooseInterval), func(t *dialog.Turn) *dialog.Reply {
			draft := t.State().(dialog.QuickOrderDraft)
			draft.Interval = interval
			t.SetState(dialog.Idle{})
			summary := fmt.Sprintf(texts.QuickSummaryFmt,
				draft.Product,
				draft.Container,
				draft.MinQuantity,
				draft.Interval,
			)
			return menuReply(summary, mainMenu)
		}); err != nil {
			return err
		}
	}

	return nil
}
