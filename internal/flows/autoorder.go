package flows

import (
	"fmt"
	"strings"

	"github.com/selfil/selfilbot/internal/dialog"
	"github.com/selfil/selfilbot/internal/texts"
)

var autoOrderProducts = []string{texts.BtnGroats, texts.BtnKefir, texts.BtnButter, texts.BtnBread}

var settingsMenu = dialog.NewMenu(
	[]string{texts.BtnInterval, texts.BtnProductList},
	[]string{texts.BtnMinimum, texts.BtnFinishAutoOrder},
	[]string{texts.BtnBackToMenu},
)

var autoOrderProductsMenu = dialog.NewMenu(
	[]string{texts.BtnGroats, texts.BtnKefir},
	[]string{texts.BtnButter, texts.BtnBread},
	[]string{texts.BtnFinishProducts},
	[]string{texts.BtnBackToMenu},
)

// registerAutoOrder wires the canonical multi-field wizard: interval,
// product list, and minimum stock are filled in any order; finishing is
// gated on all three being present.
func registerAutoOrder(e *dialog.Engine) error {
	if err := e.On(texts.BtnSetupAutoOrder, dialog.Is[dialog.Idle](), func(t *dialog.Turn) *dialog.Reply {
		t.Drafts().Reset(t.User)
		t.SetState(dialog.SettingUpAutoOrder{})
		return menuReply(texts.AutoOrderMenuPrompt, settingsMenu)
	}); err != nil {
		return err
	}

	if err := e.On(texts.BtnInterval, dialog.Is[dialog.SettingUpAutoOrder](), func(t *dialog.Turn) *dialog.Reply {
		t.SetState(dialog.ChoosingInterval{})
		return menuReply(texts.ChooseIntervalPrompt, intervalMenu)
	}); err != nil {
		return err
	}

	if err := e.On(texts.BtnProductList, dialog.Is[dialog.SettingUpAutoOrder](), func(t *dialog.Turn) *dialog.Reply {
		t.SetState(dialog.ChoosingAutoOrderProducts{})
		return menuReply(texts.ChooseAutoOrderProductPrompt, autoOrderProductsMenu)
	}); err != nil {
		return err
	}

	if err := e.On(texts.BtnMinimum, dialog.Is[dialog.SettingUpAutoOrder](), func(t *dialog.Turn) *dialog.Reply {
		t.SetState(dialog.EnteringMinimum{})
		return &dialog.Reply{Text: texts.EnterMinimumPrompt}
	}); err != nil {
		return err
	}

	for _, interval := range intervalLabels {
		interval := interval
		if err := e.On(interval, dialog.Is[dialog.ChoosingInterval](), func(t *dialog.Turn) *dialog.Reply {
			t.Drafts().SetInterval(t.User, interval)
			t.SetState(dialog.SettingUpAutoOrder{})
			return menuReply(fmt.Sprintf(texts.IntervalSetFmt, interval), settingsMenu)
		}); err != nil {
			return err
		}
	}

	for _, product := range autoOrderProducts {
		product := product
		if err := e.On(product, dialog.Is[dialog.ChoosingAutoOrderProducts](), func(t *dialog.Turn) *dialog.Reply {
			t.Drafts().AddProduct(t.User, product)
			return menuReply(fmt.Sprintf(texts.AutoOrderProductAddedFmt, product), autoOrderProductsMenu)
		}); err != nil {
			return err
		}
	}

	if err := e.On(texts.BtnFinishProducts, dialog.Is[dialog.ChoosingAutoOrderProducts](), func(t *dialog.Turn) *dialog.Reply {
		t.SetState(dialog.SettingUpAutoOrder{})
		return menuReply(texts.ProductListDone, settingsMenu)
	}); err != nil {
		return err
	}

	e.OnText(dialog.Is[dialog.EnteringMinimum](), func(t *dialog.Turn) *dialog.Reply {
		t.Drafts().SetMinimum(t.User, t.Text)
		t.SetState(dialog.SettingUpAutoOrder{})
		return menuReply(fmt.Sprintf(texts.MinimumSetFmt, t.Text), settingsMenu)
	})

	return e.On(texts.BtnFinishAutoOrder, dialog.Is[dialog.SettingUpAutoOrder](), func(t *dialog.Turn) *dialog.Reply {
		draft := t.Drafts().Get(t.User)
		if !draft.Complete() {
			return menuReply(texts.AutoOrderIncomplete, settingsMenu)
		}
		t.SetState(dialog.Idle{})
		summary := fmt.Sprintf(texts.AutoOrderSummaryFmt,
			draft.Interval,
			strings.Join(draft.Products, ", "),
			draft.MinQuantity,
		)
		return menuReply(summary, mainMenu)
	})
}
