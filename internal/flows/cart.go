package flows

import (
	"fmt"
	"strings"

	"github.com/selfil/selfilbot/internal/dialog"
	"github.com/selfil/selfilbot/internal/texts"
)

var cartProducts = []string{texts.BtnMilk, texts.BtnEggs, texts.BtnCheese, texts.BtnBuckwheat}

var cartMenu = dialog.NewMenu(
	[]string{texts.BtnMilk, texts.BtnEggs},
	[]string{texts.BtnCheese, texts.BtnBuckwheat},
	[]string{texts.BtnFinishPurchase},
	[]string{texts.BtnBackToMenu},
)

func registerCart(e *dialog.Engine) error {
	if err := e.On(texts.BtnChooseProduct, dialog.Is[dialog.Idle](), func(t *dialog.Turn) *dialog.Reply {
		t.SetState(dialog.ChoosingProduct{})
		return menuReply(texts.ChooseProductPrompt, cartMenu)
	}); err != nil {
		return err
	}

	for _, product := range cartProducts {
		product := product
		if err := e.On(product, dialog.Is[dialog.ChoosingProduct](), func(t *dialog.Turn) *dialog.Reply {
			qty := t.Carts().Add(t.User, product)
			return menuReply(fmt.Sprintf(texts.ProductAddedFmt, product, qty), cartMenu)
		}); err != nil {
			return err
		}
	}

	return e.On(texts.BtnFinishPurchase, dialog.Is[dialog.ChoosingProduct](), func(t *dialog.Turn) *dialog.Reply {
		entries := t.Carts().Entries(t.User)
		t.SetState(dialog.Idle{})
		if len(entries) == 0 {
			return menuReply(texts.CartEmpty, mainMenu)
		}

		var b strings.Builder
		b.WriteString(texts.CartSummaryHeader)
		for _, entry := range entries {
			b.WriteString(fmt.Sprintf("\n%s: %d", entry.Product, entry.Quantity))
		}
		t.Carts().Clear(t.User)
		return menuReply(b.String(), mainMenu)
	})
}
