// Package flows declares the concrete state graphs consumed by the dialogue
// engine: cart building, the auto-order wizard (or its superseded
// single-product variant), and container actions. Flows only register
// rules; all control flow lives in the engine.
package flows

import (
	"fmt"

	"github.com/selfil/selfilbot/internal/dialog"
	"github.com/selfil/selfilbot/internal/inventory"
	"github.com/selfil/selfilbot/internal/texts"
)

// Variant selects which auto-order wizard claims the entry trigger. The
// repository grew two overlapping wizards at one point; exactly one may be
// active per process.
type Variant string

const (
	// VariantWizard is the canonical multi-field wizard.
	VariantWizard Variant = "wizard"
	// VariantQuick is the superseded single-product wizard, kept selectable
	// for hosts that still want it.
	VariantQuick Variant = "quick"
)

// Deps carries the collaborators flows need beyond the engine's own stores.
type Deps struct {
	Catalog inventory.Catalog
}

var mainMenu = dialog.NewMenu(
	[]string{texts.BtnChooseProduct, texts.BtnChooseContainer},
	[]string{texts.BtnSetupAutoOrder, texts.BtnOrderContainer},
)

var intervalMenu = dialog.NewMenu(
	[]string{texts.BtnDaily, texts.BtnWeekly},
	[]string{texts.BtnMonthly},
	[]string{texts.BtnBackToMenu},
)

var intervalLabels = []string{texts.BtnDaily, texts.BtnWeekly, texts.BtnMonthly}

// Register wires every flow into the engine. Registration fails if two
// flows claim the same trigger, so a bad variant mix is caught at startup
// rather than at message time.
func Register(e *dialog.Engine, variant Variant, deps Deps) error {
	if deps.Catalog == nil {
		return fmt.Errorf("flows: nil catalog")
	}

	if err := registerCommon(e); err != nil {
		return err
	}
	if err := registerCart(e); err != nil {
		return err
	}
	if err := registerContainer(e, deps.Catalog); err != nil {
		return err
	}

	switch variant {
	case VariantWizard, "":
		return registerAutoOrder(e)
	case VariantQuick:
		return registerQuickOrder(e)
	default:
		return fmt.Errorf("flows: unknown auto-order variant %q", variant)
	}
}

func registerCommon(e *dialog.Engine) error {
	e.SetStart(func(t *dialog.Turn) *dialog.Reply {
		t.Carts().Clear(t.User)
		t.SetState(dialog.Idle{})
		return menuReply(texts.Welcome, mainMenu)
	})

	if err := e.OnAny(texts.BtnBackToMenu, func(t *dialog.Turn) *dialog.Reply {
		t.SetState(dialog.Idle{})
		return menuReply(texts.MainMenuTitle, mainMenu)
	}); err != nil {
		return err
	}

	// Stateless pointer to the external ordering site; the session is left
	// exactly where it was.
	return e.OnAny(texts.BtnOrderContainer, func(t *dialog.Turn) *dialog.Reply {
		return &dialog.Reply{Text: texts.OrderContainerReply, Markdown: true}
	})
}

func menuReply(text string, menu dialog.Menu) *dialog.Reply {
	return &dialog.Reply{Text: text, Menu: &menu}
}
