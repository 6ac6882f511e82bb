package flows

import (
	"fmt"
	"strings"

	"github.com/selfil/selfilbot/core/logger"
	"github.com/selfil/selfilbot/internal/dialog"
	"github.com/selfil/selfilbot/internal/inventory"
	"github.com/selfil/selfilbot/internal/texts"
	"log/slog"
)

var containerMenu = dialog.NewMenu(
	[]string{texts.BtnViewContents, texts.BtnAddProduct},
	[]string{texts.BtnRemoveProduct, texts.BtnContainerInfo},
	[]string{texts.BtnBackToMenu},
)

func registerContainer(e *dialog.Engine, catalog inventory.Catalog) error {
	if err := e.On(texts.BtnChooseContainer, dialog.Is[dialog.Idle](), func(t *dialog.Turn) *dialog.Reply {
		t.SetState(dialog.ChoosingContainer{})
		return &dialog.Reply{Text: texts.ContainerPrompt}
	}); err != nil {
		return err
	}

	// The scanned QR code or typed id arrives as plain text.
	e.OnText(dialog.Is[dialog.ChoosingContainer](), func(t *dialog.Turn) *dialog.Reply {
		t.SetState(dialog.ContainerActions{ContainerID: t.Text})
		return menuReply(fmt.Sprintf(texts.ContainerChosenFmt, t.Text), containerMenu)
	})

	if err := e.On(texts.BtnViewContents, dialog.Is[dialog.ContainerActions](), func(t *dialog.Turn) *dialog.Reply {
		id := t.State().(dialog.ContainerActions).ContainerID
		items, err := catalog.Contents(t.Ctx, id)
		if err != nil {
			logger.Warn(t.Ctx, "inventory", "contents.failed",
				slog.String("container_id", logger.SanitizeLimit(id, 64)),
				slog.String("err", err.Error()),
			)
			return menuReply(texts.ContainerUnavailable, containerMenu)
		}
		lines := make([]string, 0, len(items))
		for _, item := range items {
			lines = append(lines, "- "+item)
		}
		return menuReply(fmt.Sprintf(texts.ContainerContentsFmt, id, strings.Join(lines, "\n")), containerMenu)
	}); err != nil {
		return err
	}

	if err := e.On(texts.BtnContainerInfo, dialog.Is[dialog.ContainerActions](), func(t *dialog.Turn) *dialog.Reply {
		id := t.State().(dialog.ContainerActions).ContainerID
		info, err := catalog.Info(t.Ctx, id)
		if err != nil {
			logger.Warn(t.Ctx, "inventory", "info.failed",
				slog.String("container_id", logger.SanitizeLimit(id, 64)),
				slog.String("err", err.Error()),
			)
			return menuReply(texts.ContainerUnavailable, containerMenu)
		}
		return menuReply(fmt.Sprintf(texts.ContainerInfoFmt, id, info.CreatedAt, info.Kind), containerMenu)
	}); err != nil {
		return err
	}

	if err := e.On(texts.BtnAddProduct, dialog.Is[dialog.ContainerActions](), func(t *dialog.Turn) *dialog.Reply {
		id := t.State().(dialog.ContainerActions).ContainerID
		t.SetState(dialog.AddingProduct{ContainerID: id})
		return &dialog.Reply{Text: texts.AddProductPrompt}
	}); err != nil {
		return err
	}

	if err := e.On(texts.BtnRemoveProduct, dialog.Is[dialog.ContainerActions](), func(t *dialog.Turn) *dialog.Reply {
		id := t.State().(dialog.ContainerActions).ContainerID
		t.SetState(dialog.RemovingProduct{ContainerID: id})
		return &dialog.Reply{Text: texts.RemoveProductPrompt}
	}); err != nil {
		return err
	}

	// Add/remove confirmations are placeholders: nothing persists until a
	// real inventory store replaces the catalog.
	e.OnText(dialog.Is[dialog.AddingProduct](), func(t *dialog.Turn) *dialog.Reply {
		id := t.State().(dialog.AddingProduct).ContainerID
		t.SetState(dialog.ContainerActions{ContainerID: id})
		return menuReply(fmt.Sprintf(texts.ProductAddedToContainerFmt, t.Text, id), containerMenu)
	})

	e.OnText(dialog.Is[dialog.RemovingProduct](), func(t *dialog.Turn) *dialog.Reply {
		id := t.State().(dialog.RemovingProduct).ContainerID
		t.SetState(dialog.ContainerActions{ContainerID: id})
		return menuReply(fmt.Sprintf(texts.ProductRemovedFromContainerFmt, t.Text, id), containerMenu)
	})

	return nil
}
