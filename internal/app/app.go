package app

import (
	"context"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/selfil/selfilbot/core/bootstrap"
	corecmd "github.com/selfil/selfilbot/core/cmd"
	"github.com/selfil/selfilbot/core/ops"
	coretelegram "github.com/selfil/selfilbot/core/telegram"
	"github.com/selfil/selfilbot/core/telegram/commands"
	tghelpers "github.com/selfil/selfilbot/core/telegram/helpers"
	"github.com/selfil/selfilbot/core/telegram/keyboard"
	"github.com/selfil/selfilbot/core/telegram/router"
	tgsender "github.com/selfil/selfilbot/core/telegram/sender"
	"github.com/selfil/selfilbot/internal/dialog"
	"github.com/selfil/selfilbot/internal/flows"
	"github.com/selfil/selfilbot/internal/inventory"
)

// App wires the dialogue engine, the inventory catalog and the Telegram
// transport together.
type App struct {
	cfg     *Config
	engine  *dialog.Engine
	catalog *inventory.MemoryCatalog

	ops        *ops.Server
	dispatcher *tgsender.Dispatcher
}

// Bootstrap builds the application from loaded configuration: it initializes
// the logger, seeds the demo catalog and registers all dialogue flows.
func Bootstrap(cfg ConfigCarrier) (*App, error) {
	appCfg, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("app: unexpected config type %T", cfg)
	}

	catalog := inventory.NewMemoryCatalog()

	ctx := context.Background()
	if _, err := bootstrap.Run(ctx, bootstrap.Options{
		Config:  appCfg.CoreConfig(),
		Storage: catalog,
		Seeders: []bootstrap.Seeder{bootstrap.SeederFunc(inventory.SeedDemo)},
	}); err != nil {
		return nil, err
	}

	engine := dialog.NewEngine(
		dialog.NewSessionStore(),
		dialog.NewCartStore(),
		dialog.NewDraftStore(),
	)
	if err := flows.Register(engine, flows.Variant(appCfg.Flows.AutoOrder), flows.Deps{
		Catalog: catalog,
	}); err != nil {
		return nil, fmt.Errorf("app: flow registration failed: %w", err)
	}

	a := &App{
		cfg:     appCfg,
		engine:  engine,
		catalog: catalog,
	}
	if appCfg.Ops.Enabled {
		a.ops = ops.New(appCfg.Ops)
	}
	return a, nil
}

// ConfigCarrier aliases the cmd-level interface so main stays thin.
type ConfigCarrier = corecmd.ConfigCarrier

// Engine exposes the dialogue engine, mainly for tests.
func (a *App) Engine() *dialog.Engine { return a.engine }

// InProgress reports whether the user has a dialogue flow in progress.
// Together with ManagerHandler it satisfies the text router's FSM interface.
func (a *App) InProgress(userID int64) bool {
	return a.engine.InFlow(dialog.UserID(userID))
}

// ManagerHandler feeds an in-flow text update into the dialogue engine.
func (a *App) ManagerHandler(c tele.Context) error {
	res := a.engine.Handle(buildCtx(c), dialog.Event{
		User: dialog.UserID(c.Sender().ID),
		Text: c.Text(),
	})
	return deliver(c, res)
}

// TelegramRunOptions assembles the bot wiring for the core runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Description: "Начать работу с ботом",
		Handler: func(c tele.Context) error {
			res := a.engine.Start(buildCtx(c), dialog.UserID(c.Sender().ID))
			return deliver(c, res)
		},
	})
	reg.RegisterCommand("/stats", commands.Command{
		Description: "Статистика бота",
		AdminOnly:   true,
		Hidden:      true,
		Handler: func(c tele.Context) error {
			var sendErrors uint64
			if a.dispatcher != nil {
				sendErrors = a.dispatcher.ErrorCount()
			}
			return tghelpers.SendText(c, fmt.Sprintf(
				"Сессий: %d\nОшибок отправки: %d",
				a.engine.Sessions().Len(), sendErrors,
			))
		},
	})

	// Out-of-flow text still goes through the engine: main menu labels are
	// pressed from Idle, which InProgress does not count as a flow.
	reg.SetTextFallback(a.ManagerHandler)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes, router.TextRoutes(a, reg, router.TextOptions{})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      routes,
		OnStart: func(ctx context.Context, rt coretelegram.Runtime) error {
			a.dispatcher = rt.Dispatcher
			if a.ops != nil {
				a.ops.Start()
			}
			return nil
		},
		OnStop: func(ctx context.Context, rt coretelegram.Runtime) error {
			if a.ops != nil {
				return a.ops.Stop(ctx)
			}
			return nil
		},
	}, nil
}

func buildCtx(c tele.Context) context.Context {
	return tghelpers.BuildContext(c)
}

// deliver sends the engine result back over Telegram. Ignored results send
// nothing at all.
func deliver(c tele.Context, res dialog.Result) error {
	if res.Outcome == dialog.Ignored || res.Reply == nil {
		return nil
	}
	r := res.Reply

	var markup *tele.ReplyMarkup
	if r.Menu != nil && !r.Menu.Empty() {
		markup = keyboard.ReplyButtons(r.Menu.Rows()...)
	}

	if r.Markdown {
		return tghelpers.SendMD(c, r.Text, markup)
	}
	if markup != nil {
		return tghelpers.SendText(c, r.Text, &tele.SendOptions{ReplyMarkup: markup})
	}
	return tghelpers.SendText(c, r.Text)
}

var _ router.FSM = (*App)(nil)
var _ corecmd.TelegramApp = (*App)(nil)
