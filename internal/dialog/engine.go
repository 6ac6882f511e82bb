// Package dialog implements the per-user dialogue state machine: session,
// cart, and draft stores plus the engine that maps (state, input) pairs to
// replies. It knows nothing about Telegram; the transport adapter feeds it
// events and delivers its replies.
package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/selfil/selfilbot/core/logger"
	"log/slog"
)

// Event is one inbound text message from a user, already stripped of any
// transport envelope.
type Event struct {
	User UserID
	Text string
}

// Reply is the at-most-one outbound action produced for an event.
type Reply struct {
	Text     string
	Menu     *Menu
	Markdown bool
}

// Outcome tells the caller whether an event matched a rule.
type Outcome int

const (
	// Ignored means no rule matched: no reply, no mutation.
	Ignored Outcome = iota
	// Replied means a rule fired and produced a reply.
	Replied
)

// Result is the engine's answer for a single event.
type Result struct {
	Outcome Outcome
	Reply   *Reply
}

// Turn is the per-event view handed to effects. State writes go through it
// so every mutation lands in the session store before the reply is
// delivered.
type Turn struct {
	Ctx  context.Context
	User UserID
	Text string

	state  State
	engine *Engine
}

// State returns the state the event was matched against.
func (t *Turn) State() State { return t.state }

// SetState commits a new state for the user immediately.
func (t *Turn) SetState(st State) {
	t.engine.sessions.Set(t.User, st)
	t.state = st
}

// Carts exposes the cart store to effects.
func (t *Turn) Carts() *CartStore { return t.engine.carts }

// Drafts exposes the auto-order draft store to effects.
func (t *Turn) Drafts() *DraftStore { return t.engine.drafts }

// Effect applies a transition: it may mutate stores and state through the
// Turn and returns the reply to deliver, or nil for a silent transition.
type Effect func(t *Turn) *Reply

type scopedRule struct {
	match  Matcher
	effect Effect
}

type textRule struct {
	match  Matcher
	effect Effect
}

// Engine owns the per-user stores and the transition tables. Rules are
// evaluated in a fixed priority order: universal triggers, then
// state-scoped label triggers, then state-scoped free-text catch-alls.
// The first match wins; anything else is an explicit Ignored outcome.
type Engine struct {
	sessions *SessionStore
	carts    *CartStore
	drafts   *DraftStore

	universal map[string]Effect
	scoped    map[string][]scopedRule
	text      []textRule
	start     Effect
}

// NewEngine constructs an engine over the provided stores.
func NewEngine(sessions *SessionStore, carts *CartStore, drafts *DraftStore) *Engine {
	return &Engine{
		sessions:  sessions,
		carts:     carts,
		drafts:    drafts,
		universal: make(map[string]Effect),
		scoped:    make(map[string][]scopedRule),
	}
}

// Sessions exposes the session store, mainly for hosts that report or evict.
func (e *Engine) Sessions() *SessionStore { return e.sessions }

// Carts exposes the cart store.
func (e *Engine) Carts() *CartStore { return e.carts }

// Drafts exposes the auto-order draft store.
func (e *Engine) Drafts() *DraftStore { return e.drafts }

// InFlow reports whether the user is anywhere other than Idle.
func (e *Engine) InFlow(user UserID) bool {
	_, idle := e.sessions.Get(user).(Idle)
	return !idle
}

// OnAny registers a trigger valid from every state. A label may be claimed
// by exactly one registration across OnAny and On; a second claim is a
// wiring bug and is rejected so two flows can never fight over a trigger.
func (e *Engine) OnAny(label string, effect Effect) error {
	if err := e.claim(label); err != nil {
		return err
	}
	e.universal[label] = effect
	return nil
}

// On registers a trigger scoped to the states accepted by match.
func (e *Engine) On(label string, match Matcher, effect Effect) error {
	if err := e.claim(label); err != nil {
		return err
	}
	e.scoped[label] = append(e.scoped[label], scopedRule{match: match, effect: effect})
	return nil
}

func (e *Engine) claim(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("dialog: empty trigger label")
	}
	if _, ok := e.universal[label]; ok {
		return fmt.Errorf("dialog: trigger %q already registered", label)
	}
	if _, ok := e.scoped[label]; ok {
		return fmt.Errorf("dialog: trigger %q already registered", label)
	}
	return nil
}

// OnText registers a free-text catch-all for the states accepted by match.
// Catch-alls run after every label rule, in registration order.
func (e *Engine) OnText(match Matcher, effect Effect) {
	e.text = append(e.text, textRule{match: match, effect: effect})
}

// SetStart installs the effect run for the distinguished start event.
func (e *Engine) SetStart(effect Effect) {
	e.start = effect
}

// Start handles the start event: the installed effect resets the session
// and replies with the greeting.
func (e *Engine) Start(ctx context.Context, user UserID) Result {
	if e.start == nil {
		return Result{Outcome: Ignored}
	}
	t := &Turn{Ctx: ctx, User: user, Text: "", state: e.sessions.Get(user), engine: e}
	return e.apply(ctx, t, "/start", e.start)
}

// Handle resolves the user's state, matches the trimmed input against the
// transition tables, and applies the first matching rule. Store mutation
// happens inside the effect, before the reply is handed back, so a failed
// delivery can never leave the session inconsistent.
func (e *Engine) Handle(ctx context.Context, ev Event) Result {
	text := strings.TrimSpace(ev.Text)
	if text == "" {
		return Result{Outcome: Ignored}
	}

	state := e.sessions.Get(ev.User)
	t := &Turn{Ctx: ctx, User: ev.User, Text: text, state: state, engine: e}

	if effect, ok := e.universal[text]; ok {
		return e.apply(ctx, t, text, effect)
	}
	for _, rule := range e.scoped[text] {
		if rule.match(state) {
			return e.apply(ctx, t, text, rule.effect)
		}
	}
	for _, rule := range e.text {
		if rule.match(state) {
			return e.apply(ctx, t, "<text>", rule.effect)
		}
	}

	logger.Debug(ctx, "dialog", "transition.ignored",
		slog.Int64("user_id", ev.User),
		slog.String("state", state.Tag()),
		slog.String("payload", logger.SanitizeLimit(text, 64)),
	)
	return Result{Outcome: Ignored}
}

func (e *Engine) apply(ctx context.Context, t *Turn, trigger string, effect Effect) Result {
	from := t.state.Tag()
	e.sessions.Touch(t.User)
	reply := effect(t)

	logger.Debug(ctx, "dialog", "transition",
		slog.Int64("user_id", t.User),
		slog.String("trigger", logger.SanitizeLimit(trigger, 64)),
		slog.String("state", from+">"+t.state.Tag()),
	)

	if reply == nil {
		return Result{Outcome: Replied}
	}
	return Result{Outcome: Replied, Reply: reply}
}
