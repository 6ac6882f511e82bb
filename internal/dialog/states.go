package dialog

// UserID identifies a conversation participant. It matches the Telegram
// sender id, but nothing in this package depends on the transport.
type UserID = int64

// State is the per-user dialogue position. The set of implementations below
// is closed; each variant carries exactly the data valid in that state, so a
// handler can never read a field that does not belong to its step.
type State interface {
	isState()
	// Tag returns a short stable name for logging.
	Tag() string
}

// Idle means no flow is active. It is both the initial and terminal state.
type Idle struct{}

// ChoosingProduct means the cart-building flow is active.
type ChoosingProduct struct{}

// SettingUpAutoOrder means the auto-order settings menu is shown.
type SettingUpAutoOrder struct{}

// ChoosingInterval means the user is picking a recurrence interval.
type ChoosingInterval struct{}

// ChoosingAutoOrderProducts means the user is building the auto-order
// product list.
type ChoosingAutoOrderProducts struct{}

// EnteringMinimum means the next free-text message is the minimum-stock
// value.
type EnteringMinimum struct{}

// ChoosingContainer means the next free-text message is a container id.
type ChoosingContainer struct{}

// ContainerActions means a container is selected and an action is awaited.
type ContainerActions struct {
	ContainerID string
}

// AddingProduct means the next free-text message names a product to add to
// the selected container.
type AddingProduct struct {
	ContainerID string
}

// RemovingProduct means the next free-text message names a product to remove
// from the selected container.
type RemovingProduct struct {
	ContainerID string
}

// QuickStep enumerates the steps of the single-product auto-order wizard.
type QuickStep int

const (
	// QuickEnterContainer awaits the container id.
	QuickEnterContainer QuickStep = iota
	// QuickEnterMinimum awaits the minimum-stock value.
	QuickEnterMinimum
	// QuickChooseInterval awaits an interval selection.
	QuickChooseInterval
)

// QuickOrderDraft is the single-product auto-order wizard in progress. The
// record accumulates fields as the steps advance.
type QuickOrderDraft struct {
	Product     string
	Step        QuickStep
	Container   string
	MinQuantity string
	Interval    string
}

func (Idle) isState()                      {}
func (ChoosingProduct) isState()           {}
func (SettingUpAutoOrder) isState()        {}
func (ChoosingInterval) isState()          {}
func (ChoosingAutoOrderProducts) isState() {}
func (EnteringMinimum) isState()           {}
func (ChoosingContainer) isState()         {}
func (ContainerActions) isState()          {}
func (AddingProduct) isState()             {}
func (RemovingProduct) isState()           {}
func (QuickOrderDraft) isState()           {}

func (Idle) Tag() string                      { return "idle" }
func (ChoosingProduct) Tag() string           { return "choosing_product" }
func (SettingUpAutoOrder) Tag() string        { return "setting_up_auto_order" }
func (ChoosingInterval) Tag() string          { return "choosing_interval" }
func (ChoosingAutoOrderProducts) Tag() string { return "choosing_auto_order_products" }
func (EnteringMinimum) Tag() string           { return "entering_minimum" }
func (ChoosingContainer) Tag() string         { return "choosing_container" }
func (ContainerActions) Tag() string          { return "container_actions" }
func (AddingProduct) Tag() string             { return "adding_product" }
func (RemovingProduct) Tag() string           { return "removing_product" }
func (QuickOrderDraft) Tag() string           { return "quick_order_draft" }

// Matcher reports whether a rule applies in the given state.
type Matcher func(State) bool

// Is builds a Matcher accepting exactly the state variant S, regardless of
// its field values.
func Is[S State]() Matcher {
	return func(s State) bool {
		_, ok := s.(S)
		return ok
	}
}

// Any matches every state.
func Any() Matcher {
	return func(State) bool { return true }
}
