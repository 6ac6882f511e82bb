package dialog

// Menu groups selectable labels into display rows. It is a pure
// presentation value; the transport adapter decides how rows become an
// actual keyboard.
type Menu struct {
	rows [][]string
}

// NewMenu builds a menu from ordered rows of labels. Empty rows are
// dropped; the input slices are copied.
func NewMenu(rows ...[]string) Menu {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		out = append(out, append([]string(nil), row...))
	}
	return Menu{rows: out}
}

// Rows returns the display rows in order.
func (m Menu) Rows() [][]string {
	return m.rows
}

// Empty reports whether the menu has no rows.
func (m Menu) Empty() bool {
	return len(m.rows) == 0
}
