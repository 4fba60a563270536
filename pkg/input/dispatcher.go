package input

import "github.com/go-drift/applet/pkg/graphics"

// Handler receives the resolved label and highlight color of every dispatched code.
type Handler func(label Label, highlight graphics.Color)

// Sink accepts raw codes from the host runtime's input pipeline.
type Sink interface {
	Dispatch(code Code) (Label, graphics.Color)
}

// Dispatcher resolves codes through a Table and notifies a single handler.
//
// Calls are expected to arrive one at a time from the host runtime; the
// dispatcher itself does no locking around the handler.
type Dispatcher struct {
	table   *Table
	handler Handler
}

// NewDispatcher returns a dispatcher over table, or over DefaultTable when
// table is nil.
func NewDispatcher(table *Table) *Dispatcher {
	if table == nil {
		table = DefaultTable()
	}
	return &Dispatcher{table: table}
}

// Register replaces the active handler. Passing nil clears it.
func (d *Dispatcher) Register(h Handler) {
	d.handler = h
}

// Table returns the table the dispatcher resolves against.
func (d *Dispatcher) Table() *Table {
	return d.table
}

// Dispatch resolves code and, if a handler is registered, calls it
// synchronously before returning. It never fails.
func (d *Dispatcher) Dispatch(code Code) (Label, graphics.Color) {
	action := d.table.Lookup(code)
	if h := d.handler; h != nil {
		h(action.Label, action.Highlight)
	}
	return action.Label, action.Highlight
}
