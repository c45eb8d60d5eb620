package cardform

import (
	"encoding/json"
	"fmt"
)

// FieldState is the validation state of a single field.
type FieldState uint8

const (
	// FieldUnknown means the field has not been evaluated, or its evaluation
	// was invalidated because a field it depends on changed.
	FieldUnknown FieldState = iota
	FieldValid
	FieldInvalid
)

func (s FieldState) String() string {
	switch s {
	case FieldValid:
		return "valid"
	case FieldInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

func (s FieldState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// fieldEvent drives a fieldMachine.
type fieldEvent uint8

const (
	eventAccept fieldEvent = iota
	eventReject
	eventReset
)

func (e fieldEvent) String() string {
	switch e {
	case eventAccept:
		return "accept"
	case eventReject:
		return "reject"
	default:
		return "reset"
	}
}

// fieldTransitions lists every legal (from, event) -> to edge.
// Every event is accepted from every state.
var fieldTransitions = map[FieldState]map[fieldEvent]FieldState{
	FieldUnknown: {eventAccept: FieldValid, eventReject: FieldInvalid, eventReset: FieldUnknown},
	FieldValid:   {eventAccept: FieldValid, eventReject: FieldInvalid, eventReset: FieldUnknown},
	FieldInvalid: {eventAccept: FieldValid, eventReject: FieldInvalid, eventReset: FieldUnknown},
}

// fieldMachine is the tri-state machine behind each validated field.
// It is not safe for concurrent use; a Form is owned by one goroutine.
type fieldMachine struct {
	name    string
	current FieldState
}

func newFieldMachine(name string) *fieldMachine {
	return &fieldMachine{name: name, current: FieldUnknown}
}

func (m *fieldMachine) Current() FieldState {
	return m.current
}

// Fire applies an event and reports whether the state changed.
func (m *fieldMachine) Fire(event fieldEvent) (bool, error) {
	to, ok := fieldTransitions[m.current][event]
	if !ok {
		return false, fmt.Errorf("%w: field %s: %s on %s", ErrInvalidTransition, m.name, m.current, event)
	}
	changed := to != m.current
	m.current = to
	return changed, nil
}

// set fires accept or reject depending on ok.
func (m *fieldMachine) set(ok bool) bool {
	event := eventReject
	if ok {
		event = eventAccept
	}
	changed, _ := m.Fire(event)
	return changed
}

func (m *fieldMachine) reset() bool {
	changed, _ := m.Fire(eventReset)
	return changed
}
