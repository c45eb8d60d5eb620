package cardform

import (
	"context"
	"fmt"
)

// Field names a form input. Values match the JSON and form keys of FormData.
type Field string

const (
	FieldHolder Field = "ccHolder"
	FieldNumber Field = "ccNumber"
	FieldCVV    Field = "ccCVV"
)

// ParseField validates a field name received from a client.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldHolder, FieldNumber, FieldCVV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// EventKind distinguishes field edits from submit requests.
type EventKind uint8

const (
	EventChange EventKind = iota + 1
	EventSubmit
)

func (k EventKind) String() string {
	switch k {
	case EventChange:
		return "change"
	case EventSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// Event is a single input to a Form. Change events carry the full field value,
// never a delta, so a dropped event is repaired by the next one.
type Event struct {
	Kind  EventKind
	Field Field
	Value string
}

// Change builds a field change event.
func Change(field Field, value string) Event {
	return Event{Kind: EventChange, Field: field, Value: value}
}

// SubmitRequest builds a submit event.
func SubmitRequest() Event {
	return Event{Kind: EventSubmit}
}

// Apply routes an event to the matching form operation.
func (f *Form) Apply(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case EventChange:
		switch ev.Field {
		case FieldHolder:
			f.HolderChanged(ev.Value)
		case FieldNumber:
			f.NumberChanged(ev.Value)
		case FieldCVV:
			f.CVVChanged(ev.Value)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, ev.Field)
		}
		return nil
	case EventSubmit:
		return f.Submit(ctx)
	default:
		return fmt.Errorf("cardform: unsupported event kind %d", ev.Kind)
	}
}
