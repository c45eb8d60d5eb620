package logger

import "log/slog"

// Error records err under "error". A nil error yields an empty Attr, which
// slog skips.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names what happened, e.g. "change" or "submit".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// RequestID records the request identifier. Empty ids are skipped.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ClientIP records the client address.
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// FormID records a form session identifier. Empty ids are skipped.
func FormID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("form_id", id)
}

// Field records a form field name. Never pass field values.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Brand records a detected card brand.
func Brand(name string) slog.Attr {
	return slog.String("card_brand", name)
}

// Masked records a masked card number under "card".
func Masked(number string) slog.Attr {
	return slog.String("card", number)
}
