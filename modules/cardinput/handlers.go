package cardinput

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/cardform"
	"github.com/dmitrymomot/cardform/handler"
	"github.com/dmitrymomot/cardform/pkg/environment"
	"github.com/dmitrymomot/cardform/pkg/logger"
)

const toastTarget = "#toast-container"

type PageRequest struct{}

func (s *Service) page(ctx handler.Context, _ PageRequest) handler.Response {
	id := uuid.NewString()
	form := cardform.New(nil, s.formOptions()...)

	params := PageParams{
		FormID:    id,
		BasePath:  s.cfg.MountPath,
		Signals:   s.signals(form, id),
		Submitted: ctx.Request().URL.Query().Has("submitted"),
	}
	if !environment.IsProduction(ctx) {
		params.TestCards = testCards
	}
	return handler.Templ(s.views.Page(params))
}

type StreamRequest struct {
	FormID string `json:"formId"`
}

// stream owns the form of a session for as long as the client stays
// connected. Input and submit requests reach the form through the session's
// event stream.
func (s *Service) stream(_ handler.Context, req StreamRequest) handler.Response {
	if !validFormID(req.FormID) {
		return handler.Error(ErrInvalidFormID)
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		events := cardform.NewStream(s.cfg.StreamBuffer)
		defer events.Close()

		if err := s.sessions.open(req.FormID, events); err != nil {
			return err
		}
		defer s.sessions.close(req.FormID, events)

		log := s.logger.With(logger.Component("cardinput"), logger.FormID(req.FormID))
		log.DebugContext(stream, "form session opened")
		defer log.DebugContext(stream, "form session closed")

		form := cardform.New(s.onSubmit, append(s.formOptions(), cardform.WithLogger(log))...)
		sub := events.Subscribe(stream)

		if err := stream.SendSignals(s.signals(form, "")); err != nil {
			_ = sub.Close()
			return err
		}

		return form.Bind(stream, sub, func(ctx context.Context, ev cardform.Event, err error) error {
			var toast *ToastParams
			switch {
			case ev.Kind == cardform.EventSubmit && err == nil:
				toast = &ToastParams{Type: "success", Message: "Card details submitted"}
			case errors.Is(err, cardform.ErrSubmitBlocked):
				toast = &ToastParams{Type: "warning", Message: "Card details are incomplete"}
			case errors.Is(err, cardform.ErrSubmitFailed), errors.Is(err, cardform.ErrNoSubmitHandler):
				log.ErrorContext(ctx, "card submit failed", logger.Error(err))
				toast = &ToastParams{Type: "error", Message: "The card could not be processed"}
			case err != nil:
				log.WarnContext(ctx, "form event rejected", logger.Event(ev.Kind.String()), logger.Error(err))
			}

			if toast != nil {
				if err := stream.SendComponent(s.views.Toast(*toast),
					handler.WithTarget(toastTarget),
					handler.WithPatchMode(handler.PatchPrepend),
				); err != nil {
					return err
				}
			}
			return stream.SendSignals(s.signals(form, ""))
		})
	})
}

type InputRequest struct {
	Field  string `path:"field"`
	FormID string `json:"formId"`
	Holder string `json:"ccHolder"`
	Number string `json:"ccNumber"`
	CVV    string `json:"ccCVV"`
}

func (s *Service) input(ctx handler.Context, req InputRequest) handler.Response {
	field, err := cardform.ParseField(req.Field)
	if err != nil {
		return handler.Error(ErrUnknownField)
	}
	if !validFormID(req.FormID) {
		return handler.Error(ErrInvalidFormID)
	}

	var value string
	switch field {
	case cardform.FieldHolder:
		value = req.Holder
	case cardform.FieldNumber:
		value = req.Number
	case cardform.FieldCVV:
		value = req.CVV
	}

	return s.publish(ctx, req.FormID, cardform.Change(field, value))
}

type SubmitRequest struct {
	FormID string `json:"formId" form:"-"`
	Holder string `json:"ccHolder" form:"ccHolder"`
	Number string `json:"ccNumber" form:"ccNumber"`
	CVV    string `json:"ccCVV" form:"ccCVV"`
}

// submit gates DataStar submissions through the session form. Plain form
// posts, sent when scripts are disabled, are validated and submitted with a
// form built for the request.
func (s *Service) submit(ctx handler.Context, req SubmitRequest) handler.Response {
	if handler.IsDataStar(ctx.Request()) {
		if !validFormID(req.FormID) {
			return handler.Error(ErrInvalidFormID)
		}
		return s.publish(ctx, req.FormID, cardform.SubmitRequest())
	}

	data := cardform.FormData{Holder: req.Holder, Number: req.Number, CVV: req.CVV}
	if err := cardform.Validate(data, s.formOptions()...); err != nil {
		ve, ok := handler.AsValidationError(err)
		if !ok {
			return handler.Error(err)
		}
		id := uuid.NewString()
		form := cardform.New(nil, s.formOptions()...)
		form.NumberChanged(data.Number)
		form.CVVChanged(data.CVV)
		return handler.TemplStatus(http.StatusBadRequest, s.views.Page(PageParams{
			FormID:   id,
			BasePath: s.cfg.MountPath,
			Signals:  s.signals(form, id),
			Holder:   data.Holder,
			Errors:   ve,
		}))
	}

	form := cardform.New(s.onSubmit, s.formOptions()...)
	form.HolderChanged(data.Holder)
	form.NumberChanged(data.Number)
	form.CVVChanged(data.CVV)
	if err := form.Submit(ctx); err != nil {
		if errors.Is(err, cardform.ErrSubmitBlocked) {
			return handler.Error(handler.ErrUnprocessableEntity)
		}
		return handler.Error(errors.Join(ErrSubmitFailed, err))
	}

	return handler.Redirect(s.cfg.MountPath + "/?submitted=1")
}

func (s *Service) publish(ctx context.Context, formID string, ev cardform.Event) handler.Response {
	stream, ok := s.sessions.get(formID)
	if !ok {
		return handler.Error(ErrSessionNotFound)
	}
	if err := stream.Publish(ctx, ev); err != nil {
		if errors.Is(err, cardform.ErrStreamClosed) {
			return handler.Error(ErrSessionClosed)
		}
		return handler.Error(err)
	}
	return handler.Empty()
}

func validFormID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
