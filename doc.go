// Package cardform implements the interactive validation behind a credit card
// input form: card brand detection, security code rules and a gated submit.
//
// A Form holds the raw values of three fields (holder, number, CVV) and the
// state derived from them. Every edit recomputes that state:
//
//	raw edit -> number classification -> CVV state -> View -> submit gate
//
// Invalid input is never an error; it is reflected in FieldState values and
// in the View. Errors are reserved for operational failures such as a blocked
// submit or a failing callback.
//
// Basic usage:
//
//	form := cardform.New(func(ctx context.Context, data cardform.FormData) error {
//		return charge(ctx, data)
//	})
//	form.NumberChanged("4111 1111 1111 1111")
//	form.CVVChanged("123")
//	if form.CanSubmit() {
//		err := form.Submit(ctx)
//	}
//
// A Form is owned by one goroutine. To drive it from concurrent producers,
// such as HTTP handlers, publish Events to a Stream and let the owner Bind:
//
//	stream := cardform.NewStream(16)
//	sub := stream.Subscribe(ctx)
//	go form.Bind(ctx, sub, func(ctx context.Context, ev cardform.Event, err error) error {
//		return push(form.View())
//	})
//	_ = stream.Publish(ctx, cardform.Change(cardform.FieldNumber, "4111"))
package cardform
