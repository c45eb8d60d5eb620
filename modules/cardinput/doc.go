// Package cardinput serves a credit card form whose validation runs on the
// server and is pushed to the browser with DataStar.
//
// Routes, relative to the mount path:
//
//	GET  /               form page with a new form id
//	GET  /stream         event stream of a form session
//	POST /input/{field}  field edit (ccHolder, ccNumber, ccCVV)
//	POST /submit         submit; plain form posts are handled without a session
//
// A session exists while its stream is connected. The stream goroutine owns
// the cardform.Form; input and submit requests only publish events to it and
// return immediately. After every event the stream patches the client
// signals (brand, cvvLabel, cvvSize, cvvDisabled, cvvState, canSubmit, ...).
//
// Card numbers and codes are never logged or stored by this package.
package cardinput
