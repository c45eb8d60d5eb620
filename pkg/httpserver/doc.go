// Package httpserver runs an http.Server with environment driven settings,
// signal handling and graceful shutdown that also ends open SSE streams.
package httpserver
