// Package clientip resolves the address of the client behind proxies.
//
// Addresses are read from CF-Connecting-IP, X-Forwarded-For and X-Real-IP
// before falling back to the connection's RemoteAddr. Deploy behind a proxy
// that overwrites these headers; otherwise clients can choose their own
// address.
package clientip
