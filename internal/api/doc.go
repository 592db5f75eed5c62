// Package api is the client for the VPN control REST API.
//
// The dashboard only consumes five endpoints:
//
//	GET  /api/vpn/status      current StatusSnapshot
//	GET  /api/servers         {"servers": [ServerDescriptor...]}
//	POST /api/vpn/connect     {"server": id} -> ActionResult
//	POST /api/vpn/disconnect  -> ActionResult
//	GET  /api/vpn/config      ConfigDocument
//
// Every call takes a context and returns one of three error kinds, all
// usable with errors.As: *TransportError when the request never produced a
// response, *StatusError for a non-2xx reply, and *DecodeError when the body
// is not the expected JSON. An ActionResult with Success=false is reported
// as *ActionError so callers treat it like any other failure.
//
// The VPNAPI interface is what the TUI controller depends on, which keeps it
// testable with an in-memory fake.
package api
