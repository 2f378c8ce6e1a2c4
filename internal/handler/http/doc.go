// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the HTML
// form interface. Cross-cutting concerns such as session authentication,
// CSRF verification, request tracing, access logging, and response
// compression are handled in this package before requests are delegated to
// the service layer.
package http
