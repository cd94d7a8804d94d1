// Package api exposes the vocabulary services over HTTP. Handlers decode and
// validate requests, call the services, and translate results and errors into
// JSON responses.
package api
