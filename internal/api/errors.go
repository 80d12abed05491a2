// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized marks the authentication-failure class. It is the only
// error class handled globally: when any call comes back 401 the client has
// already cleared the stored credential, and callers must route the user to
// the login entry point rather than retry.
var ErrUnauthorized = errors.New("session expired")

// Error is a non-2xx answer from the backend, carrying the status and any
// decoded error payload. Validation failures arrive as field-keyed message
// lists; everything else lands in Message.
type Error struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api: validation failed (status %d)", e.Status)
	}
	return fmt.Sprintf("api: request failed (status %d)", e.Status)
}

// Has reports whether the server flagged the named field.
func (e *Error) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// FieldMessage returns the first server message for the named field.
func (e *Error) FieldMessage(field string) string {
	if msgs := e.Fields[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// AsError unwraps err into *Error when possible.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// decodeError turns a non-2xx body into *Error. Bodies come in three
// shapes: {"error": "..."} or {"detail": "..."} for whole-request failures,
// and {"field": ["msg", ...]} for validation failures. Anything undecodable
// yields a bare status error.
func decodeError(status int, body []byte) *Error {
	e := &Error{Status: status}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		e.Message = http.StatusText(status)
		return e
	}
	for key, val := range raw {
		var msg string
		if err := json.Unmarshal(val, &msg); err == nil {
			if key == "error" || key == "detail" {
				e.Message = msg
			} else {
				e.field(key, msg)
			}
			continue
		}
		var msgs []string
		if err := json.Unmarshal(val, &msgs); err == nil {
			for _, m := range msgs {
				e.field(key, m)
			}
		}
	}
	if e.Message == "" && len(e.Fields) == 0 {
		e.Message = http.StatusText(status)
	}
	return e
}

func (e *Error) field(name, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[name] = append(e.Fields[name], msg)
}
