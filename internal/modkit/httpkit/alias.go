// Package httpkit is what modules import to register handlers, so they never
// reach into the platform http packages directly
package httpkit

import (
	phttp "wordlebot/internal/platform/net/http"
)

type (
	// Router is the platform router seam
	Router = phttp.Router
	// Response is a return-style handler result
	Response = phttp.Response
	// Envelope is the JSON body every route writes
	Envelope = phttp.Envelope
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// Accepted returns a 202 response
func Accepted(data any) Response { return phttp.Accepted(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response whose status comes from the error code
func Error(err error) Response { return phttp.Error(err) }
