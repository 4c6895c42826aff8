package handlers

import "errors"

var (
	ErrInprocNotFound = errors.New("handlers: inproc handler not registered")
	ErrForwardLimit   = errors.New("handlers: forward limit reached")
)
