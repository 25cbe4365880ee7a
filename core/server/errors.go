package server

import "errors"

var (
	ErrMissingAddress       = errors.New("server address is required")
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrBindFailed           = errors.New("failed to bind listener")
	ErrFailedLoadCert       = errors.New("failed to load certificate")
)
