package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("entity already exists")

	// ErrRateLimited is raised before a generative call when the daily or
	// per-minute request budget is exhausted. Callers map it to a
	// "please wait" reply instead of a generic failure.
	ErrRateLimited = errors.New("request budget exhausted")

	// ErrQuotaExceeded marks an external-API usage cap breach (cloud
	// sentiment daily cap, translation character budget).
	ErrQuotaExceeded = errors.New("usage quota exceeded")
)
