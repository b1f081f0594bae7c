package apperrors

import "errors"

// Sentinel errors for the whole backend. Services return these (wrapped with
// fmt.Errorf %w where extra context helps) and the HTTP error handler maps
// them to status codes.
var (
	// ErrNotFound means the requested resource (room code, user, roadmap...) does not exist or is inactive.
	ErrNotFound = errors.New("resource not found")

	// ErrPermissionDenied means the actor has no active participant/owner relationship with the resource.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrConflict means a duplicate enrollment or registration was attempted.
	ErrConflict = errors.New("conflict")

	// ErrIDGeneration means room-code generation exhausted its collision retries.
	ErrIDGeneration = errors.New("failed to generate a unique identifier")

	// ErrUpstreamUnavailable means the AI collaborator could not be reached.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrUnauthorized means credentials are missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
)
