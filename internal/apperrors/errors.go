package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewShowNotFoundError creates a specific error for when a show slug does not map to a known show.
func NewShowNotFoundError(slug string) *ErrNotFound {
	return NewNotFoundError("show", slug)
}

// Lookup stages.
const (
	StageShow    = "show"
	StageCatalog = "catalog"
)

// ErrLookup is returned when the show-id lookup or a catalog season listing fails.
// It aborts the whole run before anything is downloaded.
type ErrLookup struct {
	Stage  string
	ShowID int
	Season int
	Err    error
}

// Error implements the error interface.
func (e *ErrLookup) Error() string {
	switch {
	case e.Season > 0:
		return fmt.Sprintf("%s lookup failed for show %d season %d: %v", e.Stage, e.ShowID, e.Season, e.Err)
	case e.ShowID > 0:
		return fmt.Sprintf("%s lookup failed for show %d: %v", e.Stage, e.ShowID, e.Err)
	default:
		return fmt.Sprintf("%s lookup failed: %v", e.Stage, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *ErrLookup) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrLookup) Is(target error) bool {
	_, ok := target.(*ErrLookup)
	return ok
}

// ErrResolution is returned when the per-episode media lookup fails or returns an unparsable payload.
type ErrResolution struct {
	EpisodeID int
	Err       error
}

// Error implements the error interface.
func (e *ErrResolution) Error() string {
	return fmt.Sprintf("media lookup failed for episode %d: %v", e.EpisodeID, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ErrResolution) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrResolution) Is(target error) bool {
	_, ok := target.(*ErrResolution)
	return ok
}

// ErrMissingVideoURL is returned when an episode has no active media candidate and must be downloaded.
type ErrMissingVideoURL struct {
	Filename string
}

// Error implements the error interface.
func (e *ErrMissingVideoURL) Error() string {
	return fmt.Sprintf("episode %s does not have a video URL", e.Filename)
}

// Is allows for error checking with errors.Is().
func (e *ErrMissingVideoURL) Is(target error) bool {
	_, ok := target.(*ErrMissingVideoURL)
	return ok
}

// Download kinds.
const (
	KindVideo    = "video"
	KindSubtitle = "subtitle"
)

// ErrDownload is returned when a transfer fails, either on the network or on the filesystem.
// A partially written file may remain at Path.
type ErrDownload struct {
	Kind string
	URL  string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ErrDownload) Error() string {
	return fmt.Sprintf("failed to download %s from %s to %s: %v", e.Kind, e.URL, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ErrDownload) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrDownload) Is(target error) bool {
	_, ok := target.(*ErrDownload)
	return ok
}
