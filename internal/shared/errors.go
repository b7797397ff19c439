package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Session errors. ErrNotAuthenticated is raised locally, before any
	// request leaves the client.
	ErrNotAuthenticated      = fmt.Errorf("you must be logged in")
	ErrInvalidServerResponse = fmt.Errorf("invalid response from server")
	ErrLoginFailed           = fmt.Errorf("invalid username or password")

	// API and backend errors
	ErrTimeout            = fmt.Errorf("operation timed out")
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrPlaylistNotFound   = fmt.Errorf("playlist not found")
	ErrSongNotFound       = fmt.Errorf("song not found")

	// Survey errors
	ErrInvalidAnswer    = fmt.Errorf("answer must be between 1 and 5")
	ErrSurveyComplete   = fmt.Errorf("survey already complete")
	ErrSurveyIncomplete = fmt.Errorf("survey not yet complete")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
