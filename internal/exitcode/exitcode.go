// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, bad settings, unknown list).
	UserError = 1

	// AuthError indicates missing or rejected credentials.
	AuthError = 2

	// BackendError indicates a remote API or network error.
	BackendError = 3

	// IOError indicates the data file or terminal could not be read or written.
	IOError = 4
)
