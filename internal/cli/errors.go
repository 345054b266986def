package cli

import "errors"

var (
	// ErrDiagnosticsFound is returned by check when the document has
	// structural issues.
	ErrDiagnosticsFound = errors.New("structural issues found")
	// ErrChecklistFailed is returned by checklist when any entry fails.
	ErrChecklistFailed = errors.New("checklist failed")
	// ErrAborted signals the user declined or interrupted a prompt.
	ErrAborted = errors.New("aborted")
	// ErrWriteNeedsFile is returned when --write is used without a file path.
	ErrWriteNeedsFile = errors.New("--write requires a file argument")
)
