package argyle

// ErrorKind identifies the failure or control-flow signal carried by an
// Error.
type ErrorKind uint8

const (
	// ErrorCustom carries a caller-supplied message.
	ErrorCustom ErrorKind = iota

	// ErrorEmpty means FlagRequired was set but no arguments were found.
	ErrorEmpty

	// ErrorNoArg means a required trailing argument was missing.
	ErrorNoArg

	// ErrorNoSubCmd means a required subcommand was missing or invalid.
	ErrorNoSubCmd

	// ErrorPassthru is a silent failure carrying its own exit code.
	ErrorPassthru

	// ErrorTooManyArgs means the total entry count would exceed 65535.
	ErrorTooManyArgs

	// ErrorTooManyKeys means more than 15 keys were found.
	ErrorTooManyKeys

	// ErrorWantsDynamicHelp signals a help request, possibly scoped to an
	// inferred subcommand.
	ErrorWantsDynamicHelp

	// ErrorWantsHelp signals a help request.
	ErrorWantsHelp

	// ErrorWantsVersion signals a version request.
	ErrorWantsVersion
)

// Error is the shared error taxonomy. The help/version kinds are control-flow
// signals rather than failures: callers are expected to branch on them, print
// the appropriate output, and exit with ExitCode (zero).
type Error struct {
	Kind ErrorKind

	// SubCommand is the inferred subcommand for ErrorWantsDynamicHelp, or
	// nil when none could be inferred.
	SubCommand []byte

	// Code is the exit code for ErrorPassthru.
	Code int

	// Message is the text for ErrorCustom.
	Message string
}

// Sentinels for the payload-free kinds, usable with errors.Is.
var (
	ErrEmpty        = &Error{Kind: ErrorEmpty}
	ErrNoArg        = &Error{Kind: ErrorNoArg}
	ErrNoSubCmd     = &Error{Kind: ErrorNoSubCmd}
	ErrTooManyArgs  = &Error{Kind: ErrorTooManyArgs}
	ErrTooManyKeys  = &Error{Kind: ErrorTooManyKeys}
	ErrWantsHelp    = &Error{Kind: ErrorWantsHelp}
	ErrWantsVersion = &Error{Kind: ErrorWantsVersion}
)

// Custom returns an Error carrying a caller-supplied message.
func Custom(msg string) *Error {
	return &Error{Kind: ErrorCustom, Message: msg}
}

// Passthru returns a silent Error whose ExitCode is code.
func Passthru(code int) *Error {
	return &Error{Kind: ErrorPassthru, Code: code}
}

// WantsDynamicHelp returns a help signal scoped to subCmd, which may be nil.
func WantsDynamicHelp(subCmd []byte) *Error {
	return &Error{Kind: ErrorWantsDynamicHelp, SubCommand: subCmd}
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorCustom:
		return e.Message
	case ErrorEmpty:
		return "missing options, flags, and/or arguments"
	case ErrorNoArg:
		return "missing required trailing argument"
	case ErrorNoSubCmd:
		return "missing/invalid subcommand"
	case ErrorTooManyArgs:
		return "too many arguments"
	case ErrorTooManyKeys:
		return "too many keys"
	case ErrorWantsDynamicHelp, ErrorWantsHelp:
		return "help requested"
	case ErrorWantsVersion:
		return "version requested"
	default: // ErrorPassthru
		return ""
	}
}

// Is matches by kind only, so errors.Is works against the sentinels
// regardless of payload.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// ExitCode maps the error to a process exit code: help/version signals are
// success, Passthru carries its own code, everything else is a generic
// failure.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case ErrorPassthru:
		return e.Code
	case ErrorWantsDynamicHelp, ErrorWantsHelp, ErrorWantsVersion:
		return 0
	default:
		return 1
	}
}
