package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat     ErrKind = iota // malformed .reg content (bad header, section, payload)
	ErrKindIO                        // file unreadable/unwritable
	ErrKindValidation                // bad key path, bad value name, out-of-range setting
	ErrKindNotFound                  // missing prefix, file, key, or value
	ErrKindState                     // invalid operation for current state (e.g., no prefix loaded)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality so the sentinels below work with errors.Is even
// when the returned error carries its own message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrParse indicates malformed .reg text.
	ErrParse = &Error{Kind: ErrKindFormat, Msg: "malformed .reg content"}
	// ErrNoRegistryFiles indicates a prefix contained no loadable registry file.
	ErrNoRegistryFiles = &Error{Kind: ErrKindNotFound, Msg: "no valid registry files found in prefix"}
	// ErrNotFound indicates a missing key/value/path.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrValidation indicates a rejected key path, value name, or range.
	ErrValidation = &Error{Kind: ErrKindValidation, Msg: "validation failed"}
	// ErrNoPrefix indicates an editor operation that requires a loaded prefix.
	ErrNoPrefix = &Error{Kind: ErrKindState, Msg: "no prefix loaded"}
)

// FormatError wraps err (may be nil) as an ErrKindFormat error.
func FormatError(msg string, err error) *Error {
	return &Error{Kind: ErrKindFormat, Msg: msg, Err: err}
}

// IOError wraps err as an ErrKindIO error.
func IOError(msg string, err error) *Error {
	return &Error{Kind: ErrKindIO, Msg: msg, Err: err}
}

// ValidationError builds an ErrKindValidation error from a message.
func ValidationError(msg string) *Error {
	return &Error{Kind: ErrKindValidation, Msg: msg}
}

// -----------------------------------------------------------------------------
// Registry Value Types
// -----------------------------------------------------------------------------

// RegType enumerates the on-disk registry value types the regedit5 dialect
// can carry. The numbers align with Windows definitions.
type RegType uint32

const (
	REG_NONE      RegType = 0
	REG_SZ        RegType = 1
	REG_EXPAND_SZ RegType = 2
	REG_BINARY    RegType = 3
	REG_DWORD     RegType = 4
	REG_MULTI_SZ  RegType = 7
)

// String implements the Stringer interface for RegType.
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	default:
		return "REG_UNKNOWN"
	}
}

// Format tags the serialization dialect of a Registry. Only one dialect is
// supported; the tag exists so documents state it explicitly.
type Format int

// Regedit5 is the "Windows Registry Editor Version 5.00" text dialect.
const Regedit5 Format = iota

func (f Format) String() string {
	if f == Regedit5 {
		return "regedit5"
	}
	return "unknown"
}

// -----------------------------------------------------------------------------
// Validation diagnostics
// -----------------------------------------------------------------------------

// ValidationIssue describes one violation found by whole-registry validation.
// ValueName is empty when the issue concerns the key path itself.
type ValidationIssue struct {
	KeyPath   string
	ValueName string
	Message   string
}

func (v ValidationIssue) String() string {
	if v.ValueName == "" {
		return v.KeyPath + ": " + v.Message
	}
	return v.KeyPath + " [" + v.ValueName + "]: " + v.Message
}
