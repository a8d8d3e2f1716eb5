package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername  = errors.New("username must be 3-20 characters of letters, digits or underscore")
	ErrEmptyID          = errors.New("id is required")
	ErrEmptyDirectoryID = errors.New("directoryId is required")
	ErrPaddedID         = errors.New("ids must not start or end with whitespace")
	ErrInvalidPayload   = errors.New("state must be a JSON object")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrTooManyDirectories = errors.New("too many directories")
	ErrTooManyStates      = errors.New("too many states in directory")

	ErrDuplicateDirectoryID = errors.New("duplicate directory id")
	ErrDuplicateStateID     = errors.New("duplicate state id")
	ErrUnknownDirectoryRef  = errors.New("state references a directory that is not part of the request")
)
