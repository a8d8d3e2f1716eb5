package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the client supplied identifier of a directory or state.
	FieldID = "id"

	// FieldDirectoryID targets the parent directory reference of a state.
	FieldDirectoryID = "directory_id"

	// FieldPayload targets the opaque JSON payload of a state.
	FieldPayload = "payload"

	// FieldDirectories targets the directory list of a replace request:
	// its size, the validity of every item and id uniqueness.
	FieldDirectories = "directories"

	// FieldStates targets the state list of a replace request:
	// per-directory group sizes, validity of every item and id uniqueness.
	FieldStates = "states"

	// FieldReferences targets the rule that every state of a replace request
	// names a directory present in the same request.
	FieldReferences = "references"
)

// DataValidator implements the Validator interface for directories, states,
// their patches and the bulk replace request.
//
// Cardinality limits come from configuration so that the validator and the
// storage layer agree on the same ceilings.
type DataValidator struct {
	limits config.Limits
}

// NewDataValidator constructs a new DataValidator
// and returns it as the Validator interface.
func NewDataValidator(limits config.Limits) Validator {
	return &DataValidator{limits: limits}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms are accepted.
//
// Supported types:
//   - models.Directory / *models.Directory
//   - models.DirectoryPatch / *models.DirectoryPatch
//   - models.State / *models.State
//   - models.StatePatch / *models.StatePatch
//   - models.ReplaceRequest / *models.ReplaceRequest
func (v *DataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Directory:
		return v.validateDirectory(ctx, value, fields...)
	case *models.Directory:
		return v.validateDirectory(ctx, *value, fields...)

	case models.DirectoryPatch:
		return v.validateDirectoryPatch(ctx, value)
	case *models.DirectoryPatch:
		return v.validateDirectoryPatch(ctx, *value)

	case models.State:
		return v.validateState(ctx, value, fields...)
	case *models.State:
		return v.validateState(ctx, *value, fields...)

	case models.StatePatch:
		return v.validateStatePatch(ctx, value)
	case *models.StatePatch:
		return v.validateStatePatch(ctx, *value)

	case models.ReplaceRequest:
		return v.validateReplaceRequest(ctx, value, fields...)
	case *models.ReplaceRequest:
		return v.validateReplaceRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DataValidator) validateDirectory(ctx context.Context, dir models.Directory, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := validateID(dir.ID, ErrEmptyID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DataValidator) validateDirectoryPatch(ctx context.Context, patch models.DirectoryPatch) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	return nil
}

func (v *DataValidator) validateState(ctx context.Context, state models.State, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldDirectoryID, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := validateID(state.ID, ErrEmptyID); err != nil {
				return err
			}
		case FieldDirectoryID:
			if err := validateID(state.DirectoryID, ErrEmptyDirectoryID); err != nil {
				return err
			}
		case FieldPayload:
			if !isJSONObject(state.Payload) {
				return ErrInvalidPayload
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DataValidator) validateStatePatch(ctx context.Context, patch models.StatePatch) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if patch.DirectoryID != nil {
		if err := validateID(*patch.DirectoryID, ErrEmptyDirectoryID); err != nil {
			return err
		}
	}
	if len(patch.Payload) > 0 && !isJSONObject(patch.Payload) {
		return ErrInvalidPayload
	}
	return nil
}

// validateReplaceRequest checks a full data set before anything is deleted.
//
// Limit violations wrap ErrTooManyDirectories or ErrTooManyStates; for states
// the message names the offending directory.
func (v *DataValidator) validateReplaceRequest(ctx context.Context, req models.ReplaceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDirectories, FieldStates, FieldReferences}
	}

	for _, f := range fields {
		switch f {
		case FieldDirectories:
			if err := v.validateReplaceDirectories(ctx, req.Directories); err != nil {
				return err
			}
		case FieldStates:
			if err := v.validateReplaceStates(ctx, req.States); err != nil {
				return err
			}
		case FieldReferences:
			known := make(map[string]struct{}, len(req.Directories))
			for _, d := range req.Directories {
				known[d.ID] = struct{}{}
			}
			for _, s := range req.States {
				if _, ok := known[s.DirectoryID]; !ok {
					return fmt.Errorf("%w: state %q references %q", ErrUnknownDirectoryRef, s.ID, s.DirectoryID)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DataValidator) validateReplaceDirectories(ctx context.Context, dirs []models.Directory) error {
	if len(dirs) > v.limits.MaxDirectoriesPerUser {
		return fmt.Errorf("%w: got %d, limit is %d", ErrTooManyDirectories, len(dirs), v.limits.MaxDirectoriesPerUser)
	}

	seen := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		if err := v.validateDirectory(ctx, d); err != nil {
			return err
		}
		if _, dup := seen[d.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateDirectoryID, d.ID)
		}
		seen[d.ID] = struct{}{}
	}

	return nil
}

func (v *DataValidator) validateReplaceStates(ctx context.Context, states []models.State) error {
	perDirectory := make(map[string]int)
	for _, s := range states {
		perDirectory[s.DirectoryID]++
		if perDirectory[s.DirectoryID] > v.limits.MaxStatesPerDirectory {
			return fmt.Errorf("%w: directory %q has more than %d states",
				ErrTooManyStates, s.DirectoryID, v.limits.MaxStatesPerDirectory)
		}
	}

	seen := make(map[string]struct{}, len(states))
	for _, s := range states {
		if err := v.validateState(ctx, s); err != nil {
			return fmt.Errorf("state %q: %w", s.ID, err)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateStateID, s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	return nil
}

// validateID rejects blank identifiers with errEmpty and identifiers with
// leading or trailing whitespace with ErrPaddedID.
func validateID(id string, errEmpty error) error {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return errEmpty
	}
	if trimmed != id {
		return fmt.Errorf("%w: %q", ErrPaddedID, id)
	}
	return nil
}

// isJSONObject reports whether raw holds a single JSON object.
func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}
