package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/exp/maps"

	"github.com/ARM-software/golang-closures/commonerrors"
	"github.com/ARM-software/golang-closures/field"
)

// WrapFieldValidationError creates an error resulting from the validation of a field in a structure
func WrapFieldValidationError(fieldName string, mapStructure, prefix *string, err error) IValidationError {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	vErr.RecordField(fieldName, mapStructure, prefix)
	return vErr
}

// WrapValidationError creates an error resulting from the validation of a structure.
// The resulting error is always of type commonerrors.ErrInvalid.
func WrapValidationError(prefix *string, err error) error {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	if prefix != nil && strings.TrimSpace(*prefix) != "" {
		vErr.RecordPrefix(*prefix)
	}
	return vErr
}

// IValidationError defines a typical structure validation error.
type IValidationError interface {
	error
	fmt.Stringer
	GetMapStructurePath() string
	GetTreePath() string
	GetReason() string
	Unwrap() error
	RecordField(fieldName string, mapStructureFieldName *string, mapStructurePrefix *string)
	RecordPrefix(mapStructurePrefix string)
}

type validationError struct {
	tree               []string
	mapStructureTree   []string
	mapStructurePrefix *string
	reason             string
}

func (v *validationError) RecordField(fieldName string, mapStructureFieldName *string, mapStructurePrefix *string) {
	v.tree = append([]string{strings.TrimSpace(fieldName)}, v.tree...)
	if mapStructureFieldName != nil {
		v.mapStructureTree = append([]string{strings.ToUpper(strings.TrimSpace(*mapStructureFieldName))}, v.mapStructureTree...)
	}
	v.mapStructurePrefix = mapStructurePrefix
}

func (v *validationError) RecordPrefix(mapStructurePrefix string) {
	v.mapStructurePrefix = field.ToOptionalString(mapStructurePrefix)
}

func (v *validationError) Error() string {
	mapstructureStr := v.GetMapStructurePath()
	if mapstructureStr != "" {
		mapstructureStr = fmt.Sprintf(" [%v]", mapstructureStr)
	}
	treeStr := v.GetTreePath()
	if treeStr != "" {
		treeStr = fmt.Sprintf(" (%v)", treeStr)
	}
	reasonStr := v.GetReason()
	if reasonStr != "" {
		reasonStr = fmt.Sprintf(" %v", reasonStr)
	}
	return commonerrors.Newf(v.Unwrap(), "structure failed validation:%v%v%v", treeStr, mapstructureStr, reasonStr).Error()
}

func (v *validationError) GetMapStructurePath() string {
	if len(v.mapStructureTree) == 0 {
		return ""
	}
	mapstructureStr := strings.ReplaceAll(strings.Join(v.mapStructureTree, EnvVarSeparator), "-", EnvVarSeparator)
	if v.mapStructurePrefix != nil {
		mapstructureStr = fmt.Sprintf("%v%v%v", strings.ToUpper(strings.TrimSpace(*v.mapStructurePrefix)), EnvVarSeparator, mapstructureStr)
	}
	return mapstructureStr
}

func (v *validationError) GetTreePath() string {
	return strings.Join(v.tree, "->")
}

func (v *validationError) GetReason() string {
	return v.reason
}

func (v *validationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func (v *validationError) String() string {
	return v.Error()
}

func newValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var oes validation.Errors
	if errors.As(err, &oes) {
		return newValidationErrorFromOzzoValidationErrors(oes)
	}
	var oe validation.Error
	if errors.As(err, &oe) {
		return &validationError{reason: oe.Error()}
	}
	return &validationError{reason: err.Error()}
}

func newValidationErrorFromOzzoValidationErrors(oes validation.Errors) *validationError {
	params := maps.Keys(oes)
	slices.Sort(params)
	if len(params) == 0 {
		return &validationError{reason: oes.Error()}
	}
	// Only the first failing field is reported
	param := params[0]
	veo := newValidationError(oes[param])
	if veo == nil {
		veo = &validationError{}
	}
	veo.RecordField(param, field.ToOptionalString(param), nil)
	return veo
}
