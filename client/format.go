// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"slices"
	"strings"

	"github.com/agntcy/anytype/api/commands"
	"github.com/agntcy/anytype/api/wire"
)

// FormatKind is the kind of value a relation holds.
type FormatKind int

const (
	FormatText FormatKind = iota
	FormatNumber
	FormatSelect
	FormatMultiSelect
	FormatDate
	FormatFileOrMedia
	FormatCheckbox
	FormatURL
	FormatEmail
	FormatPhone
	FormatObject
)

var formatKindNames = map[FormatKind]string{
	FormatText:        "Text",
	FormatNumber:      "Number",
	FormatSelect:      "Select",
	FormatMultiSelect: "MultiSelect",
	FormatDate:        "Date",
	FormatFileOrMedia: "FileOrMedia",
	FormatCheckbox:    "Checkbox",
	FormatURL:         "Url",
	FormatEmail:       "Email",
	FormatPhone:       "Phone",
	FormatObject:      "Object",
}

func (k FormatKind) String() string {
	if name, ok := formatKindNames[k]; ok {
		return name
	}

	return "Unknown"
}

// RelationFormat is the declared format of a relation. ObjectTypes is only
// meaningful for FormatObject, where it lists the allowed object types.
// An empty list allows objects of any type.
//
// Construct formats with Format or ObjectFormat so ObjectTypes stays sorted
// and free of duplicates.
type RelationFormat struct {
	Kind        FormatKind
	ObjectTypes []ObjectTypeID
}

// Format returns the format of a scalar kind. Use ObjectFormat for FormatObject.
func Format(kind FormatKind) RelationFormat {
	return RelationFormat{Kind: kind}
}

// ObjectFormat returns an object reference format allowing the given types.
func ObjectFormat(types ...ObjectTypeID) RelationFormat {
	set := slices.Clone(types)
	slices.Sort(set)

	return RelationFormat{Kind: FormatObject, ObjectTypes: slices.Compact(set)}
}

func (f RelationFormat) Equal(other RelationFormat) bool {
	if f.Kind != other.Kind {
		return false
	}

	if f.Kind != FormatObject {
		return true
	}

	return slices.Equal(f.typeSet(), other.typeSet())
}

// IsSuperset reports whether a value of format other may be stored in a
// relation of format f. Scalar formats only accept themselves. An object
// format accepts another object format when it allows any type, or when its
// allowed types contain all of the other's.
func (f RelationFormat) IsSuperset(other RelationFormat) bool {
	if f.Kind != other.Kind {
		return false
	}

	if f.Kind != FormatObject || len(f.ObjectTypes) == 0 {
		return true
	}

	allowed := f.typeSet()
	for _, t := range other.ObjectTypes {
		if _, found := slices.BinarySearch(allowed, t); !found {
			return false
		}
	}

	return true
}

func (f RelationFormat) String() string {
	if f.Kind != FormatObject {
		return f.Kind.String()
	}

	types := f.typeSet()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}

	return "Object { types: [" + strings.Join(names, ", ") + "] }"
}

// typeSet returns the allowed types sorted and without duplicates, whether
// or not f was built with ObjectFormat.
func (f RelationFormat) typeSet() []ObjectTypeID {
	return ObjectFormat(f.ObjectTypes...).ObjectTypes
}

// code returns the backend format code of f.
func (f RelationFormat) code() commands.RelationFormat {
	switch f.Kind {
	case FormatText:
		return commands.FormatLongText
	case FormatNumber:
		return commands.FormatNumber
	case FormatSelect:
		return commands.FormatStatus
	case FormatMultiSelect:
		return commands.FormatTag
	case FormatDate:
		return commands.FormatDate
	case FormatFileOrMedia:
		return commands.FormatFile
	case FormatCheckbox:
		return commands.FormatCheckbox
	case FormatURL:
		return commands.FormatURL
	case FormatEmail:
		return commands.FormatEmail
	case FormatPhone:
		return commands.FormatPhone
	case FormatObject:
		return commands.FormatObject
	default:
		panic("unknown relation format kind " + f.Kind.String())
	}
}

// formatFromCode maps a backend format code back to a RelationFormat.
// Emoji and Relations formats cannot be expressed and fail to convert.
func formatFromCode(code commands.RelationFormat, types []ObjectTypeID) (RelationFormat, error) {
	switch code {
	case commands.FormatLongText, commands.FormatShortText:
		return Format(FormatText), nil
	case commands.FormatNumber:
		return Format(FormatNumber), nil
	case commands.FormatStatus:
		return Format(FormatSelect), nil
	case commands.FormatTag:
		return Format(FormatMultiSelect), nil
	case commands.FormatDate:
		return Format(FormatDate), nil
	case commands.FormatFile:
		return Format(FormatFileOrMedia), nil
	case commands.FormatCheckbox:
		return Format(FormatCheckbox), nil
	case commands.FormatURL:
		return Format(FormatURL), nil
	case commands.FormatEmail:
		return Format(FormatEmail), nil
	case commands.FormatPhone:
		return Format(FormatPhone), nil
	case commands.FormatObject:
		return ObjectFormat(types...), nil
	default:
		return RelationFormat{}, &wire.ConversionError{
			Err:   wire.ErrInvalidEnumValue,
			Field: commands.KeyRelationFormat,
			Value: int64(code),
		}
	}
}
