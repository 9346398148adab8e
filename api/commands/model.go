// Copyright AGNTCY Contributors (https://github.com/agntcy)
// SPDX-License-Identifier: Apache-2.0

package commands

// Layout is the object layout discriminant stored under the "layout" key.
type Layout int32

const (
	LayoutBasic        Layout = 0
	LayoutProfile      Layout = 1
	LayoutTodo         Layout = 2
	LayoutSet          Layout = 3
	LayoutObjectType   Layout = 4
	LayoutRelation     Layout = 5
	LayoutFile         Layout = 6
	LayoutDashboard    Layout = 7
	LayoutImage        Layout = 8
	LayoutNote         Layout = 9
	LayoutSpace        Layout = 10
	LayoutBookmark     Layout = 11
	LayoutRelationOpts Layout = 12
	LayoutRelationOpt  Layout = 13
	LayoutCollection   Layout = 14
	LayoutAudio        Layout = 15
	LayoutVideo        Layout = 16
	LayoutDate         Layout = 17
	LayoutSpaceView    Layout = 18
	LayoutParticipant  Layout = 19
	LayoutPdf          Layout = 20
	LayoutChat         Layout = 21
	LayoutTag          Layout = 22
)

// Valid reports whether l is a known layout.
func (l Layout) Valid() bool {
	return l >= LayoutBasic && l <= LayoutTag
}

// RelationFormat is the backend's own relation format code stored under "relationFormat".
type RelationFormat int32

const (
	FormatLongText  RelationFormat = 0
	FormatShortText RelationFormat = 1
	FormatNumber    RelationFormat = 2
	FormatStatus    RelationFormat = 3
	FormatDate      RelationFormat = 4
	FormatFile      RelationFormat = 5
	FormatCheckbox  RelationFormat = 6
	FormatURL       RelationFormat = 7
	FormatEmail     RelationFormat = 8
	FormatPhone     RelationFormat = 9
	FormatEmoji     RelationFormat = 10
	FormatTag       RelationFormat = 11
	FormatObject    RelationFormat = 100
	FormatRelations RelationFormat = 101
)

func (f RelationFormat) Valid() bool {
	return (f >= FormatLongText && f <= FormatTag) || f == FormatObject || f == FormatRelations
}

// Condition is a search filter condition.
type Condition int32

const (
	ConditionNone           Condition = 0
	ConditionEqual          Condition = 1
	ConditionNotEqual       Condition = 2
	ConditionGreater        Condition = 3
	ConditionLess           Condition = 4
	ConditionGreaterOrEqual Condition = 5
	ConditionLessOrEqual    Condition = 6
	ConditionLike           Condition = 7
	ConditionNotLike        Condition = 8
	ConditionIn             Condition = 9
	ConditionNotIn          Condition = 10
	ConditionEmpty          Condition = 11
	ConditionNotEmpty       Condition = 12
)

func (c Condition) Valid() bool {
	return c >= ConditionNone && c <= ConditionNotEmpty
}

// Operator joins filters. Only And is supported by the search command.
type Operator int32

const (
	OperatorAnd Operator = 0
	OperatorOr  Operator = 1
)

func (o Operator) Valid() bool {
	return o == OperatorAnd || o == OperatorOr
}

// Well-known detail keys.
const (
	KeyID                        = "id"
	KeyName                      = "name"
	KeyType                      = "type"
	KeyLayout                    = "layout"
	KeySpaceID                   = "spaceId"
	KeyIsHidden                  = "isHidden"
	KeyRelationKey               = "relationKey"
	KeyRelationFormat            = "relationFormat"
	KeyRelationFormatObjectTypes = "relationFormatObjectTypes"
	KeyUniqueKey                 = "uniqueKey"
	KeyRecommendedRelations      = "recommendedRelations"
	KeyRecommendedLayout         = "recommendedLayout"
)

// Filter document keys.
const (
	FilterOperator    = "operator"
	FilterRelationKey = "relationKey"
	FilterCondition   = "condition"
	FilterValue       = "value"
)

// Event message keys.
const (
	EventMessages    = "messages"
	EventAccountShow = "accountShow"
)
