// Package errs holds the keyed sentinel errors returned by qcli.
package errs

const (
	prefixKey = "qcli"
)

const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
	MessagePrefixKey  = prefixKey + ".msg"
)

// Tree construction and context resolution
const (
	ErrEmptyOptionNameKey     = ErrorPrefixKey + ".empty_option_name"
	ErrInvalidOptionNameKey   = ErrorPrefixKey + ".invalid_option_name"
	ErrOptionAliasConflictKey = ErrorPrefixKey + ".option_alias_conflict"
	ErrNilNodeKey             = ErrorPrefixKey + ".nil_node"
	ErrNodeAlreadyExistsKey   = ErrorPrefixKey + ".node_already_exists"
	ErrUnknownDefaultNodeKey  = ErrorPrefixKey + ".unknown_default_node"
	ErrEmptyContextKey        = ErrorPrefixKey + ".empty_context"
	ErrUnknownCommandKey      = ErrorPrefixKey + ".unknown_command"
	ErrCommandRequiredKey     = ErrorPrefixKey + ".command_required"
	ErrLeafParseKey           = ErrorPrefixKey + ".leaf_parse"
	ErrUnknownNodeTypeKey     = ErrorPrefixKey + ".unknown_node_type"
	ErrConfiguringParserKey   = ErrorPrefixKey + ".configuring_parser"
	ErrSplitKey               = ErrorPrefixKey + ".split"
)

// Flat parser
const (
	ErrUnknownFlagKey       = ErrorPrefixKey + ".unknown_flag"
	ErrUnknownFlagsKey      = ErrorPrefixKey + ".unknown_flags"
	ErrFlagExpectsValueKey  = ErrorPrefixKey + ".flag_expects_value"
	ErrUnexpectedValueKey   = ErrorPrefixKey + ".unexpected_value"
	ErrFlagAlreadyExistsKey = ErrorPrefixKey + ".flag_already_exists"
	ErrTooManyArgumentsKey  = ErrorPrefixKey + ".too_many_arguments"
)

// Dispatch
const (
	ErrNilDescriptorKey             = ErrorPrefixKey + ".nil_descriptor"
	ErrDescriptorExistsKey          = ErrorPrefixKey + ".descriptor_exists"
	ErrDescriptorNotFoundKey        = ErrorPrefixKey + ".descriptor_not_found"
	ErrInvalidDescriptorKey         = ErrorPrefixKey + ".invalid_descriptor"
	ErrConversionKey                = ErrorPrefixKey + ".conversion"
	ErrAttributeConversionKey       = ErrorPrefixKey + ".attribute_conversion"
	ErrArityMismatchKey             = ErrorPrefixKey + ".arity_mismatch"
	ErrInstanceCreationKey          = ErrorPrefixKey + ".instance_creation"
	ErrInvocationKey                = ErrorPrefixKey + ".invocation"
	ErrNoEvaluatorFoundKey          = ErrorPrefixKey + ".no_evaluator_found"
	ErrUnsupportedTypeConversionKey = ErrorPrefixKey + ".unsupported_type_conversion"
)

// Value conversion
const (
	ErrParseBoolKey     = ParseErrorPathKey + ".bool"
	ErrParseIntKey      = ParseErrorPathKey + ".int"
	ErrParseUintKey     = ParseErrorPathKey + ".uint"
	ErrParseFloatKey    = ParseErrorPathKey + ".float"
	ErrParseComplexKey  = ParseErrorPathKey + ".complex"
	ErrParseOverflowKey = ParseErrorPathKey + ".overflow"
	ErrParseTimeKey     = ParseErrorPathKey + ".time"
	ErrParseDurationKey = ParseErrorPathKey + ".duration"
)

// Messages used in help and diagnostic texts
const (
	MsgCommandContextKey     = MessagePrefixKey + ".command_context"
	MsgDefaultNodeKey        = MessagePrefixKey + ".default_node"
	MsgUsageKey              = MessagePrefixKey + ".usage"
	MsgOptionsHeaderKey      = MessagePrefixKey + ".options_header"
	MsgArgumentsHeaderKey    = MessagePrefixKey + ".arguments_header"
	MsgOptionsPlaceholderKey = MessagePrefixKey + ".options_placeholder"
	MsgDefaultsToKey         = MessagePrefixKey + ".defaults_to"
	MsgHelpDescriptionKey    = MessagePrefixKey + ".help_description"
	MsgVersionDescriptionKey = MessagePrefixKey + ".version_description"
	MsgArityExpectedKey      = MessagePrefixKey + ".arity_expected"
	MsgArityAtLeastKey       = MessagePrefixKey + ".arity_at_least"
	MsgArityAndKey           = MessagePrefixKey + ".arity_and"
	MsgArityAtMostKey        = MessagePrefixKey + ".arity_at_most"
	MsgArityPassedKey        = MessagePrefixKey + ".arity_passed"
)
