package errs

import (
	"sync"

	"github.com/napalu/qcli/i18n"
)

// Tree construction and context resolution
var (
	ErrEmptyOptionName     = i18n.NewError(ErrEmptyOptionNameKey)
	ErrInvalidOptionName   = i18n.NewError(ErrInvalidOptionNameKey)
	ErrOptionAliasConflict = i18n.NewError(ErrOptionAliasConflictKey)
	ErrNilNode             = i18n.NewError(ErrNilNodeKey)
	ErrNodeAlreadyExists   = i18n.NewError(ErrNodeAlreadyExistsKey)
	ErrUnknownDefaultNode  = i18n.NewError(ErrUnknownDefaultNodeKey)
	ErrEmptyContext        = i18n.NewError(ErrEmptyContextKey)
	ErrUnknownCommand      = i18n.NewError(ErrUnknownCommandKey)
	ErrCommandRequired     = i18n.NewError(ErrCommandRequiredKey)
	ErrLeafParse           = i18n.NewError(ErrLeafParseKey)
	ErrUnknownNodeType     = i18n.NewError(ErrUnknownNodeTypeKey)
	ErrConfiguringParser   = i18n.NewError(ErrConfiguringParserKey)
	ErrSplit               = i18n.NewError(ErrSplitKey)
)

// Flat parser
var (
	ErrUnknownFlag       = i18n.NewError(ErrUnknownFlagKey)
	ErrUnknownFlags      = i18n.NewError(ErrUnknownFlagsKey)
	ErrFlagExpectsValue  = i18n.NewError(ErrFlagExpectsValueKey)
	ErrUnexpectedValue   = i18n.NewError(ErrUnexpectedValueKey)
	ErrFlagAlreadyExists = i18n.NewError(ErrFlagAlreadyExistsKey)
	ErrTooManyArguments  = i18n.NewError(ErrTooManyArgumentsKey)
)

// Dispatch
var (
	ErrNilDescriptor             = i18n.NewError(ErrNilDescriptorKey)
	ErrDescriptorExists          = i18n.NewError(ErrDescriptorExistsKey)
	ErrDescriptorNotFound        = i18n.NewError(ErrDescriptorNotFoundKey)
	ErrInvalidDescriptor         = i18n.NewError(ErrInvalidDescriptorKey)
	ErrConversion                = i18n.NewError(ErrConversionKey)
	ErrAttributeConversion       = i18n.NewError(ErrAttributeConversionKey)
	ErrArityMismatch             = i18n.NewError(ErrArityMismatchKey)
	ErrInstanceCreation          = i18n.NewError(ErrInstanceCreationKey)
	ErrInvocation                = i18n.NewError(ErrInvocationKey)
	ErrNoEvaluatorFound          = i18n.NewError(ErrNoEvaluatorFoundKey)
	ErrUnsupportedTypeConversion = i18n.NewError(ErrUnsupportedTypeConversionKey)
)

// Value conversion
var (
	ErrParseBool     = i18n.NewError(ErrParseBoolKey)
	ErrParseInt      = i18n.NewError(ErrParseIntKey)
	ErrParseUint     = i18n.NewError(ErrParseUintKey)
	ErrParseFloat    = i18n.NewError(ErrParseFloatKey)
	ErrParseComplex  = i18n.NewError(ErrParseComplexKey)
	ErrParseOverflow = i18n.NewError(ErrParseOverflowKey)
	ErrParseTime     = i18n.NewError(ErrParseTimeKey)
	ErrParseDuration = i18n.NewError(ErrParseDurationKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []i18n.TranslatableError
}

var sysErrors = &builtInErrors{
	All: []i18n.TranslatableError{
		ErrEmptyOptionName,
		ErrInvalidOptionName,
		ErrOptionAliasConflict,
		ErrNilNode,
		ErrNodeAlreadyExists,
		ErrUnknownDefaultNode,
		ErrEmptyContext,
		ErrUnknownCommand,
		ErrCommandRequired,
		ErrLeafParse,
		ErrUnknownNodeType,
		ErrConfiguringParser,
		ErrSplit,
		ErrUnknownFlag,
		ErrUnknownFlags,
		ErrFlagExpectsValue,
		ErrUnexpectedValue,
		ErrFlagAlreadyExists,
		ErrTooManyArguments,
		ErrNilDescriptor,
		ErrDescriptorExists,
		ErrDescriptorNotFound,
		ErrInvalidDescriptor,
		ErrConversion,
		ErrAttributeConversion,
		ErrArityMismatch,
		ErrInstanceCreation,
		ErrInvocation,
		ErrNoEvaluatorFound,
		ErrUnsupportedTypeConversion,
		ErrParseBool,
		ErrParseInt,
		ErrParseUint,
		ErrParseFloat,
		ErrParseComplex,
		ErrParseOverflow,
		ErrParseTime,
		ErrParseDuration,
	},
}

// UpdateMessageProvider updates the message provider of all built-in errors.
//
// Example:
//
//	bundle, _ := i18n.NewBundle()
//	errs.UpdateMessageProvider(i18n.NewBundleMessageProvider(bundle))
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}
