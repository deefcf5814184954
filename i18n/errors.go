package i18n

import (
	"errors"
	"fmt"
	"sync"
)

// TranslatableError represents an error whose text is looked up by key
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Is(target error) bool
	SetProvider(provider MessageProvider)
}

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// Formatter is implemented by providers able to format a keyed message themselves
// (number-aware formatting through a language printer).
type Formatter interface {
	Format(key string, args ...interface{}) string
}

// BundleMessageProvider implements MessageProvider and Formatter using a bundle
type BundleMessageProvider struct {
	bundle *Bundle
}

func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle}
}

func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	return p.bundle.Message(key)
}

func (p *BundleMessageProvider) Format(key string, args ...interface{}) string {
	if p.bundle == nil {
		return fmt.Sprintf(key, args...)
	}

	return p.bundle.T(key, args...)
}

// TrError is a keyed error with optional format arguments and a wrapped cause.
// Copies made by WithArgs and Wrap share the sentinel of the error they were made
// from, so errors.Is matches them against the package-level value.
//
//	err := errs.ErrUnknownCommand.WithArgs("bogus")
//	errors.Is(err, errs.ErrUnknownCommand) // true
type TrError struct {
	sentinel        error
	key             string
	args            []interface{}
	wrapped         error
	messageProvider MessageProvider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	provider := getDefaultProvider()

	return &TrError{
		sentinel:        errors.New(key),
		key:             key,
		messageProvider: provider,
	}
}

// NewErrorWithProvider creates a new translatable error with a key and specific provider
func NewErrorWithProvider(key string, provider MessageProvider) *TrError {
	return &TrError{
		sentinel:        errors.New(key),
		key:             key,
		messageProvider: provider,
	}
}

// Error returns the message, formatted with args if provided
func (e *TrError) Error() string {
	var msg string
	if f, ok := e.messageProvider.(Formatter); ok && len(e.args) > 0 {
		msg = f.Format(e.key, e.args...)
	} else {
		msg = e.messageProvider.GetMessage(e.key)
		if len(e.args) > 0 {
			msg = fmt.Sprintf(msg, e.args...)
		}
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

func (e *TrError) Key() string {
	return e.key
}

func (e *TrError) Args() []interface{} {
	return e.args
}

func (e *TrError) Unwrap() error {
	return e.wrapped
}

func (e *TrError) SetProvider(provider MessageProvider) {
	e.messageProvider = provider
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.Mutex
)

// SetDefaultMessageProvider replaces the provider used by errors created afterwards
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}

	return defaultProvider
}
