package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestBundle_DefaultLoadsEnglish(t *testing.T) {
	b := Default()
	require.NotNil(t, b)
	assert.True(t, b.HasLanguage(language.English))
	assert.True(t, b.HasKey(language.English, "qcli.error.unknown_command"))
	assert.Equal(t, language.English, b.DefaultLanguage())
}

func TestBundle_T(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	assert.Equal(t, `Unknown command "bogus"`, b.T("qcli.error.unknown_command", "bogus"))
	assert.Equal(t, "at least 1,000 ", b.T("qcli.msg.arity_at_least", 1000), "numbers should be grouped by the printer")
	assert.Equal(t, "not.a.key", b.T("not.a.key"), "unknown keys are used as the format")
}

func TestBundle_Message(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	assert.Equal(t, "Unknown command \"%s\"", b.Message("qcli.error.unknown_command"))
	assert.Equal(t, "missing.key", b.Message("missing.key"))
}

func TestBundle_AddLanguage(t *testing.T) {
	b := NewEmptyBundle()

	err := b.AddLanguage(language.English, map[string]string{})
	assert.ErrorIs(t, err, ErrEmptyTranslations)

	require.NoError(t, b.AddLanguage(language.English, map[string]string{"greeting": "hello %s"}))
	require.NoError(t, b.AddLanguage(language.English, map[string]string{"farewell": "bye"}))
	assert.True(t, b.HasKey(language.English, "greeting"), "translations should be merged")
	assert.True(t, b.HasKey(language.English, "farewell"))
	assert.Equal(t, "hello you", b.T("greeting", "you"))

	require.NoError(t, b.AddLanguage(language.German, map[string]string{"greeting": "hallo %s"}))
	b.SetDefaultLanguage(language.German)
	assert.Equal(t, "hallo du", b.T("greeting", "du"))
	assert.Equal(t, "bye", b.Message("farewell"), "missing keys fall back to English")
}
