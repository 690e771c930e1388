package balance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/zostay/go-lifo/balance"
)

func TestVerdict(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Сбалансированно", balance.Verdict(true, language.Russian))
	assert.Equal(t, "Несбалансированно", balance.Verdict(false, language.Russian))
	assert.Equal(t, "Balanced", balance.Verdict(true, language.English))
	assert.Equal(t, "Unbalanced", balance.Verdict(false, language.AmericanEnglish))

	// no translation, fall back to Russian
	assert.Equal(t, "Сбалансированно", balance.Verdict(true, language.Japanese))
}

func TestLocale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, language.Russian, balance.Locale())
	assert.Equal(t, language.Russian, balance.Locale("", "", ""))
	assert.Equal(t, language.English, balance.Locale("en_US.UTF-8"))
	assert.Equal(t, language.English, balance.Locale("", "C", "en_GB"))
	assert.Equal(t, language.Russian, balance.Locale("ru_RU.UTF-8", "en_US.UTF-8"))
	assert.Equal(t, language.Russian, balance.Locale("not a locale!"))
	assert.Equal(t, language.Russian, balance.Locale("POSIX"))
}
