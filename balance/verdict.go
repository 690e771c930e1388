package balance

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys for the verdict strings.
const (
	BalancedKey   = "balanced"
	UnbalancedKey = "unbalanced"
)

// supported lists the verdict languages. The first is the fallback.
var supported = []language.Tag{
	language.Russian,
	language.English,
}

var (
	verdicts = newVerdictCatalog()
	matcher  = language.NewMatcher(supported)
)

func newVerdictCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	_ = b.SetString(language.Russian, BalancedKey, "Сбалансированно")
	_ = b.SetString(language.Russian, UnbalancedKey, "Несбалансированно")
	_ = b.SetString(language.English, BalancedKey, "Balanced")
	_ = b.SetString(language.English, UnbalancedKey, "Unbalanced")
	return b
}

// Verdict renders the verdict as a sentence in the language closest to tag.
// Languages without a translation get the Russian text.
func Verdict(balanced bool, tag language.Tag) string {
	_, ix, conf := matcher.Match(tag)
	if conf == language.No {
		ix = 0
	}

	key := UnbalancedKey
	if balanced {
		key = BalancedKey
	}

	p := message.NewPrinter(supported[ix], message.Catalog(verdicts))
	return p.Sprintf(key)
}

// Locale picks the verdict language from POSIX locale values such as
// "en_US.UTF-8", given in order of precedence (LC_ALL, LC_MESSAGES, LANG).
// The first value set to something other than "C" or "POSIX" decides. When
// none does, or it names an unknown language, Russian is returned.
func Locale(envs ...string) language.Tag {
	for _, env := range envs {
		name := env
		if ix := strings.IndexAny(name, ".@"); ix >= 0 {
			name = name[:ix]
		}

		if name == "" || name == "C" || name == "POSIX" {
			continue
		}

		tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
		if err != nil {
			return supported[0]
		}

		_, ix, conf := matcher.Match(tag)
		if conf == language.No {
			return supported[0]
		}
		return supported[ix]
	}

	return supported[0]
}
