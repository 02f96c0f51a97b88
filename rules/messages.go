package rules

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	msgLineLimit = "File exceeds constitutional limit: %s lines (max: %s)"
	msgHeader    = "File is missing the constitutional header"

	msgLineLimitFix = "Split the file into smaller modules"
	msgHeaderFix    = "Add a header stating the file's role and AGI.md conformity"
)

// Locales lists the supported message locales. The first entry is the fallback.
var Locales = []language.Tag{language.English, language.French}

var (
	messages = newCatalog()
	matcher  = language.NewMatcher(Locales)
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	set := func(tag language.Tag, key, msg string) {
		if err := b.SetString(tag, key, msg); err != nil {
			panic(err)
		}
	}
	set(language.English, msgLineLimit, msgLineLimit)
	set(language.English, msgHeader, msgHeader)
	set(language.French, msgLineLimit, "Fichier dépasse la limite constitutionnelle: %s lignes (max: %s)")
	set(language.French, msgHeader, "Fichier manque l'en-tête constitutionnel AGI")
	set(language.English, msgLineLimitFix, msgLineLimitFix)
	set(language.English, msgHeaderFix, msgHeaderFix)
	set(language.French, msgLineLimitFix, "Refactoriser en modules plus petits selon architecture AGI")
	set(language.French, msgHeaderFix, "Ajouter en-tête avec rôle et conformité AGI.md")
	return b
}

// MatchLocale resolves a locale name such as "fr", "fr-CA" or "en_US" to
// one of Locales. It returns English and false when nothing matches.
func MatchLocale(name string) (language.Tag, bool) {
	if name == "" {
		return Locales[0], true
	}
	tag, err := language.Parse(name)
	if err != nil {
		return Locales[0], false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Locales[0], false
	}
	return Locales[index], true
}

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
