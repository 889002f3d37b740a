package waypoint

import (
	"errors"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Translator resolves link message IDs for one language. It satisfies the
// view package's Localizer interface.
type Translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// MessageFile is an in-memory message file, e.g. one embedded in a binary.
// Name must follow go-i18n's naming ("active.en.toml").
type MessageFile struct {
	Name string
	Data []byte
}

// NewBundle creates a message bundle with English as the default language,
// parses defaults and then loads every configured message file over them.
// TOML and JSON files are understood.
func NewBundle(cfg I18nConfig, defaults ...MessageFile) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, mf := range defaults {
		if _, err := bundle.ParseMessageFileBytes(mf.Data, mf.Name); err != nil {
			return nil, NewInfrastructureError("parse_messages", err)
		}
	}

	for _, path := range cfg.MessageFiles {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return nil, NewInfrastructureError("load_messages", err)
		}
	}
	return bundle, nil
}

// NewTranslator returns a translator for lang, falling back to the bundle's
// default language for messages lang does not define. An unparsable tag is
// an error.
func NewTranslator(bundle *i18n.Bundle, lang string) (*Translator, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, NewInfrastructureError("parse_language", err)
	}
	return &Translator{
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
	}, nil
}

// Language returns the translator's language tag.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// Localize returns the message for id. A message the language lacks comes
// from the default language; go-i18n reports that as a MessageNotFoundErr
// alongside the text. Unknown IDs come back unchanged so a missing
// translation shows up on screen instead of as an empty link.
func (t *Translator) Localize(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if msg == "" {
		return id
	}
	if err != nil && !errors.As(err, new(*i18n.MessageNotFoundErr)) {
		return id
	}
	return msg
}
