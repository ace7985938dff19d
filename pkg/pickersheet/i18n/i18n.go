// Package i18n localizes action titles. It wraps a go-i18n bundle that
// understands JSON and TOML message files and exposes plural-aware title
// resolvers for actions whose label depends on the selection count.
package i18n

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var i *I18N

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// current returns the active localizer, falling back to an empty English bundle
// so titles resolve from their default messages before InitI18N is called.
func current() *I18N {
	if i == nil {
		bundle := newBundle()
		i = &I18N{localizer: i18n.NewLocalizer(bundle, language.English.String()), bundle: bundle}
	}
	return i
}

func InitI18N(messageFilePaths []string) error {
	bundle := newBundle()

	for _, messageFile := range messageFilePaths {
		_, err := bundle.LoadMessageFile(messageFile)
		if err != nil {
			return err
		}
	}

	i = &I18N{localizer: i18n.NewLocalizer(bundle, language.English.String()), bundle: bundle}

	return nil
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()

	for _, messageFile := range messageFiles {
		_, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name)
		if err != nil {
			return err
		}
	}

	i = &I18N{localizer: i18n.NewLocalizer(bundle, language.English.String()), bundle: bundle}

	return nil
}

func SetLanguage(lang language.Tag) {
	bundle := current().bundle
	i = &I18N{localizer: i18n.NewLocalizer(bundle, lang.String(), language.English.String()), bundle: bundle}
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// GetString retrieves a localized string by key.
// Unknown keys come back as the key itself.
func GetString(key string) string {
	msg, err := current().localizer.Localize(&i18n.LocalizeConfig{
		MessageID: key,
	})
	if err != nil {
		return key
	}
	return msg
}

// GetPluralString retrieves a localized string with plural support.
// The count is also exposed to the template as {{.Count}}.
func GetPluralString(key string, count int) string {
	msg, err := current().localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		PluralCount:  count,
		TemplateData: map[string]interface{}{"Count": count},
	})
	if err != nil {
		return key
	}
	return msg
}

// Localize retrieves a localized string using the go-i18n struct pattern.
// The message provides the ID and fallback text used when no translation exists.
//
//	i18n.Localize(&i18n.Message{
//	    ID:    "take_photo",
//	    Other: "Take Photo",
//	}, nil)
func Localize(message *Message, templateData map[string]interface{}) string {
	return localize(message, nil, templateData)
}

// LocalizePlural is Localize with plural form selection by count.
//
//	i18n.LocalizePlural(&i18n.Message{
//	    ID:    "send_photos",
//	    One:   "Send {{.Count}} Photo",
//	    Other: "Send {{.Count}} Photos",
//	}, 5, map[string]interface{}{"Count": 5})
func LocalizePlural(message *Message, count int, templateData map[string]interface{}) string {
	return localize(message, count, templateData)
}

func localize(message *Message, pluralCount interface{}, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
		PluralCount:    pluralCount,
	}

	if templateData != nil {
		config.TemplateData = templateData
	}

	// go-i18n still renders the default message alongside a not-found
	// error when the active language has no translation.
	if msg, _ := current().localizer.Localize(config); msg != "" {
		return msg
	}
	if message.Other != "" {
		return message.Other
	}
	return message.ID
}

// PluralTitle returns a title resolver for an action's secondary title.
// The resolver is total: for every count it yields the localized plural form
// with {{.Count}} bound, falling back to the message's Other text and then its ID.
// The result is assignable to pickersheet.TitleFunc.
//
// message is required; passing nil panics.
func PluralTitle(message *Message) func(count int) string {
	if message == nil {
		panic("i18n: PluralTitle needs a message")
	}
	return func(count int) string {
		return LocalizePlural(message, count, map[string]interface{}{"Count": count})
	}
}
