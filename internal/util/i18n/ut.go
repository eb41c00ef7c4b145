package i18n

import (
	ut "github.com/go-playground/universal-translator"

	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/ja"
)

var UT = ut.New(en.New(), ja.New(), de.New(), fr.New())
