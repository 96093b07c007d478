package validation

import (
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ptbr_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

var emailPattern = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?" +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`,
)

var messages = map[string]string{
	"string":         "'{0}' deve ser string.",
	"min":            "'{0}' deve possuir pelo menos {1} caracteres.",
	"startswith":     "'{0}' deve começar com a letra {1}.",
	"useremail":      "'{0}' deve ser um email válido.",
	"strongpassword": "'{0}' deve possuir entre 8 e 12 caracteres, com letras maiúsculas e minúsculas e no mínimo um número e um caractere especial",
}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("useremail", isUserEmail); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("strongpassword", isStrongPassword); err != nil {
		panic(err)
	}

	ptBR := pt_BR.New()
	uni := ut.New(ptBR, ptBR)

	var found bool
	translator, found = uni.GetTranslator("pt_BR")

	if !found {
		panic("translator pt_BR not found")
	}

	if err := ptbr_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}

	for key, text := range messages {
		if err := translator.Add(key, text, true); err != nil {
			panic(err)
		}
	}
}

func isUserEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

// isStrongPassword accepts 8 to 12 characters with at least one ASCII
// lowercase letter, one ASCII uppercase letter, one digit and one character
// that is none of those. Line terminators are rejected.
func isStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	if n := utf8.RuneCountInString(value); n < 8 || n > 12 {
		return false
	}

	var lower, upper, digit, special bool

	for _, r := range value {
		switch {
		case r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029':
			return false
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}

	return lower && upper && digit && special
}
