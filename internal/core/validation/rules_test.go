package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Run("should accept strings", func(t *testing.T) {
		value, err := String("id", "f001")

		assert.NoError(t, err)
		assert.Equal(t, "f001", value)
	})

	t.Run("should reject numbers, nulls and missing values", func(t *testing.T) {
		for _, value := range []any{nil, float64(1), true, map[string]any{}} {
			_, err := String("id", value)

			assert.EqualError(t, err, "'id' deve ser string.")
		}
	})
}

func TestMinLength(t *testing.T) {
	assert.NoError(t, MinLength("id", "f001", 4))
	assert.EqualError(t, MinLength("id", "f01", 4), "'id' deve possuir pelo menos 4 caracteres.")
	assert.EqualError(t, MinLength("name", "A", 2), "'name' deve possuir pelo menos 2 caracteres.")
	assert.NoError(t, MinLength("name", "Zé", 2))
}

func TestEmail(t *testing.T) {
	valid := []string{"ana@x.com", "first.last+tag@mail.example.com", "o'neil@x-y.io"}
	invalid := []string{"", "ana", "ana@", "@x.com", "ana@x", "ana@-x.com", "ana @x.com"}

	for _, email := range valid {
		assert.NoError(t, Email("email", email), email)
	}

	for _, email := range invalid {
		assert.EqualError(t, Email("email", email), "'email' deve ser um email válido.", email)
	}
}

func TestPassword(t *testing.T) {
	valid := []string{"Abc12345!", "aB3$aB3$", "Zz9 zz9 zz9z"}
	invalid := []string{"Abc1!", "abc12345!", "ABC12345!", "Abcdefgh!", "Abc123456", "Abc12345!Abc1", "Abc\n2345!"}

	for _, password := range valid {
		assert.NoError(t, Password("password", password), password)
	}

	for _, password := range invalid {
		err := Password("password", password)

		if assert.Error(t, err, password) {
			assert.Contains(t, err.Error(), "'password' deve possuir entre 8 e 12 caracteres")
		}
	}
}

func TestStartsWith(t *testing.T) {
	assert.NoError(t, StartsWith("id", "f001", "f"))

	err := StartsWith("id", "g001", "f")

	var violation *Violation
	if assert.ErrorAs(t, err, &violation) {
		assert.Equal(t, "id", violation.Field)
		assert.Equal(t, "startswith", violation.Tag)
		assert.Equal(t, "'id' deve começar com a letra f.", violation.Message)
	}
}
