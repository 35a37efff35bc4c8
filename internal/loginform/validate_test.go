package loginform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("empty form yields two required errors", func(t *testing.T) {
		errs := Validate(Values{})

		require.Len(t, errs, 2)
		var emailErr, passwordErr *RequiredError
		require.ErrorAs(t, errs[FieldEmail], &emailErr)
		require.ErrorAs(t, errs[FieldPassword], &passwordErr)
		assert.Equal(t, "Campo não preenchido.", emailErr.Message)
		assert.Equal(t, "Campo não preenchido", passwordErr.Message)
		assert.Equal(t, FieldEmail, emailErr.Field)
	})

	t.Run("valid values pass", func(t *testing.T) {
		errs := Validate(Values{Email: "ana@example.com", Password: "x"})
		assert.NotNil(t, errs)
		assert.Empty(t, errs)
	})

	t.Run("malformed email is a format error", func(t *testing.T) {
		errs := Validate(Values{Email: "ana.example.com", Password: "secret"})

		require.Len(t, errs, 1)
		var formatErr *FormatError
		require.ErrorAs(t, errs[FieldEmail], &formatErr)
		assert.Equal(t, "Endereço de email inválido.", formatErr.Message)
		assert.Equal(t, "Endereço de email inválido.", errs.Message(FieldEmail))
		assert.False(t, errs.Has(FieldPassword))
	})

	t.Run("stay signed in is never validated", func(t *testing.T) {
		errs := Validate(Values{Email: "a@b.co", Password: "p", StaySignedIn: true})
		assert.Empty(t, errs)
	})

	t.Run("whitespace password counts as filled", func(t *testing.T) {
		errs := Validate(Values{Email: "a@b.co", Password: " "})
		assert.Empty(t, errs)
	})
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"ANA@EXAMPLE.COM",
		"first.last+tag@sub.domain.org",
		"x_y%z-w@a-b.c.io",
		"1@2.br",
		"a@b..co",
	}
	for _, email := range valid {
		t.Run(email, func(t *testing.T) {
			assert.NoError(t, ValidateEmail(email))
		})
	}

	invalid := []string{
		"plainaddress",
		"@example.com",
		"ana@",
		"ana@example",
		"ana@example.c",
		"ana@@example.com",
		"ana example@example.com",
		"ana@example.com ",
		" ",
		"ana@exa mple.com",
		"ana@example.c0m",
		"joão@example.com",
		"ſ@example.com",
	}
	for _, email := range invalid {
		t.Run(email, func(t *testing.T) {
			var formatErr *FormatError
			assert.ErrorAs(t, ValidateEmail(email), &formatErr)
		})
	}

	t.Run("empty email is required, not malformed", func(t *testing.T) {
		var requiredErr *RequiredError
		assert.ErrorAs(t, ValidateEmail(""), &requiredErr)
	})
}
