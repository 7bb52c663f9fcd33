package utils

import (
	"testing"

	"Go-Recipe-Share/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidationErrors(t *testing.T) {
	InitValidator()

	req := domain.RegisterRequest{
		Account:         "alice",
		Password:        "abc",
		ConfirmPassword: "abd",
		FirstName:       "Alice",
	}
	err := Validate.Struct(req)
	require.Error(t, err)

	msgs := FormatValidationErrors(err)
	assert.Contains(t, msgs, "password must be at least 6 characters")
	assert.Contains(t, msgs, "password2 does not match")
	assert.Contains(t, msgs, "last_name is required")
}

func TestFormatValidationErrors_Category(t *testing.T) {
	InitValidator()

	err := Validate.Struct(domain.AddRecipeRequest{
		Description: "Soup",
		Ingredient:  "water",
		Instruction: "boil",
		Category:    "snack",
	})
	require.Error(t, err)
	assert.Equal(t, []string{"category must be one of: breakfast lunch dinner dessert"}, FormatValidationErrors(err))
}
