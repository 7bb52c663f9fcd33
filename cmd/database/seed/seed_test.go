package seed

import (
	"testing"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/internal/utils/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedCreatesAdminAndSampleRecipe(t *testing.T) {
	db := testdb.New(t)

	require.NoError(t, Seed(db, "adminpass"))

	var admin entities.Account
	require.NoError(t, db.Preload("Profile").Where("account = ?", AdminAccount).Take(&admin).Error)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	require.NotNil(t, admin.Profile)
	assert.Equal(t, "Admin", admin.Profile.FirstName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("adminpass")))

	var recipe entities.Recipe
	require.NoError(t, db.Preload("Owner").Where("description = ?", SampleDescription).Take(&recipe).Error)
	assert.Equal(t, domain.CategoryBreakfast, recipe.Category)
	assert.Len(t, recipe.Ingredients, 5)
	require.NotNil(t, recipe.Owner)
	assert.Equal(t, admin.ID, recipe.Owner.AccountID)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := testdb.New(t)

	require.NoError(t, Seed(db, "adminpass"))
	require.NoError(t, Seed(db, "otherpass"))

	var accounts, recipes int64
	db.Model(&entities.Account{}).Count(&accounts)
	db.Model(&entities.Recipe{}).Count(&recipes)
	assert.EqualValues(t, 1, accounts)
	assert.EqualValues(t, 1, recipes)
}

func TestSeedRejectsShortPassword(t *testing.T) {
	db := testdb.New(t)

	err := Seed(db, "abc")
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
}
