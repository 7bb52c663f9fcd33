package testdb

import (
	"testing"

	"Go-Recipe-Share/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const FixturePassword = "secret1"

// CreateAccount inserts an account with a profile named after it. The
// password is FixturePassword.
func CreateAccount(t testing.TB, db *gorm.DB, name string, role string) *entities.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(FixturePassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	account := &entities.Account{
		ID:       uuid.New(),
		Name:     name,
		Password: string(hash),
		Role:     role,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("create account: %v", err)
	}

	account.Profile = &entities.Profile{
		ID:        uuid.New(),
		AccountID: account.ID,
		FirstName: name,
		LastName:  "Cook",
	}
	if err := db.Create(account.Profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return account
}

func CreateRecipe(t testing.TB, db *gorm.DB, ownerID uuid.UUID, description string, category string) *entities.Recipe {
	t.Helper()
	recipe := &entities.Recipe{
		ID:          uuid.New(),
		Description: description,
		Ingredients: []string{"water", "salt"},
		Instruction: "Mix and serve.",
		Category:    category,
	}
	if err := db.Omit("Owner").Create(recipe).Error; err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	owner := &entities.RecipeOwner{ID: uuid.New(), RecipeID: recipe.ID, AccountID: ownerID}
	if err := db.Create(owner).Error; err != nil {
		t.Fatalf("create owner: %v", err)
	}
	return recipe
}

func CreateComment(t testing.TB, db *gorm.DB, accountID uuid.UUID, recipeID uuid.UUID, content string) *entities.Comment {
	t.Helper()
	comment := &entities.Comment{ID: uuid.New(), RecipeID: recipeID, AccountID: accountID, Content: content}
	if err := db.Omit("Recipe", "Account").Create(comment).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}
	return comment
}
