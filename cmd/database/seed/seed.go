// Package seed creates the admin account and a sample recipe on an empty
// database.
package seed

import (
	"errors"
	"fmt"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AdminAccount      = "admin"
	SampleDescription = "Tomato Scrambled Eggs"
)

// Seed is idempotent: an existing admin account is left untouched and the
// sample recipe is only added alongside a freshly created admin.
func Seed(db *gorm.DB, adminPassword string) error {
	if err := user.CheckPassword(adminPassword); err != nil {
		return fmt.Errorf("admin password: %w", err)
	}

	var existing entities.Account
	err := db.Where("account = ?", AdminAccount).Take(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := user.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := &entities.Account{
			ID:       uuid.New(),
			Name:     AdminAccount,
			Password: hash,
			Role:     domain.RoleAdmin,
		}
		if err := tx.Omit("Profile").Create(admin).Error; err != nil {
			return err
		}

		profile := &entities.Profile{
			ID:        uuid.New(),
			AccountID: admin.ID,
			FirstName: "Admin",
			LastName:  "User",
		}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		recipe := &entities.Recipe{
			ID:          uuid.New(),
			Description: SampleDescription,
			Ingredients: []string{"Tomatoes", "Eggs", "Salt", "Sugar", "Oil"},
			Instruction: "1. Beat eggs. 2. Chop tomatoes. 3. Scramble eggs. 4. Add tomatoes. 5. Season.",
			Category:    domain.CategoryBreakfast,
		}
		if err := tx.Omit("Owner").Create(recipe).Error; err != nil {
			return err
		}
		return tx.Create(&entities.RecipeOwner{
			ID:        uuid.New(),
			RecipeID:  recipe.ID,
			AccountID: admin.ID,
		}).Error
	})
}
