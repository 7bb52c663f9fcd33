package migration

import (
	"fmt"

	"Go-Recipe-Share/entities"

	"gorm.io/gorm"
)

// Models lists every table in creation order.
func Models() []any {
	return []any{
		&entities.Account{},
		&entities.Profile{},
		&entities.Recipe{},
		&entities.RecipeOwner{},
		&entities.Comment{},
		&entities.Like{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}
	return nil
}
