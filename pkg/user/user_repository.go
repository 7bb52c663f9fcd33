package user

import (
	"context"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateAccountWithProfile(ctx context.Context, account *entities.Account, profile *entities.Profile) error
		GetAccountByName(ctx context.Context, name string) (*entities.Account, error)
		GetAccountByID(ctx context.Context, id uuid.UUID) (*entities.Account, error)
		GetProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.Profile, error)
		GetProfilesByAccountIDs(ctx context.Context, accountIDs []uuid.UUID) (map[uuid.UUID]*entities.Profile, error)
		UpdateProfile(ctx context.Context, profile *entities.Profile) error
		UpdateProfilePhoto(ctx context.Context, accountID uuid.UUID, photo string) error
		UpdatePassword(ctx context.Context, accountID uuid.UUID, hash string) error
		ListAccounts(ctx context.Context) ([]*entities.Account, error)
		TopCooks(ctx context.Context, limit int) ([]domain.CookSummary, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateAccountWithProfile(ctx context.Context, account *entities.Account, profile *entities.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Profile").Create(account).Error; err != nil {
			return err
		}
		profile.AccountID = account.ID
		return tx.Create(profile).Error
	})
}

func (r *userRepository) GetAccountByName(ctx context.Context, name string) (*entities.Account, error) {
	var account entities.Account
	if err := r.db.WithContext(ctx).Where("account = ?", name).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *userRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	var account entities.Account
	if err := r.db.WithContext(ctx).Preload("Profile").Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *userRepository) GetProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.Profile, error) {
	var profile entities.Profile
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) GetProfilesByAccountIDs(ctx context.Context, accountIDs []uuid.UUID) (map[uuid.UUID]*entities.Profile, error) {
	out := make(map[uuid.UUID]*entities.Profile, len(accountIDs))
	if len(accountIDs) == 0 {
		return out, nil
	}

	var profiles []*entities.Profile
	if err := r.db.WithContext(ctx).Where("account_id IN ?", accountIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		out[p.AccountID] = p
	}
	return out, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, profile *entities.Profile) error {
	return r.db.WithContext(ctx).
		Model(&entities.Profile{}).
		Where("account_id = ?", profile.AccountID).
		Updates(map[string]any{
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
			"bio":        profile.Bio,
		}).Error
}

func (r *userRepository) UpdateProfilePhoto(ctx context.Context, accountID uuid.UUID, photo string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Profile{}).
		Where("account_id = ?", accountID).
		Update("photo", photo).Error
}

func (r *userRepository) UpdatePassword(ctx context.Context, accountID uuid.UUID, hash string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Account{}).
		Where("id = ?", accountID).
		Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) ListAccounts(ctx context.Context) ([]*entities.Account, error) {
	var accounts []*entities.Account
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Order("created_at asc").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

type cookRow struct {
	AccountID   uuid.UUID
	FirstName   string
	LastName    string
	Photo       string
	RecipeCount int64
}

// TopCooks ranks profiles by how many recipes they own.
func (r *userRepository) TopCooks(ctx context.Context, limit int) ([]domain.CookSummary, error) {
	var rows []cookRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Profile{}).
		Select("profiles.account_id, profiles.first_name, profiles.last_name, profiles.photo, COUNT(recipe_owners.id) AS recipe_count").
		Joins("JOIN recipe_owners ON recipe_owners.account_id = profiles.account_id").
		Group("profiles.id").
		Order("recipe_count DESC, profiles.created_at ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	cooks := make([]domain.CookSummary, 0, len(rows))
	for _, row := range rows {
		cooks = append(cooks, domain.CookSummary{
			AccountID:   row.AccountID.String(),
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			Photo:       row.Photo,
			RecipeCount: row.RecipeCount,
		})
	}
	return cooks, nil
}
