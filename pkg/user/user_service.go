package user

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/internal/utils"
	"Go-Recipe-Share/internal/utils/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AccountResponse, error)
		Authenticate(ctx context.Context, req domain.LoginRequest) (domain.AccountResponse, error)
		GetAccount(ctx context.Context, accountID string) (domain.AccountResponse, error)
		GetProfile(ctx context.Context, accountID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, accountID string, req domain.UpdateProfileRequest) (domain.ProfileResponse, error)
		UpdateProfilePhoto(ctx context.Context, accountID string, data []byte, mime string) (domain.ProfileResponse, error)
		TopCooks(ctx context.Context, limit int) ([]domain.CookSummary, error)
	}

	userService struct {
		userRepository UserRepository
		photos         storage.PhotoStore
	}
)

func NewUserService(userRepository UserRepository, photos storage.PhotoStore) UserService {
	return &userService{
		userRepository: userRepository,
		photos:         photos,
	}
}

// CheckPassword enforces the length bounds shared by registration and
// admin resets.
func CheckPassword(password string) error {
	if utf8.RuneCountInString(password) < domain.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}
	if len(password) > domain.MaxPasswordBytes {
		return domain.ErrPasswordTooLong
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AccountResponse, error) {
	req.Account = strings.TrimSpace(req.Account)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if req.Account == "" || req.Password == "" || req.ConfirmPassword == "" || req.FirstName == "" || req.LastName == "" {
		return domain.AccountResponse{}, domain.ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return domain.AccountResponse{}, domain.ErrPasswordMismatch
	}
	if err := CheckPassword(req.Password); err != nil {
		return domain.AccountResponse{}, err
	}

	_, err := s.userRepository.GetAccountByName(ctx, req.Account)
	if err == nil {
		return domain.AccountResponse{}, domain.ErrAccountTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AccountResponse{}, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return domain.AccountResponse{}, err
	}

	account := &entities.Account{
		ID:       uuid.New(),
		Name:     req.Account,
		Password: hash,
		Role:     domain.RoleUser,
	}
	profile := &entities.Profile{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.userRepository.CreateAccountWithProfile(ctx, account, profile); err != nil {
		// lost a race with a concurrent registration
		if utils.IsDuplicateKey(err) {
			return domain.AccountResponse{}, domain.ErrAccountTaken
		}
		return domain.AccountResponse{}, err
	}

	account.Profile = profile
	return ToAccountResponse(account), nil
}

func (s *userService) Authenticate(ctx context.Context, req domain.LoginRequest) (domain.AccountResponse, error) {
	account, err := s.userRepository.GetAccountByName(ctx, strings.TrimSpace(req.Account))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AccountResponse{}, domain.ErrUnknownAccount
		}
		return domain.AccountResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return domain.AccountResponse{}, domain.ErrBadCredentials
	}

	return ToAccountResponse(account), nil
}

func (s *userService) GetAccount(ctx context.Context, accountID string) (domain.AccountResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return domain.AccountResponse{}, domain.ErrAccountNotFound
	}

	account, err := s.userRepository.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AccountResponse{}, domain.ErrAccountNotFound
		}
		return domain.AccountResponse{}, err
	}
	return ToAccountResponse(account), nil
}

func (s *userService) GetProfile(ctx context.Context, accountID string) (domain.ProfileResponse, error) {
	profile, err := s.profile(ctx, accountID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	return ToProfileResponse(profile), nil
}

func (s *userService) UpdateProfile(ctx context.Context, accountID string, req domain.UpdateProfileRequest) (domain.ProfileResponse, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" || req.LastName == "" {
		return domain.ProfileResponse{}, domain.ErrMissingFields
	}

	profile, err := s.profile(ctx, accountID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Bio = strings.TrimSpace(req.Bio)
	if err := s.userRepository.UpdateProfile(ctx, profile); err != nil {
		return domain.ProfileResponse{}, err
	}
	return ToProfileResponse(profile), nil
}

func (s *userService) UpdateProfilePhoto(ctx context.Context, accountID string, data []byte, mime string) (domain.ProfileResponse, error) {
	profile, err := s.profile(ctx, accountID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	fitted, err := storage.Fit(data, mime, storage.AvatarSize)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	ref, err := s.photos.Save(ctx, "avatars", fitted, mime)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	if err := s.userRepository.UpdateProfilePhoto(ctx, profile.AccountID, ref); err != nil {
		_ = s.photos.Delete(ctx, ref)
		return domain.ProfileResponse{}, err
	}
	if profile.Photo != "" {
		_ = s.photos.Delete(ctx, profile.Photo)
	}

	profile.Photo = ref
	return ToProfileResponse(profile), nil
}

func (s *userService) TopCooks(ctx context.Context, limit int) ([]domain.CookSummary, error) {
	return s.userRepository.TopCooks(ctx, limit)
}

func (s *userService) profile(ctx context.Context, accountID string) (*entities.Profile, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}
	profile, err := s.userRepository.GetProfileByAccountID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func ToAccountResponse(account *entities.Account) domain.AccountResponse {
	res := domain.AccountResponse{
		ID:        account.ID.String(),
		Account:   account.Name,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
	}
	if account.Profile != nil {
		p := ToProfileResponse(account.Profile)
		res.Profile = &p
	}
	return res
}

func ToProfileResponse(profile *entities.Profile) domain.ProfileResponse {
	return domain.ProfileResponse{
		ID:        profile.ID.String(),
		AccountID: profile.AccountID.String(),
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Photo:     profile.Photo,
		Bio:       profile.Bio,
	}
}
