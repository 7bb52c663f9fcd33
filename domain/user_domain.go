package domain

import (
	"time"
)

var (
	MessageSuccessRegister      = "registration successful, please log in"
	MessageSuccessLogin         = "logged in successfully"
	MessageSuccessLogout        = "you have logged out"
	MessageSuccessGetProfile    = "success get profile"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessUpdatePhoto   = "profile photo updated successfully"

	MessageFailedRegister      = "failed to register"
	MessageFailedLogin         = "failed to log in"
	MessageFailedGetProfile    = "failed to get profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedUpdatePhoto   = "failed to update profile photo"
	MessageInvalidCredentials  = "invalid account or password"

	ErrAccountTaken     = NewError(KindConflict, "account already exists")
	ErrUnknownAccount   = NewError(KindAuth, "unknown account")
	ErrBadCredentials   = NewError(KindAuth, "bad credentials")
	ErrAccountNotFound  = NewError(KindNotFound, "account not found")
	ErrProfileNotFound  = NewError(KindValidation, "user profile not found")
	ErrPasswordMismatch = NewError(KindValidation, "passwords do not match")
	ErrPasswordTooShort = NewError(KindValidation, "password should be at least 6 characters")
	ErrPasswordTooLong  = NewError(KindValidation, "password should be at most 72 bytes")
	ErrMissingFields    = NewError(KindValidation, "please fill in all fields")
)

type (
	RegisterRequest struct {
		Account         string `json:"account" form:"account" validate:"required,max=64"`
		Password        string `json:"password" form:"password" validate:"required,min=6,max=72"`
		ConfirmPassword string `json:"password2" form:"password2" validate:"required,eqfield=Password"`
		FirstName       string `json:"first_name" form:"first_name" validate:"required,max=64"`
		LastName        string `json:"last_name" form:"last_name" validate:"required,max=64"`
	}

	LoginRequest struct {
		Account  string `json:"account" form:"account" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	UpdateProfileRequest struct {
		FirstName string `json:"first_name" form:"first_name" validate:"required,max=64"`
		LastName  string `json:"last_name" form:"last_name" validate:"required,max=64"`
		Bio       string `json:"introduction" form:"introduction" validate:"max=2000"`
	}

	AccountResponse struct {
		ID        string           `json:"id"`
		Account   string           `json:"account"`
		Role      string           `json:"role"`
		CreatedAt time.Time        `json:"created_at"`
		Profile   *ProfileResponse `json:"profile,omitempty"`
	}

	ProfileResponse struct {
		ID        string `json:"id"`
		AccountID string `json:"account_id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Photo     string `json:"photo,omitempty"`
		Bio       string `json:"introduction,omitempty"`
	}

	CookSummary struct {
		AccountID   string `json:"account_id"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		Photo       string `json:"photo,omitempty"`
		RecipeCount int64  `json:"recipe_count"`
	}

	ProfilePageResponse struct {
		Profile  ProfileResponse   `json:"profile"`
		Recipes  []RecipeResponse  `json:"recipes"`
		Comments []CommentResponse `json:"comments"`
		Likes    []LikedItem       `json:"likes"`
		Flash    *Flash            `json:"flash,omitempty"`
	}

	AuthPageResponse struct {
		Flash *Flash `json:"flash,omitempty"`
	}
)

func (p ProfileResponse) DisplayName() string {
	return p.FirstName + " " + p.LastName
}
