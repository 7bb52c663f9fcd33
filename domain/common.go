package domain

import (
	"errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	MinPasswordLength = 6
	// bcrypt refuses longer inputs
	MaxPasswordBytes = 72

	MaxPhotoBytes = 5 * 1024 * 1024

	FlashSuccess = "success"
	FlashError   = "error"
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageInvalidInput         = "invalid input"
	MessageInternalError        = "something went wrong, please try again"
	MessageLoginRequired        = "please log in first"
	MessageAdminRequired        = "you do not have permission to access that page"

	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
	ErrLoginRequired = NewError(KindAuth, MessageLoginRequired)
	ErrAdminRequired = NewError(KindForbidden, MessageAdminRequired)

	ErrPhotoTooLarge   = NewError(KindValidation, "photo must be 5 MB or smaller")
	ErrPhotoNotAnImage = NewError(KindValidation, "only jpeg, png and gif images are allowed")
)

type (
	// Photo is an uploaded image that already passed type and size checks.
	Photo struct {
		Data []byte
		Mime string
	}

	// Flash is a one-shot message carried across a redirect.
	Flash struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}
)
