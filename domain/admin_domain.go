package domain

var (
	MessageSuccessListUsers     = "success get users"
	MessageSuccessDeleteUser    = "user deleted"
	MessageSuccessResetPassword = "password reset successfully"

	MessageFailedListUsers     = "failed to get users"
	MessageFailedDeleteUser    = "an error occurred while deleting the user"
	MessageFailedResetPassword = "an error occurred while resetting the password"

	ErrSelfDeletion = NewError(KindValidation, "you cannot delete your own account")
)

type (
	ResetPasswordRequest struct {
		NewPassword string `json:"newPassword" form:"newPassword" validate:"required,min=6,max=72"`
	}

	AdminPageResponse struct {
		Users []AccountResponse `json:"users"`
		Flash *Flash            `json:"flash,omitempty"`
	}
)
