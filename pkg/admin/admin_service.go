package admin

import (
	"context"
	"errors"
	"fmt"
	"html"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/internal/utils/mailing"
	"Go-Recipe-Share/pkg/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	AdminService interface {
		ListUsers(ctx context.Context, requesterID string) ([]domain.AccountResponse, error)
		DeleteUser(ctx context.Context, requesterID string, targetID string) error
		ResetPassword(ctx context.Context, requesterID string, targetID string, req domain.ResetPasswordRequest) error
	}

	adminService struct {
		adminRepository AdminRepository
		userRepository  user.UserRepository
		mailer          mailing.Mailer
		notifyEmail     string
		logger          *zap.Logger
	}
)

func NewAdminService(
	adminRepository AdminRepository,
	userRepository user.UserRepository,
	mailer mailing.Mailer,
	notifyEmail string,
	logger *zap.Logger,
) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		userRepository:  userRepository,
		mailer:          mailer,
		notifyEmail:     notifyEmail,
		logger:          logger,
	}
}

func (s *adminService) requireAdmin(ctx context.Context, requesterID string) (*entities.Account, error) {
	id, err := uuid.Parse(requesterID)
	if err != nil {
		return nil, domain.ErrAdminRequired
	}
	account, err := s.userRepository.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdminRequired
		}
		return nil, err
	}
	if account.Role != domain.RoleAdmin {
		return nil, domain.ErrAdminRequired
	}
	return account, nil
}

func (s *adminService) target(ctx context.Context, targetID string) (*entities.Account, error) {
	id, err := uuid.Parse(targetID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	account, err := s.userRepository.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *adminService) ListUsers(ctx context.Context, requesterID string) ([]domain.AccountResponse, error) {
	if _, err := s.requireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}

	accounts, err := s.userRepository.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, user.ToAccountResponse(a))
	}
	return out, nil
}

func (s *adminService) DeleteUser(ctx context.Context, requesterID string, targetID string) error {
	admin, err := s.requireAdmin(ctx, requesterID)
	if err != nil {
		return err
	}
	if admin.ID.String() == targetID {
		return domain.ErrSelfDeletion
	}

	target, err := s.target(ctx, targetID)
	if err != nil {
		return err
	}

	if err := s.adminRepository.DeleteAccountCascade(ctx, target.ID); err != nil {
		return err
	}

	s.notify(
		"Account deleted",
		fmt.Sprintf("<p>%s deleted the account <b>%s</b>.</p>", html.EscapeString(admin.Name), html.EscapeString(target.Name)),
	)
	return nil
}

func (s *adminService) ResetPassword(ctx context.Context, requesterID string, targetID string, req domain.ResetPasswordRequest) error {
	if err := user.CheckPassword(req.NewPassword); err != nil {
		return err
	}

	admin, err := s.requireAdmin(ctx, requesterID)
	if err != nil {
		return err
	}
	target, err := s.target(ctx, targetID)
	if err != nil {
		return err
	}

	hash, err := user.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.userRepository.UpdatePassword(ctx, target.ID, hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAccountNotFound
		}
		return err
	}

	s.notify(
		"Password reset",
		fmt.Sprintf("<p>%s reset the password of <b>%s</b>.</p>", html.EscapeString(admin.Name), html.EscapeString(target.Name)),
	)
	return nil
}

// notify mails the audit address. Delivery problems are logged only; the
// admin action has already been committed.
func (s *adminService) notify(subject string, body string) {
	if s.notifyEmail == "" {
		return
	}
	if err := s.mailer.SendMail(s.notifyEmail, subject, body); err != nil {
		s.logger.Warn("admin audit mail failed", zap.String("subject", subject), zap.Error(err))
	}
}
