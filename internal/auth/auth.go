// Package auth implements the admin login gate and security-question recovery.
//
// Passwords and answers are compared in plaintext against the document. There
// is no hashing, lockout or rate limiting: the gate controls what is displayed
// and provides no confidentiality.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/devfolio/internal/store"
	"github.com/jonathan/devfolio/internal/types"
)

// MinPasswordLength is the shortest password accepted by ChangePassword.
const MinPasswordLength = types.MinPasswordLength

// CheckPassword reports whether candidate equals the admin password exactly.
func CheckPassword(doc *types.Document, candidate string) error {
	if candidate != doc.AdminPassword {
		return &ErrInvalidPassword{}
	}
	return nil
}

// CheckRecovery validates a recovery attempt. Empty fields are reported before
// the answer is compared; the comparison ignores case and surrounding space.
func CheckRecovery(doc *types.Document, answer, newPassword string) error {
	req := types.RecoveryRequest{Answer: answer, NewPassword: newPassword}
	if err := req.Validate(); err != nil {
		return requestError(err)
	}

	if normalizeAnswer(answer) != normalizeAnswer(doc.SecurityAnswer) {
		return &ErrIncorrectAnswer{}
	}
	return nil
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// requestError converts validator field errors into the auth error types.
// Missing fields take precedence over length violations.
func requestError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var missing []string
	tooShort := false
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "min":
			tooShort = true
		}
	}
	if len(missing) > 0 {
		return &ErrMissingFields{Fields: missing}
	}
	if tooShort {
		return &ErrPasswordTooShort{Min: MinPasswordLength}
	}
	return err
}

// StateStore is the part of the store the auth service needs.
type StateStore interface {
	Read(fn func(doc *types.Document))
	Dispatch(ctx context.Context, action store.Action) bool
	DispatchIf(ctx context.Context, check func(doc *types.Document) error, action store.Action) (bool, error)
}

// Service runs auth flows against the store.
type Service struct {
	store  StateStore
	logger *zap.Logger
}

// NewService creates a new auth service.
func NewService(s StateStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: s, logger: logger}
}

// Login dispatches LOGIN when password matches. The comparison and the
// dispatch see the same document.
func (s *Service) Login(ctx context.Context, password string) error {
	req := types.LoginRequest{Password: password}
	if err := req.Validate(); err != nil {
		return requestError(err)
	}

	_, err := s.store.DispatchIf(ctx, func(doc *types.Document) error {
		return CheckPassword(doc, password)
	}, store.Login())
	if err != nil {
		s.logger.Info("login rejected")
		return err
	}
	return nil
}

// Logout dispatches LOGOUT unconditionally.
func (s *Service) Logout(ctx context.Context) {
	s.store.Dispatch(ctx, store.Logout())
}

// Recover replaces the admin password when answer matches the security answer.
// It does not log the caller in.
func (s *Service) Recover(ctx context.Context, answer, newPassword string) error {
	_, err := s.store.DispatchIf(ctx, func(doc *types.Document) error {
		return CheckRecovery(doc, answer, newPassword)
	}, store.ChangePassword(newPassword))
	if err != nil {
		s.logger.Info("password recovery rejected", zap.Error(err))
		return err
	}
	s.logger.Info("admin password reset via security question")
	return nil
}

// ChangePassword sets a new admin password from the dashboard.
func (s *Service) ChangePassword(ctx context.Context, newPassword string) error {
	req := types.ChangePasswordRequest{NewPassword: newPassword}
	if err := req.Validate(); err != nil {
		return requestError(err)
	}
	s.store.Dispatch(ctx, store.ChangePassword(newPassword))
	return nil
}

// UpdateSecuritySettings replaces the recovery question and answer. Both are required.
func (s *Service) UpdateSecuritySettings(ctx context.Context, question, answer string) error {
	req := types.SecuritySettingsRequest{Question: question, Answer: answer}
	if err := req.Validate(); err != nil {
		return requestError(err)
	}
	s.store.Dispatch(ctx, store.UpdateSecuritySettings(question, answer))
	return nil
}

// Authenticated reports the current value of the display gate.
func (s *Service) Authenticated() bool {
	var ok bool
	s.store.Read(func(doc *types.Document) { ok = doc.IsAuthenticated })
	return ok
}

// SecurityQuestion returns the question shown on the recovery form.
func (s *Service) SecurityQuestion() string {
	var q string
	s.store.Read(func(doc *types.Document) { q = doc.SecurityQuestion })
	return q
}
