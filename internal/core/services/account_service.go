package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tablestack/resto_ledger_app/internal/apperrors"
	"github.com/tablestack/resto_ledger_app/internal/core/domain"
	portsrepo "github.com/tablestack/resto_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tablestack/resto_ledger_app/internal/core/ports/services"
	"github.com/tablestack/resto_ledger_app/internal/dto"
)

// ErrSystemAccountImmutable rejects deactivation of seeded system accounts.
var ErrSystemAccountImmutable = fmt.Errorf("%w: system accounts cannot be deactivated", apperrors.ErrValidation)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	outletRepo  portsrepo.OutletRepository
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// NewAccountService creates the account management service.
func NewAccountService(accountRepo portsrepo.AccountRepository, outletRepo portsrepo.OutletRepository) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		outletRepo:  outletRepo,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, outletID string, req dto.CreateAccountRequest) (domain.Account, error) {
	if !req.AccountType.IsValid() {
		return domain.Account{}, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, req.AccountType)
	}
	if _, err := s.outletRepo.FindOutletByID(ctx, outletID); err != nil {
		return domain.Account{}, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		OutletID:    outletID,
		Name:        req.Name,
		Code:        req.Code,
		AccountType: req.AccountType,
		Description: req.Description,
		IsSystem:    false,
		IsActive:    true,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, "failed to create account", "error", err, "outletId", outletID, "name", req.Name)
		return domain.Account{}, err
	}
	s.LogInfo(ctx, "account created", "accountId", account.AccountID, "outletId", outletID)
	return account, nil
}

func (s *accountService) GetAccount(ctx context.Context, outletID string, accountID string) (domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return domain.Account{}, err
	}
	if account.OutletID != outletID {
		return domain.Account{}, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, outletID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	return s.accountRepo.ListAccounts(ctx, outletID, limit, offset)
}

func (s *accountService) UpdateAccount(ctx context.Context, outletID string, accountID string, req dto.UpdateAccountRequest) (domain.Account, error) {
	account, err := s.GetAccount(ctx, outletID, accountID)
	if err != nil {
		return domain.Account{}, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Code != nil {
		account.Code = *req.Code
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, account); err != nil {
		s.LogError(ctx, "failed to update account", "error", err, "accountId", accountID)
		return domain.Account{}, err
	}
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, outletID string, accountID string) error {
	account, err := s.GetAccount(ctx, outletID, accountID)
	if err != nil {
		return err
	}
	if account.IsSystem {
		return ErrSystemAccountImmutable
	}
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, time.Now().UTC()); err != nil {
		s.LogError(ctx, "failed to deactivate account", "error", err, "accountId", accountID)
		return err
	}
	s.LogInfo(ctx, "account deactivated", "accountId", accountID, "outletId", outletID)
	return nil
}
