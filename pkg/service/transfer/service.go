// Package transfer moves money between two accounts.
//
// A transfer is checked against the service window and the minimum amount
// before any account is touched. Fee and principal are then debited from the
// source, the principal is credited to the destination and both balances are
// persisted, all inside one unit of work: a failure at any of those steps
// leaves the store exactly as it was.
//
// The Service does not log or retry. Every failure is returned to the caller
// as one of the kinds declared in package domain, or as the store's own error.
package transfer

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/amirasaad/banktransfer/pkg/domain"
	"github.com/amirasaad/banktransfer/pkg/domain/account"
	"github.com/amirasaad/banktransfer/pkg/money"
	"github.com/amirasaad/banktransfer/pkg/policy"
	"github.com/amirasaad/banktransfer/pkg/repository"
	"github.com/shopspring/decimal"
)

// DefaultMinimumTransferAmount is the minimum a new Service accepts.
var DefaultMinimumTransferAmount = money.Must("1.00")

// Service is the transfer engine.
type Service struct {
	uow     repository.UnitOfWork
	fees    policy.FeePolicy
	window  policy.TimePolicy
	now     func() time.Time
	minimum atomic.Pointer[decimal.Decimal]
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now as the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithMinimumTransferAmount sets the initial minimum transfer amount.
func WithMinimumTransferAmount(amount decimal.Decimal) Option {
	return func(s *Service) { s.SetMinimumTransferAmount(amount) }
}

// NewService creates a Service over the given unit of work and policies.
func NewService(
	uow repository.UnitOfWork,
	fees policy.FeePolicy,
	window policy.TimePolicy,
	opts ...Option,
) *Service {
	s := &Service{
		uow:    uow,
		fees:   fees,
		window: window,
		now:    time.Now,
	}
	s.SetMinimumTransferAmount(DefaultMinimumTransferAmount)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetMinimumTransferAmount changes the minimum for subsequent transfers on
// this Service. Transfers already past validation are not affected.
func (s *Service) SetMinimumTransferAmount(amount decimal.Decimal) {
	s.minimum.Store(&amount)
}

// MinimumTransferAmount returns the minimum currently in force.
func (s *Service) MinimumTransferAmount() decimal.Decimal {
	return *s.minimum.Load()
}

// Transfer moves amount from sourceID to destinationID and charges the fee
// to the source.
//
// Checks run in a fixed order, which decides which failure wins when several
// apply: service window, amount, same account, then account resolution and
// funds. An InsufficientFundsError on the principal reports the shortfall
// against the balance left after the fee was taken.
func (s *Service) Transfer(
	ctx context.Context,
	amount decimal.Decimal,
	sourceID, destinationID string,
) (*account.TransferReceipt, error) {
	if !s.window.Check(s.now()) {
		return nil, domain.ErrServiceUnavailable
	}
	if err := s.validateAmount(amount); err != nil {
		return nil, err
	}
	var receipt *account.TransferReceipt
	err := s.uow.Do(ctx, []string{sourceID, destinationID}, func(repo repository.AccountRepository) error {
		source, err := repo.FindByID(ctx, sourceID)
		if err != nil {
			return err
		}
		destination, err := repo.FindByID(ctx, destinationID)
		if err != nil {
			return err
		}
		// Unknown ids are reported before a self-transfer.
		if source.ID == destination.ID {
			return domain.ErrSameAccount
		}

		r := account.NewTransferReceipt(source, destination)

		fee := s.fees.CalculateFee(amount)
		if fee.IsPositive() {
			if err := source.Debit(fee); err != nil {
				return err
			}
		} else {
			fee = decimal.Zero
		}

		if err := source.Debit(amount); err != nil {
			return err
		}
		destination.Credit(amount)

		if err := repo.UpdateBalance(ctx, source); err != nil {
			return err
		}
		if err := repo.UpdateBalance(ctx, destination); err != nil {
			return err
		}

		r.Complete(amount, fee, source, destination, s.now())
		receipt = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *Service) validateAmount(amount decimal.Decimal) error {
	minimum := s.MinimumTransferAmount()
	if !amount.IsPositive() || amount.LessThan(minimum) || money.HasSubunit(amount) {
		return &domain.InvalidAmountError{Amount: amount, Minimum: minimum}
	}
	return nil
}
