package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferReceipt records a completed transfer: the amounts involved and the
// state of both accounts before any mutation and after all of them.
type TransferReceipt struct {
	ID                        uuid.UUID
	TransferAmount            decimal.Decimal
	FeeAmount                 decimal.Decimal
	InitialSourceAccount      Snapshot
	InitialDestinationAccount Snapshot
	FinalSourceAccount        Snapshot
	FinalDestinationAccount   Snapshot
	CompletedAt               time.Time
}

// NewTransferReceipt starts a receipt from the pre-transfer state of both accounts.
func NewTransferReceipt(source, destination *Account) *TransferReceipt {
	return &TransferReceipt{
		ID:                        uuid.New(),
		InitialSourceAccount:      source.Snapshot(),
		InitialDestinationAccount: destination.Snapshot(),
	}
}

// Complete records the amounts and the post-transfer state of both accounts.
func (r *TransferReceipt) Complete(
	amount, fee decimal.Decimal,
	source, destination *Account,
	at time.Time,
) {
	r.TransferAmount = amount
	r.FeeAmount = fee
	r.FinalSourceAccount = source.Snapshot()
	r.FinalDestinationAccount = destination.Snapshot()
	r.CompletedAt = at
}
