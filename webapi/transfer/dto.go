package transfer

import (
	"time"

	"github.com/amirasaad/banktransfer/pkg/domain/account"
	"github.com/amirasaad/banktransfer/pkg/money"
)

// TransferRequest is the body of POST /transfers. Amounts are decimal
// strings so no precision is lost in JSON.
type TransferRequest struct {
	Amount               string `json:"amount" validate:"required,numeric"`
	SourceAccountID      string `json:"source_account_id" validate:"required,max=64"`
	DestinationAccountID string `json:"destination_account_id" validate:"required,max=64"`
}

// MinimumAmountRequest is the body of PUT /settings/minimum-transfer-amount.
type MinimumAmountRequest struct {
	Amount string `json:"amount" validate:"required,numeric"`
}

// MinimumAmountDTO is the API representation of the minimum transfer amount.
type MinimumAmountDTO struct {
	Amount string `json:"amount"`
}

// AccountDTO is the API representation of an account balance.
type AccountDTO struct {
	ID      string `json:"id"`
	Balance string `json:"balance"`
}

// TransferReceiptDTO is the API representation of a completed transfer.
type TransferReceiptDTO struct {
	ID                        string     `json:"id"`
	TransferAmount            string     `json:"transfer_amount"`
	FeeAmount                 string     `json:"fee_amount"`
	InitialSourceAccount      AccountDTO `json:"initial_source_account"`
	InitialDestinationAccount AccountDTO `json:"initial_destination_account"`
	FinalSourceAccount        AccountDTO `json:"final_source_account"`
	FinalDestinationAccount   AccountDTO `json:"final_destination_account"`
	CompletedAt               string     `json:"completed_at"`
}

// ToAccountDTO maps an account snapshot to an AccountDTO.
func ToAccountDTO(s account.Snapshot) AccountDTO {
	return AccountDTO{ID: s.ID, Balance: money.Format(s.Balance)}
}

// ToTransferReceiptDTO maps a receipt to a TransferReceiptDTO.
func ToTransferReceiptDTO(r *account.TransferReceipt) *TransferReceiptDTO {
	if r == nil {
		return nil
	}
	return &TransferReceiptDTO{
		ID:                        r.ID.String(),
		TransferAmount:            money.Format(r.TransferAmount),
		FeeAmount:                 money.Format(r.FeeAmount),
		InitialSourceAccount:      ToAccountDTO(r.InitialSourceAccount),
		InitialDestinationAccount: ToAccountDTO(r.InitialDestinationAccount),
		FinalSourceAccount:        ToAccountDTO(r.FinalSourceAccount),
		FinalDestinationAccount:   ToAccountDTO(r.FinalDestinationAccount),
		CompletedAt:               r.CompletedAt.Format(time.RFC3339Nano),
	}
}
