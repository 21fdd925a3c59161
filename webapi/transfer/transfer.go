package transfer

import (
	"context"

	"github.com/amirasaad/banktransfer/pkg/domain/account"
	"github.com/amirasaad/banktransfer/pkg/money"
	"github.com/amirasaad/banktransfer/pkg/repository"
	"github.com/amirasaad/banktransfer/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"
)

// Service is the transfer engine as used by the handlers.
type Service interface {
	Transfer(ctx context.Context, amount decimal.Decimal, sourceID, destinationID string) (*account.TransferReceipt, error)
	SetMinimumTransferAmount(amount decimal.Decimal)
	MinimumTransferAmount() decimal.Decimal
}

// Routes registers the transfer, account and settings endpoints.
//
// Routes:
//   - POST /transfers                          : Move money between two accounts.
//   - GET  /accounts/:id                       : Retrieve the balance of an account.
//   - GET  /settings/minimum-transfer-amount   : Retrieve the minimum transfer amount.
//   - PUT  /settings/minimum-transfer-amount   : Change the minimum transfer amount.
func Routes(app *fiber.App, svc Service, accounts repository.AccountFinder) {
	app.Post("/transfers", Transfer(svc))
	app.Get("/accounts/:id", GetAccount(accounts))
	app.Get("/settings/minimum-transfer-amount", GetMinimumAmount(svc))
	app.Put("/settings/minimum-transfer-amount", SetMinimumAmount(svc))
}

// Transfer returns a Fiber handler that moves money between two accounts and
// answers 201 with the receipt.
func Transfer(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.Parse(input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", err)
		}
		receipt, err := svc.Transfer(c.UserContext(), amount, input.SourceAccountID, input.DestinationAccountID)
		if err != nil {
			// The service decorator has already logged the failure.
			return common.ProblemDetailsJSON(c, "Transfer failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transfer successful", ToTransferReceiptDTO(receipt))
	}
}

// GetAccount returns a Fiber handler that reports the committed balance of
// an account.
func GetAccount(accounts repository.AccountFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := accounts.FindByID(c.UserContext(), c.Params("id"))
		if err != nil {
			if common.ErrorToStatusCode(err) == fiber.StatusInternalServerError {
				log.Errorf("Failed to fetch account: %v", err)
			}
			return common.ProblemDetailsJSON(c, "Failed to fetch account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", ToAccountDTO(a.Snapshot()))
	}
}

// GetMinimumAmount returns a Fiber handler that reports the minimum transfer
// amount currently in force.
func GetMinimumAmount(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Minimum transfer amount",
			MinimumAmountDTO{Amount: money.Format(svc.MinimumTransferAmount())})
	}
}

// SetMinimumAmount returns a Fiber handler that changes the minimum transfer
// amount. Negative amounts are rejected.
func SetMinimumAmount(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[MinimumAmountRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.Parse(input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", err)
		}
		if amount.IsNegative() {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid amount",
				"minimum transfer amount must not be negative")
		}
		svc.SetMinimumTransferAmount(amount)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Minimum transfer amount updated",
			MinimumAmountDTO{Amount: money.Format(svc.MinimumTransferAmount())})
	}
}
