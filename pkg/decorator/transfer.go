// Package decorator wraps services with cross-cutting concerns. The transfer
// engine itself is silent; Instrumented adds structured logging, Prometheus
// metrics and an OpenTelemetry span around every call.
package decorator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/banktransfer/pkg/domain"
	"github.com/amirasaad/banktransfer/pkg/domain/account"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/amirasaad/banktransfer/pkg/decorator"

// Transfer outcomes, used as the metrics label and span status.
const (
	OutcomeSuccess            = "success"
	OutcomeServiceUnavailable = "service_unavailable"
	OutcomeInvalidAmount      = "invalid_amount"
	OutcomeSameAccount        = "same_account"
	OutcomeAccountNotFound    = "account_not_found"
	OutcomeInsufficientFunds  = "insufficient_funds"
	OutcomeError              = "error"
)

// Transferer is the transfer engine as seen by its callers.
type Transferer interface {
	Transfer(ctx context.Context, amount decimal.Decimal, sourceID, destinationID string) (*account.TransferReceipt, error)
	SetMinimumTransferAmount(amount decimal.Decimal)
	MinimumTransferAmount() decimal.Decimal
}

// Metrics holds the transfer collectors.
type Metrics struct {
	transfers *prometheus.CounterVec
	duration  prometheus.Histogram
	moved     prometheus.Counter
	fees      prometheus.Counter
}

// NewMetrics creates the transfer collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		transfers: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "banktransfer_transfers_total",
				Help: "Total number of transfer attempts by outcome",
			},
			[]string{"outcome"},
		),
		duration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "banktransfer_transfer_duration_seconds",
				Help:    "Time to process a transfer",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		moved: f.NewCounter(
			prometheus.CounterOpts{
				Name: "banktransfer_transferred_amount_total",
				Help: "Sum of principal moved by successful transfers",
			},
		),
		fees: f.NewCounter(
			prometheus.CounterOpts{
				Name: "banktransfer_fees_collected_total",
				Help: "Sum of fees charged by successful transfers",
			},
		),
	}
}

// Instrumented decorates a Transferer.
type Instrumented struct {
	next    Transferer
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

var _ Transferer = (*Instrumented)(nil)

// NewInstrumented wraps next. A nil logger means slog.Default().
func NewInstrumented(next Transferer, logger *slog.Logger, metrics *Metrics) *Instrumented {
	if logger == nil {
		logger = slog.Default()
	}
	return &Instrumented{
		next:    next,
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
	}
}

// Transfer calls the wrapped engine and records the outcome.
func (d *Instrumented) Transfer(
	ctx context.Context,
	amount decimal.Decimal,
	sourceID, destinationID string,
) (*account.TransferReceipt, error) {
	ctx, span := d.tracer.Start(ctx, "transfer.Transfer", trace.WithAttributes(
		attribute.String("transfer.source_account_id", sourceID),
		attribute.String("transfer.destination_account_id", destinationID),
		attribute.String("transfer.amount", amount.String()),
	))
	defer span.End()

	logger := d.logger.With(
		"source_account_id", sourceID,
		"destination_account_id", destinationID,
		"amount", amount.String(),
	)

	start := time.Now()
	receipt, err := d.next.Transfer(ctx, amount, sourceID, destinationID)
	outcome := Outcome(err)
	d.metrics.duration.Observe(time.Since(start).Seconds())
	d.metrics.transfers.WithLabelValues(outcome).Inc()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		if outcome == OutcomeError {
			logger.ErrorContext(ctx, "Transfer failed", "error", err)
		} else {
			logger.WarnContext(ctx, "Transfer rejected", "outcome", outcome, "error", err)
		}
		return nil, err
	}

	d.metrics.moved.Add(receipt.TransferAmount.InexactFloat64())
	d.metrics.fees.Add(receipt.FeeAmount.InexactFloat64())
	span.SetAttributes(attribute.String("transfer.receipt_id", receipt.ID.String()))
	span.SetStatus(codes.Ok, outcome)
	logger.InfoContext(ctx, "Transfer completed",
		"receipt_id", receipt.ID,
		"fee", receipt.FeeAmount.String(),
		"source_balance", receipt.FinalSourceAccount.Balance.String(),
	)
	return receipt, nil
}

// SetMinimumTransferAmount forwards to the wrapped engine.
func (d *Instrumented) SetMinimumTransferAmount(amount decimal.Decimal) {
	previous := d.next.MinimumTransferAmount()
	d.next.SetMinimumTransferAmount(amount)
	d.logger.Info("Minimum transfer amount changed",
		"previous", previous.String(),
		"minimum", amount.String(),
	)
}

// MinimumTransferAmount forwards to the wrapped engine.
func (d *Instrumented) MinimumTransferAmount() decimal.Decimal {
	return d.next.MinimumTransferAmount()
}

// Outcome classifies a transfer error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrServiceUnavailable):
		return OutcomeServiceUnavailable
	case errors.Is(err, domain.ErrInvalidAmount):
		return OutcomeInvalidAmount
	case errors.Is(err, domain.ErrSameAccount):
		return OutcomeSameAccount
	case errors.Is(err, domain.ErrAccountNotFound):
		return OutcomeAccountNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return OutcomeInsufficientFunds
	default:
		return OutcomeError
	}
}
