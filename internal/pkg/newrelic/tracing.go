package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext extracts a New Relic transaction from an Echo context
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return nrecho.FromContext(c)
}

// FromContext extracts a New Relic transaction from a standard context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartSegment creates a new segment for the given transaction.
// Returns nil if the transaction is not available.
func StartSegment(txn *newrelic.Transaction, name string) *newrelic.Segment {
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

// SetTransactionName sets the name of the transaction for better visibility
func SetTransactionName(txn *newrelic.Transaction, name string) {
	if txn != nil {
		txn.SetName(name)
	}
}

// AddTransactionAttribute adds a custom attribute to the transaction
func AddTransactionAttribute(txn *newrelic.Transaction, key string, value interface{}) {
	if txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeTransactionError reports an error to New Relic
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// WithSegment executes a function within a New Relic segment
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	txn := FromContext(ctx)
	segment := StartSegment(txn, segmentName)
	if segment != nil {
		defer segment.End()
	}

	return fn()
}
