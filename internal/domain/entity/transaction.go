package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/google/uuid"
)

// TransactionKind identifies the wallet mutation a transaction records
type TransactionKind string

// Transaction kinds
const (
	KindDeposit  TransactionKind = "deposit"
	KindWithdraw TransactionKind = "withdraw"
	KindBet      TransactionKind = "bet"
	KindWin      TransactionKind = "win"
)

// IsDebit returns true if this kind decreases the balance
func (k TransactionKind) IsDebit() bool {
	return k == KindWithdraw || k == KindBet
}

// IsCredit returns true if this kind increases the balance
func (k TransactionKind) IsCredit() bool {
	return k == KindDeposit || k == KindWin
}

// IsValid reports whether k is one of the known kinds
func (k TransactionKind) IsValid() bool {
	return k.IsDebit() || k.IsCredit()
}

// Transaction is an immutable audit record of one wallet mutation
type Transaction struct {
	id           uuid.UUID
	kind         TransactionKind
	amount       Money
	balanceAfter Money
	timestamp    time.Time
}

// newTransaction creates a transaction record; only the wallet creates them
func newTransaction(kind TransactionKind, amount, balanceAfter Money, at time.Time) (Transaction, error) {
	if !kind.IsValid() {
		return Transaction{}, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionKind, kind)
	}
	// A win of exactly zero is recorded; every other kind moves money
	if amount.IsZero() && kind != KindWin {
		return Transaction{}, fmt.Errorf("%w: %s amount must be positive", errs.ErrInvalidAmount, kind)
	}

	return Transaction{
		id:           uuid.New(),
		kind:         kind,
		amount:       amount,
		balanceAfter: balanceAfter,
		timestamp:    at,
	}, nil
}

// ID returns the unique transaction identifier
func (t Transaction) ID() uuid.UUID { return t.id }

// Kind returns the mutation kind
func (t Transaction) Kind() TransactionKind { return t.kind }

// Amount returns the amount moved
func (t Transaction) Amount() Money { return t.amount }

// BalanceAfter returns the wallet balance right after the mutation
func (t Transaction) BalanceAfter() Money { return t.balanceAfter }

// Timestamp returns when the mutation happened
func (t Transaction) Timestamp() time.Time { return t.timestamp }
