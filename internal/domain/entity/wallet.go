package entity

import (
	"fmt"
	"sync"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/samber/lo"
)

// Ledger is the mutation surface of a wallet.
// Inside Wallet.Exclusive it operates on the already locked wallet.
type Ledger interface {
	// Balance returns the current balance
	Balance() Money
	// Debit removes amount for a Bet or Withdraw and records it
	Debit(kind TransactionKind, amount Money) (Transaction, error)
	// Credit adds amount for a Deposit or Win and records it
	Credit(kind TransactionKind, amount Money) (Transaction, error)
}

// WalletSummary aggregates a wallet's transaction history
type WalletSummary struct {
	Balance      Money
	Deposited    Money
	Withdrawn    Money
	Wagered      Money
	Won          Money
	Bets         int
	WinningBets  int
	Transactions int
}

// Wallet owns a player's balance and append-only transaction history.
// All mutations are serialized by mu.
type Wallet struct {
	mu           sync.Mutex
	balance      Money
	transactions []Transaction
	timeProvider coreport.TimeProvider
}

// NewWallet creates an empty wallet with a zero balance
func NewWallet(timeProvider coreport.TimeProvider) *Wallet {
	return &Wallet{
		timeProvider: timeProvider,
	}
}

// Balance returns the current balance
func (w *Wallet) Balance() Money {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// Debit atomically removes amount and appends a Bet or Withdraw transaction.
// Fails with ErrInsufficientFunds when amount exceeds the balance.
func (w *Wallet) Debit(kind TransactionKind, amount Money) (Transaction, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.debitLocked(kind, amount)
}

// Credit atomically adds amount and appends a Deposit or Win transaction
func (w *Wallet) Credit(kind TransactionKind, amount Money) (Transaction, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.creditLocked(kind, amount)
}

// Exclusive runs fn while holding the wallet lock for its whole duration.
// fn must use the supplied Ledger; calling the Wallet's own mutators from fn deadlocks.
// The lock is released on every exit path, including a panic in fn.
func (w *Wallet) Exclusive(fn func(Ledger) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(lockedWallet{w: w})
}

// Transactions returns a copy of the transaction history in insertion order
func (w *Wallet) Transactions() []Transaction {
	w.mu.Lock()
	defer w.mu.Unlock()

	history := make([]Transaction, len(w.transactions))
	copy(history, w.transactions)
	return history
}

// TransactionsByKind returns the transactions of one kind in insertion order
func (w *Wallet) TransactionsByKind(kind TransactionKind) []Transaction {
	return lo.Filter(w.Transactions(), func(t Transaction, _ int) bool {
		return t.Kind() == kind
	})
}

// Summary aggregates totals over the transaction history
func (w *Wallet) Summary() WalletSummary {
	w.mu.Lock()
	history := make([]Transaction, len(w.transactions))
	copy(history, w.transactions)
	balance := w.balance
	w.mu.Unlock()

	summary := lo.Reduce(history, func(s WalletSummary, t Transaction, _ int) WalletSummary {
		switch t.Kind() {
		case KindDeposit:
			s.Deposited = s.Deposited.Add(t.Amount())
		case KindWithdraw:
			s.Withdrawn = s.Withdrawn.Add(t.Amount())
		case KindBet:
			s.Wagered = s.Wagered.Add(t.Amount())
			s.Bets++
		case KindWin:
			s.Won = s.Won.Add(t.Amount())
		}
		return s
	}, WalletSummary{})

	summary.Balance = balance
	summary.Transactions = len(history)
	summary.WinningBets = lo.CountBy(history, func(t Transaction) bool {
		return t.Kind() == KindWin && t.Amount().IsPositive()
	})
	return summary
}

func (w *Wallet) debitLocked(kind TransactionKind, amount Money) (Transaction, error) {
	if !kind.IsDebit() {
		return Transaction{}, fmt.Errorf("%w: %s is not a debit", errs.ErrInvalidTransactionKind, kind)
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: %s amount must be positive", errs.ErrInvalidAmount, kind)
	}
	if amount.GreaterThan(w.balance) {
		return Transaction{}, errs.NewInsufficientFundsError(string(kind), amount.String(), w.balance.String())
	}

	newBalance, err := w.balance.Sub(amount)
	if err != nil {
		return Transaction{}, err
	}
	return w.appendLocked(kind, amount, newBalance)
}

func (w *Wallet) creditLocked(kind TransactionKind, amount Money) (Transaction, error) {
	if !kind.IsCredit() {
		return Transaction{}, fmt.Errorf("%w: %s is not a credit", errs.ErrInvalidTransactionKind, kind)
	}
	return w.appendLocked(kind, amount, w.balance.Add(amount))
}

// appendLocked records the transaction first so a rejected record leaves the balance untouched
func (w *Wallet) appendLocked(kind TransactionKind, amount, newBalance Money) (Transaction, error) {
	txn, err := newTransaction(kind, amount, newBalance, w.timeProvider.Now())
	if err != nil {
		return Transaction{}, err
	}
	w.balance = newBalance
	w.transactions = append(w.transactions, txn)
	return txn, nil
}

// lockedWallet is the Ledger handed out by Exclusive
type lockedWallet struct {
	w *Wallet
}

func (l lockedWallet) Balance() Money {
	return l.w.balance
}

func (l lockedWallet) Debit(kind TransactionKind, amount Money) (Transaction, error) {
	return l.w.debitLocked(kind, amount)
}

func (l lockedWallet) Credit(kind TransactionKind, amount Money) (Transaction, error) {
	return l.w.creditLocked(kind, amount)
}
