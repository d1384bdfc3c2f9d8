package ledger

import (
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// FreelancerBalance derives available, pending and total from a transaction set.
//
// Completed earnings and deposits add to available, completed withdrawals and
// payments subtract their absolute amount. Earnings that are not completed are
// pending. The result depends only on the set, not on its order.
func FreelancerBalance(txs []models.Transaction) models.Balance {
	available := decimal.Zero
	pending := decimal.Zero

	for _, tx := range txs {
		switch tx.Type {
		case models.TypeEarning:
			if tx.Status.IsCompleted() {
				available = available.Add(tx.Amount)
			} else {
				pending = pending.Add(tx.Amount)
			}
		case models.TypeDeposit:
			if tx.Status.IsCompleted() {
				available = available.Add(tx.Amount)
			}
		case models.TypeWithdrawal, models.TypePayment:
			if tx.Status.IsCompleted() {
				available = available.Sub(tx.Amount.Abs())
			}
		}
	}

	return models.Balance{
		Role:      models.RoleFreelancer,
		Available: available,
		Pending:   pending,
		Total:     available.Add(pending),
	}
}

// ClientBalance is the single-figure balance of a client wallet: completed
// deposits and refunds minus completed payments and withdrawals.
func ClientBalance(txs []models.Transaction) models.Balance {
	balance := decimal.Zero

	for _, tx := range txs {
		if !tx.Status.IsCompleted() {
			continue
		}
		switch tx.Type {
		case models.TypeDeposit, models.TypeRefund:
			balance = balance.Add(tx.Amount.Abs())
		case models.TypePayment, models.TypeWithdrawal:
			balance = balance.Sub(tx.Amount.Abs())
		}
	}

	return models.Balance{
		Role:      models.RoleClient,
		Available: balance,
		Pending:   decimal.Zero,
		Total:     balance,
	}
}

// Calculate picks the balance model for the role.
func Calculate(role models.Role, txs []models.Transaction) models.Balance {
	if role == models.RoleClient {
		return ClientBalance(txs)
	}
	return FreelancerBalance(txs)
}

// Resolve returns the balance to show. The remote wallet record is the source
// of truth when there is one; a missing record means a wallet that was never
// used, whose balance is whatever its transactions add up to (zero when none).
// Total is always recomputed as available + pending.
func Resolve(role models.Role, remote *models.RawWallet, txs []models.Transaction) models.Balance {
	if remote == nil {
		return Calculate(role, txs)
	}

	if role == models.RoleClient {
		b := orZero(remote.Balance, remote.Available)
		return models.Balance{Role: role, Available: b, Pending: decimal.Zero, Total: b}
	}

	available := orZero(remote.Available, remote.Balance)
	pending := orZero(remote.Pending)
	return models.Balance{
		Role:      models.RoleFreelancer,
		Available: available,
		Pending:   pending,
		Total:     available.Add(pending),
	}
}

func orZero(values ...*decimal.Decimal) decimal.Decimal {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return decimal.Zero
}
