// Package policy holds the deposit and withdrawal limits, the fee model and the
// method-specific field requirements.
package policy

import (
	"net/mail"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

var (
	DepositMin            = decimal.NewFromInt(10)
	DepositMax            = decimal.NewFromInt(10000)
	FreelancerWithdrawMin = decimal.NewFromInt(50)
	ClientWithdrawMin     = decimal.NewFromInt(10)
	WithdrawCap           = decimal.NewFromInt(10000)

	// CommissionRate is the platform cut of project settlements. Deposits and
	// withdrawals carry no fee.
	CommissionRate = decimal.RequireFromString("0.05")
)

var depositMethods = map[models.PaymentMethod]bool{
	models.MethodCreditCard:   true,
	models.MethodPaypal:       true,
	models.MethodBankTransfer: true,
}

var withdrawMethods = map[models.PaymentMethod]bool{
	models.MethodPaypal:       true,
	models.MethodBankTransfer: true,
}

// DepositFee is zero.
func DepositFee(decimal.Decimal) decimal.Decimal { return decimal.Zero }

// WithdrawalFee is zero.
func WithdrawalFee(decimal.Decimal) decimal.Decimal { return decimal.Zero }

// ProjectCommission is the platform's share of a project settlement.
func ProjectCommission(amount decimal.Decimal) decimal.Decimal {
	return amount.Abs().Mul(CommissionRate).Round(2)
}

// QuoteDeposit checks the deposit bounds and returns the fee breakdown.
func QuoteDeposit(amount decimal.Decimal) (models.Quote, error) {
	if amount.LessThan(DepositMin) || amount.GreaterThan(DepositMax) {
		return models.Quote{}, outOfRange("deposit must be between %s and %s", DepositMin, DepositMax)
	}
	fee := DepositFee(amount)
	return models.Quote{
		Kind:        models.KindDeposit,
		Amount:      amount,
		Fee:         fee,
		FinalAmount: amount.Sub(fee),
		Min:         DepositMin,
		Max:         DepositMax,
	}, nil
}

// WithdrawLimits returns the bounds for a withdrawal given the role and what
// the owner can currently withdraw.
func WithdrawLimits(role models.Role, withdrawable decimal.Decimal) (lower, upper decimal.Decimal) {
	lower = FreelancerWithdrawMin
	if role == models.RoleClient {
		lower = ClientWithdrawMin
	}
	upper = decimal.Min(withdrawable, WithdrawCap)
	if upper.IsNegative() {
		upper = decimal.Zero
	}
	return lower, upper
}

// QuoteWithdrawal checks the withdrawal bounds against the current balance.
func QuoteWithdrawal(role models.Role, amount decimal.Decimal, balance models.Balance) (models.Quote, error) {
	lower, upper := WithdrawLimits(role, balance.Withdrawable())

	if amount.LessThan(lower) {
		return models.Quote{}, outOfRange("withdrawal must be at least %s", lower)
	}
	if amount.GreaterThan(WithdrawCap) {
		return models.Quote{}, outOfRange("withdrawal must be at most %s", WithdrawCap)
	}
	if amount.GreaterThan(balance.Withdrawable()) {
		return models.Quote{}, &ValidationError{
			Kind:    ErrInsufficientBalance,
			Field:   "amount",
			Message: "amount exceeds available balance of " + balance.Withdrawable().StringFixed(2),
		}
	}

	fee := WithdrawalFee(amount)
	return models.Quote{
		Kind:        models.KindWithdrawal,
		Amount:      amount,
		Fee:         fee,
		FinalAmount: amount.Sub(fee),
		Min:         lower,
		Max:         upper,
	}, nil
}

// ValidateDraft runs every local check for a draft: amount bounds, balance
// and the fields its method requires.
func ValidateDraft(role models.Role, draft models.RequestDraft, balance models.Balance) (models.Quote, error) {
	var (
		quote models.Quote
		err   error
	)

	switch draft.Kind {
	case models.KindDeposit:
		quote, err = QuoteDeposit(draft.Amount)
	case models.KindWithdrawal:
		quote, err = QuoteWithdrawal(role, draft.Amount, balance)
	default:
		return models.Quote{}, missing("kind")
	}
	if err != nil {
		return models.Quote{}, err
	}

	if err := ValidateMethod(draft); err != nil {
		return models.Quote{}, err
	}
	return quote, nil
}

// ValidateMethod checks the method is allowed for the request kind and that
// its required fields are present.
func ValidateMethod(draft models.RequestDraft) error {
	allowed := depositMethods
	if draft.Kind == models.KindWithdrawal {
		allowed = withdrawMethods
	}
	if draft.Method == "" || !allowed[draft.Method] {
		return missing("method")
	}

	switch draft.Method {
	case models.MethodBankTransfer:
		bd := draft.BankDetails
		if bd.AccountHolder == "" {
			return missing("bank_details.account_holder")
		}
		if bd.AccountNumber == "" {
			return missing("bank_details.account_number")
		}
		if bd.BankName == "" {
			return missing("bank_details.bank_name")
		}
	case models.MethodPaypal:
		if draft.PaypalEmail == "" {
			return missing("paypal_email")
		}
		if _, err := mail.ParseAddress(draft.PaypalEmail); err != nil {
			return &ValidationError{Kind: ErrMissingRequiredField, Field: "paypal_email", Message: "must be a valid email address"}
		}
	case models.MethodCreditCard:
		card := draft.Card
		if card.Number == "" {
			return missing("card.number")
		}
		if card.Holder == "" {
			return missing("card.holder")
		}
		if card.Expiry == "" {
			return missing("card.expiry")
		}
		if card.CVV == "" {
			return missing("card.cvv")
		}
	}
	return nil
}

// DepositRequest builds the wire request. Card data stays local.
func DepositRequest(draft models.RequestDraft, quote models.Quote) models.DepositRequest {
	return models.DepositRequest{
		Amount:      quote.FinalAmount,
		Description: draft.Description,
		Method:      draft.Method,
	}
}

// WithdrawRequest builds the wire request with only the details of the chosen method.
func WithdrawRequest(draft models.RequestDraft, quote models.Quote) models.WithdrawRequest {
	req := models.WithdrawRequest{
		Amount:      quote.FinalAmount,
		Method:      draft.Method,
		Description: draft.Description,
	}
	switch draft.Method {
	case models.MethodBankTransfer:
		bd := draft.BankDetails
		req.BankDetails = &bd
	case models.MethodPaypal:
		req.PaypalEmail = draft.PaypalEmail
	}
	return req
}
