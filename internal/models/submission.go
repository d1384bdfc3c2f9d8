package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RequestKind string
type PaymentMethod string
type SubmissionState string

const (
	KindDeposit    RequestKind = "deposit"
	KindWithdrawal RequestKind = "withdrawal"

	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodPaypal       PaymentMethod = "paypal"
	MethodCreditCard   PaymentMethod = "credit_card"

	StateDraft      SubmissionState = "draft"
	StateSubmitted  SubmissionState = "submitted"
	StateProcessing SubmissionState = "processing"
	StateCompleted  SubmissionState = "completed"
	StateFailed     SubmissionState = "failed"
)

func (k RequestKind) IsValid() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// RequestDraft is what the user is editing in the deposit/withdrawal form.
type RequestDraft struct {
	Kind        RequestKind     `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	Description string          `json:"description"`
	BankDetails BankDetails     `json:"bank_details"`
	PaypalEmail string          `json:"paypal_email"`
	Card        CardDetails     `json:"card"`
}

// CardDetails are collected for validation only and never sent to the wallet service.
type CardDetails struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

func (d *RequestDraft) Sanitize() {
	d.Method = PaymentMethod(strings.ToLower(strings.TrimSpace(string(d.Method))))
	d.Description = strings.TrimSpace(d.Description)
	d.PaypalEmail = strings.TrimSpace(d.PaypalEmail)
	d.BankDetails.AccountHolder = strings.TrimSpace(d.BankDetails.AccountHolder)
	d.BankDetails.AccountNumber = strings.TrimSpace(d.BankDetails.AccountNumber)
	d.BankDetails.BankName = strings.TrimSpace(d.BankDetails.BankName)
	d.BankDetails.IBAN = strings.TrimSpace(d.BankDetails.IBAN)
	d.Card.Number = strings.ReplaceAll(strings.TrimSpace(d.Card.Number), " ", "")
	d.Card.Holder = strings.TrimSpace(d.Card.Holder)
	d.Card.Expiry = strings.TrimSpace(d.Card.Expiry)
	d.Card.CVV = strings.TrimSpace(d.Card.CVV)
}

// Redacted drops the card fields so the draft can be retained and echoed back.
func (d RequestDraft) Redacted() RequestDraft {
	d.Card = CardDetails{}
	return d
}

// Quote is the outcome of the fee and limit policy for a valid request.
type Quote struct {
	Kind        RequestKind     `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
	FinalAmount decimal.Decimal `json:"final_amount"`
	Min         decimal.Decimal `json:"min"`
	Max         decimal.Decimal `json:"max"`
}

// DepositRequest is the body of POST /wallet/deposit.
type DepositRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Method      PaymentMethod   `json:"method"`
}

// WithdrawRequest is the body of POST /wallet/withdraw.
type WithdrawRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	Description string          `json:"description"`
	BankDetails *BankDetails    `json:"bank_details,omitempty"`
	PaypalEmail string          `json:"paypal_email,omitempty"`
}

// SubmissionRecord is the local log of every deposit/withdrawal submission.
type SubmissionRecord struct {
	ID                  string          `gorm:"primaryKey" json:"id"`
	OwnerID             string          `gorm:"index;not null" json:"owner_id"`
	Role                Role            `gorm:"not null" json:"role"`
	Kind                RequestKind     `gorm:"not null" json:"kind"`
	Amount              decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"amount"`
	Fee                 decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"fee"`
	Method              PaymentMethod   `json:"method"`
	State               SubmissionState `gorm:"not null" json:"state"`
	RemoteTransactionID string          `json:"remote_transaction_id,omitempty"`
	FailureReason       string          `json:"failure_reason,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func (r *SubmissionRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	return
}
