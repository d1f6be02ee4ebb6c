// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaymentDetails is the structured record extracted from one OCR'd
// payment receipt. Empty string means the field was not found; no
// field is ever invented. Records are immutable once returned.
type PaymentDetails struct {
	// TransactionID is the resolved primary identifier: a copy of the
	// highest-priority non-empty scheme ID (UPI > app > Google > UTR >
	// reference).
	TransactionID string `json:"transaction_id" yaml:"transaction_id"`

	// UPITransactionID is the 12-digit UPI-labeled identifier.
	UPITransactionID string `json:"upi_transaction_id" yaml:"upi_transaction_id"`

	// GoogleTransactionID is the Google Pay identifier.
	GoogleTransactionID string `json:"google_transaction_id" yaml:"google_transaction_id"`

	// AppTransactionID is the payment-app identifier (PhonePe, Paytm, BHIM).
	AppTransactionID string `json:"app_transaction_id" yaml:"app_transaction_id"`

	// UTRNumber is the 12-digit bank settlement reference.
	UTRNumber string `json:"utr_number" yaml:"utr_number"`

	// ReferenceNumber is a generic receipt/order reference.
	ReferenceNumber string `json:"reference_number" yaml:"reference_number"`

	// Amount is the decimal amount without currency symbol, accepted
	// only inside (0, 1000000).
	Amount string `json:"amount" yaml:"amount"`

	// Date and Time hold the raw matched text, not normalized.
	Date string `json:"date" yaml:"date"`
	Time string `json:"time" yaml:"time"`

	// PaymentMethod is one of a fixed candidate list (GOOGLE PAY,
	// PHONEPE, UPI, ...).
	PaymentMethod string `json:"payment_method" yaml:"payment_method"`

	// Status is one of a fixed candidate list (COMPLETED, SUCCESS,
	// PAID, FAILED, PENDING, DECLINED).
	Status string `json:"status" yaml:"status"`

	// UPIID is the handle-like token containing '@' (looser than an
	// email; the domain needs no TLD).
	UPIID string `json:"upi_id" yaml:"upi_id"`

	// BankName is one of a fixed candidate list.
	BankName string `json:"bank_name" yaml:"bank_name"`

	MerchantName string `json:"merchant_name" yaml:"merchant_name"`
	PayerName    string `json:"payer_name" yaml:"payer_name"`

	// RawText is a bounded OCR dump kept for manual review when
	// automated extraction misses.
	RawText string `json:"raw_text" yaml:"raw_text"`
}

// IsEmpty reports whether no payment field was extracted. RawText is
// audit data and does not count.
func (d PaymentDetails) IsEmpty() bool {
	return d.TransactionID == "" &&
		d.UPITransactionID == "" &&
		d.GoogleTransactionID == "" &&
		d.AppTransactionID == "" &&
		d.UTRNumber == "" &&
		d.ReferenceNumber == "" &&
		d.Amount == "" &&
		d.Date == "" &&
		d.Time == "" &&
		d.PaymentMethod == "" &&
		d.Status == "" &&
		d.UPIID == "" &&
		d.BankName == "" &&
		d.MerchantName == "" &&
		d.PayerName == ""
}
