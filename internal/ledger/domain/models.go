package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a chart-of-accounts entry. Accounts are never updated in place;
// journal entries reference them by id.
type Account struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	AccountType    AccountType    `gorm:"type:varchar(16);not null" json:"accountType"`
	SubAccountType SubAccountType `gorm:"type:varchar(32);not null" json:"subAccountType"`
	AccountName    string         `gorm:"type:varchar(100);not null" json:"accountName"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (Account) TableName() string {
	return "accounts"
}

// JournalEntry is one double-entry transaction: a single debit balanced by
// one or more credits. TotalCredit and IsBalanced are derived at create time
// and an unbalanced entry is never persisted.
type JournalEntry struct {
	ID             string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Description    string          `gorm:"type:text" json:"description"`
	Comments       string          `gorm:"type:text" json:"comments"`
	DebitAccountID string          `gorm:"type:varchar(36);not null;index" json:"debitAccountId"`
	DebitAccount   *Account        `gorm:"foreignKey:DebitAccountID" json:"debitAccount,omitempty"`
	DebitAmount    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"debitAmount"`
	CreditEntries  []CreditEntry   `gorm:"foreignKey:JournalEntryID" json:"creditEntries"`
	TotalCredit    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"totalCredit"`
	IsBalanced     bool            `gorm:"not null" json:"isBalanced"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// CreditEntry is one credit leg of a journal entry.
type CreditEntry struct {
	ID             string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	JournalEntryID string          `gorm:"type:varchar(36);not null;index" json:"-"`
	AccountID      string          `gorm:"type:varchar(36);not null;index" json:"accountId"`
	Account        *Account        `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
}

func (CreditEntry) TableName() string {
	return "credit_entries"
}

// PurchaseInvoice is a flat paddy-purchase record. Weights and amounts are
// stored as submitted; no cross-field invariant is enforced here.
type PurchaseInvoice struct {
	ID                  string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Date                string          `gorm:"type:varchar(10);not null" json:"date"`
	LedgerReference     string          `json:"ledgerReference"`
	VehicleNumber       string          `gorm:"not null" json:"vehicleNumber"`
	BuiltyNumber        string          `gorm:"not null" json:"builtyNumber"`
	VendorName          string          `gorm:"not null" json:"vendorName"`
	BrokerName          string          `json:"brokerName"`
	PaddyType           string          `json:"paddyType"`
	Quantity            decimal.Decimal `gorm:"type:decimal(20,3)" json:"quantity"`
	EmptyVehicleWeight  decimal.Decimal `gorm:"type:decimal(20,3)" json:"emptyVehicleWeight"`
	FilledVehicleWeight decimal.Decimal `gorm:"type:decimal(20,3)" json:"filledVehicleWeight"`
	SubtractWeight      decimal.Decimal `gorm:"type:decimal(20,3)" json:"subtractWeight"`
	BagWeight           decimal.Decimal `gorm:"type:decimal(20,3)" json:"bagWeight"`
	FinalWeight         decimal.Decimal `gorm:"type:decimal(20,3)" json:"finalWeight"`
	MoisturePercent     decimal.Decimal `gorm:"type:decimal(20,3)" json:"moisturePercent"`
	MoistureAdjCal      decimal.Decimal `gorm:"type:decimal(20,3)" json:"moistureAdjCal"`
	MoistureAdjustment  decimal.Decimal `gorm:"type:decimal(20,3)" json:"moistureAdjustment"`
	NetWeight           decimal.Decimal `gorm:"type:decimal(20,3)" json:"netWeight"`
	NetWeight40KG       decimal.Decimal `gorm:"type:decimal(20,3)" json:"netWeight40KG"`
	WeightKG            decimal.Decimal `gorm:"type:decimal(20,3)" json:"weightKG"`
	Rate40KG            decimal.Decimal `gorm:"type:decimal(20,2)" json:"rate40kg"`
	AmountCal           decimal.Decimal `gorm:"type:decimal(20,2)" json:"amountCal"`
	Amount              decimal.Decimal `gorm:"type:decimal(20,2)" json:"amount"`
	Difference          decimal.Decimal `gorm:"type:decimal(20,2)" json:"difference"`
	RentAdjustment      decimal.Decimal `gorm:"type:decimal(20,2)" json:"rentAdjustment"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

func (PurchaseInvoice) TableName() string {
	return "purchase_invoices"
}

// SalesInvoice is a flat rice-sale record, same storage policy as
// PurchaseInvoice.
type SalesInvoice struct {
	ID               string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Date             string          `gorm:"type:varchar(10)" json:"date"`
	VehicleNo        string          `json:"vehicleNo"`
	BuiltyNo         string          `json:"builtyNo"`
	VendorName       string          `json:"vendorName"`
	BrokerName       string          `json:"brokerName"`
	PaddyType        string          `json:"paddyType"`
	Quantity         decimal.Decimal `gorm:"type:decimal(20,3)" json:"quantity"`
	Weight           decimal.Decimal `gorm:"type:decimal(20,3)" json:"weight"`
	BagWeight        decimal.Decimal `gorm:"type:decimal(20,3)" json:"bagWeight"`
	NetWeight        decimal.Decimal `gorm:"type:decimal(20,3)" json:"netWeight"`
	NetWeight40      decimal.Decimal `gorm:"type:decimal(20,3)" json:"netWeight40"`
	Rate40           decimal.Decimal `gorm:"type:decimal(20,2)" json:"rate40"`
	Amount           decimal.Decimal `gorm:"type:decimal(20,2)" json:"amount"`
	SutliSilaiRate   decimal.Decimal `gorm:"type:decimal(20,2)" json:"sutliSilaiRate"`
	SutliSilaiAmount decimal.Decimal `gorm:"type:decimal(20,2)" json:"sutliSilaiAmount"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(20,2)" json:"totalAmount"`
	BrokeryRate      decimal.Decimal `gorm:"type:decimal(20,2)" json:"brokeryRate"`
	Brokery          decimal.Decimal `gorm:"type:decimal(20,2)" json:"brokery"`
	TotalAmount2     decimal.Decimal `gorm:"type:decimal(20,2)" json:"totalAmount2"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func (SalesInvoice) TableName() string {
	return "sales_invoices"
}

// LedgerLine is one row of the aggregated ledger view. It is computed on
// demand and never persisted.
type LedgerLine struct {
	Date        string          `json:"date"`
	Account     string          `json:"account"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}
