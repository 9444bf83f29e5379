package domain

import "time"

type CustodyType string

const (
	CustodyTypeMoney    CustodyType = "MONEY"
	CustodyTypeItem     CustodyType = "ITEM"
	CustodyTypeDocument CustodyType = "DOCUMENT"
)

type CustodyStatus string

const (
	CustodyStatusPending   CustodyStatus = "PENDING"
	CustodyStatusReturned  CustodyStatus = "RETURNED"
	CustodyStatusForfeited CustodyStatus = "FORFEITED"
)

// Custody is a deposit (money, physical item or document) held against an
// order. It is taken before delivery and decided after.
type Custody struct {
	ID          int64         `json:"id"`
	OrderID     int64         `json:"order_id"`
	Type        CustodyType   `json:"type"`
	Description string        `json:"description"`
	ValueCents  int64         `json:"value_cents"`
	Status      CustodyStatus `json:"status"`
	CreatedOn   time.Time     `json:"created_on"`
	UpdatedOn   time.Time     `json:"updated_on"`
}

// CustodyReturn evidences that a returned custody was physically handed back.
type CustodyReturn struct {
	ID               int64     `json:"id"`
	CustodyID        int64     `json:"custody_id"`
	ReturnedAt       time.Time `json:"returned_at"`
	PhotoRef         string    `json:"photo_ref"`
	CustomerName     string    `json:"customer_name"`
	CustomerIDNumber string    `json:"customer_id_number"`
}
