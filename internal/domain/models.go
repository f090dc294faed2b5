package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Service is a bookable offering in the shop catalog. Prices are whole
// rupiah (IDR has no fractional unit in practice).
type Service struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
}

// Product is a retail item in the shop catalog. Stock is informational
// and never blocks a sale.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Category string `json:"category"`
}

type Customer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar,omitempty"`
	Visits int    `json:"visits"`
}

// UnmarshalJSON accepts both string and numeric ids: records written by
// older builds stored customer ids as bare numbers.
func (c *Customer) UnmarshalJSON(data []byte) error {
	type alias Customer
	aux := struct {
		ID json.RawMessage `json:"id"`
		*alias
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := decodeFlexibleID(aux.ID)
	if err != nil {
		return fmt.Errorf("customer id: %w", err)
	}
	c.ID = id
	return nil
}

func decodeFlexibleID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString, nil
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String(), nil
	}
	return "", fmt.Errorf("unsupported id %s", string(raw))
}

type ItemType string

const (
	ItemTypeService ItemType = "service"
	ItemTypeProduct ItemType = "product"
)

// CartItem is a line in a checkout session. Name, price and category are
// snapshotted from the catalog at add time, so later catalog edits never
// rewrite history.
type CartItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Quantity int      `json:"quantity"`
	Type     ItemType `json:"type"`
	Category string   `json:"category,omitempty"`
}

const (
	PaymentCash = "cash"
	PaymentQris = "qris"
)

// CashDetails exists only on cash transactions. QRIS transactions carry
// no tendered amount and no change by construction.
type CashDetails struct {
	Received int64 `json:"cashReceived"`
	Change   int64 `json:"change"`
}

// Transaction is the durable record of one completed sale. It is
// immutable once appended to the transaction log.
type Transaction struct {
	ID            string
	Date          time.Time
	Customer      *Customer
	Items         []CartItem
	Subtotal      int64
	Discount      float64
	Total         int64
	PaymentMethod string
	Cash          *CashDetails
}

// transactionJSON is the flat persisted shape: cashReceived and change
// appear as optional top-level keys, matching the data files written by
// earlier builds.
type transactionJSON struct {
	ID            string     `json:"id"`
	Date          string     `json:"date"`
	Customer      *Customer  `json:"customer"`
	Items         []CartItem `json:"items"`
	Subtotal      int64      `json:"subtotal"`
	Discount      float64    `json:"discount"`
	Total         int64      `json:"total"`
	PaymentMethod string     `json:"paymentMethod"`
	CashReceived  *int64     `json:"cashReceived,omitempty"`
	Change        *int64     `json:"change,omitempty"`
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	out := transactionJSON{
		ID:            t.ID,
		Date:          t.Date.UTC().Format(time.RFC3339),
		Customer:      t.Customer,
		Items:         t.Items,
		Subtotal:      t.Subtotal,
		Discount:      t.Discount,
		Total:         t.Total,
		PaymentMethod: t.PaymentMethod,
	}
	if t.Cash != nil {
		received := t.Cash.Received
		change := t.Cash.Change
		out.CashReceived = &received
		out.Change = &change
	}
	return json.Marshal(out)
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var in transactionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	date, err := time.Parse(time.RFC3339, in.Date)
	if err != nil {
		return fmt.Errorf("transaction %s date: %w", in.ID, err)
	}

	t.ID = in.ID
	t.Date = date
	t.Customer = in.Customer
	t.Items = in.Items
	t.Subtotal = in.Subtotal
	t.Discount = in.Discount
	t.Total = in.Total
	t.PaymentMethod = in.PaymentMethod
	t.Cash = nil
	if in.PaymentMethod == PaymentCash {
		cash := CashDetails{}
		if in.CashReceived != nil {
			cash.Received = *in.CashReceived
		}
		if in.Change != nil {
			cash.Change = *in.Change
		}
		t.Cash = &cash
	}
	return nil
}

func (t Transaction) IsCash() bool {
	return t.PaymentMethod == PaymentCash
}

type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether ts falls inside the range, both ends
// inclusive.
func (r DateRange) Contains(ts time.Time) bool {
	return !ts.Before(r.From) && !ts.After(r.To)
}

type PaymentMethodCounts struct {
	Cash int `json:"cash"`
	Qris int `json:"qris"`
}

type TransactionSummary struct {
	TotalRevenue     int64               `json:"totalRevenue"`
	TransactionCount int                 `json:"transactionCount"`
	AverageValue     float64             `json:"averageValue"`
	ServiceCount     int                 `json:"serviceCount"`
	ProductCount     int                 `json:"productCount"`
	PaymentMethods   PaymentMethodCounts `json:"paymentMethods"`
}

// RevenueBuckets holds the fixed-width chart series: seven weekday
// slots (Sunday first), four week-of-month slots and a six-slot rolling
// month axis.
type RevenueBuckets struct {
	Daily   [7]int64 `json:"daily"`
	Weekly  [4]int64 `json:"weekly"`
	Monthly [6]int64 `json:"monthly"`
}

type ServiceRank struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CategoryRevenue struct {
	Category string `json:"name"`
	Revenue  int64  `json:"revenue"`
}
