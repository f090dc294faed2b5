package checkout

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/lenteradev69/barbershits/internal/domain"
	"github.com/lenteradev69/barbershits/internal/store"
)

// Step is the stage a checkout is in. The register walks them in
// order and only CompletePayment crosses into StepReceipt.
type Step int

const (
	StepCustomer Step = iota + 1
	StepItems
	StepPayment
	StepReceipt
)

func (s Step) String() string {
	switch s {
	case StepCustomer:
		return "select-customer"
	case StepItems:
		return "select-items"
	case StepPayment:
		return "select-payment"
	case StepReceipt:
		return "receipt"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

var (
	ErrWrongStep         = errors.New("operation not allowed in current step")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrPaymentIncomplete = errors.New("payment requirements not met")
	ErrInvalidInput      = errors.New("invalid input")
)

// TransactionLog records completed sales.
type TransactionLog interface {
	Append(tx domain.Transaction) error
}

// StockAdjuster decrements retail stock after a sale and reports the
// shortfall when the sale exceeded what was on hand.
type StockAdjuster interface {
	DecrementProductStock(id string, qty int) (int, error)
}

// VisitRecorder bumps a registered customer's visit count.
type VisitRecorder interface {
	RecordVisit(id string) error
}

// Session is one checkout from customer selection to receipt. It is
// not safe for concurrent use; each register drives one session at a
// time.
type Session struct {
	log    *zap.SugaredLogger
	txlog  TransactionLog
	stock  StockAdjuster
	visits VisitRecorder

	step            Step
	customer        *domain.Customer
	items           []domain.CartItem
	discountPercent float64
	paymentMethod   string
	cashReceived    int64
	receipt         *domain.Transaction
}

// NewSession starts a checkout at the customer step. stock and visits
// may be nil when the caller has no catalog or customer store to
// update.
func NewSession(txlog TransactionLog, stock StockAdjuster, visits VisitRecorder, log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Session{
		log:    log,
		txlog:  txlog,
		stock:  stock,
		visits: visits,
		step:   StepCustomer,
	}
}

func (s *Session) Step() Step { return s.step }

// SelectCustomer attaches a registered customer, or nil for a guest.
func (s *Session) SelectCustomer(cust *domain.Customer) error {
	if s.step != StepCustomer {
		return fmt.Errorf("select customer during %s: %w", s.step, ErrWrongStep)
	}
	s.customer = cust
	return nil
}

func (s *Session) Customer() *domain.Customer { return s.customer }

// Advance moves to the next step. Leaving the items step requires a
// non-empty cart, and the payment step is only left through
// CompletePayment.
func (s *Session) Advance() error {
	switch s.step {
	case StepCustomer:
		s.step = StepItems
		return nil
	case StepItems:
		if len(s.items) == 0 {
			return ErrEmptyCart
		}
		s.step = StepPayment
		return nil
	case StepPayment:
		return fmt.Errorf("complete the payment to advance: %w", ErrWrongStep)
	default:
		return fmt.Errorf("advance from %s: %w", s.step, ErrWrongStep)
	}
}

// Retreat moves back one step. The receipt step is terminal; the sale
// is already recorded.
func (s *Session) Retreat() error {
	switch s.step {
	case StepItems:
		s.step = StepCustomer
		return nil
	case StepPayment:
		s.step = StepItems
		return nil
	default:
		return fmt.Errorf("retreat from %s: %w", s.step, ErrWrongStep)
	}
}

// AddService puts one unit of the service in the cart. Adding the same
// service again bumps its quantity instead of duplicating the line.
func (s *Session) AddService(svc domain.Service) error {
	if s.step != StepItems {
		return fmt.Errorf("add items during %s: %w", s.step, ErrWrongStep)
	}
	if strings.TrimSpace(svc.ID) == "" || strings.TrimSpace(svc.Name) == "" {
		return fmt.Errorf("service needs an id and a name: %w", ErrInvalidInput)
	}
	if svc.Price < 0 {
		return fmt.Errorf("service price must not be negative: %w", ErrInvalidInput)
	}
	s.addItem(domain.CartItem{
		ID:       svc.ID,
		Name:     svc.Name,
		Price:    svc.Price,
		Quantity: 1,
		Type:     domain.ItemTypeService,
		Category: svc.Category,
	})
	return nil
}

// AddProduct puts one unit of the product in the cart. Stock is not
// checked here; it is reconciled when the payment completes.
func (s *Session) AddProduct(p domain.Product) error {
	if s.step != StepItems {
		return fmt.Errorf("add items during %s: %w", s.step, ErrWrongStep)
	}
	if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product needs an id and a name: %w", ErrInvalidInput)
	}
	if p.Price < 0 {
		return fmt.Errorf("product price must not be negative: %w", ErrInvalidInput)
	}
	s.addItem(domain.CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: 1,
		Type:     domain.ItemTypeProduct,
		Category: p.Category,
	})
	return nil
}

func (s *Session) addItem(item domain.CartItem) {
	for i := range s.items {
		if s.items[i].ID == item.ID && s.items[i].Type == item.Type {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, item)
}

// UpdateQuantity sets an item's quantity. Zero or less removes the
// line. Unknown items are ignored, and the cart only mutates during
// the items step so a committed-to cart cannot be emptied under the
// payment guard.
func (s *Session) UpdateQuantity(id string, itemType domain.ItemType, qty int) {
	if s.step != StepItems {
		return
	}
	if qty <= 0 {
		s.RemoveItem(id, itemType)
		return
	}
	for i := range s.items {
		if s.items[i].ID == id && s.items[i].Type == itemType {
			s.items[i].Quantity = qty
			return
		}
	}
}

// RemoveItem drops a cart line. Removing an absent item is a no-op,
// as is removing anything outside the items step.
func (s *Session) RemoveItem(id string, itemType domain.ItemType) {
	if s.step != StepItems {
		return
	}
	for i := range s.items {
		if s.items[i].ID == id && s.items[i].Type == itemType {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Session) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// SetDiscountPercent accepts the operator's discount entry as typed,
// coercing strings and numbers alike. Negative values are rejected;
// values above 100 are kept and clamped when the amount is computed.
func (s *Session) SetDiscountPercent(value any) error {
	d, err := cast.ToFloat64E(value)
	if err != nil {
		return fmt.Errorf("discount %v: %w", value, ErrInvalidInput)
	}
	if d < 0 {
		return fmt.Errorf("discount must not be negative: %w", ErrInvalidInput)
	}
	s.discountPercent = d
	return nil
}

// SetCashReceived accepts the cash entry as typed. Thousands
// separators and spaces in string input are tolerated, so "150.000"
// and "150 000" both read as 150000 rupiah.
func (s *Session) SetCashReceived(value any) error {
	if str, ok := value.(string); ok {
		cleaned := strings.NewReplacer(".", "", ",", "", " ", "").Replace(str)
		value = cleaned
	}
	amount, err := cast.ToInt64E(value)
	if err != nil {
		return fmt.Errorf("cash amount %v: %w", value, ErrInvalidInput)
	}
	if amount < 0 {
		return fmt.Errorf("cash amount must not be negative: %w", ErrInvalidInput)
	}
	s.cashReceived = amount
	return nil
}

// SetPaymentMethod picks cash or qris. Switching away from cash
// clears any cash entry so a stale amount cannot satisfy the guard.
func (s *Session) SetPaymentMethod(method string) error {
	if method != domain.PaymentCash && method != domain.PaymentQris {
		return fmt.Errorf("unknown payment method %q: %w", method, ErrInvalidInput)
	}
	if s.paymentMethod == domain.PaymentCash && method != domain.PaymentCash {
		s.cashReceived = 0
	}
	s.paymentMethod = method
	return nil
}

func (s *Session) PaymentMethod() string { return s.paymentMethod }

func (s *Session) Subtotal() int64 {
	var sum int64
	for _, item := range s.items {
		sum += item.Price * int64(item.Quantity)
	}
	return sum
}

// DiscountAmount is the rupiah value of the percentage discount,
// rounded and clamped so it never exceeds the subtotal.
func (s *Session) DiscountAmount() int64 {
	subtotal := s.Subtotal()
	amount := int64(math.Round(float64(subtotal) * s.discountPercent / 100))
	if amount < 0 {
		amount = 0
	}
	if amount > subtotal {
		amount = subtotal
	}
	return amount
}

func (s *Session) Total() int64 {
	return s.Subtotal() - s.DiscountAmount()
}

// Change is what the customer gets back on a cash payment, never
// negative.
func (s *Session) Change() int64 {
	change := s.cashReceived - s.Total()
	if change < 0 {
		return 0
	}
	return change
}

// CanCompletePayment reports whether the payment guard passes: the
// session is at the payment step with a non-empty cart, a method is
// chosen, and a cash payment covers the total.
func (s *Session) CanCompletePayment() bool {
	if s.step != StepPayment {
		return false
	}
	if len(s.items) == 0 {
		return false
	}
	if s.paymentMethod == "" {
		return false
	}
	if s.paymentMethod == domain.PaymentCash && s.cashReceived < s.Total() {
		return false
	}
	return true
}

// CompletePayment commits the sale: records the transaction, then
// reconciles product stock and the customer's visit count. Stock and
// visit updates never undo a recorded sale; failures there are logged
// and the receipt is still shown.
func (s *Session) CompletePayment() (domain.Transaction, error) {
	if !s.CanCompletePayment() {
		return domain.Transaction{}, ErrPaymentIncomplete
	}

	tx := domain.Transaction{
		ID:            uuid.NewString(),
		Date:          time.Now().UTC(),
		Customer:      s.customer,
		Items:         s.Items(),
		Subtotal:      s.Subtotal(),
		Discount:      s.discountPercent,
		Total:         s.Total(),
		PaymentMethod: s.paymentMethod,
	}
	if s.paymentMethod == domain.PaymentCash {
		tx.Cash = &domain.CashDetails{
			Received: s.cashReceived,
			Change:   s.Change(),
		}
	}

	if err := s.txlog.Append(tx); err != nil {
		return domain.Transaction{}, fmt.Errorf("record transaction: %w", err)
	}

	s.reconcileStock(tx)
	s.recordVisit()

	s.receipt = &tx
	s.step = StepReceipt
	return tx, nil
}

func (s *Session) reconcileStock(tx domain.Transaction) {
	if s.stock == nil {
		return
	}
	for _, item := range tx.Items {
		if item.Type != domain.ItemTypeProduct {
			continue
		}
		shortfall, err := s.stock.DecrementProductStock(item.ID, item.Quantity)
		switch {
		case errors.Is(err, store.ErrNotFound):
			s.log.Warnw("sold product missing from catalog", "product", item.ID)
		case err != nil:
			s.log.Errorw("stock update failed", "product", item.ID, "error", err)
		case shortfall > 0:
			s.log.Warnw("sold more than was in stock",
				"product", item.ID, "quantity", item.Quantity, "shortfall", shortfall)
		}
	}
}

func (s *Session) recordVisit() {
	if s.visits == nil || s.customer == nil {
		return
	}
	if err := s.visits.RecordVisit(s.customer.ID); err != nil {
		s.log.Warnw("visit count update failed", "customer", s.customer.ID, "error", err)
	}
}

// Receipt returns the completed transaction once the session reached
// the receipt step.
func (s *Session) Receipt() (domain.Transaction, bool) {
	if s.receipt == nil {
		return domain.Transaction{}, false
	}
	return *s.receipt, true
}

// StartNewTransaction resets the session for the next customer. It
// works from any step; an abandoned checkout leaves no trace.
func (s *Session) StartNewTransaction() {
	s.step = StepCustomer
	s.customer = nil
	s.items = nil
	s.discountPercent = 0
	s.paymentMethod = ""
	s.cashReceived = 0
	s.receipt = nil
}
