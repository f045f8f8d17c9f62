package order

import (
	"context"
	"errors"
	"math"
	"time"

	"go-dashboard/internal/features/product"
	"go-dashboard/pkg/apperr"
	"go-dashboard/pkg/idgen"

	"github.com/go-playground/validator"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// taxRate is applied per line item after its discount.
const taxRate = 0.08

type OrderItemInput struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice"`
	Discount  float64 `json:"discount" validate:"gte=0"`
}

type CreateOrderInput struct {
	Customer      Customer         `json:"customer"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string           `json:"paymentMethod"`
	Notes         string           `json:"notes"`
	Discount      float64          `json:"discount" validate:"gte=0"`
	Shipping      float64          `json:"shipping" validate:"gte=0"`
}

// UpdateOrderInput patches order state; nil pointers keep the stored value.
type UpdateOrderInput struct {
	Status        *string    `json:"status"`
	PaymentStatus *string    `json:"paymentStatus"`
	PaymentMethod *string    `json:"paymentMethod"`
	Notes         *string    `json:"notes"`
	ShippedAt     *time.Time `json:"shippedAt"`
	DeliveredAt   *time.Time `json:"deliveredAt"`
}

type OrderService interface {
	List(ctx context.Context, filter Filter) ([]Order, int64, error)
	Get(ctx context.Context, id string) (*Order, error)
	Create(ctx context.Context, input CreateOrderInput, actorID string) (*Order, error)
	Update(ctx context.Context, id string, input UpdateOrderInput, actorID string) (*Order, error)
	GenerateInvoice(ctx context.Context, id string, actorID string) (*Invoice, error)
	Report(ctx context.Context, period string, from, to *time.Time) (*Report, error)
	ReportWorkbook(ctx context.Context, period string, from, to *time.Time) (*excelize.File, error)
}

type OrderServiceImpl struct {
	OrderRepo   OrderRepository
	ProductRepo product.ProductRepository
	IDGen       *idgen.Generator
	validate    *validator.Validate
}

func NewOrderService(orderRepo OrderRepository, productRepo product.ProductRepository, gen *idgen.Generator) OrderService {
	return &OrderServiceImpl{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		IDGen:       gen,
		validate:    validator.New(),
	}
}

func (s *OrderServiceImpl) List(ctx context.Context, filter Filter) ([]Order, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}
	return s.OrderRepo.List(ctx, filter)
}

func (s *OrderServiceImpl) Get(ctx context.Context, id string) (*Order, error) {
	o, err := s.OrderRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Create prices every line from the current product record, applies the
// per-item tax, and decrements stock. Client-supplied unit prices are
// honored when present so negotiated prices survive catalog changes.
func (s *OrderServiceImpl) Create(ctx context.Context, input CreateOrderInput, actorID string) (*Order, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.New(apperr.InvalidArgument, "invalid order payload: %v", err)
	}
	if input.Customer.Name == "" {
		return nil, apperr.New(apperr.InvalidArgument, "customer name is required")
	}

	method := input.PaymentMethod
	if method == "" {
		method = MethodCash
	}
	if !isValidPaymentMethod(method) {
		return nil, apperr.New(apperr.InvalidArgument, "unknown payment method %q", method)
	}

	items := make([]OrderItem, 0, len(input.Items))
	stocked := make([]*product.Product, 0, len(input.Items))
	var subtotal, totalTax float64

	for _, in := range input.Items {
		p, err := s.ProductRepo.FindByID(ctx, in.ProductID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.InvalidArgument, "product %s not found", in.ProductID)
		}
		if err != nil {
			return nil, err
		}
		if p.Stock < in.Quantity {
			return nil, apperr.New(apperr.InvalidArgument,
				"insufficient stock for %s: available %d, requested %d", p.Name, p.Stock, in.Quantity)
		}

		unitPrice := in.UnitPrice
		if unitPrice <= 0 {
			unitPrice = p.Price
		}
		lineTotal := round2(unitPrice*float64(in.Quantity) - in.Discount)
		lineTax := round2(lineTotal * taxRate)

		items = append(items, OrderItem{
			ProductID:   in.ProductID,
			ProductName: p.Name,
			ProductSKU:  p.SKU,
			Quantity:    in.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  lineTotal,
			Discount:    in.Discount,
			Tax:         lineTax,
		})
		subtotal += lineTotal
		totalTax += lineTax

		p.Stock -= in.Quantity
		stocked = append(stocked, p)
	}

	paymentStatus := PaymentPending
	if method == MethodCash {
		paymentStatus = PaymentPaid
	}

	now := time.Now()
	o := &Order{
		ID:            primitive.NewObjectID(),
		OrderNumber:   s.IDGen.OrderNumber(),
		Customer:      input.Customer,
		Items:         items,
		Subtotal:      round2(subtotal),
		Tax:           round2(totalTax),
		Discount:      input.Discount,
		Shipping:      input.Shipping,
		Total:         round2(subtotal + totalTax + input.Shipping - input.Discount),
		Status:        StatusPending,
		PaymentStatus: paymentStatus,
		PaymentMethod: method,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     actorID,
	}
	if err := s.OrderRepo.Insert(ctx, o); err != nil {
		return nil, err
	}

	for _, p := range stocked {
		p.UpdatedAt = now
		if err := s.ProductRepo.Update(ctx, p.ID.Hex(), p); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (s *OrderServiceImpl) Update(ctx context.Context, id string, input UpdateOrderInput, actorID string) (*Order, error) {
	current, err := s.OrderRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return nil, err
	}

	if current.Terminal() {
		return nil, apperr.New(apperr.Conflict, "order %s is %s and can no longer change", current.OrderNumber, current.Status)
	}

	updated := *current
	now := time.Now()

	if input.Status != nil {
		if !isValidStatus(*input.Status) {
			return nil, apperr.New(apperr.InvalidArgument, "unknown order status %q", *input.Status)
		}
		updated.Status = *input.Status
		if *input.Status == StatusShipped && updated.ShippedAt == nil {
			updated.ShippedAt = &now
		}
		if *input.Status == StatusDelivered && updated.DeliveredAt == nil {
			updated.DeliveredAt = &now
		}
	}
	if input.PaymentStatus != nil {
		if !isValidPaymentStatus(*input.PaymentStatus) {
			return nil, apperr.New(apperr.InvalidArgument, "unknown payment status %q", *input.PaymentStatus)
		}
		updated.PaymentStatus = *input.PaymentStatus
	}
	if input.PaymentMethod != nil {
		if !isValidPaymentMethod(*input.PaymentMethod) {
			return nil, apperr.New(apperr.InvalidArgument, "unknown payment method %q", *input.PaymentMethod)
		}
		updated.PaymentMethod = *input.PaymentMethod
	}
	if input.Notes != nil {
		updated.Notes = *input.Notes
	}
	if input.ShippedAt != nil {
		updated.ShippedAt = input.ShippedAt
	}
	if input.DeliveredAt != nil {
		updated.DeliveredAt = input.DeliveredAt
	}

	updated.UpdatedAt = now
	updated.UpdatedBy = actorID
	if err := s.OrderRepo.Update(ctx, id, &updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "order not found")
		}
		return nil, err
	}
	return &updated, nil
}

// GenerateInvoice stamps an invoice number exactly once per order.
func (s *OrderServiceImpl) GenerateInvoice(ctx context.Context, id string, actorID string) (*Invoice, error) {
	o, err := s.OrderRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return nil, err
	}

	if o.InvoiceGenerated {
		return nil, apperr.New(apperr.Conflict, "invoice %s already generated for order %s", o.InvoiceNumber, o.OrderNumber)
	}

	now := time.Now()
	o.InvoiceNumber = s.IDGen.InvoiceNumber()
	o.InvoiceGenerated = true
	o.UpdatedAt = now
	o.UpdatedBy = actorID
	if err := s.OrderRepo.Update(ctx, id, o); err != nil {
		return nil, err
	}

	return &Invoice{
		InvoiceNumber: o.InvoiceNumber,
		OrderID:       o.ID.Hex(),
		OrderNumber:   o.OrderNumber,
		Customer:      o.Customer,
		Items:         o.Items,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Discount:      o.Discount,
		Total:         o.Total,
		IssueDate:     now.Format("2006-01-02"),
		DueDate:       now.AddDate(0, 0, 30).Format("2006-01-02"),
		Status:        "draft",
		Notes:         o.Notes,
	}, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func isValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func isValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentPaid, PaymentPartial, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

func isValidPaymentMethod(method string) bool {
	switch method {
	case MethodCash, MethodCard, MethodBankTransfer, MethodCheck, MethodOnline:
		return true
	}
	return false
}
