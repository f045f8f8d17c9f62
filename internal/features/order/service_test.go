package order

import (
	"context"
	"math"
	"testing"

	"go-dashboard/internal/features/product"
	"go-dashboard/pkg/apperr"
	"go-dashboard/pkg/idgen"
)

func newTestService(t *testing.T, orders []Order, products []product.Product) (OrderService, product.ProductRepository) {
	t.Helper()
	gen, err := idgen.NewGenerator(1)
	if err != nil {
		t.Fatalf("idgen: %v", err)
	}
	productRepo := product.NewMemoryProductRepository(products)
	return NewOrderService(NewMemoryOrderRepository(orders), productRepo, gen), productRepo
}

func TestCreateComputesTotals(t *testing.T) {
	products := product.FixtureProducts()
	svc, _ := newTestService(t, nil, products)

	// 2x headphones at 99.99: line 199.98, tax 16.00
	o, err := svc.Create(context.Background(), CreateOrderInput{
		Customer: Customer{Name: "John Smith"},
		Items: []OrderItemInput{
			{ProductID: products[0].ID.Hex(), Quantity: 2},
		},
		Shipping: 10.00,
	}, "actor-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if o.Subtotal != 199.98 {
		t.Errorf("subtotal = %.2f, want 199.98", o.Subtotal)
	}
	if o.Tax != 16.00 {
		t.Errorf("tax = %.2f, want 16.00", o.Tax)
	}
	if math.Abs(o.Total-225.98) > 0.001 {
		t.Errorf("total = %.2f, want 225.98", o.Total)
	}
	if o.Status != StatusPending {
		t.Errorf("status = %q, want pending", o.Status)
	}
	if o.OrderNumber == "" {
		t.Error("missing order number")
	}
	if o.InvoiceGenerated {
		t.Error("new order already flagged invoiced")
	}
}

func TestCreateSnapshotsProductAndReducesStock(t *testing.T) {
	products := product.FixtureProducts()
	svc, productRepo := newTestService(t, nil, products)
	id := products[0].ID.Hex()

	o, err := svc.Create(context.Background(), CreateOrderInput{
		Customer: Customer{Name: "Jane Doe"},
		Items:    []OrderItemInput{{ProductID: id, Quantity: 3}},
	}, "actor-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	item := o.Items[0]
	if item.ProductName != products[0].Name || item.ProductSKU != products[0].SKU {
		t.Errorf("snapshot = %q/%q", item.ProductName, item.ProductSKU)
	}

	p, err := productRepo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find product: %v", err)
	}
	if want := products[0].Stock - 3; p.Stock != want {
		t.Errorf("stock = %d, want %d", p.Stock, want)
	}
}

func TestCreateCashIsPaidUpfront(t *testing.T) {
	products := product.FixtureProducts()
	svc, _ := newTestService(t, nil, products)

	o, err := svc.Create(context.Background(), CreateOrderInput{
		Customer: Customer{Name: "Walk-in"},
		Items:    []OrderItemInput{{ProductID: products[0].ID.Hex(), Quantity: 1}},
	}, "actor-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.PaymentMethod != MethodCash || o.PaymentStatus != PaymentPaid {
		t.Errorf("payment = %s/%s, want cash/paid", o.PaymentMethod, o.PaymentStatus)
	}
}

func TestCreateRejectsInsufficientStock(t *testing.T) {
	products := product.FixtureProducts()
	svc, _ := newTestService(t, nil, products)

	// GT-003 has 3 in stock
	var teaID string
	for _, p := range products {
		if p.SKU == "GT-003" {
			teaID = p.ID.Hex()
		}
	}

	_, err := svc.Create(context.Background(), CreateOrderInput{
		Customer: Customer{Name: "Greedy"},
		Items:    []OrderItemInput{{ProductID: teaID, Quantity: 50}},
	}, "actor-1")
	if apperr.KindOf(err) != apperr.InvalidArgument {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}
}

func TestCreateValidation(t *testing.T) {
	products := product.FixtureProducts()
	id := products[0].ID.Hex()

	tests := []struct {
		name  string
		input CreateOrderInput
	}{
		{"no customer name", CreateOrderInput{
			Items: []OrderItemInput{{ProductID: id, Quantity: 1}},
		}},
		{"no items", CreateOrderInput{
			Customer: Customer{Name: "Empty Cart"},
		}},
		{"zero quantity", CreateOrderInput{
			Customer: Customer{Name: "Zero"},
			Items:    []OrderItemInput{{ProductID: id, Quantity: 0}},
		}},
		{"unknown product", CreateOrderInput{
			Customer: Customer{Name: "Ghost"},
			Items:    []OrderItemInput{{ProductID: "64f000000000000000000000", Quantity: 1}},
		}},
		{"unknown payment method", CreateOrderInput{
			Customer:      Customer{Name: "Barter"},
			Items:         []OrderItemInput{{ProductID: id, Quantity: 1}},
			PaymentMethod: "goats",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, nil, products)
			_, err := svc.Create(context.Background(), tt.input, "actor-1")
			if apperr.KindOf(err) != apperr.InvalidArgument {
				t.Fatalf("err = %v, want InvalidArgument", err)
			}
		})
	}
}

func TestUpdateStampsShippedAt(t *testing.T) {
	orders := FixtureOrders()
	svc, _ := newTestService(t, orders, nil)
	id := orders[1].ID.Hex() // processing order

	status := StatusShipped
	o, err := svc.Update(context.Background(), id, UpdateOrderInput{Status: &status}, "actor-1")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if o.Status != StatusShipped {
		t.Errorf("status = %q", o.Status)
	}
	if o.ShippedAt == nil {
		t.Error("shippedAt not stamped")
	}
}

func TestUpdateTerminalOrderBlocked(t *testing.T) {
	orders := FixtureOrders()
	orders[0].Status = StatusDelivered
	svc, _ := newTestService(t, orders, nil)

	notes := "late edit"
	_, err := svc.Update(context.Background(), orders[0].ID.Hex(), UpdateOrderInput{Notes: &notes}, "actor-1")
	if apperr.KindOf(err) != apperr.Conflict {
		t.Fatalf("err = %v, want Conflict", err)
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	orders := FixtureOrders()
	svc, _ := newTestService(t, orders, nil)

	status := "teleported"
	_, err := svc.Update(context.Background(), orders[2].ID.Hex(), UpdateOrderInput{Status: &status}, "actor-1")
	if apperr.KindOf(err) != apperr.InvalidArgument {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}
}

func TestGenerateInvoiceOnce(t *testing.T) {
	orders := FixtureOrders()
	svc, _ := newTestService(t, orders, nil)
	id := orders[2].ID.Hex() // pending order, no invoice yet

	invoice, err := svc.GenerateInvoice(context.Background(), id, "actor-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if invoice.InvoiceNumber == "" {
		t.Error("missing invoice number")
	}
	if invoice.Total != orders[2].Total {
		t.Errorf("invoice total = %.2f, want %.2f", invoice.Total, orders[2].Total)
	}

	_, err = svc.GenerateInvoice(context.Background(), id, "actor-1")
	if apperr.KindOf(err) != apperr.Conflict {
		t.Fatalf("regeneration err = %v, want Conflict", err)
	}
}

func TestGenerateInvoiceExistingConflicts(t *testing.T) {
	orders := FixtureOrders()
	svc, _ := newTestService(t, orders, nil)

	// fixture order 0 was invoiced at seed time
	_, err := svc.GenerateInvoice(context.Background(), orders[0].ID.Hex(), "actor-1")
	if apperr.KindOf(err) != apperr.Conflict {
		t.Fatalf("err = %v, want Conflict", err)
	}
}

func TestReportAggregates(t *testing.T) {
	orders := FixtureOrders()
	svc, _ := newTestService(t, orders, nil)

	report, err := svc.Report(context.Background(), "month", nil, nil)
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if report.TotalOrders != 3 {
		t.Errorf("totalOrders = %d, want 3", report.TotalOrders)
	}
	want := round2(orders[0].Total + orders[1].Total + orders[2].Total)
	if report.TotalRevenue != want {
		t.Errorf("totalRevenue = %.2f, want %.2f", report.TotalRevenue, want)
	}
	if report.AverageOrderValue != round2(want/3) {
		t.Errorf("avg = %.2f", report.AverageOrderValue)
	}
	if report.OrdersByStatus[StatusPending] != 1 || report.OrdersByStatus[StatusConfirmed] != 1 {
		t.Errorf("status breakdown = %v", report.OrdersByStatus)
	}
	if report.PaymentsByMethod[MethodCard] != 1 {
		t.Errorf("payment breakdown = %v", report.PaymentsByMethod)
	}
	if len(report.TopProducts) == 0 {
		t.Fatal("no top products")
	}
	// highest revenue line is the office chair at 199.99
	if report.TopProducts[0].ProductName != "Office Chair" {
		t.Errorf("top product = %q", report.TopProducts[0].ProductName)
	}
	if len(report.DailySales) == 0 {
		t.Error("no daily sales")
	}
}

func TestReportEmptyWindow(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	report, err := svc.Report(context.Background(), "month", nil, nil)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.TotalOrders != 0 || report.AverageOrderValue != 0 {
		t.Errorf("empty report = %+v", report)
	}
}

func TestReportWorkbookSheets(t *testing.T) {
	orders := FixtureOrders()
	svc, _ := newTestService(t, orders, nil)

	f, err := svc.ReportWorkbook(context.Background(), "month", nil, nil)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Summary", "Top Products", "Daily Sales"} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Errorf("missing sheet %q", sheet)
		}
	}

	total, err := f.GetCellValue("Summary", "B1")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if total != "3" {
		t.Errorf("summary B1 = %q, want 3", total)
	}
}
