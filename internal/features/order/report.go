package order

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
)

type DailySale struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type TopProduct struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	QuantitySold int     `json:"quantitySold"`
	Revenue      float64 `json:"revenue"`
}

type Report struct {
	Period            string         `json:"period"`
	TotalOrders       int            `json:"totalOrders"`
	TotalRevenue      float64        `json:"totalRevenue"`
	AverageOrderValue float64        `json:"averageOrderValue"`
	OrdersByStatus    map[string]int `json:"ordersByStatus"`
	PaymentsByMethod  map[string]int `json:"paymentsByMethod"`
	TopProducts       []TopProduct   `json:"topProducts"`
	DailySales        []DailySale    `json:"dailySales"`
}

// Report aggregates every order in the window into sales statistics.
func (s *OrderServiceImpl) Report(ctx context.Context, period string, from, to *time.Time) (*Report, error) {
	if period == "" {
		period = "month"
	}

	orders, err := s.OrderRepo.All(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Period:           period,
		TotalOrders:      len(orders),
		OrdersByStatus:   map[string]int{},
		PaymentsByMethod: map[string]int{},
	}

	byProduct := map[string]*TopProduct{}
	byDay := map[string]*DailySale{}

	for i := range orders {
		o := &orders[i]
		report.TotalRevenue += o.Total
		report.OrdersByStatus[o.Status]++
		report.PaymentsByMethod[o.PaymentMethod]++

		for _, item := range o.Items {
			tp, ok := byProduct[item.ProductID]
			if !ok {
				tp = &TopProduct{ProductID: item.ProductID, ProductName: item.ProductName}
				byProduct[item.ProductID] = tp
			}
			tp.QuantitySold += item.Quantity
			tp.Revenue = round2(tp.Revenue + item.TotalPrice)
		}

		day := o.CreatedAt.Format("2006-01-02")
		ds, ok := byDay[day]
		if !ok {
			ds = &DailySale{Date: day}
			byDay[day] = ds
		}
		ds.Orders++
		ds.Revenue = round2(ds.Revenue + o.Total)
	}

	report.TotalRevenue = round2(report.TotalRevenue)
	if report.TotalOrders > 0 {
		report.AverageOrderValue = round2(report.TotalRevenue / float64(report.TotalOrders))
	}

	for _, tp := range byProduct {
		report.TopProducts = append(report.TopProducts, *tp)
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		return report.TopProducts[i].Revenue > report.TopProducts[j].Revenue
	})
	if len(report.TopProducts) > 5 {
		report.TopProducts = report.TopProducts[:5]
	}

	for _, ds := range byDay {
		report.DailySales = append(report.DailySales, *ds)
	}
	sort.Slice(report.DailySales, func(i, j int) bool {
		return report.DailySales[i].Date < report.DailySales[j].Date
	})

	return report, nil
}

// ReportWorkbook renders the report as an xlsx file with one sheet per
// section.
func (s *OrderServiceImpl) ReportWorkbook(ctx context.Context, period string, from, to *time.Time) (*excelize.File, error) {
	report, err := s.Report(ctx, period, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "Total Orders")
	f.SetCellValue(sheet, "B1", report.TotalOrders)
	f.SetCellValue(sheet, "A2", "Total Revenue")
	f.SetCellValue(sheet, "B2", report.TotalRevenue)
	f.SetCellValue(sheet, "A3", "Average Order Value")
	f.SetCellValue(sheet, "B3", report.AverageOrderValue)

	row := 5
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Status")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Orders")
	for _, status := range []string{StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		if n, ok := report.OrdersByStatus[status]; ok {
			row++
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), status)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), n)
		}
	}

	products := "Top Products"
	if _, err := f.NewSheet(products); err != nil {
		return nil, err
	}
	f.SetCellValue(products, "A1", "Product")
	f.SetCellValue(products, "B1", "Quantity Sold")
	f.SetCellValue(products, "C1", "Revenue")
	for i, tp := range report.TopProducts {
		f.SetCellValue(products, fmt.Sprintf("A%d", i+2), tp.ProductName)
		f.SetCellValue(products, fmt.Sprintf("B%d", i+2), tp.QuantitySold)
		f.SetCellValue(products, fmt.Sprintf("C%d", i+2), tp.Revenue)
	}

	daily := "Daily Sales"
	if _, err := f.NewSheet(daily); err != nil {
		return nil, err
	}
	f.SetCellValue(daily, "A1", "Date")
	f.SetCellValue(daily, "B1", "Orders")
	f.SetCellValue(daily, "C1", "Revenue")
	for i, ds := range report.DailySales {
		f.SetCellValue(daily, fmt.Sprintf("A%d", i+2), ds.Date)
		f.SetCellValue(daily, fmt.Sprintf("B%d", i+2), ds.Orders)
		f.SetCellValue(daily, fmt.Sprintf("C%d", i+2), ds.Revenue)
	}

	return f, nil
}
