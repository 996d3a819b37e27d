// Package dataset builds customer and product records and evolves them
// across generations to simulate a mutating source system.
package dataset

import (
	"math/rand/v2"
	"strconv"
	"time"

	"pkg.jsn.cam/cdcgen/internal/synth"
)

// Customer is one row of the timestamped scenario. last_updated_ts is the
// column a timestamp-based CDC consumer would filter on.
type Customer struct {
	ID          int
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	City        string
	State       string
	CreditLimit float64
	LastUpdated string
}

var customerColumns = []string{
	"customer_id", "first_name", "last_name", "email", "phone",
	"city", "state", "credit_limit", "last_updated_ts",
}

func (c *Customer) Header() []string { return customerColumns }

func (c *Customer) Fields() []string {
	return []string{
		strconv.Itoa(c.ID),
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.City,
		c.State,
		synth.FormatMoney(c.CreditLimit),
		c.LastUpdated,
	}
}

// NewCustomer builds a complete customer record. The draw order is fixed:
// first name, last name, city/state index, email domain, phone, credit
// limit. The timestamp is chosen by the caller so that all records of one
// generation share a time window.
func NewCustomer(r *rand.Rand, id int, ts time.Time) *Customer {
	first, last := synth.FullName(r)
	city, state := synth.CityState(r)

	return &Customer{
		ID:          id,
		FirstName:   first,
		LastName:    last,
		Email:       synth.Email(r, first, last, id),
		Phone:       synth.Phone(r),
		City:        city,
		State:       state,
		CreditLimit: synth.Money(r, 1000, 50000),
		LastUpdated: synth.FormatTimestamp(ts),
	}
}

// Product is one row of the non-timestamped scenario. There is no
// last-modified column on purpose: downstream CDC has to detect changes
// by content, not by timestamp.
type Product struct {
	ID         int
	Name       string
	Category   string
	Price      float64
	Stock      int
	SupplierID string
	Active     string
}

var productColumns = []string{
	"product_id", "product_name", "category", "price",
	"stock_quantity", "supplier_id", "is_active",
}

func (p *Product) Header() []string { return productColumns }

func (p *Product) Fields() []string {
	return []string{
		synth.ProductID(p.ID),
		p.Name,
		p.Category,
		synth.FormatMoney(p.Price),
		strconv.Itoa(p.Stock),
		p.SupplierID,
		p.Active,
	}
}

// NewProduct builds a complete product record. Draw order: category,
// name, price, stock, supplier, active flag.
func NewProduct(r *rand.Rand, id int) *Product {
	category := synth.Category(r)
	name := synth.ProductName(r, id)

	return &Product{
		ID:         id,
		Name:       name,
		Category:   category,
		Price:      synth.Money(r, 9.99, 999.99),
		Stock:      synth.StockQuantity(r),
		SupplierID: synth.SupplierID(r),
		Active:     synth.ActiveFlag(r),
	}
}
