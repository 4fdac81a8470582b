package domain

import "fmt"

// Customer buys at the point of sale.
type Customer struct {
	CustomerID  int64  `json:"customerID"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	AuditFields
}

// Label renders the customer as shown in the sale picker, e.g. "Ada (0803...)".
func (c Customer) Label() string {
	if c.PhoneNumber == "" {
		return c.Name
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.PhoneNumber)
}

// WalkInCustomer is used when a sale is made to an unregistered customer.
const WalkInCustomer = "Walk-in Customer"

// Merchant is the staff member or seller credited with a sale.
type Merchant struct {
	MerchantID int64  `json:"merchantID"`
	Name       string `json:"name"`
	AuditFields
}
