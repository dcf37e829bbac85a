package auth

import (
	"gorm.io/gorm"

	"github.com/yeremiapane/store-order-api/models"
)

// OrderFilters carries the optional query parameters of a list request as
// raw string literals.
type OrderFilters struct {
	Status     *string
	IsDelivery *string
}

// Scope is the conjunctive set of equality constraints a list query must
// carry. It is pushed into the SQL query, never applied as an in-memory
// post-filter.
type Scope struct {
	conds map[string]interface{}
}

// ListScope computes the visibility scope for a list of orders: shoppers are
// pinned to their own employeeId (which also hides unassigned orders, since
// a NULL employee_id matches no equality), and the optional status/isDelivery
// filters are added on top for every role.
func ListScope(id Identity, f OrderFilters) Scope {
	conds := make(map[string]interface{})
	if id.Role != models.RoleAdmin {
		conds["employee_id"] = id.EmployeeID
	}
	if f.Status != nil {
		conds["status"] = *f.Status
	}
	if f.IsDelivery != nil {
		// Only the literal "true" means true; every other literal is
		// treated as false.
		conds["is_delivery"] = *f.IsDelivery == "true"
	}
	return Scope{conds: conds}
}

// Apply narrows tx with the scope's constraints.
func (s Scope) Apply(tx *gorm.DB) *gorm.DB {
	if len(s.conds) == 0 {
		return tx
	}
	return tx.Where(s.conds)
}

// Conditions exposes the constraint set, keyed by column name.
func (s Scope) Conditions() map[string]interface{} {
	return s.conds
}
