// Package auth holds the access-control core: the per-operation policy on
// orders, the visibility scope for list queries, and the token service that
// produces the identities both are evaluated against.
package auth

import "github.com/yeremiapane/store-order-api/models"

// Identity is the (employee, role) pair recovered from a verified token.
// It is never populated from request bodies.
type Identity struct {
	EmployeeID uint
	Role       models.Role
}

// Operation enumerates the order operations the policy covers.
type Operation int

const (
	OpList Operation = iota
	OpRead
	OpCreate
	OpUpdate
	OpDelete
)

// Reason classifies a denial: the role may not perform the operation at all,
// or the role could but the record belongs to someone else.
type Reason string

const (
	ReasonForbiddenRole      Reason = "forbidden-role"
	ReasonForbiddenOwnership Reason = "forbidden-ownership"
)

// Message is the human-readable text handlers put in the 403 body.
func (r Reason) Message() string {
	switch r {
	case ReasonForbiddenOwnership:
		return "you do not own this order"
	default:
		return "admin access required"
	}
}

// Decision is the terminal outcome of a permission check. A denial is never
// retried within a request.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision        { return Decision{Allowed: true} }
func deny(r Reason) Decision { return Decision{Reason: r} }

// Authorize decides whether id may perform op. ownerID is the stored
// employeeId of the target order; it is nil for untargeted operations
// (list, create) and for orders that were never assigned. Callers must
// resolve not-found before consulting the policy: an ownership denial is only
// meaningful for a record known to exist.
func Authorize(id Identity, op Operation, ownerID *uint) Decision {
	switch id.Role {
	case models.RoleAdmin:
		return allow()
	case models.RoleShopper:
		switch op {
		case OpList:
			// Allowed, but visibility is narrowed by ListScope.
			return allow()
		case OpRead, OpUpdate:
			// An unassigned order is owned by nobody, so it stays
			// admin-only until assigned.
			if ownerID != nil && *ownerID == id.EmployeeID {
				return allow()
			}
			return deny(ReasonForbiddenOwnership)
		default:
			return deny(ReasonForbiddenRole)
		}
	}
	return deny(ReasonForbiddenRole)
}
