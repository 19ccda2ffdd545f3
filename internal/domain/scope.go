package domain

// Scope states which rows a query may touch. It replaces the
// "nil customerId means privileged" convention: callers pass either
// OwnedBy(customerID) or Unrestricted() explicitly.
type Scope struct {
	customerID   string
	unrestricted bool
}

// OwnedBy limits queries to rows owned by the given customer.
func OwnedBy(customerID string) Scope {
	return Scope{customerID: customerID}
}

// Unrestricted allows access to any row by ID alone. Only privileged
// roles (ADMIN, EMPLOYEE, SUPER_ADMIN) resolve to this scope.
func Unrestricted() Scope {
	return Scope{unrestricted: true}
}

func (s Scope) IsUnrestricted() bool {
	return s.unrestricted
}

func (s Scope) CustomerID() string {
	return s.customerID
}
