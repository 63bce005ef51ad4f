package server

// Operation is a privileged mutation on an owned resource.
type Operation int

const (
	OperationUpdate Operation = iota
	OperationDelete
)

// Decision is the outcome of an authorization check. Handlers consume it
// uniformly: a disallowed decision always becomes a 403 with the reason.
type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize decides whether the caller may perform op on a resource.
// Updates are allowed for admins and owners; deletes are admin-only,
// ownership alone is not sufficient.
func Authorize(isAdmin, isOwner bool, op Operation) Decision {
	switch op {
	case OperationDelete:
		if isAdmin {
			return Decision{Allowed: true}
		}
		return Decision{Reason: "User is not authorised to perform this action."}
	default:
		if isAdmin || isOwner {
			return Decision{Allowed: true}
		}
		return Decision{Reason: "Cannot perform this operation. Only owners are allowed to execute this operation"}
	}
}
