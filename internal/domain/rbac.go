package domain

// Roles as stored on users and in the casbin grouping policy.
const (
	RoleAdmin      = "ADMIN"
	RoleConsultant = "CONSULTANT"
	RoleCandidate  = "CANDIDATE"
)

// EnforceRequest is the tuple the RBAC layer evaluates: may this user,
// within this agency, perform action on resource.
type EnforceRequest struct {
	UserID   string
	AgencyID string
	Resource string
	Action   string
}
