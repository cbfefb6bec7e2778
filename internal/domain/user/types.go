package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

var roleHierarchy = map[Role]int{
	RoleCustomer: 1,
	RoleStaff:    2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleHierarchy[r]
	return ok
}

func (r Role) AtLeast(min Role) bool {
	have, ok := roleHierarchy[r]
	need, minOK := roleHierarchy[min]
	return ok && minOK && have >= need
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Principal is the acting identity of an inbound event after authorization.
type Principal struct {
	ID   int64
	Role Role
}

func (p Principal) Can(min Role) bool {
	return p.Role.AtLeast(min)
}
