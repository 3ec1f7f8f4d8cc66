package model

// Role is the actor role a person holds in the thesis workflow. The backend
// stores it as the person "type".
type Role string

const (
	RoleStudent     Role = "STUDENT"
	RoleTeacher     Role = "TEACHER"
	RoleCoordinator Role = "COORDINATOR"
	RoleStaff       Role = "STAFF"
	RoleSC          Role = "SC"
)

var roles = map[Role]bool{
	RoleStudent:     true,
	RoleTeacher:     true,
	RoleCoordinator: true,
	RoleStaff:       true,
	RoleSC:          true,
}

func (r Role) Valid() bool {
	return roles[r]
}

func (r Role) String() string {
	return string(r)
}

// Person mirrors the backend PersonDto. IstID and Email are unique across all
// people; uniqueness is probed client-side before creation but enforced
// server-side.
type Person struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	IstID string `json:"istId"`
	Email string `json:"email"`
	Type  Role   `json:"type"`
}

type CreatePersonRequest struct {
	Name  string `json:"name" validate:"required"`
	IstID string `json:"istId" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Type  Role   `json:"type" validate:"required,oneof=STUDENT TEACHER COORDINATOR STAFF SC"`
}

type UpdatePersonRequest struct {
	Name  string `json:"name" validate:"required"`
	IstID string `json:"istId" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Type  Role   `json:"type" validate:"required,oneof=STUDENT TEACHER COORDINATOR STAFF SC"`
}

type LoginRequest struct {
	IstID string `json:"istId" validate:"required"`
	Role  Role   `json:"role" validate:"required,oneof=STUDENT TEACHER COORDINATOR STAFF SC"`
}
