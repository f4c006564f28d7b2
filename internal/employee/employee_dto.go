package employee

type CreateEmployeeRequest struct {
	Name         string `json:"name" binding:"required,min=2"`
	Role         string `json:"role" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
	SectionID    string `json:"section_id" binding:"required,uuid"`
}

type UpdateEmployeeRequest struct {
	Name         string `json:"name" binding:"required,min=2"`
	Role         string `json:"role" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
	SectionID    string `json:"section_id" binding:"required,uuid"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeSectionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID           string                      `json:"id"`
	Name         string                      `json:"name"`
	Role         string                      `json:"role"`
	Phone        string                      `json:"phone"`
	Email        string                      `json:"email"`
	DepartmentID string                      `json:"department_id"`
	SectionID    string                      `json:"section_id"`
	Department   *EmployeeDepartmentResponse `json:"department,omitempty"`
	Section      *EmployeeSectionResponse    `json:"section,omitempty"`
	IsDeleted    bool                        `json:"is_deleted"`
	CreatedAt    string                      `json:"created_at"`
	UpdatedAt    string                      `json:"updated_at"`
}
