package section

type CreateSectionRequest struct {
	Name         string `json:"name" binding:"required,min=2"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
}

type UpdateSectionRequest struct {
	Name         string `json:"name" binding:"required,min=2"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
}

type SectionDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SectionResponse struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	DepartmentID string                     `json:"department_id"`
	Department   *SectionDepartmentResponse `json:"department,omitempty"`
	IsDeleted    bool                       `json:"is_deleted"`
	CreatedAt    string                     `json:"created_at"`
	UpdatedAt    string                     `json:"updated_at"`
}
