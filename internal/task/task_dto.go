package task

type CreateTaskRequest struct {
	TaskName    string `json:"task_name" binding:"required,min=2"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof='pending' 'in progress' 'completed'"`
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
}

type UpdateTaskRequest struct {
	TaskName    string `json:"task_name" binding:"required,min=2"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"required,oneof='pending' 'in progress' 'completed'"`
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
}

type TaskEmployeeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TaskResponse struct {
	ID          string                `json:"id"`
	TaskName    string                `json:"task_name"`
	Description string                `json:"description"`
	Status      string                `json:"status"`
	EmployeeID  string                `json:"employee_id"`
	Employee    *TaskEmployeeResponse `json:"employee,omitempty"`
	IsDeleted   bool                  `json:"is_deleted"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}
