package transport

import (
	"time"

	"github.com/google/uuid"
)

// Enum values
type TaskCategory string

const (
	TaskCategoryCall     TaskCategory = "Call"
	TaskCategoryEmail    TaskCategory = "Email"
	TaskCategoryMeeting  TaskCategory = "Meeting"
	TaskCategoryFollowUp TaskCategory = "Follow_Up"
	TaskCategoryOther    TaskCategory = "Other"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityNormal TaskPriority = "Normal"
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityUrgent TaskPriority = "Urgent"
)

type TaskStatus string

const (
	TaskStatusOpen      TaskStatus = "Open"
	TaskStatusCompleted TaskStatus = "Completed"
	TaskStatusCancelled TaskStatus = "Cancelled"
)

// Request DTOs
type CreateTaskRequest struct {
	Title       string       `json:"title" validate:"required,min=1,max=200"`
	Description string       `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    TaskCategory `json:"category" validate:"required,oneof=Call Email Meeting Follow_Up Other"`
	Priority    TaskPriority `json:"priority" validate:"required,oneof=Low Normal High Urgent"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	AccountID   *uuid.UUID   `json:"accountId,omitempty"`
	PropertyID  *uuid.UUID   `json:"propertyId,omitempty"`
	ContactID   *uuid.UUID   `json:"contactId,omitempty"`
	LeadID      *uuid.UUID   `json:"leadId,omitempty"`
	AssigneeID  *uuid.UUID   `json:"assigneeId,omitempty"`
}

type UpdateTaskStatusRequest struct {
	Status TaskStatus `json:"status" validate:"required,oneof=Open Completed Cancelled"`
}

type ListTasksRequest struct {
	AccountID *uuid.UUID `form:"accountId"`
	LeadID    *uuid.UUID `form:"leadId"`
	Status    *TaskStatus `form:"status" validate:"omitempty,oneof=Open Completed Cancelled"`
	Page      int        `form:"page" validate:"min=1"`
	PageSize  int        `form:"pageSize" validate:"min=1,max=100"`
}

// Response DTOs
type TaskResponse struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Category    TaskCategory `json:"category"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	AccountID   *uuid.UUID   `json:"accountId,omitempty"`
	PropertyID  *uuid.UUID   `json:"propertyId,omitempty"`
	ContactID   *uuid.UUID   `json:"contactId,omitempty"`
	LeadID      *uuid.UUID   `json:"leadId,omitempty"`
	AssigneeID  *uuid.UUID   `json:"assigneeId,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type TaskListResponse struct {
	Items      []TaskResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}
