package transport

import (
	"github.com/bytedance/sonic"

	"github.com/fastygo/todo/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type TaskCreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// Draft converts the request into a store draft for ownerID.
func (r TaskCreateRequest) Draft(ownerID string) domain.TaskDraft {
	return domain.TaskDraft{
		OwnerID:     ownerID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	// ClearDescription is set when the body carried "description": null.
	ClearDescription bool `json:"-"`
}

// DecodeTaskUpdate parses a partial update body. Omitted fields stay nil; an
// explicit null description is recorded separately so it can clear the field.
func DecodeTaskUpdate(body []byte) (TaskUpdateRequest, error) {
	var req TaskUpdateRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		return req, err
	}

	var fields map[string]interface{}
	if err := sonic.Unmarshal(body, &fields); err != nil {
		return req, err
	}
	if v, ok := fields["description"]; ok && v == nil {
		req.ClearDescription = true
	}
	return req, nil
}

// Patch converts the request into a store patch.
func (r TaskUpdateRequest) Patch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:            r.Title,
		Description:      r.Description,
		ClearDescription: r.ClearDescription && r.Description == nil,
		Completed:        r.Completed,
	}
}

type ThemeUpdateRequest struct {
	ThemeMode *string `json:"theme_mode"`
}
