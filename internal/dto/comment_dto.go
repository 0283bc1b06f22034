package dto

import (
	"strings"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Content  string `json:"content"`
	UserUUID string `json:"user_uuid"`
}

func (r *CreateCommentRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Content) == "" {
		errs["content"] = "The content field is required."
	} else if len(r.Content) > 1000 {
		errs["content"] = "The content may not be greater than 1000 characters."
	}
	if r.UserUUID == "" {
		errs["user_uuid"] = "The user uuid field is required."
	} else if _, err := uuid.Parse(r.UserUUID); err != nil {
		errs["user_uuid"] = "The user uuid must be a valid UUID."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type UpdateCommentRequest struct {
	Content *string `json:"content"`
}

func (r *UpdateCommentRequest) Validate() map[string]string {
	if r.Content != nil {
		if strings.TrimSpace(*r.Content) == "" {
			return map[string]string{"content": "The content field is required."}
		}
		if len(*r.Content) > 1000 {
			return map[string]string{"content": "The content may not be greater than 1000 characters."}
		}
	}
	return nil
}
