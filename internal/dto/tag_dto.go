package dto

import "strings"

type CreateTagRequest struct {
	Name string `json:"name"`
}

func (r *CreateTagRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "The name field is required."
	} else if len(r.Name) > 255 {
		errs["name"] = "The name may not be greater than 255 characters."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type UpdateTagRequest struct {
	Name *string `json:"name"`
}

func (r *UpdateTagRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			errs["name"] = "The name field is required."
		} else if len(*r.Name) > 255 {
			errs["name"] = "The name may not be greater than 255 characters."
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// AttachTagRequest asks for a tag to be attached to a story, entering the
// moderation queue as pending.
type AttachTagRequest struct {
	TagID uint `json:"tag_id"`
}

func (r *AttachTagRequest) Validate() map[string]string {
	if r.TagID == 0 {
		return map[string]string{"tag_id": "The tag id field is required."}
	}
	return nil
}
