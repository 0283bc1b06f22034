package dto

import "strings"

type CreateCategoryRequest struct {
	Name  string  `json:"name"`
	Genre *string `json:"genre"`
}

func (r *CreateCategoryRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "The name field is required."
	} else if len(r.Name) > 255 {
		errs["name"] = "The name may not be greater than 255 characters."
	}
	if r.Genre != nil && len(*r.Genre) > 255 {
		errs["genre"] = "The genre may not be greater than 255 characters."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// UpdateCategoryRequest allows partial field sets; nil fields are untouched.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Genre *string `json:"genre"`
}

func (r *UpdateCategoryRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			errs["name"] = "The name field is required."
		} else if len(*r.Name) > 255 {
			errs["name"] = "The name may not be greater than 255 characters."
		}
	}
	if r.Genre != nil && len(*r.Genre) > 255 {
		errs["genre"] = "The genre may not be greater than 255 characters."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
