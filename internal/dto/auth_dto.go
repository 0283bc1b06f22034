package dto

import "strings"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "The email field is required."
	} else if !strings.Contains(r.Email, "@") {
		errs["email"] = "The email must be a valid email address."
	}
	if r.Password == "" {
		errs["password"] = "The password field is required."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type LoginResponse struct {
	Token   string `json:"token"`
	Name    string `json:"name"`
	Message string `json:"message"`
}
