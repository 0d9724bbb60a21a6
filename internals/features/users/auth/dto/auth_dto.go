package dto

import "strings"

type RegisterRequest struct {
	UserName         string `json:"user_name" validate:"required,min=3,max=50"`
	FullName         string `json:"full_name" validate:"required,min=2,max=100"`
	Email            string `json:"email" validate:"required,email,max=255"`
	Password         string `json:"password" validate:"required,min=8,max=100"`
	SecurityQuestion string `json:"security_question" validate:"required,min=5,max=255"`
	SecurityAnswer   string `json:"security_answer" validate:"required,min=2,max=255"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.SecurityQuestion = strings.TrimSpace(r.SecurityQuestion)
	r.SecurityAnswer = strings.TrimSpace(r.SecurityAnswer)
}

// RegisterReviewerRequest — hanya owner; sports = scope cabang yang boleh dinilai
type RegisterReviewerRequest struct {
	RegisterRequest
	Sports []string `json:"sports" validate:"required,min=1,dive,min=2,max=50"`
}

func (r *RegisterReviewerRequest) Normalize() {
	r.RegisterRequest.Normalize()
	for i := range r.Sports {
		r.Sports[i] = strings.ToLower(strings.TrimSpace(r.Sports[i]))
	}
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,min=3,max=255"` // email atau user_name
	Password   string `json:"password" validate:"required,min=1,max=100"`
}

func (r *LoginRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type SecurityAnswerRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Answer string `json:"security_answer" validate:"required"`
}

func (r *SecurityAnswerRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Answer = strings.TrimSpace(r.Answer)
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Answer      string `json:"security_answer" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=100"`
}

func (r *ResetPasswordRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Answer = strings.TrimSpace(r.Answer)
}
