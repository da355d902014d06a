package handler

import "github.com/resumecraft/resume-builder-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type credentialRequest struct {
	Credential string `json:"credential"`
}

type signupResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// loginResponse carries the re-derived profile plus the stored resume.
// Resume is null when the user has not saved one yet.
type loginResponse struct {
	Message string          `json:"message"`
	User    *domain.User    `json:"user"`
	Resume  domain.Document `json:"resume"`
}

type userRef struct {
	Email string `json:"email" validate:"required,email"`
}

type saveResumeRequest struct {
	User   userRef         `json:"user"   validate:"required"`
	Resume domain.Document `json:"resume" validate:"required"`
}

type getResumeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type createPDFResponse struct {
	RenderID string `json:"render_id"`
}
