package ports

import "context"

// RenderInput carries the resume data the PDF layout knows how to draw.
// Unknown editor fields are simply not rendered.
type RenderInput struct {
	Name     string            `json:"name"`
	Headline string            `json:"headline"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone"`
	Address  string            `json:"address"`
	Summary  string            `json:"summary"`
	Skills   []string          `json:"skills"`
	Jobs     []ExperienceInput `json:"experience"`
	Schools  []EducationInput  `json:"education"`
	Projects []ProjectInput    `json:"projects"`
}

// ExperienceInput holds a single work-history entry.
type ExperienceInput struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// EducationInput holds a single education entry.
type EducationInput struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Period string `json:"period"`
}

// ProjectInput holds a single project entry.
type ProjectInput struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Renderer turns resume data into a PDF byte stream. Implementations must
// honour ctx cancellation.
type Renderer interface {
	Render(ctx context.Context, in RenderInput) ([]byte, error)
}

type RenderService interface {
	// CreatePDF renders the resume and stores the artifact under a fresh
	// request-scoped id, which the client presents to FetchPDF.
	CreatePDF(ctx context.Context, in RenderInput) (string, error)
	// FetchPDF returns the rendered bytes for id, or
	// domain.ErrRenderNotFound when the id is unknown or expired.
	FetchPDF(ctx context.Context, id string) ([]byte, error)
}
