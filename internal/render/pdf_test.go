package render

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/resumecraft/resume-builder-api/internal/core/ports"
)

func sampleInput() ports.RenderInput {
	return ports.RenderInput{
		Name:     "Ada Lovelace",
		Headline: "Software Engineer",
		Email:    "a@x.com",
		Phone:    "+1 555 0100",
		Summary:  "Builds reliable backends.",
		Skills:   []string{"Go", "MongoDB", "Redis"},
		Jobs: []ports.ExperienceInput{
			{Company: "Analytical Engines", Title: "Engineer", Period: "1840 - 1843", Description: "Wrote the first program."},
		},
		Schools: []ports.EducationInput{
			{School: "Home Tutoring", Degree: "Mathematics", Period: "1830s"},
		},
		Projects: []ports.ProjectInput{
			{Name: "Notes on the Analytical Engine", Description: "Annotated translation."},
		},
	}
}

func TestPDFRenderer_Render(t *testing.T) {
	data, err := NewPDFRenderer().Render(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF stream")
	}
}

func TestPDFRenderer_Render_MinimalInput(t *testing.T) {
	data, err := NewPDFRenderer().Render(context.Background(), ports.RenderInput{Name: "Ada"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty output")
	}
}

func TestPDFRenderer_Render_Deterministic(t *testing.T) {
	r := NewPDFRenderer()
	first, err := r.Render(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	second, err := r.Render(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	// fpdf stamps a creation date; sizes still match for identical input.
	if len(first) != len(second) {
		t.Fatalf("expected stable output size, got %d then %d", len(first), len(second))
	}
}

func TestPDFRenderer_Render_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewPDFRenderer().Render(ctx, sampleInput()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
