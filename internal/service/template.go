package service

import "resumeapi/internal/model"

// TemplateService exposes the built-in template catalog.
type TemplateService interface {
	List() []model.Template
	// PreviewURL does not check that id is in the catalog.
	PreviewURL(id string) string
}

var catalog = []model.Template{
	{ID: model.TemplateModern, Name: "Modern", Description: "A clean and contemporary design with a focus on typography and spacing"},
	{ID: model.TemplateProfessional, Name: "Professional", Description: "A traditional layout perfect for corporate and business roles"},
	{ID: model.TemplateCreative, Name: "Creative", Description: "A bold and unique design for creative professionals"},
	{ID: model.TemplateMinimal, Name: "Minimal", Description: "A simple and elegant design that focuses on content"},
}

type templateService struct{}

func NewTemplateService() TemplateService { return templateService{} }

func (templateService) List() []model.Template {
	out := make([]model.Template, len(catalog))
	for i, t := range catalog {
		t.Thumbnail = "/static/templates/" + t.ID + "-thumbnail.png"
		out[i] = t
	}
	return out
}

func (templateService) PreviewURL(id string) string {
	return "/static/templates/" + id + "-preview.png"
}
