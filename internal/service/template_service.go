package service

import (
	"context"
	"strconv"

	"assessment-service/internal/models"
	"assessment-service/internal/personalize"
	"assessment-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type TemplateService struct {
	Repo *repository.TemplateRepository
}

func NewTemplateService(repo *repository.TemplateRepository) *TemplateService {
	return &TemplateService{Repo: repo}
}

func (s *TemplateService) GetAllTemplates(ctx context.Context) ([]models.MessageTemplate, error) {
	return s.Repo.FindAll(ctx)
}

func (s *TemplateService) GetTemplate(ctx context.Context, id string) (*models.MessageTemplate, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *TemplateService) CreateTemplate(ctx context.Context, tpl *models.MessageTemplate) error {
	return s.Repo.Create(ctx, tpl)
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, id string, update bson.M) error {
	return s.Repo.Update(ctx, id, update)
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// SelectMessage picks the message template matching an assessment result and
// renders its placeholder tokens. When no templates are stored, the built-in
// set is used so the endpoint always produces a message.
func (s *TemplateService) SelectMessage(ctx context.Context, result *models.AssessmentResult, vars map[string]string) (string, string, error) {
	stored, err := s.Repo.FindAll(ctx)
	if err != nil {
		return "", "", err
	}

	candidates := defaultTemplates()
	if len(stored) > 0 {
		candidates = make([]personalize.Template, 0, len(stored))
		for _, tpl := range stored {
			candidate := personalize.Template{
				Name:      tpl.Name,
				Body:      tpl.Body,
				Priority:  tpl.Priority,
				IsDefault: tpl.IsDefault,
			}
			if tpl.ConditionField != "" {
				candidate.Condition = &personalize.Condition{
					Field:  tpl.ConditionField,
					Equals: tpl.ConditionValue,
				}
			}
			candidates = append(candidates, candidate)
		}
	}

	selected := personalize.SelectTemplate(resultFields(result), candidates)
	if selected == nil {
		return "", "", nil
	}
	return selected.Name, personalize.Render(selected.Body, vars), nil
}

// resultFields flattens a result into the field map template conditions
// evaluate against.
func resultFields(result *models.AssessmentResult) personalize.ResultFields {
	fields := personalize.ResultFields{
		"pacing":                  result.Flags.Pacing,
		"needs_extra_support":     strconv.FormatBool(result.Flags.NeedsExtraSupport),
		"needs_reassurance":       strconv.FormatBool(result.Flags.NeedsReassurance),
		"prefers_low_stimulation": strconv.FormatBool(result.Flags.PrefersLowStimulation),
	}
	for _, c := range result.Classifications {
		fields[c.Name] = c.Value
	}
	return fields
}

func defaultTemplates() []personalize.Template {
	return []personalize.Template{
		{
			Name:      "introvert_welcome",
			Body:      "Hi {name}! We'll build your plan around deeper one-on-one connections, with room to recharge between steps.",
			Priority:  10,
			Condition: &personalize.Condition{Field: "energy_profile", Equals: "introvert"},
		},
		{
			Name:      "extrovert_welcome",
			Body:      "Hi {name}! Your social energy is an asset. We'll channel it into dates that play to your strengths.",
			Priority:  10,
			Condition: &personalize.Condition{Field: "energy_profile", Equals: "extrovert"},
		},
		{
			Name:      "anxious_support",
			Body:      "Hi {name}, we'll take this step by step, starting with {primary_pain_point_text}. You set the pace.",
			Priority:  20,
			Condition: &personalize.Condition{Field: "attachment_style", Equals: "anxious"},
		},
		{
			Name:      "general_welcome",
			Body:      "Hi {name}! Your coaching plan is ready. Let's get started.",
			IsDefault: true,
		},
	}
}
