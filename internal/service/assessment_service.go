package service

import (
	"context"
	"fmt"
	"time"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"
	"assessment-service/internal/scoring"

	"go.mongodb.org/mongo-driver/bson"
)

type AssessmentService struct {
	Repo          *repository.AssessmentRepository
	ResponseRepo  *repository.ResponseRepository
	QuestionRepo  *repository.QuestionRepository
	ResultService *ResultService
	engine        *scoring.Engine
}

func NewAssessmentService(
	repo *repository.AssessmentRepository,
	responseRepo *repository.ResponseRepository,
	questionRepo *repository.QuestionRepository,
	resultService *ResultService,
) *AssessmentService {
	return &AssessmentService{
		Repo:          repo,
		ResponseRepo:  responseRepo,
		QuestionRepo:  questionRepo,
		ResultService: resultService,
		engine:        scoring.NewEngine(nil), // default thresholds
	}
}

func (s *AssessmentService) GetAssessment(ctx context.Context, id string) (*models.Assessment, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *AssessmentService) GetByUser(ctx context.Context, userID string) ([]models.Assessment, error) {
	return s.Repo.FindByUser(ctx, userID)
}

func (s *AssessmentService) CreateAssessment(ctx context.Context, assessment *models.Assessment) error {
	assessment.Status = models.StatusIntake
	assessment.StartedAt = time.Now()
	assessment.ResponseCount = 0
	return s.Repo.Create(ctx, assessment)
}

// SubmitResponse records (or overwrites) one answer. Responses are rejected
// once the assessment has completed: responses are immutable after close.
func (s *AssessmentService) SubmitResponse(ctx context.Context, assessmentID string, response *models.QuestionnaireResponse) error {
	assessment, err := s.Repo.FindByID(ctx, assessmentID)
	if err != nil {
		return err
	}
	if assessment.IsClosed() {
		return fmt.Errorf("assessment %s is completed, responses are read-only", assessmentID)
	}

	response.AssessmentID = assessmentID
	response.AnsweredAt = time.Now()
	if err := s.ResponseRepo.Upsert(ctx, response); err != nil {
		return err
	}

	count, err := s.ResponseRepo.CountByAssessment(ctx, assessmentID)
	if err != nil {
		return err
	}

	update := bson.M{"response_count": count}
	if assessment.Status == models.StatusIntake {
		update["status"] = models.StatusInProgress
	}
	return s.Repo.Update(ctx, assessmentID, update)
}

func (s *AssessmentService) GetResponses(ctx context.Context, assessmentID string) ([]models.QuestionnaireResponse, error) {
	return s.ResponseRepo.FindByAssessment(ctx, assessmentID)
}

// missingRequired returns the required question IDs without a response.
func (s *AssessmentService) missingRequired(ctx context.Context, responses []models.QuestionnaireResponse) ([]string, error) {
	required, err := s.QuestionRepo.FindRequired(ctx)
	if err != nil {
		return nil, err
	}
	answered := make(map[string]bool, len(responses))
	for _, resp := range responses {
		answered[resp.QuestionID] = true
	}
	var missing []string
	for _, q := range required {
		if !answered[q.ID] {
			missing = append(missing, q.ID)
		}
	}
	return missing, nil
}

// CompleteAssessment closes the assessment: it verifies every required
// question has a response, runs the scoring engine, persists the final
// result and marks the assessment completed.
func (s *AssessmentService) CompleteAssessment(ctx context.Context, assessmentID string) (*models.AssessmentResult, error) {
	assessment, err := s.Repo.FindByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.IsClosed() {
		// completion is idempotent: return the stored result
		return s.ResultService.GetByAssessment(ctx, assessmentID)
	}

	responses, err := s.ResponseRepo.FindByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	missing, err := s.missingRequired(ctx, responses)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("assessment %s incomplete, missing required questions: %v", assessmentID, missing)
	}

	result := s.score(assessment, responses)
	result.Final = true
	if err := s.ResultService.Save(ctx, result); err != nil {
		return nil, err
	}

	update := bson.M{
		"status":       models.StatusCompleted,
		"completed_at": time.Now(),
	}
	if err := s.Repo.Update(ctx, assessmentID, update); err != nil {
		return nil, err
	}

	return result, nil
}

// RecomputeResult re-scores an in-progress assessment after responses were
// corrected. It refuses to touch a completed assessment's result.
func (s *AssessmentService) RecomputeResult(ctx context.Context, assessmentID string) (*models.AssessmentResult, error) {
	assessment, err := s.Repo.FindByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.IsClosed() {
		return nil, fmt.Errorf("assessment %s is finalized, result is read-only", assessmentID)
	}

	responses, err := s.ResponseRepo.FindByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	result := s.score(assessment, responses)
	if err := s.ResultService.Save(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// score runs the pure engine over the responses and flattens the output
// into the persistence model.
func (s *AssessmentService) score(assessment *models.Assessment, responses []models.QuestionnaireResponse) *models.AssessmentResult {
	scored := s.engine.Score(buildAssessmentInputs(responses))

	result := &models.AssessmentResult{
		AssessmentID:    assessment.ID,
		UserID:          assessment.UserID,
		SubScores:       scored.SubScores,
		Recommendations: scored.Recommendations,
		Flags: models.PersonalizationFlags{
			NeedsExtraSupport:     scored.Flags.NeedsExtraSupport,
			NeedsReassurance:      scored.Flags.NeedsReassurance,
			PrefersLowStimulation: scored.Flags.PrefersLowStimulation,
			Pacing:                string(scored.Flags.Pacing),
		},
		ComputedAt: time.Now(),
	}

	for _, c := range scored.Classifications {
		result.Classifications = append(result.Classifications, models.Classification{
			Name:       c.Name,
			Value:      c.Value,
			Confidence: c.Confidence,
		})
	}

	if scored.Synthesis != nil {
		for _, cv := range scored.Synthesis.CoreValues {
			result.CoreValues = append(result.CoreValues, models.CoreValue{
				Key:         cv.Key,
				Label:       cv.Label,
				Importance:  cv.Importance,
				Description: cv.Description,
				Meaning:     cv.Meaning,
			})
		}
		result.RedFlags = scored.Synthesis.RedFlags
		result.GreenFlags = scored.Synthesis.GreenFlags
		result.Strategies = scored.Synthesis.Strategies
	}

	return result
}
