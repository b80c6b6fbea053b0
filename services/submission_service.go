package services

import (
	"context"
	"strings"

	"github.com/ritmdance/studio/container"
	"github.com/ritmdance/studio/models"
	"github.com/ritmdance/studio/repositories"
	"github.com/ritmdance/studio/utils"
	"github.com/rs/zerolog/log"
)

// SubmissionService forwards form submissions to the CMS. Errors are
// returned to the caller so the form can show a failure and offer a retry.
type SubmissionService struct {
	container *container.Container
	repo      *repositories.SubmissionRepository
	content   *repositories.ContentRepository
}

func NewSubmissionService(container *container.Container) *SubmissionService {
	return &SubmissionService{
		container: container,
		repo:      repositories.NewSubmissionRepository(container),
		content:   repositories.NewContentRepository(container),
	}
}

func (s *SubmissionService) SubmitContact(ctx context.Context, submission *models.ContactSubmission) error {
	submission.Name = strings.TrimSpace(submission.Name)
	submission.Email = strings.TrimSpace(submission.Email)
	submission.Phone = strings.TrimSpace(submission.Phone)
	submission.Message = strings.TrimSpace(submission.Message)

	if err := s.repo.CreateContactSubmission(ctx, submission); err != nil {
		log.Error().Err(err).Msg("Error submitting contact form")
		return err
	}

	log.Info().Msg("Contact form submitted")

	return nil
}

func (s *SubmissionService) SubmitRegistration(ctx context.Context, registration *models.CourseRegistration) error {
	registration.Name = strings.TrimSpace(registration.Name)
	registration.FirstName = strings.TrimSpace(registration.FirstName)
	registration.Phone = strings.TrimSpace(registration.Phone)
	registration.Email = strings.TrimSpace(registration.Email)
	registration.City = strings.TrimSpace(registration.City)
	registration.HowDidYouFindUs = strings.TrimSpace(registration.HowDidYouFindUs)

	if !oneOf(registration.City, s.container.Config.RegistrationCities) {
		return &utils.ValidationError{Field: "city", Message: "must be one of " + strings.Join(s.container.Config.RegistrationCities, ", ")}
	}

	if !oneOf(registration.HowDidYouFindUs, s.container.Config.RegistrationSources) {
		return &utils.ValidationError{Field: "howDidYouFindUs", Message: "must be one of " + strings.Join(s.container.Config.RegistrationSources, ", ")}
	}

	if err := s.checkCourse(ctx, registration.CourseID); err != nil {
		return err
	}

	if err := s.repo.CreateCourseRegistration(ctx, registration); err != nil {
		log.Error().Err(err).Int64("course_id", registration.CourseID).Msg("Error submitting registration")
		return err
	}

	log.Info().Int64("course_id", registration.CourseID).Msg("Course registration submitted")

	return nil
}

// checkCourse accepts only courses currently open for registration or for the
// waitlist
func (s *SubmissionService) checkCourse(ctx context.Context, id int64) error {
	courses, err := s.content.ListAvailableCourses(ctx)
	if err != nil {
		log.Error().Err(err).Int64("course_id", id).Msg("Error fetching available courses")
		return err
	}

	for _, course := range courses {
		if course.ID == id {
			return nil
		}
	}

	return &utils.ValidationError{Field: "courseType", Message: "course is not open for registration"}
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
