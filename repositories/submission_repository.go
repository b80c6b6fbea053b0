package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/ritmdance/studio/cms"
	"github.com/ritmdance/studio/container"
	"github.com/ritmdance/studio/models"
)

// SubmissionRepository writes form submissions to the CMS. Unlike reads,
// failures are always returned.
type SubmissionRepository struct {
	container *container.Container
	now       func() time.Time
}

func NewSubmissionRepository(container *container.Container) *SubmissionRepository {
	return &SubmissionRepository{
		container: container,
		now:       time.Now,
	}
}

type envelope struct {
	Data any `json:"data"`
}

type contactPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Message     string `json:"message"`
	PublishedAt string `json:"publishedAt"`
}

type connectRef struct {
	ID int64 `json:"id"`
}

type relationConnect struct {
	Connect []connectRef `json:"connect"`
}

type registrationPayload struct {
	Name               string          `json:"name"`
	FirstName          string          `json:"firstName"`
	Age                int             `json:"age"`
	Phone              string          `json:"phone"`
	Email              string          `json:"email"`
	City               string          `json:"city"`
	HowDidYouFindUs    string          `json:"howDidYouFindUs"`
	CourseType         relationConnect `json:"courseType"`
	StatusRegistration string          `json:"statusRegistration"`
	GDPRConsent        bool            `json:"gdprConsent"`
	PublishedAt        string          `json:"publishedAt"`
}

func (r *SubmissionRepository) publishedAt() string {
	return r.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// CreateContactSubmission posts a contact form message
func (r *SubmissionRepository) CreateContactSubmission(ctx context.Context, submission *models.ContactSubmission) error {
	payload := envelope{Data: contactPayload{
		Name:        submission.Name,
		Email:       submission.Email,
		Phone:       submission.Phone,
		Message:     submission.Message,
		PublishedAt: r.publishedAt(),
	}}

	if _, err := r.container.CMS.Post(ctx, cms.ContactSubmissionsPath, payload); err != nil {
		return fmt.Errorf("failed to submit contact form: %w", err)
	}

	return nil
}

// CreateCourseRegistration posts a course sign-up in pending status
func (r *SubmissionRepository) CreateCourseRegistration(ctx context.Context, registration *models.CourseRegistration) error {
	payload := envelope{Data: registrationPayload{
		Name:               registration.Name,
		FirstName:          registration.FirstName,
		Age:                registration.Age,
		Phone:              registration.Phone,
		Email:              registration.Email,
		City:               registration.City,
		HowDidYouFindUs:    registration.HowDidYouFindUs,
		CourseType:         relationConnect{Connect: []connectRef{{ID: registration.CourseID}}},
		StatusRegistration: models.RegistrationStatusPending,
		GDPRConsent:        registration.GDPRConsent,
		PublishedAt:        r.publishedAt(),
	}}

	if _, err := r.container.CMS.Post(ctx, cms.CourseRegistrationsPath, payload); err != nil {
		return fmt.Errorf("failed to submit registration: %w", err)
	}

	return nil
}
