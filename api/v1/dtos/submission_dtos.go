package dtos

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ritmdance/studio/models"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,min=10"`
	Message string `json:"message" validate:"required"`
}

// Trim strips surrounding whitespace so length rules apply to the content
func (r *ContactRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
}

func (r *ContactRequest) ToModel() *models.ContactSubmission {
	return &models.ContactSubmission{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}

// RegistrationRequest mirrors the registration form. CourseType carries the
// class id as a string, the way the form's select submits it.
type RegistrationRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	FirstName       string `json:"firstName" validate:"required,min=2"`
	Age             int    `json:"age" validate:"required,min=16,max=100"`
	Phone           string `json:"phone" validate:"required,min=10"`
	Email           string `json:"email" validate:"required,email"`
	City            string `json:"city" validate:"required"`
	CourseType      string `json:"courseType" validate:"required,number"`
	HowDidYouFindUs string `json:"howDidYouFindUs" validate:"required"`
	GDPRConsent     bool   `json:"gdprConsent" validate:"required"`
}

// Trim strips surrounding whitespace so length rules apply to the content
func (r *RegistrationRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.City = strings.TrimSpace(r.City)
	r.CourseType = strings.TrimSpace(r.CourseType)
	r.HowDidYouFindUs = strings.TrimSpace(r.HowDidYouFindUs)
}

func (r *RegistrationRequest) ToModel() (*models.CourseRegistration, error) {
	courseID, err := strconv.ParseInt(r.CourseType, 10, 64)
	if err != nil {
		return nil, err
	}
	if courseID <= 0 {
		return nil, fmt.Errorf("invalid course id %d", courseID)
	}

	return &models.CourseRegistration{
		Name:            r.Name,
		FirstName:       r.FirstName,
		Age:             r.Age,
		Phone:           r.Phone,
		Email:           r.Email,
		City:            r.City,
		CourseID:        courseID,
		HowDidYouFindUs: r.HowDidYouFindUs,
		GDPRConsent:     r.GDPRConsent,
	}, nil
}

type SubmissionResponse struct {
	Status string `json:"status"`
}
