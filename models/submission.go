package models

// ContactSubmission is a message sent through the contact form
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// RegistrationStatusPending is the status every new registration starts in
const RegistrationStatusPending = "pending"

// CourseRegistration is a sign-up for a class
type CourseRegistration struct {
	Name            string `json:"name"`
	FirstName       string `json:"firstName"`
	Age             int    `json:"age"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	City            string `json:"city"`
	CourseID        int64  `json:"courseId"`
	HowDidYouFindUs string `json:"howDidYouFindUs"`
	GDPRConsent     bool   `json:"gdprConsent"`
}
