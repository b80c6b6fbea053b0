package cms

import "fmt"

// Collection names a CMS content type endpoint
type Collection string

const (
	Classes      Collection = "classes"
	Instructors  Collection = "instructors"
	Events       Collection = "events"
	Services     Collection = "services"
	Locations    Collection = "locations"
	Testimonials Collection = "testimonials"
	BlogPosts    Collection = "blog-posts"
)

// Collections lists every readable content type
var Collections = []Collection{Classes, Instructors, Events, Services, Locations, Testimonials, BlogPosts}

const (
	ContactSubmissionsPath  = "/api/contact-submissions"
	CourseRegistrationsPath = "/api/course-registrations"
)

// Path is the list endpoint with full relation expansion
func (c Collection) Path() string {
	return "/api/" + string(c) + "?populate=*"
}

// ItemPath is the single entry endpoint with full relation expansion
func (c Collection) ItemPath(id int64) string {
	return fmt.Sprintf("/api/%s/%d?populate=*", c, id)
}

// ParseCollection validates a collection name
func ParseCollection(name string) (Collection, error) {
	for _, c := range Collections {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown collection %q", name)
}
