package cms

import (
	"strings"

	"github.com/ritmdance/studio/models"
	"github.com/tidwall/gjson"
)

// Normalizer converts raw CMS records into fully defaulted entities
type Normalizer struct {
	// MediaBaseURL is prefixed to relative upload URLs
	MediaBaseURL string
}

func timestamps(fields gjson.Result) models.Timestamps {
	return models.Timestamps{
		PublishedAt: String(fields, "publishedAt"),
		CreatedAt:   String(fields, "createdAt"),
		UpdatedAt:   String(fields, "updatedAt"),
	}
}

func (n *Normalizer) absoluteURL(url string) string {
	if n.MediaBaseURL != "" && strings.HasPrefix(url, "/") && !strings.HasPrefix(url, "//") {
		return n.MediaBaseURL + url
	}
	return url
}

// Media normalizes a media field. Missing media, null data and entries
// without a url all yield nil.
func (n *Normalizer) Media(raw gjson.Result) *models.Media {
	record, ok := Relation(raw)
	if !ok {
		// A bare {url: ...} object without an id is still usable
		if !raw.IsObject() || String(raw, "url") == "" {
			return nil
		}
		record = raw
	}

	fields := Fields(record)

	url := String(fields, "url")
	if url == "" {
		return nil
	}

	formats := map[string]string{}
	fields.Get("formats").ForEach(func(name, format gjson.Result) bool {
		if u := String(format, "url"); u != "" {
			formats[name.String()] = n.absoluteURL(u)
		}
		return true
	})

	return &models.Media{
		ID:              ID(record),
		URL:             n.absoluteURL(url),
		AlternativeText: String(fields, "alternativeText"),
		Formats:         formats,
	}
}

// Class normalizes a dance class record
func (n *Normalizer) Class(record gjson.Result) *models.DanceClass {
	fields := Fields(record)

	class := &models.DanceClass{
		ID:                  ID(record),
		DocumentID:          String(record, "documentId"),
		Title:               String(fields, "title"),
		Slug:                String(fields, "slug"),
		Description:         String(fields, "description"),
		Schedule:            String(fields, "schedule"),
		Price:               Float(fields, "price"),
		Level:               models.Level(StringOr(fields, "level", string(models.LevelBeginner))),
		TypeOfDance:         String(fields, "typeOfDance"),
		Image:               n.Media(fields.Get("image")),
		RegistrationEnabled: Bool(fields, "registrationEnabled"),
		AvailableSpots:      Int(fields, "availableSpots"),
		WaitlistEnabled:     Bool(fields, "waitlistEnabled"),
		Timestamps:          timestamps(fields),
	}

	class.URLSlug = class.CanonicalSlug()

	if location, ok := Relation(fields.Get("location")); ok {
		class.Location = n.Location(location)
	}

	if instructor, ok := Relation(fields.Get("instructor")); ok {
		class.Instructor = n.Instructor(instructor)
	}

	return class
}

// Instructor normalizes an instructor record
func (n *Normalizer) Instructor(record gjson.Result) *models.Instructor {
	fields := Fields(record)

	instructor := &models.Instructor{
		ID:          ID(record),
		DocumentID:  String(record, "documentId"),
		Name:        String(fields, "name"),
		Slug:        String(fields, "slug"),
		Bio:         String(fields, "bio"),
		Specialties: Strings(fields, "specialties"),
		Image:       n.Media(fields.Get("image")),
		SocialMedia: StringMap(fields, "socialMedia"),
		Timestamps:  timestamps(fields),
	}
	instructor.URLSlug = instructor.CanonicalSlug()

	return instructor
}

// Event normalizes an event record
func (n *Normalizer) Event(record gjson.Result) *models.Event {
	fields := Fields(record)

	event := &models.Event{
		ID:              ID(record),
		DocumentID:      String(record, "documentId"),
		Title:           String(fields, "title"),
		Slug:            String(fields, "slug"),
		Description:     String(fields, "description"),
		Date:            String(fields, "date"),
		Location:        String(fields, "location"),
		Category:        String(fields, "category"),
		Image:           n.Media(fields.Get("image")),
		MaxParticipants: OptionalInt(fields, "maxParticipants"),
		Price:           OptionalFloat(fields, "price"),
		Timestamps:      timestamps(fields),
	}
	event.URLSlug = event.CanonicalSlug()

	if organizer := fields.Get("organizer"); organizer.IsObject() {
		organizerFields := organizer
		if related, ok := Relation(organizer); ok {
			organizerFields = Fields(related)
		}
		if name := String(organizerFields, "name"); name != "" {
			event.Organizer = &models.Organizer{
				Name:        name,
				Description: String(organizerFields, "description"),
			}
		}
	}

	return event
}

// Location normalizes a location record. The stored slug is kept as is and
// URLSlug falls back to the city.
func (n *Normalizer) Location(record gjson.Result) *models.Location {
	fields := Fields(record)

	location := &models.Location{
		ID:           ID(record),
		DocumentID:   String(record, "documentId"),
		Name:         String(fields, "name"),
		Slug:         String(fields, "slug"),
		Address:      String(fields, "address"),
		City:         String(fields, "city"),
		Image:        n.Media(fields.Get("image")),
		Phone:        String(fields, "phone"),
		Email:        String(fields, "email"),
		OpeningHours: String(fields, "openingHours"),
		Facilities:   Strings(fields, "facilities"),
		Timestamps:   timestamps(fields),
	}
	location.URLSlug = location.CanonicalSlug()

	return location
}

// Service normalizes a service record
func (n *Normalizer) Service(record gjson.Result) *models.Service {
	fields := Fields(record)
	icon := String(fields, "icon")

	return &models.Service{
		ID:          ID(record),
		DocumentID:  String(record, "documentId"),
		Title:       String(fields, "title"),
		Description: String(fields, "description"),
		Icon:        icon,
		IconName:    models.ServiceIcon(icon),
		Link:        String(fields, "link"),
		Timestamps:  timestamps(fields),
	}
}

// Testimonial normalizes a testimonial record
func (n *Normalizer) Testimonial(record gjson.Result) *models.Testimonial {
	fields := Fields(record)

	testimonial := &models.Testimonial{
		ID:         ID(record),
		DocumentID: String(record, "documentId"),
		Name:       String(fields, "name"),
		Comment:    String(fields, "comment"),
		Rating:     Float(fields, "rating"),
		Role:       String(fields, "role"),
		Image:      n.Media(fields.Get("image")),
		Timestamps: timestamps(fields),
	}
	testimonial.Stars = testimonial.StarRating()

	return testimonial
}

// BlogPost normalizes a blog post record
func (n *Normalizer) BlogPost(record gjson.Result) *models.BlogPost {
	fields := Fields(record)

	post := &models.BlogPost{
		ID:         ID(record),
		DocumentID: String(record, "documentId"),
		Title:      String(fields, "title"),
		Content:    String(fields, "content"),
		Excerpt:    String(fields, "excerpt"),
		Slug:       String(fields, "slug"),
		Image:      n.Media(fields.Get("image")),
		Timestamps: timestamps(fields),
	}
	post.URLSlug = post.CanonicalSlug()

	return post
}

// All normalizes every record with fn, preserving order
func All[T any](records []gjson.Result, fn func(gjson.Result) T) []T {
	out := make([]T, 0, len(records))
	for _, record := range records {
		out = append(out, fn(record))
	}
	return out
}
