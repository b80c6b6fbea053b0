package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ritmdance/studio/cms"
	"github.com/ritmdance/studio/container"
	"github.com/ritmdance/studio/models"
	"github.com/ritmdance/studio/repositories"
	"github.com/ritmdance/studio/search"
	"github.com/ritmdance/studio/slug"
	"github.com/ritmdance/studio/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ContentService is the read side used by the API. CMS failures never reach
// callers: they are logged and replaced by an empty list or a nil entry, so
// pages render with whatever content is available.
type ContentService struct {
	container *container.Container
	repo      *repositories.ContentRepository
}

func NewContentService(container *container.Container) *ContentService {
	return &ContentService{
		container: container,
		repo:      repositories.NewContentRepository(container),
	}
}

func orEmpty[T any](what string, items []T, err error) []T {
	if err != nil {
		log.Error().Err(err).Msgf("Error fetching %s", what)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

func (s *ContentService) Classes(ctx context.Context) []*models.DanceClass {
	classes, err := s.repo.ListClasses(ctx)
	return orEmpty("classes", classes, err)
}

func (s *ContentService) Instructors(ctx context.Context) []*models.Instructor {
	instructors, err := s.repo.ListInstructors(ctx)
	return orEmpty("instructors", instructors, err)
}

func (s *ContentService) Events(ctx context.Context) []*models.Event {
	events, err := s.repo.ListEvents(ctx)
	return orEmpty("events", events, err)
}

func (s *ContentService) Services(ctx context.Context) []*models.Service {
	services, err := s.repo.ListServices(ctx)
	return orEmpty("services", services, err)
}

func (s *ContentService) Locations(ctx context.Context) []*models.Location {
	locations, err := s.repo.ListLocations(ctx)
	return orEmpty("locations", locations, err)
}

func (s *ContentService) Testimonials(ctx context.Context) []*models.Testimonial {
	testimonials, err := s.repo.ListTestimonials(ctx)
	return orEmpty("testimonials", testimonials, err)
}

func (s *ContentService) BlogPosts(ctx context.Context) []*models.BlogPost {
	posts, err := s.repo.ListBlogPosts(ctx)
	return orEmpty("blog posts", posts, err)
}

func (s *ContentService) AvailableCourses(ctx context.Context) []*models.AvailableCourse {
	courses, err := s.repo.ListAvailableCourses(ctx)
	return orEmpty("available courses", courses, err)
}

// Class returns the class with the given id, or nil
func (s *ContentService) Class(ctx context.Context, id int64) *models.DanceClass {
	class, err := s.repo.GetClass(ctx, id)
	if err != nil {
		if !errors.Is(err, utils.ErrClassNotFound) {
			log.Error().Err(err).Int64("id", id).Msg("Error fetching class")
		}
		return nil
	}
	return class
}

// Event returns the event with the given id, or nil
func (s *ContentService) Event(ctx context.Context, id int64) *models.Event {
	event, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		if !errors.Is(err, utils.ErrEventNotFound) {
			log.Error().Err(err).Int64("id", id).Msg("Error fetching event")
		}
		return nil
	}
	return event
}

// isolate runs fn as one independent section: a panic is logged and
// swallowed so sibling sections still complete
func isolate(section string, fn func()) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Str("section", section).Interface("panic", r).Msg("Recovered while building section")
			}
		}()
		fn()
		return nil
	}
}

// Home fetches the five home page collections concurrently. Each one fails
// on its own into an empty list.
func (s *ContentService) Home(ctx context.Context) *models.HomeContent {
	home := &models.HomeContent{}

	var g errgroup.Group
	g.Go(isolate("classes", func() { home.Classes = s.Classes(ctx) }))
	g.Go(isolate("services", func() { home.Services = s.Services(ctx) }))
	g.Go(isolate("events", func() { home.Events = s.Events(ctx) }))
	g.Go(isolate("instructors", func() { home.Instructors = s.Instructors(ctx) }))
	g.Go(isolate("testimonials", func() { home.Testimonials = s.Testimonials(ctx) }))
	_ = g.Wait()

	home.Classes = orEmpty("classes", home.Classes, nil)
	home.Services = orEmpty("services", home.Services, nil)
	home.Events = orEmpty("events", home.Events, nil)
	home.Instructors = orEmpty("instructors", home.Instructors, nil)
	home.Testimonials = orEmpty("testimonials", home.Testimonials, nil)

	log.Info().
		Int("classes", len(home.Classes)).
		Int("services", len(home.Services)).
		Int("events", len(home.Events)).
		Int("instructors", len(home.Instructors)).
		Int("testimonials", len(home.Testimonials)).
		Msg("Home content fetched")

	return home
}

// ClassBySlug resolves a course URL segment. Course links fall back to the
// numeric id when a class has no slug, so a numeric segment that matches no
// slug is looked up by id.
func (s *ContentService) ClassBySlug(ctx context.Context, candidate string) (*models.DanceClass, error) {
	classes := s.Classes(ctx)

	class, ok := slug.Resolve(classes, candidate,
		func(c *models.DanceClass) string { return c.Slug },
		(*models.DanceClass).DerivedSlug,
	)
	if ok {
		return class, nil
	}

	if id, err := strconv.ParseInt(candidate, 10, 64); err == nil && id > 0 {
		for _, c := range classes {
			if c.ID == id {
				return c, nil
			}
		}
		if class := s.Class(ctx, id); class != nil {
			return class, nil
		}
	}

	return nil, utils.ErrClassNotFound
}

// EventBySlug resolves an event URL segment. Like course links, event links
// use the numeric id when an event has no slug.
func (s *ContentService) EventBySlug(ctx context.Context, candidate string) (*models.Event, error) {
	events := s.Events(ctx)

	event, ok := slug.Resolve(events, candidate,
		func(e *models.Event) string { return e.Slug },
		(*models.Event).DerivedSlug,
	)
	if ok {
		return event, nil
	}

	if id, err := strconv.ParseInt(candidate, 10, 64); err == nil && id > 0 {
		for _, e := range events {
			if e.ID == id {
				return e, nil
			}
		}
		if event := s.Event(ctx, id); event != nil {
			return event, nil
		}
	}

	return nil, utils.ErrEventNotFound
}

// InstructorProfile resolves an instructor URL segment and lists the classes
// they teach
func (s *ContentService) InstructorProfile(ctx context.Context, candidate string) (*models.InstructorProfile, error) {
	var instructors []*models.Instructor
	var classes []*models.DanceClass

	var g errgroup.Group
	g.Go(isolate("instructors", func() { instructors = s.Instructors(ctx) }))
	g.Go(isolate("classes", func() { classes = s.Classes(ctx) }))
	_ = g.Wait()

	instructor, ok := slug.Resolve(instructors, candidate,
		func(i *models.Instructor) string { return i.Slug },
		(*models.Instructor).DerivedSlug,
	)
	if !ok {
		return nil, utils.ErrInstructorNotFound
	}

	return &models.InstructorProfile{
		Instructor: instructor,
		Classes:    search.ClassesByInstructor(classes, instructor.ID),
	}, nil
}

// LocationProfile resolves a location URL segment and lists the classes held
// there
func (s *ContentService) LocationProfile(ctx context.Context, candidate string) (*models.LocationProfile, error) {
	var locations []*models.Location
	var classes []*models.DanceClass

	var g errgroup.Group
	g.Go(isolate("locations", func() { locations = s.Locations(ctx) }))
	g.Go(isolate("classes", func() { classes = s.Classes(ctx) }))
	_ = g.Wait()

	location, ok := slug.Resolve(locations, candidate,
		func(l *models.Location) string { return l.Slug },
		(*models.Location).DerivedSlug,
	)
	if !ok {
		return nil, utils.ErrLocationNotFound
	}

	return &models.LocationProfile{
		Location: location,
		Classes:  search.ClassesAtLocation(classes, location.ID),
	}, nil
}

// BlogPostBySlug asks the CMS for the post by stored slug. When that query
// fails the full list is scanned instead.
func (s *ContentService) BlogPostBySlug(ctx context.Context, candidate string) (*models.BlogPost, error) {
	post, err := s.repo.FindBlogPost(ctx, candidate)
	if err == nil {
		return post, nil
	}
	if errors.Is(err, utils.ErrBlogPostNotFound) {
		return nil, err
	}

	log.Error().Err(err).Str("slug", candidate).Msg("Error querying blog post, scanning list")

	post, ok := slug.Resolve(s.BlogPosts(ctx), candidate,
		func(p *models.BlogPost) string { return p.Slug },
		(*models.BlogPost).DerivedSlug,
	)
	if !ok {
		return nil, utils.ErrBlogPostNotFound
	}
	return post, nil
}

// Refresh re-fetches a collection into the cache
func (s *ContentService) Refresh(ctx context.Context, collection cms.Collection) error {
	count, err := s.repo.Refresh(ctx, collection)
	if err != nil {
		return fmt.Errorf("failed to refresh %s: %w", collection, err)
	}

	log.Info().Str("collection", string(collection)).Int("count", count).Msg("Refreshed cached collection")

	return nil
}

// Revalidate drops every cached response of the given collections, or of all
// of them when none are named: lists, single entries and filtered queries.
// With a worker the lists are then refreshed in the background.
func (s *ContentService) Revalidate(ctx context.Context, collections []cms.Collection) error {
	if len(collections) == 0 {
		collections = cms.Collections
	}

	if s.container.Cache != nil {
		if err := s.container.Cache.Invalidate(ctx, collections...); err != nil {
			return fmt.Errorf("failed to invalidate cached content: %w", err)
		}
	}

	if s.container.Worker != nil {
		for _, collection := range collections {
			if err := s.container.Worker.EnqueueRefreshCollection(ctx, collection); err != nil {
				return fmt.Errorf("failed to schedule refresh of %s: %w", collection, err)
			}
		}
	}

	return nil
}
