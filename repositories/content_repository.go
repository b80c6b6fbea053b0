package repositories

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ritmdance/studio/cms"
	"github.com/ritmdance/studio/container"
	"github.com/ritmdance/studio/models"
	"github.com/ritmdance/studio/utils"
	"github.com/tidwall/gjson"
)

// ContentRepository reads content entries from the CMS. Every method returns
// the underlying error; absorbing it is the caller's decision.
type ContentRepository struct {
	container *container.Container
}

func NewContentRepository(container *container.Container) *ContentRepository {
	return &ContentRepository{
		container: container,
	}
}

func (r *ContentRepository) list(ctx context.Context, collection cms.Collection) ([]gjson.Result, error) {
	records, err := r.container.CMS.GetList(ctx, collection.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", collection, err)
	}
	return records, nil
}

func (r *ContentRepository) ListClasses(ctx context.Context) ([]*models.DanceClass, error) {
	records, err := r.list(ctx, cms.Classes)
	if err != nil {
		return nil, err
	}
	return cms.All(records, r.container.CMS.Normalizer().Class), nil
}

func (r *ContentRepository) ListInstructors(ctx context.Context) ([]*models.Instructor, error) {
	records, err := r.list(ctx, cms.Instructors)
	if err != nil {
		return nil, err
	}
	return cms.All(records, r.container.CMS.Normalizer().Instructor), nil
}

func (r *ContentRepository) ListEvents(ctx context.Context) ([]*models.Event, error) {
	records, err := r.list(ctx, cms.Events)
	if err != nil {
		return nil, err
	}
	return cms.All(records, r.container.CMS.Normalizer().Event), nil
}

func (r *ContentRepository) ListServices(ctx context.Context) ([]*models.Service, error) {
	records, err := r.list(ctx, cms.Services)
	if err != nil {
		return nil, err
	}
	return cms.All(records, r.container.CMS.Normalizer().Service), nil
}

func (r *ContentRepository) ListLocations(ctx context.Context) ([]*models.Location, error) {
	records, err := r.list(ctx, cms.Locations)
	if err != nil {
		return nil, err
	}
	return cms.All(records, r.container.CMS.Normalizer().Location), nil
}

func (r *ContentRepository) ListTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	records, err := r.list(ctx, cms.Testimonials)
	if err != nil {
		return nil, err
	}
	return cms.All(records, r.container.CMS.Normalizer().Testimonial), nil
}

func (r *ContentRepository) ListBlogPosts(ctx context.Context) ([]*models.BlogPost, error) {
	records, err := r.list(ctx, cms.BlogPosts)
	if err != nil {
		return nil, err
	}
	return cms.All(records, r.container.CMS.Normalizer().BlogPost), nil
}

// ListAvailableCourses projects the classes open for registration or for the
// waitlist
func (r *ContentRepository) ListAvailableCourses(ctx context.Context) ([]*models.AvailableCourse, error) {
	classes, err := r.ListClasses(ctx)
	if err != nil {
		return nil, err
	}

	courses := make([]*models.AvailableCourse, 0, len(classes))
	for _, class := range classes {
		if !class.RegistrationEnabled && !class.WaitlistEnabled {
			continue
		}
		courses = append(courses, class.ToAvailableCourse())
	}

	return courses, nil
}

// GetClass fetches a single class by CMS id
func (r *ContentRepository) GetClass(ctx context.Context, id int64) (*models.DanceClass, error) {
	record, ok, err := r.container.CMS.GetOne(ctx, cms.Classes.ItemPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class %d: %w", id, err)
	}
	if !ok {
		return nil, utils.ErrClassNotFound
	}
	return r.container.CMS.Normalizer().Class(record), nil
}

// GetEvent fetches a single event by CMS id
func (r *ContentRepository) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	record, ok, err := r.container.CMS.GetOne(ctx, cms.Events.ItemPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event %d: %w", id, err)
	}
	if !ok {
		return nil, utils.ErrEventNotFound
	}
	return r.container.CMS.Normalizer().Event(record), nil
}

// FindBlogPost asks the CMS for the post with the given stored slug
func (r *ContentRepository) FindBlogPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := url.Values{}
	query.Set("filters[slug][$eq]", slug)
	query.Set("populate", "*")

	path := "/api/" + string(cms.BlogPosts) + "?" + query.Encode()

	record, ok, err := r.container.CMS.GetOne(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blog post %q: %w", slug, err)
	}
	if !ok {
		return nil, utils.ErrBlogPostNotFound
	}
	return r.container.CMS.Normalizer().BlogPost(record), nil
}

// Refresh re-fetches a collection past the cache so the cached copy is rewritten
func (r *ContentRepository) Refresh(ctx context.Context, collection cms.Collection) (int, error) {
	records, err := r.list(cms.WithFresh(ctx), collection)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
