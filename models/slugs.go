package models

import "github.com/ritmdance/studio/slug"

// DerivedSlug is the slug computed from the class title
func (c *DanceClass) DerivedSlug() string { return slug.Title.Normalize(c.Title) }

// CanonicalSlug is the stored slug, or the derived one when none is stored
func (c *DanceClass) CanonicalSlug() string { return slug.Or(c.Slug, slug.Title, c.Title) }

// DerivedSlug is the slug computed from the instructor name
func (i *Instructor) DerivedSlug() string { return slug.Title.Normalize(i.Name) }

// CanonicalSlug is the stored slug, or the derived one when none is stored
func (i *Instructor) CanonicalSlug() string { return slug.Or(i.Slug, slug.Title, i.Name) }

// DerivedSlug is the slug computed from the event title
func (e *Event) DerivedSlug() string { return slug.Event.Normalize(e.Title) }

// CanonicalSlug is the stored slug, or the derived one when none is stored
func (e *Event) CanonicalSlug() string { return slug.Or(e.Slug, slug.Event, e.Title) }

// DerivedSlug is the slug computed from the city name
func (l *Location) DerivedSlug() string { return slug.City.Normalize(l.City) }

// CanonicalSlug is the stored slug, or the derived one when none is stored
func (l *Location) CanonicalSlug() string { return slug.Or(l.Slug, slug.City, l.City) }

// DerivedSlug is the slug computed from the post title
func (p *BlogPost) DerivedSlug() string { return slug.Event.Normalize(p.Title) }

// CanonicalSlug is the stored slug, or the derived one when none is stored
func (p *BlogPost) CanonicalSlug() string { return slug.Or(p.Slug, slug.Event, p.Title) }
