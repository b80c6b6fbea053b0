package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/ritmdance/studio/api/v1/dtos"
	"github.com/ritmdance/studio/cms"
	"github.com/ritmdance/studio/cms/cmstest"
	"github.com/ritmdance/studio/config"
	"github.com/ritmdance/studio/models"
	"github.com/ritmdance/studio/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classesBody = `{"data":[
	{"id":1,"attributes":{"title":"Salsa Cubana","typeOfDance":"Salsa & Bachata","level":"Beginner"}},
	{"id":2,"attributes":{"title":"Kizomba","typeOfDance":"Kizomba","level":"Intermediate"}},
	{"id":3,"attributes":{"title":"Cha Cha","typeOfDance":"Cha Cha","level":"Beginner"}}
]}`

func testConfig() *config.Config {
	return &config.Config{
		EncryptionKey:       "secret",
		RevalidateSecret:    "letmein",
		RegistrationCities:  []string{"Suceava", "Botoșani", "Rădăuți"},
		RegistrationSources: []string{"Facebook", "Instagram"},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*cmstest.Server, *echo.Echo) {
	t.Helper()

	cmsServer := cmstest.NewServer()
	t.Cleanup(cmsServer.Close)

	c := cmsServer.Container(cfg)
	e := NewServer(c, services.NewContentService(c), services.NewSubmissionService(c))

	return cmsServer, e
}

func do(e *echo.Echo, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	_, e := newTestServer(t, testConfig())

	rec := do(e, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","cms_configured":true,"cache":"disabled"}`, rec.Body.String())
}

func TestHomeSurvivesFailingSource(t *testing.T) {
	cmsServer, e := newTestServer(t, testConfig())
	cmsServer.JSON("/api/classes", classesBody)
	cmsServer.Handle("/api/events", http.StatusInternalServerError, `{}`)

	rec := do(e, http.MethodGet, "/v1/home", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var home models.HomeContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &home))
	assert.Len(t, home.Classes, 3)
	assert.NotNil(t, home.Events)
	assert.Empty(t, home.Events)
	assert.NotNil(t, home.Services)
}

func TestListClassesFiltersAndSeeds(t *testing.T) {
	cmsServer, e := newTestServer(t, testConfig())
	cmsServer.JSON("/api/classes", classesBody)

	rec := do(e, http.MethodGet, "/v1/classes?category=salsa", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dtos.ClassListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Salsa & Bachata", res.Type)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Salsa Cubana", res.Data[0].Title)
	assert.Equal(t, []string{"Salsa & Bachata", "Kizomba", "Cha Cha"}, res.Facets.Types)
	assert.Equal(t, []string{"Beginner", "Intermediate"}, res.Facets.Levels)

	rec = do(e, http.MethodGet, "/v1/classes?category=tango&level=Beginner", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "all", res.Type)
	assert.Len(t, res.Data, 2)
}

func TestListClassesPaginates(t *testing.T) {
	cmsServer, e := newTestServer(t, testConfig())
	cmsServer.JSON("/api/classes", classesBody)

	rec := do(e, http.MethodGet, "/v1/classes?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var first dtos.ClassListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	require.Len(t, first.Data, 2)
	assert.True(t, first.HasMore)
	assert.Equal(t, int64(3), first.TotalCount)
	require.NotEmpty(t, first.NextCursor)

	rec = do(e, http.MethodGet, "/v1/classes?limit=2&starting_after="+first.NextCursor, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var second dtos.ClassListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	require.Len(t, second.Data, 1)
	assert.Equal(t, int64(3), second.Data[0].ID)
	assert.False(t, second.HasMore)
	assert.Empty(t, second.NextCursor)
}

func TestListClassesRejectsBadInput(t *testing.T) {
	_, e := newTestServer(t, testConfig())

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/v1/classes?starting_after=0OIl", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/v1/classes?level=Expert", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/v1/classes?limit=0", "").Code)
}

func TestGetClass(t *testing.T) {
	cmsServer, e := newTestServer(t, testConfig())
	cmsServer.JSON("/api/classes", classesBody)

	rec := do(e, http.MethodGet, "/v1/classes/salsa-cubana", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var class models.DanceClass
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &class))
	assert.Equal(t, int64(1), class.ID)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/v1/classes/tango", "").Code)
}

func TestListEventsSplitsByDate(t *testing.T) {
	cmsServer, e := newTestServer(t, testConfig())
	cmsServer.JSON("/api/events", `{"data":[
		{"id":1,"title":"Old Party","date":"2000-01-01","category":"Party"},
		{"id":2,"title":"Future Workshop","date":"2999-01-01T10:00:00Z","category":"Workshop"},
		{"id":3,"title":"Near Future","date":"2998-01-01","category":"Party"}
	]}`)

	rec := do(e, http.MethodGet, "/v1/events", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dtos.EventListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Upcoming, 2)
	assert.Equal(t, "Near Future", res.Upcoming[0].Title)
	assert.Equal(t, "Future Workshop", res.Upcoming[1].Title)
	require.Len(t, res.Past, 1)
	assert.Equal(t, "Old Party", res.Past[0].Title)
	assert.Equal(t, []string{"Party", "Workshop"}, res.Categories)
	assert.Equal(t, "all", res.Category)

	rec = do(e, http.MethodGet, "/v1/events?category=work", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Workshop", res.Category)
	assert.Len(t, res.Upcoming, 1)
	assert.Empty(t, res.Past)
}

func TestDetailNotFound(t *testing.T) {
	cmsServer, e := newTestServer(t, testConfig())
	cmsServer.JSON("/api/events", `{"data":[]}`)
	cmsServer.JSON("/api/instructors", `{"data":[]}`)
	cmsServer.JSON("/api/locations", `{"data":[]}`)
	cmsServer.JSON("/api/blog-posts", `{"data":[]}`)

	for _, target := range []string{"/v1/events/x", "/v1/instructors/x", "/v1/locations/x", "/v1/blog-posts/x"} {
		assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, target, "").Code, target)
	}
}

func TestFreshOnlyFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/services?fresh=1", nil)
	assert.True(t, wantsFresh(req))

	req = httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	assert.False(t, wantsFresh(req))

	req = httptest.NewRequest(http.MethodGet, "/v1/services?fresh=no", nil)
	assert.False(t, wantsFresh(req))

	e := echo.New()
	var fresh bool
	handler := Freshness()(func(c echo.Context) error {
		fresh = cms.IsFresh(c.Request().Context())
		return nil
	})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/?fresh=true", nil), httptest.NewRecorder())
	require.NoError(t, handler(c))
	assert.True(t, fresh)

	reload := httptest.NewRequest(http.MethodGet, "/", nil)
	reload.Header.Set("Cache-Control", "no-cache")
	require.NoError(t, handler(e.NewContext(reload, httptest.NewRecorder())))
	assert.False(t, fresh)
}

func TestGetEventByID(t *testing.T) {
	cmsServer, e := newTestServer(t, testConfig())
	cmsServer.JSON("/api/events", `{"data":[{"id":2,"title":"Gala","slug":"gala-2025"}]}`)
	cmsServer.JSON("/api/events/7", `{"data":{"id":7,"title":"Private Workshop"}}`)

	rec := do(e, http.MethodGet, "/v1/events/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var event models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &event))
	assert.Equal(t, "Gala", event.Title)
	assert.Equal(t, "gala-2025", event.URLSlug)

	rec = do(e, http.MethodGet, "/v1/events/7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &event))
	assert.Equal(t, "Private Workshop", event.Title)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/v1/events/99", "").Code)
}

func TestListAvailableCourses(t *testing.T) {
	cmsServer, e := newTestServer(t, testConfig())
	cmsServer.JSON("/api/classes", openCoursesBody)

	rec := do(e, http.MethodGet, "/v1/classes/available", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var courses []models.AvailableCourse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
	require.Len(t, courses, 2)
	assert.Equal(t, int64(3), courses[0].ID)
	assert.Equal(t, int64(4), courses[1].ID)
}

func registrationBody(city string) string {
	return `{
		"name":"Pop",
		"firstName":"Ana",
		"age":25,
		"phone":"0740123456",
		"email":"ana@example.com",
		"city":"` + city + `",
		"courseType":"3",
		"howDidYouFindUs":"Instagram",
		"gdprConsent":true
	}`
}

const openCoursesBody = `{"data":[
	{"id":2,"title":"Closed","registrationEnabled":false,"waitlistEnabled":false},
	{"id":3,"title":"Bachata","registrationEnabled":true,"availableSpots":5},
	{"id":4,"title":"Tango","registrationEnabled":false,"waitlistEnabled":true}
]}`

func registrationPosts(requests []cmstest.Request) []cmstest.Request {
	var posts []cmstest.Request
	for _, r := range requests {
		if r.Path == cms.CourseRegistrationsPath {
			posts = append(posts, r)
		}
	}
	return posts
}

func TestCreateRegistration(t *testing.T) {
	cmsServer, e := newTestServer(t, testConfig())
	cmsServer.JSON("/api/classes", openCoursesBody)
	cmsServer.JSON(cms.CourseRegistrationsPath, `{"data":{"id":1}}`)

	rec := do(e, http.MethodPost, "/v1/registrations", registrationBody("Suceava"))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"status":"received"}`, rec.Body.String())

	posts := registrationPosts(cmsServer.Requests())
	require.Len(t, posts, 1)
	assert.Contains(t, string(posts[0].Body), `"connect":[{"id":3}]`)
}

func TestCreateRegistrationRejectsClosedCourse(t *testing.T) {
	cmsServer, e := newTestServer(t, testConfig())
	cmsServer.JSON("/api/classes", openCoursesBody)
	cmsServer.JSON(cms.CourseRegistrationsPath, `{"data":{"id":1}}`)

	for _, course := range []string{"2", "99"} {
		body := strings.Replace(registrationBody("Suceava"), `"courseType":"3"`, `"courseType":"`+course+`"`, 1)
		assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/v1/registrations", body).Code, course)
	}
	assert.Empty(t, registrationPosts(cmsServer.Requests()))
}

func TestCreateRegistrationTrimsBeforeValidation(t *testing.T) {
	cmsServer, e := newTestServer(t, testConfig())

	body := strings.Replace(registrationBody("Suceava"), `"name":"Pop"`, `"name":"  a "`, 1)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/v1/registrations", body).Code)

	body = strings.Replace(registrationBody("Suceava"), `"courseType":"3"`, `"courseType":"-3"`, 1)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/v1/registrations", body).Code)

	assert.Empty(t, cmsServer.Requests())
}

func TestCreateRegistrationValidation(t *testing.T) {
	cmsServer, e := newTestServer(t, testConfig())

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/v1/registrations", registrationBody("Iași")).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/v1/registrations", `{"name":"P","age":12}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/v1/registrations", `{"age":"x"`).Code)
	assert.Empty(t, cmsServer.Requests())
}

func TestCreateContactStatusMapping(t *testing.T) {
	body := `{"name":"Ana","email":"ana@example.com","message":"Salut"}`

	cmsServer, e := newTestServer(t, testConfig())
	cmsServer.JSON(cms.ContactSubmissionsPath, `{"data":{"id":1}}`)
	assert.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/v1/contact", body).Code)

	cmsServer.Handle(cms.ContactSubmissionsPath, http.StatusBadRequest, `{}`)
	assert.Equal(t, http.StatusBadGateway, do(e, http.MethodPost, "/v1/contact", body).Code)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/v1/contact", `{"name":"Ana","email":"nope","message":"x"}`).Code)
}

func TestCreateContactWithoutCMS(t *testing.T) {
	cmsServer := cmstest.NewServer()
	defer cmsServer.Close()

	c := cmsServer.Container(testConfig())
	c.CMS = cms.NewClient(cms.Options{})
	e := NewServer(c, services.NewContentService(c), services.NewSubmissionService(c))

	rec := do(e, http.MethodPost, "/v1/contact", `{"name":"Ana","email":"ana@example.com","message":"Salut"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRevalidate(t *testing.T) {
	_, e := newTestServer(t, testConfig())

	assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodPost, "/v1/revalidate", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodPost, "/v1/revalidate", "", "X-Revalidate-Secret", "wrong").Code)

	rec := do(e, http.MethodPost, "/v1/revalidate", `{"collections":["events"]}`, "X-Revalidate-Secret", "letmein")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"collections":["events"]}`, rec.Body.String())

	rec = do(e, http.MethodPost, "/v1/revalidate", "", "X-Revalidate-Secret", "letmein")
	require.Equal(t, http.StatusAccepted, rec.Code)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/v1/revalidate", `{"collections":["nope"]}`, "X-Revalidate-Secret", "letmein").Code)
}

func TestRevalidateDisabledWithoutSecret(t *testing.T) {
	cfg := testConfig()
	cfg.RevalidateSecret = ""
	_, e := newTestServer(t, cfg)

	rec := do(e, http.MethodPost, "/v1/revalidate", "", "X-Revalidate-Secret", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
