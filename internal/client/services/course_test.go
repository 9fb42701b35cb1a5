package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/models"
)

// recorder captures the last request routed through the test server.
type recorder struct {
	method string
	path   string
	query  string
}

func newCourseFixture(t *testing.T, body string) (*CourseService, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := api.New(api.Config{BaseURL: srv.URL, BasePath: "/api"})
	return NewCourseService(client), rec
}

func TestCourseFilters_Encode(t *testing.T) {
	tests := []struct {
		name    string
		filters *CourseFilters
		want    string
	}{
		{"nil filters", nil, ""},
		{"zero filters", &CourseFilters{}, ""},
		{
			"search and paging",
			&CourseFilters{Search: "robot arms", Page: 2, Limit: 10},
			"?limit=10&page=2&search=robot+arms",
		},
		{
			"price range and level",
			&CourseFilters{Level: models.LevelBeginner, MinPrice: 9.5, MaxPrice: 100},
			"?level=BEGINNER&maxPrice=100&minPrice=9.5",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filters.encode())
		})
	}
}

func TestCourses_ListUnwrapsPaginatedEnvelope(t *testing.T) {
	svc, rec := newCourseFixture(t, `{"courses":[{"id":"c1","title":"Robots 101"}],"pagination":{"page":1,"limit":10,"total":1,"totalPages":1}}`)

	courses, err := svc.List(context.Background(), &CourseFilters{Search: "robots"})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "c1", courses[0].ID)

	assert.Equal(t, "/api/courses", rec.path)
	assert.Equal(t, "search=robots", rec.query)
}

func TestCourses_Get(t *testing.T) {
	svc, rec := newCourseFixture(t, `{"id":"c1","title":"Robots 101"}`)

	course, err := svc.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Robots 101", course.Title)
	assert.Equal(t, "/api/courses/c1", rec.path)
	assert.Equal(t, http.MethodGet, rec.method)
}

func TestCourses_Enroll(t *testing.T) {
	svc, rec := newCourseFixture(t, `{"message":"Enrolled","enrollment":{"id":"e1","courseId":"c1"}}`)

	res, err := svc.Enroll(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Enrolled", res.Message)
	assert.Equal(t, "/api/courses/c1/enroll", rec.path)
	assert.Equal(t, http.MethodPost, rec.method)
}

func TestCourses_Enrolled(t *testing.T) {
	svc, rec := newCourseFixture(t, `[{"id":"c1"},{"id":"c2"}]`)

	courses, err := svc.Enrolled(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Equal(t, "/api/users/enrolled-courses", rec.path)
}

func TestCourses_AccessLinks(t *testing.T) {
	svc, rec := newCourseFixture(t, `[{"id":"l1","token":"abc","isUsed":false}]`)

	links, err := svc.AccessLinks(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "abc", links[0].Token)
	assert.Equal(t, "/api/courses/c1/access-links", rec.path)
}

func TestCourses_Delete(t *testing.T) {
	svc, rec := newCourseFixture(t, `{"message":"Course deleted"}`)

	msg, err := svc.Delete(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Course deleted", msg.Message)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/api/courses/c1", rec.path)
}
