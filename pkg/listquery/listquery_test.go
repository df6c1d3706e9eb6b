package listquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type course struct {
	Name    string
	Credits int
}

var courseSchema = Schema[course]{
	Match: func(c course, term string) bool {
		return ContainsFold(term, c.Name)
	},
	Sort: map[string]func(a, b course) bool{
		"name":    func(a, b course) bool { return a.Name < b.Name },
		"credits": func(a, b course) bool { return a.Credits < b.Credits },
	},
}

func sampleCourses() []course {
	return []course{
		{Name: "Databases", Credits: 4},
		{Name: "Algorithms", Credits: 3},
		{Name: "Operating Systems", Credits: 4},
		{Name: "Data Structures", Credits: 3},
	}
}

func TestApplySearch(t *testing.T) {
	out, meta := Apply(sampleCourses(), courseSchema, Options{Search: "data"})
	assert.Nil(t, meta)
	require.Len(t, out, 2)
	assert.Equal(t, "Databases", out[0].Name)
	assert.Equal(t, "Data Structures", out[1].Name)
}

func TestApplySortAscAndDesc(t *testing.T) {
	out, _ := Apply(sampleCourses(), courseSchema, Options{SortBy: "name"})
	assert.Equal(t, "Algorithms", out[0].Name)

	out, _ = Apply(sampleCourses(), courseSchema, Options{SortBy: "name", Order: "desc"})
	assert.Equal(t, "Operating Systems", out[0].Name)
}

func TestApplySortIsStable(t *testing.T) {
	out, _ := Apply(sampleCourses(), courseSchema, Options{SortBy: "credits"})
	require.Len(t, out, 4)
	assert.Equal(t, "Algorithms", out[0].Name)
	assert.Equal(t, "Data Structures", out[1].Name)
}

func TestApplyUnknownSortKeyKeepsOrder(t *testing.T) {
	items := sampleCourses()
	out, _ := Apply(items, courseSchema, Options{SortBy: "semester"})
	assert.Equal(t, items, out)
}

func TestApplyPagination(t *testing.T) {
	out, meta := Apply(sampleCourses(), courseSchema, Options{SortBy: "name", Page: 2, Limit: 3})
	require.NotNil(t, meta)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 2, meta.TotalPages)
	assert.Equal(t, 4, meta.TotalItems)
	require.Len(t, out, 1)
	assert.Equal(t, "Operating Systems", out[0].Name)
}

func TestApplyPageBeyondEnd(t *testing.T) {
	out, meta := Apply(sampleCourses(), courseSchema, Options{Page: 9, Limit: 10})
	require.NotNil(t, meta)
	assert.Empty(t, out)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := sampleCourses()
	Apply(items, courseSchema, Options{Search: "data", SortBy: "name", Order: "desc"})
	assert.Equal(t, sampleCourses(), items)
}
