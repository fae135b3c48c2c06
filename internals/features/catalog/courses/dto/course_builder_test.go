package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedesk_backend/internals/features/catalog/courses/model"
)

func TestNormalizeModulesDropsIncompleteAndRenumbers(t *testing.T) {
	got := NormalizeModules([]model.CourseModule{
		{ID: 7, Title: " Intro ", Description: "Basics"},
		{ID: 8, Title: "No description"},
		{ID: 9, Title: "  ", Description: "No title"},
		{ID: 3, Title: "Advanced", Description: " Deep dive "},
	})
	assert.Equal(t, []model.CourseModule{
		{ID: 1, Title: "Intro", Description: "Basics"},
		{ID: 2, Title: "Advanced", Description: "Deep dive"},
	}, got)
}

func TestNormalizeIsFor(t *testing.T) {
	got := NormalizeIsFor([]model.CourseIsFor{{ID: 5, Description: ""}, {ID: 2, Description: " Students "}})
	assert.Equal(t, []model.CourseIsFor{{ID: 1, Description: "Students"}}, got)
}

func TestNormalizeSections(t *testing.T) {
	got := NormalizeSections([]model.CourseSection{
		{SectionName: "Empty points", Points: []model.SectionPoint{{Title: "only title"}}},
		{SectionName: " ", Points: []model.SectionPoint{{Title: "a", Description: "b"}}},
		{ID: 9, SectionName: " Week 1 ", Points: []model.SectionPoint{
			{ID: 4, Title: "HTML", Description: "Tags"},
			{ID: 5, Title: "", Description: "skip"},
			{ID: 6, Title: "CSS", Description: "Selectors"},
		}},
	})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "Week 1", got[0].SectionName)
	assert.Equal(t, []model.SectionPoint{
		{ID: 1, Title: "HTML", Description: "Tags"},
		{ID: 2, Title: "CSS", Description: "Selectors"},
	}, got[0].Points)
}

func TestUniqueNames(t *testing.T) {
	assert.Equal(t, []string{"Figma", "VS Code"}, UniqueNames([]string{" Figma", "", "figma", "VS Code ", "FIGMA"}))
	assert.Empty(t, UniqueNames(nil))
}

func TestMoveSection(t *testing.T) {
	sections := []model.CourseSection{
		{ID: 1, SectionName: "A"},
		{ID: 2, SectionName: "B"},
		{ID: 3, SectionName: "C"},
	}

	got, err := MoveSection(sections, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, names(got))
	assert.Equal(t, []int{1, 2, 3}, ids(got))

	got, err = MoveSection(sections, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, names(got))

	// input is not modified
	assert.Equal(t, []string{"A", "B", "C"}, names(sections))

	got, err = MoveSection(sections, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names(got))

	_, err = MoveSection(sections, 3, 0)
	assert.Error(t, err)
	_, err = MoveSection(sections, 0, -1)
	assert.Error(t, err)
	_, err = MoveSection(nil, 0, 0)
	assert.Error(t, err)
}

func names(s []model.CourseSection) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[i].SectionName
	}
	return out
}

func ids(s []model.CourseSection) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[i].ID
	}
	return out
}
