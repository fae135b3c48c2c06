package dto

import (
	"strings"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/catalog/courses/model"
	helper "coursedesk_backend/internals/helpers"
)

func init() {
	helper.RegisterChoices("course_duration", constants.CourseDurations)
	helper.RegisterChoices("course_difficulty", constants.CourseDifficulties)
	helper.RegisterChoices("course_mode", constants.CourseModes)
}

// CourseRequest is the full course form. The thumbnail may be a data URL or an
// existing URL; on update an empty thumbnail keeps the stored one.
type CourseRequest struct {
	CourseName               string `json:"course_name" validate:"required,max=200"`
	CourseSlug               string `json:"course_slug" validate:"omitempty,max=220"`
	CourseDescription        string `json:"course_description" validate:"required"`
	CourseThumbnail          string `json:"course_thumbnail"`
	CourseDuration           string `json:"course_duration" validate:"required,course_duration"`
	CourseNextBatchStartDate string `json:"course_next_batch_start_date" validate:"omitempty,datetime=2006-01-02"`
	CourseDifficulty         string `json:"course_difficulty" validate:"required,course_difficulty"`
	CourseMode               string `json:"course_mode" validate:"required,course_mode"`
	CourseAssignments        string `json:"course_assignments" validate:"omitempty,max=50"`
	CourseHiredBy            string `json:"course_hired_by" validate:"omitempty,max=50"`
	CourseAvgCTC             string `json:"course_avg_ctc" validate:"omitempty,max=50"`

	CourseThisCourseIsFor []model.CourseIsFor   `json:"course_this_course_is_for" validate:"min=1"`
	CourseSoftwares       []string              `json:"course_softwares" validate:"min=1"`
	CourseMentors         []string              `json:"course_mentors" validate:"min=1"`
	CourseModules         []model.CourseModule  `json:"course_modules" validate:"min=1"`
	CourseSections        []model.CourseSection `json:"course_sections"`

	CourseIsDemoAvailable bool  `json:"course_is_demo_available"`
	CourseIsClubCourse    bool  `json:"course_is_club_course"`
	CourseEnabled         *bool `json:"course_enabled"`

	CourseParentCourseID string `json:"course_parent_course_id" validate:"required,uuid"`
}

// Normalize trims the form and cleans the builder lists before validation.
func (r *CourseRequest) Normalize() {
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.CourseSlug = strings.TrimSpace(r.CourseSlug)
	r.CourseDescription = strings.TrimSpace(r.CourseDescription)
	r.CourseThumbnail = strings.TrimSpace(r.CourseThumbnail)
	r.CourseDuration = strings.TrimSpace(r.CourseDuration)
	r.CourseNextBatchStartDate = strings.TrimSpace(r.CourseNextBatchStartDate)
	r.CourseDifficulty = strings.TrimSpace(r.CourseDifficulty)
	r.CourseMode = strings.TrimSpace(r.CourseMode)
	r.CourseAssignments = strings.TrimSpace(r.CourseAssignments)
	r.CourseHiredBy = strings.TrimSpace(r.CourseHiredBy)
	r.CourseAvgCTC = strings.TrimSpace(r.CourseAvgCTC)
	r.CourseParentCourseID = strings.TrimSpace(r.CourseParentCourseID)

	r.CourseThisCourseIsFor = NormalizeIsFor(r.CourseThisCourseIsFor)
	r.CourseSoftwares = UniqueNames(r.CourseSoftwares)
	r.CourseMentors = UniqueNames(r.CourseMentors)
	r.CourseModules = NormalizeModules(r.CourseModules)
	r.CourseSections = NormalizeSections(r.CourseSections)
}

func (r *CourseRequest) SlugSource() string {
	if r.CourseSlug != "" {
		return r.CourseSlug
	}
	return r.CourseName
}

// Apply copies everything except id, slug, thumbnail, parent and creator onto m.
func (r *CourseRequest) Apply(m *model.CourseModel) {
	m.CourseName = r.CourseName
	m.CourseDescription = r.CourseDescription
	m.CourseDuration = r.CourseDuration
	m.CourseNextBatchStartDate = r.CourseNextBatchStartDate
	m.CourseDifficulty = r.CourseDifficulty
	m.CourseMode = r.CourseMode
	m.CourseAssignments = r.CourseAssignments
	m.CourseHiredBy = r.CourseHiredBy
	m.CourseAvgCTC = r.CourseAvgCTC
	m.CourseThisCourseIsFor = r.CourseThisCourseIsFor
	m.CourseSoftwares = r.CourseSoftwares
	m.CourseMentors = r.CourseMentors
	m.CourseModules = r.CourseModules
	m.CourseSections = r.CourseSections
	m.CourseIsDemoAvailable = r.CourseIsDemoAvailable
	m.CourseIsClubCourse = r.CourseIsClubCourse
	if r.CourseEnabled != nil {
		m.CourseEnabled = *r.CourseEnabled
	}
}

type SetEnabledRequest struct {
	CourseEnabled *bool `json:"course_enabled" validate:"required"`
}

type ReorderSectionsRequest struct {
	From *int `json:"from" validate:"required"`
	To   *int `json:"to" validate:"required"`
}

// CourseListItem is the light row used by listings.
type CourseListItem struct {
	CourseID             string `json:"course_id"`
	CourseName           string `json:"course_name"`
	CourseSlug           string `json:"course_slug"`
	CourseThumbnail      string `json:"course_thumbnail"`
	CourseDuration       string `json:"course_duration"`
	CourseDifficulty     string `json:"course_difficulty"`
	CourseMode           string `json:"course_mode"`
	CourseEnabled        bool   `json:"course_enabled"`
	CourseParentCourseID string `json:"course_parent_course_id"`
	CourseModuleCount    int    `json:"course_module_count"`
	CourseSectionCount   int    `json:"course_section_count"`
}

func ToCourseListItem(m model.CourseModel) CourseListItem {
	return CourseListItem{
		CourseID:             m.CourseID.String(),
		CourseName:           m.CourseName,
		CourseSlug:           m.CourseSlug,
		CourseThumbnail:      m.CourseThumbnail,
		CourseDuration:       m.CourseDuration,
		CourseDifficulty:     m.CourseDifficulty,
		CourseMode:           m.CourseMode,
		CourseEnabled:        m.CourseEnabled,
		CourseParentCourseID: m.CourseParentCourseID.String(),
		CourseModuleCount:    len(m.CourseModules),
		CourseSectionCount:   len(m.CourseSections),
	}
}
