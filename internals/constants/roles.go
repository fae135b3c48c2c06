package constants

import "fmt"

// Permission sections. A user's roles list carries one entry per section.
const (
	SectionUsers       = "Users"
	SectionBanner      = "Banner"
	SectionCategory    = "Category"
	SectionService     = "Service"
	SectionTestimonial = "Testimonial"
	SectionFAQs        = "FAQs"
	SectionBlogs       = "Blogs"
	SectionContact     = "Contact"
	SectionSurvey      = "Survey"
	SectionSeo         = "Seo"
)

// Sections is the canonical order of the roles list.
var Sections = []string{
	SectionUsers,
	SectionBanner,
	SectionCategory,
	SectionService,
	SectionTestimonial,
	SectionFAQs,
	SectionBlogs,
	SectionContact,
	SectionSurvey,
	SectionSeo,
}

func IsKnownSection(name string) bool {
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

const ErrSectionForbidden = "❌ You do not have access to the %s section."

func SectionError(section string) string {
	return fmt.Sprintf(ErrSectionForbidden, section)
}
