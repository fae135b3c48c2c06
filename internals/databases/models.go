package database

import (
	"gorm.io/gorm"

	careerModel "coursedesk_backend/internals/features/catalog/careers/model"
	courseModel "coursedesk_backend/internals/features/catalog/courses/model"
	demoModel "coursedesk_backend/internals/features/catalog/demos/model"
	mentorModel "coursedesk_backend/internals/features/catalog/mentors/model"
	parentCourseModel "coursedesk_backend/internals/features/catalog/parent_courses/model"
	softwareModel "coursedesk_backend/internals/features/catalog/softwares/model"
	contactModel "coursedesk_backend/internals/features/contacts/contacts/model"
	followupModel "coursedesk_backend/internals/features/contacts/followups/model"
	statusModel "coursedesk_backend/internals/features/contacts/statuses/model"
	blogModel "coursedesk_backend/internals/features/marketing/blogs/model"
	faqModel "coursedesk_backend/internals/features/marketing/faqs/model"
	placementModel "coursedesk_backend/internals/features/marketing/placements/model"
	seoModel "coursedesk_backend/internals/features/marketing/seos/model"
	testimonialModel "coursedesk_backend/internals/features/marketing/testimonials/model"
	authModel "coursedesk_backend/internals/features/users/auth/model"
	userModel "coursedesk_backend/internals/features/users/user/model"
)

// Models lists every table owned by the service, parents before children.
func Models() []interface{} {
	return []interface{}{
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklist{},

		&parentCourseModel.ParentCourseModel{},
		&courseModel.CourseModel{},
		&softwareModel.SoftwareModel{},
		&mentorModel.MentorModel{},
		&careerModel.CareerModel{},
		&demoModel.DemoModel{},

		&placementModel.PlacementModel{},
		&testimonialModel.TestimonialModel{},
		&blogModel.BlogModel{},
		&faqModel.FAQModel{},
		&seoModel.SeoModel{},

		&contactModel.ContactModel{},
		&statusModel.StatusModel{},
		&followupModel.FollowupModel{},
	}
}

// AutoMigrate creates or updates the schema from the GORM models.
// Production schemas are managed by cmd/migrate.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
