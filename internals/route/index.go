package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	careerRoutes "coursedesk_backend/internals/features/catalog/careers/route"
	courseRoutes "coursedesk_backend/internals/features/catalog/courses/route"
	demoRoutes "coursedesk_backend/internals/features/catalog/demos/route"
	mentorRoutes "coursedesk_backend/internals/features/catalog/mentors/route"
	parentCourseRoutes "coursedesk_backend/internals/features/catalog/parent_courses/route"
	softwareRoutes "coursedesk_backend/internals/features/catalog/softwares/route"
	contactRoutes "coursedesk_backend/internals/features/contacts/contacts/route"
	followupRoutes "coursedesk_backend/internals/features/contacts/followups/route"
	statusRoutes "coursedesk_backend/internals/features/contacts/statuses/route"
	blogRoutes "coursedesk_backend/internals/features/marketing/blogs/route"
	faqRoutes "coursedesk_backend/internals/features/marketing/faqs/route"
	placementRoutes "coursedesk_backend/internals/features/marketing/placements/route"
	seoRoutes "coursedesk_backend/internals/features/marketing/seos/route"
	testimonialRoutes "coursedesk_backend/internals/features/marketing/testimonials/route"
	authRoutes "coursedesk_backend/internals/features/users/auth/route"
	userRoutes "coursedesk_backend/internals/features/users/user/route"
	"coursedesk_backend/internals/helpers/media"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
	"coursedesk_backend/internals/notifications"
)

var startTime time.Time

// SetupRoutes mounts every feature:
//
//	/api/auth    login, tokens, profile and menu
//	/api/public  what the public site reads, plus the contact form
//	/api/a       the dashboard, JWT required, each feature gated by its menu section
func SetupRoutes(app *fiber.App, db *gorm.DB, mediaSvc *media.Service, mailer notifications.Sender) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Info("Setting up AuthRoutes...")
	authRoutes.AuthRoutes(app, db)

	log.Info("Setting up PUBLIC group...")
	public := app.Group("/api/public")
	parentCourseRoutes.ParentCoursePublicRoutes(public, db)
	courseRoutes.CoursePublicRoutes(public, db, mediaSvc)
	softwareRoutes.SoftwarePublicRoutes(public, db, mediaSvc)
	mentorRoutes.MentorPublicRoutes(public, db, mediaSvc)
	careerRoutes.CareerPublicRoutes(public, db)
	demoRoutes.DemoPublicRoutes(public, db)
	placementRoutes.PlacementPublicRoutes(public, db, mediaSvc)
	testimonialRoutes.TestimonialPublicRoutes(public, db, mediaSvc)
	blogRoutes.BlogPublicRoutes(public, db, mediaSvc)
	faqRoutes.FAQPublicRoutes(public, db)
	seoRoutes.SeoPublicRoutes(public, db)
	contactRoutes.ContactPublicRoutes(public, db, mailer)

	log.Info("Setting up ADMIN group (Auth + section gates)...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))
	userRoutes.UserAdminRoutes(admin, db, mediaSvc, mailer)

	parentCourseRoutes.ParentCourseAdminRoutes(admin, db)
	courseRoutes.CourseAdminRoutes(admin, db, mediaSvc)
	softwareRoutes.SoftwareAdminRoutes(admin, db, mediaSvc)
	mentorRoutes.MentorAdminRoutes(admin, db, mediaSvc)
	careerRoutes.CareerAdminRoutes(admin, db)
	demoRoutes.DemoAdminRoutes(admin, db)

	placementRoutes.PlacementAdminRoutes(admin, db, mediaSvc)
	testimonialRoutes.TestimonialAdminRoutes(admin, db, mediaSvc)
	blogRoutes.BlogAdminRoutes(admin, db, mediaSvc)
	faqRoutes.FAQAdminRoutes(admin, db)
	seoRoutes.SeoAdminRoutes(admin, db)

	contactRoutes.ContactAdminRoutes(admin, db, mailer)
	followupRoutes.FollowupAdminRoutes(admin, db)
	statusRoutes.StatusAdminRoutes(admin, db)

	log.Info("All routes registered")
}
