package constants

type MenuItem struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Path    string `json:"path"`
	Section string `json:"section"`
	Group   string `json:"group,omitempty"`
}

// Menu mirrors the dashboard sidebar. Catalog screens are gated by the Users section.
var Menu = []MenuItem{
	{Key: "users", Label: "Users", Path: "/users", Section: SectionUsers},
	{Key: "contacts", Label: "Contacts", Path: "/contact", Section: SectionContact, Group: "Contact"},
	{Key: "contact-followup", Label: "Contact Follow Up", Path: "/contact-followup", Section: SectionContact, Group: "Contact"},
	{Key: "softwares", Label: "Softwares", Path: "/software", Section: SectionUsers},
	{Key: "mentors", Label: "Mentor Master", Path: "/mentor", Section: SectionUsers},
	{Key: "placements", Label: "Placement Partners", Path: "/placement", Section: SectionUsers},
	{Key: "careers", Label: "Career Options", Path: "/career", Section: SectionUsers},
	{Key: "parent-courses", Label: "Parent Courses", Path: "/parentCourse", Section: SectionUsers},
	{Key: "courses", Label: "Courses", Path: "/course", Section: SectionUsers},
	{Key: "demos", Label: "Demo Master", Path: "/demo-master", Section: SectionUsers},
	{Key: "testimonials", Label: "Testimonials", Path: "/testimonial", Section: SectionUsers},
	{Key: "blogs", Label: "Blogs", Path: "/blog", Section: SectionUsers},
	{Key: "faqs", Label: "FAQs", Path: "/faq", Section: SectionFAQs},
	{Key: "seos", Label: "SEOs", Path: "/seo-friendly", Section: SectionSeo},
}
