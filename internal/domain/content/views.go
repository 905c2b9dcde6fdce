package content

// SiteContext is attached to every public page
type SiteContext struct {
	PortfolioName string                   `json:"portfolio_name"`
	PersonalInfo  *PersonalInfo            `json:"personal_info,omitempty"`
	FooterLinks   map[string][]*FooterLink `json:"footer_links"`
	SEO           *SEOSettings             `json:"seo,omitempty"`
}

// HomeView is the landing page
type HomeView struct {
	Site                 SiteContext    `json:"site"`
	FeaturedProjects     []*Project     `json:"featured_projects"`
	FeaturedSkills       []*Skill       `json:"featured_skills"`
	FeaturedTestimonials []*Testimonial `json:"featured_testimonials"`
	FeaturedPosts        []*BlogPost    `json:"featured_posts"`
	LatestPosts          []*BlogPost    `json:"latest_posts"`
}

// AboutView is the about page
type AboutView struct {
	Site           SiteContext       `json:"site"`
	SkillGroups    []SkillGroup      `json:"skill_groups"`
	Career         []*CareerTimeline `json:"career"`
	Education      []*Education      `json:"education"`
	Certifications []*Certification  `json:"certifications"`
	Awards         []*Award          `json:"awards"`
	Testimonials   []*Testimonial    `json:"testimonials"`
}

// ProjectListView is one page of the projects listing
type ProjectListView struct {
	Site         SiteContext     `json:"site"`
	Projects     *Page[*Project] `json:"projects"`
	Technologies []*Skill        `json:"technologies"`
	Filter       ProjectFilter   `json:"filter"`
}

// ProjectDetailView is a single project with related work
type ProjectDetailView struct {
	Site    SiteContext `json:"site"`
	Project *Project    `json:"project"`
	Related []*Project  `json:"related"`
}

// BlogListView is one page of published posts
type BlogListView struct {
	Site          SiteContext      `json:"site"`
	Posts         *Page[*BlogPost] `json:"posts"`
	FeaturedPosts []*BlogPost      `json:"featured_posts"`
	AllTags       []string         `json:"all_tags"`
	Filter        BlogFilter       `json:"filter"`
}

// BlogDetailView is a single published post with related posts
type BlogDetailView struct {
	Site    SiteContext `json:"site"`
	Post    *BlogPost   `json:"post"`
	Related []*BlogPost `json:"related"`
}

// ContactView carries the owner's contact details
type ContactView struct {
	Site SiteContext `json:"site"`
}
