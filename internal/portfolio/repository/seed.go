package repository

import (
	"context"
	"fmt"

	"github.com/amaradesign/portfolio-backend/internal/portfolio/domain"
)

// demoProjects mirrors the sample entries the site launched with. Only used
// when demo seeding is enabled in config.
var demoProjects = []domain.InsertProject{
	{
		Title:        "5G Edge Ecosystem",
		Description:  "How I designed Verizon's B2B ecosystem to achieve an 18% conversion rate lift through innovative UX strategies and dynamic landing pages.",
		Challenge:    "While Verizon's cutting-edge 5G edge solutions enable significant production scaling and resource optimization for mid-to-large-sized businesses, there was a crucial gap in monetizing these solutions.",
		Solution:     "Collaborated with stakeholders to design dynamic landing pages that educate and inspire businesses about 5G Edge solutions benefits.",
		Impact:       "Achieved 18% lift in conversion rate through strategic UX improvements and clear value proposition communication.",
		Image:        "https://picsum.photos/800/600?random=0",
		Featured:     true,
		Order:        0,
		CaseStudyURL: "/case-studies/verizon",
	},
	{
		Title:       "E-commerce Redesign",
		Description: "A complete overhaul of an online retail platform",
		Challenge:   "The existing platform had poor conversion rates and user engagement",
		Solution:    "Implemented a user-centered design approach with improved navigation",
		Impact:      "Increased conversion rates by 45% and user engagement by 60%",
		Image:       "https://picsum.photos/800/600?random=1",
		Featured:    true,
		Order:       1,
	},
	{
		Title:       "Healthcare App",
		Description: "Mobile application for patient care management",
		Challenge:   "Complex medical data needed to be presented in an accessible way",
		Solution:    "Created an intuitive interface with clear data visualization",
		Impact:      "Reduced patient data access time by 75%",
		Image:       "https://picsum.photos/800/600?random=2",
		Featured:    true,
		Order:       2,
	},
	{
		Title:       "Financial Dashboard",
		Description: "Real-time financial data visualization platform",
		Challenge:   "Large amounts of data needed to be displayed effectively",
		Solution:    "Developed a modular dashboard with customizable widgets",
		Impact:      "Improved decision-making speed by 40%",
		Image:       "https://picsum.photos/800/600?random=3",
		Order:       3,
	},
}

// SeedDemoProjects loads the sample portfolio into a fresh store.
func SeedDemoProjects(ctx context.Context, store *MemStore) error {
	for _, in := range demoProjects {
		if _, err := store.CreateProject(ctx, in); err != nil {
			return fmt.Errorf("seed project %q: %w", in.Title, err)
		}
	}
	return nil
}
