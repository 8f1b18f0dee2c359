package types

import "github.com/google/uuid"

// Seed values used when no persisted document exists and for backfill.
const (
	DefaultAdminPassword    = "admin123"
	DefaultSecurityQuestion = "What is the default project name?"
	DefaultSecurityAnswer   = "DevFolio"
)

// NewID returns a unique, time-ordered identifier for a new list entry.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// DefaultTheme returns the stock dark theme.
func DefaultTheme() Theme {
	return Theme{
		PrimaryColor:    "#0ea5e9",
		BackgroundColor: "#0f172a",
		CardColor:       "#1e293b",
		TextColor:       "#f8fafc",
	}
}

// DefaultDocument returns a freshly seeded document with sample content.
func DefaultDocument() *Document {
	return &Document{
		Profile:          defaultProfile(),
		Projects:         defaultProjects(),
		Skills:           defaultSkills(),
		Messages:         []ContactMessage{},
		IsAuthenticated:  false,
		AdminPassword:    DefaultAdminPassword,
		SecurityQuestion: DefaultSecurityQuestion,
		SecurityAnswer:   DefaultSecurityAnswer,
		Theme:            DefaultTheme(),
	}
}

func defaultProfile() Profile {
	return Profile{
		Name:         "Alex Chen",
		Title:        "Senior Data Analyst",
		Bio:          "I transform complex raw data into actionable strategic insights. Expert in SQL, Python, and Tableau with a passion for storytelling through data visualization to drive business growth.",
		Email:        "alex.data@example.com",
		Location:     "New York, NY",
		ContactIntro: DefaultContactIntro,
		Education: []Education{
			{ID: "1", Degree: "MS Data Science", Institution: "Tech University", Year: "2019", Grade: "3.9 GPA"},
			{ID: "2", Degree: "BS Statistics", Institution: "State College", Year: "2017", Grade: "Magna Cum Laude"},
		},
		Experience: []Experience{
			{ID: "1", Role: "Senior Data Analyst", Company: "FinTech Corp", Period: "2021-Present", Description: "Spearheaded the migration to a modern data warehouse and built executive dashboards tracking $50M in revenue."},
			{ID: "2", Role: "Data Analyst", Company: "Retail Global", Period: "2019-2021", Description: "Analyzed customer behavior patterns to optimize marketing spend, resulting in a 15% increase in ROI."},
		},
	}
}

func defaultProjects() []Project {
	return []Project{
		{
			ID:           "1",
			Title:        "Customer Churn Prediction",
			Description:  "Developed a machine learning model to predict high-risk customers, allowing the retention team to intervene proactively. Reduced churn by 8% in Q3.",
			Technologies: []string{"Python", "Scikit-Learn", "Pandas", "Jupyter"},
			ImageURL:     "https://picsum.photos/id/1/800/600",
			Link:         "https://example.com",
			GitHub:       "https://github.com",
			Featured:     true,
		},
		{
			ID:           "2",
			Title:        "Global Sales Dashboard",
			Description:  "An interactive Tableau dashboard aggregating real-time sales data from 12 regions. Features drill-down capabilities for granular performance analysis.",
			Technologies: []string{"Tableau", "SQL", "Snowflake", "Excel"},
			ImageURL:     "https://picsum.photos/id/20/800/600",
			Link:         "https://example.com",
			GitHub:       "https://github.com",
			Featured:     true,
		},
		{
			ID:           "3",
			Title:        "Marketing Campaign Analysis",
			Description:  "Deep dive SQL analysis into multi-channel marketing attribution. Identified underperforming channels and reallocated budget to high-converting touchpoints.",
			Technologies: []string{"SQL", "BigQuery", "Power BI", "Python"},
			ImageURL:     "https://picsum.photos/id/26/800/600",
			Link:         "https://example.com",
			GitHub:       "https://github.com",
			Featured:     false,
		},
	}
}

func defaultSkills() []Skill {
	return []Skill{
		{ID: "1", Name: "SQL", Category: CategoryTechnical, Level: 95},
		{ID: "2", Name: "Python", Category: CategoryTechnical, Level: 90},
		{ID: "3", Name: "Tableau", Category: CategoryTools, Level: 90},
		{ID: "4", Name: "Power BI", Category: CategoryTools, Level: 85},
		{ID: "5", Name: "Statistical Analysis", Category: CategoryTechnical, Level: 85},
		{ID: "6", Name: "Data Cleaning", Category: CategoryTechnical, Level: 90},
		{ID: "7", Name: "Strategic Planning", Category: CategorySoft, Level: 80},
	}
}
