package model

// Default returns the document every new session starts from. The values
// double as the fixture for tests: the summary clears the advisor's length
// rule, linkedin is set, one experience entry exists, and only two skills
// are present so the "add more skills" tip fires.
func Default() Document {
	return Document{
		PersonalInfo: PersonalInfo{
			FullName: "John Doe",
			Email:    "john.doe@example.com",
			Phone:    "+62 812 3456 7890",
			Address:  "Jakarta, Indonesia",
			Summary:  "Dedicated software engineer with over 5 years of experience in building scalable web applications. Passionate about clean code and user-centric design.",
			Title:    "Full Stack Developer",
			LinkedIn: "linkedin.com/in/johndoe",
			Website:  "johndoe.com",
		},
		Experience: []Experience{
			{
				Company:     "Tech Solutions Inc.",
				Position:    "Senior Developer",
				StartDate:   "Jan 2020",
				EndDate:     "Present",
				Description: "Led the development of a high-traffic e-commerce platform using React and Node.js. Optimized performance by 40%.",
			},
		},
		Education: []Education{
			{
				School:      "University of Indonesia",
				Degree:      "Computer Science",
				StartDate:   "2015",
				EndDate:     "2019",
				Description: "GPA: 3.8/4.0. Focused on software engineering and algorithms.",
			},
		},
		Skills: []Skill{
			{Name: "JavaScript", Level: SkillExpert},
			{Name: "React", Level: SkillExpert},
		},
		Projects:       []Project{},
		Certifications: []Certification{},
		Languages: []Language{
			{Name: "English", Level: "Professional Working Proficiency"},
			{Name: "Indonesian", Level: "Native"},
		},
		ShowPortfolio:      false,
		ShowCertifications: false,
		ShowLanguages:      true,
		ShowQRCode:         false,
		AccentColor:        "#6366f1",
		Template:           TemplateModernATS,
		HeaderFont:         "'Outfit', sans-serif",
		BodyFont:           "'Inter', sans-serif",
		Lang:               LangEN,
		IsFreshGraduate:    false,
		CoverLetter: CoverLetter{
			Show:           false,
			RecipientName:  "Hiring Manager",
			RecipientTitle: "HR Director",
			CompanyName:    "Target Company Name",
			CompanyAddress: "Company Street Address, City",
			Body:           "I am writing to express my strong interest in the [Position Name] position at [Company Name]. With my background in [Your Field] and my experience in [One Key Accomplishment], I am confident that I can contribute effectively to your team...",
		},
	}
}
