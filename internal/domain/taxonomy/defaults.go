package taxonomy

// DefaultTables returns the tables the engine ships with. Callers get a fresh copy each time.
func DefaultTables() Tables {
	return Tables{
		Families: []SkillFamily{
			{
				ID:            MachineLearning,
				CoreSkills:    []string{"supervised_learning", "unsupervised_learning", "neural_networks", "model_evaluation", "python"},
				RelatedSkills: []string{"statistics", "linear_algebra", "optimization", "data_preprocessing"},
				Prerequisites: []string{"programming", "mathematics", "statistics"},
				Applications:  []string{"classification", "regression", "clustering", "deep_learning"},
			},
			{
				ID:            WebDevelopment,
				CoreSkills:    []string{"html_css", "javascript", "responsive_design", "api_integration"},
				RelatedSkills: []string{"ui_ux", "version_control", "frameworks", "testing"},
				Prerequisites: []string{"programming_basics", "computer_science"},
				Applications:  []string{"frontend", "full_stack", "web_apps", "user_interfaces"},
			},
			{
				ID:            DatabaseSystems,
				CoreSkills:    []string{"sql", "data_modeling", "normalization", "query_optimization"},
				RelatedSkills: []string{"system_design", "performance_tuning", "backup_recovery", "security"},
				Prerequisites: []string{"programming", "data_structures"},
				Applications:  []string{"data_management", "backend_development", "analytics", "etl"},
			},
			{
				ID:            Algorithms,
				CoreSkills:    []string{"algorithm_design", "complexity_analysis", "data_structures", "optimization"},
				RelatedSkills: []string{"mathematics", "problem_solving", "graph_theory", "dynamic_programming"},
				Prerequisites: []string{"programming", "discrete_mathematics"},
				Applications:  []string{"software_optimization", "competitive_programming", "system_design"},
			},
			{
				ID:            DataScience,
				CoreSkills:    []string{"data_analysis", "statistics", "visualization", "data_preprocessing", "python"},
				RelatedSkills: []string{"machine_learning", "sql", "business_analytics", "statistical_modeling"},
				Prerequisites: []string{"programming", "mathematics"},
				Applications:  []string{"analytics", "reporting", "forecasting", "experimentation"},
			},
			{
				ID:            SoftwareEngineering,
				CoreSkills:    []string{"programming", "object_oriented_design", "testing", "version_control"},
				RelatedSkills: []string{"design_patterns", "api_design", "system_design", "frameworks"},
				Prerequisites: []string{"programming_basics"},
				Applications:  []string{"backend_development", "full_stack", "tooling"},
			},
		},
		CourseMappings: []CourseMapping{
			{
				Institution: "Politecnico Milano",
				Courses: []CourseEntry{
					{Name: "Intelligenza Artificiale", Family: MachineLearning},
					{Name: "Apprendimento Automatico", Family: MachineLearning},
					{Name: "Sistemi di Basi di Dati", Family: DatabaseSystems},
					{Name: "Algoritmi e Strutture Dati", Family: Algorithms},
					{Name: "Sviluppo Web", Family: WebDevelopment},
					{Name: "Ingegneria del Software", Family: SoftwareEngineering},
				},
			},
			{
				Institution: "Bocconi University",
				Courses: []CourseEntry{
					{Name: "Statistical Learning", Family: MachineLearning},
					{Name: "Data Mining", Family: MachineLearning},
					{Name: "Database Management", Family: DatabaseSystems},
					{Name: "Web Programming", Family: WebDevelopment},
					{Name: "Data Science for Business", Family: DataScience},
				},
			},
			{
				Institution: "Università Statale Milano",
				Courses: []CourseEntry{
					{Name: "Artificial Intelligence", Family: MachineLearning},
					{Name: "Machine Learning", Family: MachineLearning},
					{Name: "Database Systems", Family: DatabaseSystems},
					{Name: "Advanced Algorithms", Family: Algorithms},
				},
			},
			{
				Institution: GenericInstitution,
				Courses: []CourseEntry{
					{Name: "Machine Learning", Family: MachineLearning},
					{Name: "Artificial Intelligence", Family: MachineLearning},
					{Name: "AI", Family: MachineLearning},
					{Name: "Statistical Learning", Family: MachineLearning},
					{Name: "Data Mining", Family: MachineLearning},
					{Name: "Computational Intelligence", Family: MachineLearning},
					{Name: "Neural Networks", Family: MachineLearning},
					{Name: "Deep Learning", Family: MachineLearning},

					{Name: "Web Development", Family: WebDevelopment},
					{Name: "Frontend Development", Family: WebDevelopment},
					{Name: "Client-Side Programming", Family: WebDevelopment},
					{Name: "Internet Programming", Family: WebDevelopment},
					{Name: "Web Programming", Family: WebDevelopment},
					{Name: "HTML/CSS/JavaScript", Family: WebDevelopment},

					{Name: "Database Systems", Family: DatabaseSystems},
					{Name: "Database Management", Family: DatabaseSystems},
					{Name: "Data Management", Family: DatabaseSystems},
					{Name: "SQL Programming", Family: DatabaseSystems},
					{Name: "Relational Databases", Family: DatabaseSystems},

					{Name: "Algorithms", Family: Algorithms},
					{Name: "Data Structures", Family: Algorithms},
					{Name: "Algorithm Design", Family: Algorithms},
					{Name: "Advanced Algorithms", Family: Algorithms},
					{Name: "Computational Algorithms", Family: Algorithms},

					{Name: "Data Science", Family: DataScience},
					{Name: "Data Analysis", Family: DataScience},
					{Name: "Applied Statistics", Family: DataScience},

					{Name: "Software Engineering", Family: SoftwareEngineering},
					{Name: "Object-Oriented Programming", Family: SoftwareEngineering},
				},
			},
		},
		Similarities: []SimilarityEdge{
			{From: MachineLearning, To: DataScience, Weight: 0.85},
			{From: WebDevelopment, To: SoftwareEngineering, Weight: 0.65},
			{From: DatabaseSystems, To: DataScience, Weight: 0.40},
		},
		Keywords: []KeywordSet{
			{Family: MachineLearning, Keywords: []string{"machine", "learning", "ml", "artificial", "intelligence", "ai", "neural", "deep", "statistical"}},
			{Family: WebDevelopment, Keywords: []string{"web", "html", "css", "javascript", "frontend", "client"}},
			{Family: DatabaseSystems, Keywords: []string{"database", "db", "sql", "data"}},
			{Family: Algorithms, Keywords: []string{"algorithm", "algorithms", "data structure", "structures"}},
			{Family: DataScience, Keywords: []string{"analytics", "statistics", "visualization", "probability"}},
			{Family: SoftwareEngineering, Keywords: []string{"software", "programming", "object-oriented", "oop"}},
		},
		Roles: []JobRoleProfile{
			{
				Title:               "ML Engineer",
				FieldsOfStudy:       []string{"Computer Science", "Computer Engineering", "Data Science"},
				RequiredCourses:     []string{"Machine Learning", "Statistics"},
				ProjectExperience:   []string{"machine learning"},
				RequiredSkills:      []string{"machine_learning", "programming", "statistics"},
				PreferredSkills:     []string{"python", "deep_learning", "data_preprocessing"},
				MinimumLevel:        Intermediate,
				ProjectRequirements: []string{"machine learning", "data analysis"},
				Timeline:            TimelineEstimate{JuniorMonths: 0, MidMonths: 12, SeniorMonths: 36},
			},
			{
				Title:               "Full-Stack Developer",
				FieldsOfStudy:       []string{"Computer Science", "Software Engineering"},
				RequiredCourses:     []string{"Web Development", "Database Systems"},
				ProjectExperience:   []string{"web application"},
				RequiredSkills:      []string{"web_development", "programming", "database_systems"},
				PreferredSkills:     []string{"javascript", "frameworks", "api_design"},
				MinimumLevel:        Intermediate,
				ProjectRequirements: []string{"web application", "backend api"},
				Timeline:            TimelineEstimate{JuniorMonths: 3, MidMonths: 18, SeniorMonths: 42},
			},
			{
				Title:               "Data Scientist",
				FieldsOfStudy:       []string{"Statistics", "Data Science", "Mathematics", "Economics"},
				RequiredCourses:     []string{"Statistics", "Data Analysis"},
				ProjectExperience:   []string{"data analysis"},
				RequiredSkills:      []string{"statistics", "programming", "data_analysis"},
				PreferredSkills:     []string{"machine_learning", "visualization", "business_analytics"},
				MinimumLevel:        Intermediate,
				ProjectRequirements: []string{"data analysis", "statistical model"},
				Timeline:            TimelineEstimate{JuniorMonths: 6, MidMonths: 24, SeniorMonths: 48},
			},
		},
		Distances: []CityDistance{
			{A: "Milano", B: "Torino", Km: 140},
			{A: "Milano", B: "Roma", Km: 480},
			{A: "Milano", B: "Firenze", Km: 250},
			{A: "Milano", B: "Bologna", Km: 215},
			{A: "Milano", B: "Monza", Km: 15},
			{A: "Milano", B: "Pavia", Km: 35},
			{A: "Milano", B: "Bergamo", Km: 50},
			{A: "Bologna", B: "Firenze", Km: 105},
			{A: "Firenze", B: "Roma", Km: 275},
			{A: "Roma", B: "Napoli", Km: 225},
			{A: "Torino", B: "Roma", Km: 670},
		},
		DefaultDistanceKm: DefaultDistanceKm,
		Technologies: []TechnologySkill{
			{Technology: "Python", Skill: "programming"},
			{Technology: "Go", Skill: "programming"},
			{Technology: "Java", Skill: "programming"},
			{Technology: "C++", Skill: "programming"},
			{Technology: "JavaScript", Skill: "web_development"},
			{Technology: "TypeScript", Skill: "web_development"},
			{Technology: "React", Skill: "web_development"},
			{Technology: "Vue", Skill: "web_development"},
			{Technology: "Node.js", Skill: "web_development"},
			{Technology: "SQL", Skill: "database_systems"},
			{Technology: "PostgreSQL", Skill: "database_systems"},
			{Technology: "MongoDB", Skill: "database_systems"},
			{Technology: "TensorFlow", Skill: "machine_learning"},
			{Technology: "PyTorch", Skill: "machine_learning"},
			{Technology: "scikit-learn", Skill: "machine_learning"},
			{Technology: "Pandas", Skill: "data_analysis"},
			{Technology: "R", Skill: "statistics"},
			{Technology: "Tableau", Skill: "visualization"},
		},
		DefaultTechSkill: "programming",
	}
}

// Default builds the shipped taxonomy.
func Default() *Taxonomy {
	return MustNew(DefaultTables())
}
