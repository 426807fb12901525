package scoring

// Vocabulary supplies the static term lists the extractor classifies against.
// The zero value is unusable; call DefaultVocabulary for the production lists
// or build a minimal one in tests.
type Vocabulary struct {
	SoftSkills      []string
	Education       []string
	TitleIndicators []string
	Languages       []string
	Frameworks      []string
	Tools           []string
}

// DefaultVocabulary returns the built-in term lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		SoftSkills:      defaultSoftSkills,
		Education:       defaultEducation,
		TitleIndicators: defaultTitleIndicators,
		Languages:       defaultLanguages,
		Frameworks:      defaultFrameworks,
		Tools:           defaultTools,
	}
}

var defaultSoftSkills = []string{
	"leadership",
	"communication",
	"teamwork",
	"collaboration",
	"problem solving",
	"critical thinking",
	"adaptability",
	"creativity",
	"time management",
	"conflict resolution",
	"decision making",
	"negotiation",
	"mentoring",
	"coaching",
	"public speaking",
	"attention to detail",
	"work ethic",
	"flexibility",
	"organization",
	"strategic thinking",
	"emotional intelligence",
	"active listening",
	"delegation",
	"accountability",
	"stakeholder management",
}

var defaultEducation = []string{
	"bachelor",
	"bachelors",
	"master",
	"masters",
	"mba",
	"phd",
	"doctorate",
	"b.s.",
	"m.s.",
	"b.a.",
	"m.a.",
	"associate degree",
	"diploma",
	"bootcamp",
	"certification",
	"certified",
	"pmp",
	"cpa",
	"cfa",
	"scrum master",
	"six sigma",
}

var defaultTitleIndicators = []string{
	"manager",
	"engineer",
	"developer",
	"designer",
	"analyst",
	"architect",
	"consultant",
	"director",
	"specialist",
	"coordinator",
	"administrator",
	"scientist",
	"strategist",
	"lead",
	"head",
	"officer",
	"president",
	"supervisor",
	"technician",
	"recruiter",
	"marketer",
	"accountant",
	"writer",
	"producer",
	"researcher",
}

var defaultLanguages = []string{
	"Python",
	"Java",
	"JavaScript",
	"TypeScript",
	"Go",
	"Ruby",
	"PHP",
	"Swift",
	"Kotlin",
	"Rust",
	"Scala",
	"C++",
	"C#",
	"SQL",
	"R",
}

var defaultFrameworks = []string{
	"React",
	"Angular",
	"Vue",
	"Django",
	"Flask",
	"Spring",
	"Rails",
	"Laravel",
	"Express",
	"Node.js",
}

var defaultTools = []string{
	"AWS",
	"Azure",
	"GCP",
	"Docker",
	"Kubernetes",
	"Git",
	"Jenkins",
	"Terraform",
	"Jira",
	"Salesforce",
	"Tableau",
	"Excel",
}
