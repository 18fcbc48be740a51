package roadmap

import (
	"strings"

	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

type track struct {
	keywords []string
	stages   []models.RoadmapStage
}

// tracks are checked in order; the first keyword hit wins.
var tracks = []track{
	{
		keywords: []string{"developer", "engineer", "programmer"},
		stages: []models.RoadmapStage{
			{Title: "Programming Fundamentals", Steps: []string{
				"Master core programming concepts and syntax",
				"Learn data structures and algorithms",
				"Practice problem-solving with coding challenges",
				"Understand version control with Git",
				"Build your first simple applications",
			}},
			{Title: "Technical Skill Building", Steps: []string{
				"Learn relevant frameworks and libraries",
				"Master database design and management",
				"Understand software architecture patterns",
				"Practice with real-world projects",
				"Learn testing and debugging techniques",
			}},
			{Title: "Professional Development", Steps: []string{
				"Build a portfolio of projects",
				"Contribute to open-source projects",
				"Network with other developers",
				"Apply for internships or entry-level positions",
				"Continuously learn new technologies",
			}},
		},
	},
	{
		keywords: []string{"data", "scientist", "analyst"},
		stages: []models.RoadmapStage{
			{Title: "Data Foundation", Steps: []string{
				"Learn statistics and probability",
				"Master Python or R programming",
				"Understand data manipulation with pandas/dplyr",
				"Learn SQL for database querying",
				"Practice data visualization techniques",
			}},
			{Title: "Advanced Analytics", Steps: []string{
				"Study machine learning algorithms",
				"Learn deep learning frameworks",
				"Master data preprocessing techniques",
				"Understand model evaluation and validation",
				"Practice with real datasets",
			}},
			{Title: "Industry Application", Steps: []string{
				"Work on end-to-end data projects",
				"Learn cloud platforms (AWS, GCP, Azure)",
				"Understand MLOps and model deployment",
				"Build a data science portfolio",
				"Network with data professionals",
			}},
		},
	},
	{
		keywords: []string{"design", "ui", "ux"},
		stages: []models.RoadmapStage{
			{Title: "Design Fundamentals", Steps: []string{
				"Learn design principles and color theory",
				"Master design tools (Figma, Adobe Creative Suite)",
				"Understand typography and layout",
				"Study user psychology and behavior",
				"Practice with design exercises",
			}},
			{Title: "User Experience Focus", Steps: []string{
				"Learn user research methodologies",
				"Master wireframing and prototyping",
				"Understand usability testing",
				"Study accessibility guidelines",
				"Practice information architecture",
			}},
			{Title: "Professional Portfolio", Steps: []string{
				"Build a strong design portfolio",
				"Work on real client projects",
				"Network with design professionals",
				"Stay updated with design trends",
				"Apply for design positions",
			}},
		},
	},
}

// Fallback picks a hand-written roadmap by substring match on the career,
// or a generic three-stage plan mentioning it.
func Fallback(career string) models.Roadmap {
	lower := strings.ToLower(career)
	for _, tr := range tracks {
		for _, kw := range tr.keywords {
			if strings.Contains(lower, kw) {
				return models.Roadmap{Career: career, Roadmap: cloneStages(tr.stages)}
			}
		}
	}
	return models.Roadmap{Career: career, Roadmap: genericStages(career)}
}

func genericStages(career string) []models.RoadmapStage {
	return []models.RoadmapStage{
		{Title: "Foundation Building", Steps: []string{
			"Learn the fundamentals of " + career,
			"Complete relevant educational courses",
			"Practice basic skills through projects",
			"Build foundational knowledge",
			"Network with professionals in the field",
		}},
		{Title: "Skill Development", Steps: []string{
			"Develop core " + career + " competencies",
			"Work on practical, real-world projects",
			"Build a professional portfolio",
			"Gain hands-on experience",
			"Seek mentorship opportunities",
		}},
		{Title: "Career Advancement", Steps: []string{
			"Gain industry experience",
			"Build professional network",
			"Pursue advanced certifications",
			"Take on leadership roles",
			"Continuously update skills",
		}},
	}
}

func cloneStages(in []models.RoadmapStage) []models.RoadmapStage {
	out := make([]models.RoadmapStage, len(in))
	for i, s := range in {
		out[i] = models.RoadmapStage{Title: s.Title, Steps: append([]string(nil), s.Steps...)}
	}
	return out
}
