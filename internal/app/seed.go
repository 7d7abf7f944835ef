package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// SeedTests inserts the sample catalogue when the tests table is empty,
// so a fresh deployment has something on the dashboard.
func SeedTests(ctx context.Context, repo domain.TestRepository, logger *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count tests: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, test := range sampleTests() {
		if err := repo.Create(ctx, test); err != nil {
			return fmt.Errorf("failed to seed test %q: %w", test.Title, err)
		}
	}
	logger.Info("seeded sample tests", zap.Int("count", len(sampleTests())))
	return nil
}

func sampleTests() []*domain.Test {
	return []*domain.Test{
		{
			Title:           "Aptitude Assessment",
			Description:     "Quantitative aptitude and logical reasoning.",
			DurationMinutes: 60,
			Questions: []domain.Question{
				{
					Section: "Quantitative",
					Text:    "A train travels 360 km in 4 hours. What is its average speed in km/h?",
					Type:    domain.QuestionMCQ,
					Options: []string{"72", "80", "90", "96"},
				},
				{
					Section: "Quantitative",
					Text:    "If 12 workers finish a job in 8 days, how many days do 16 workers need?",
					Type:    domain.QuestionNumeric,
				},
				{
					Section: "Logical Reasoning",
					Text:    "Which number completes the series: 2, 6, 12, 20, 30, ?",
					Type:    domain.QuestionMCQ,
					Options: []string{"36", "40", "42", "44"},
				},
				{
					Section: "Logical Reasoning",
					Text:    "A clock shows 3:15. What is the angle between the hands in degrees?",
					Type:    domain.QuestionNumeric,
				},
			},
		},
		{
			Title:           "Technical Screening",
			Description:     "Programming fundamentals and computer science basics.",
			DurationMinutes: 45,
			Questions: []domain.Question{
				{
					Section: "Programming",
					Text:    "What is the worst-case time complexity of binary search?",
					Type:    domain.QuestionMCQ,
					Options: []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
				},
				{
					Section: "Programming",
					Text:    "How many bits are in four bytes?",
					Type:    domain.QuestionNumeric,
				},
				{
					Section: "Databases",
					Text:    "Which SQL clause filters rows after aggregation?",
					Type:    domain.QuestionMCQ,
					Options: []string{"WHERE", "HAVING", "GROUP BY", "ORDER BY"},
				},
			},
		},
	}
}
