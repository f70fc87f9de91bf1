package users

import (
	"context"
	"log/slog"
)

// SeedSampleData loads a couple of sample users through the normal create
// path so local environments start with data to poke at. Failures are
// logged and skipped rather than aborting startup.
func SeedSampleData(ctx context.Context, service *Service, logger *slog.Logger) {
	johnAge, janeAge := 30, 25
	johnPhone, janePhone := "+1234567890", "+0987654321"
	samples := []UserForm{
		{Name: "John Doe", Email: "john@example.com", Age: &johnAge, Phone: &johnPhone},
		{Name: "Jane Smith", Email: "jane@example.com", Age: &janeAge, Phone: &janePhone},
	}

	for i := range samples {
		if _, err := service.Create(ctx, &samples[i]); err != nil {
			logger.Warn("seed sample user", slog.String("email", samples[i].Email), slog.Any("error", err))
		}
	}
	logger.Info("sample data loaded", slog.Int("total_users", service.Count(ctx)))
}
