package seeder

import (
	"context"

	"discussion/internal/app/participant"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

var demoThreads = []string{"task:1", "report:1"}

func (s *Seeder) Seed(ctx context.Context) error {
	s.logger.Info("Running database seeders...")

	if err := s.seedParticipants(ctx); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedParticipants(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&participant.Participant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("Participants already exist, skipping seed")
		return nil
	}

	participants := []*participant.Participant{
		{ID: "user-pm", DisplayName: "Hoàng Ngọc Sơn", Email: ptr("son.hoang@worksphere.com")},
		{ID: "user-emp", DisplayName: "Nguyễn Thị Lan Anh", Email: ptr("anh.lan@worksphere.com")},
		{ID: "user-emp-dev1", DisplayName: "Phạm Minh Thu", Email: ptr("thu.pham@worksphere.com")},
	}

	err := participant.NewRepository(s.db).Transaction(ctx, func(repo participant.Repository) error {
		for _, p := range participants {
			if err := repo.Upsert(ctx, p); err != nil {
				return err
			}
		}
		for _, threadID := range demoThreads {
			for pos, p := range participants {
				if err := repo.AddMember(ctx, threadID, p.ID, pos); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Seeded participants",
		zap.Int("count", len(participants)),
		zap.Strings("threads", demoThreads),
	)
	return nil
}

func ptr(s string) *string {
	return &s
}
