package repository

import (
	"context"

	"coachlab.fr/suivicoach/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgramRepository interface {
	Create(ctx context.Context, program *model.Program) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Program, error)
	FindAll(ctx context.Context) ([]*model.Program, error)
	FindByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*model.Program, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ReplaceWeek deletes every session of the program (entries
	// cascade) and inserts the rebuilt ones in a single transaction.
	// This is the replace-all save contract: no diffing.
	ReplaceWeek(ctx context.Context, programID uuid.UUID, sessions []model.ProgramSession) error
	FindSessionByID(ctx context.Context, id uuid.UUID) (*model.ProgramSession, error)
	FindSessionsByProgram(ctx context.Context, programID uuid.UUID) ([]model.ProgramSession, error)
	FindSessionsByAthlete(ctx context.Context, athleteID uuid.UUID) ([]model.ProgramSession, error)
}

type programRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) Create(ctx context.Context, program *model.Program) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *programRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Program, error) {
	var program model.Program
	if err := r.db.WithContext(ctx).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week")
		}).
		Preload("Sessions.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("id = ?", id).
		First(&program).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *programRepository) FindAll(ctx context.Context) ([]*model.Program, error) {
	var programs []*model.Program
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *programRepository) FindByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*model.Program, error) {
	var programs []*model.Program
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC").
		Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *programRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteProgramSessions(tx, id); err != nil {
			return err
		}
		return tx.Delete(&model.Program{}, "id = ?", id).Error
	})
}

func (r *programRepository) ReplaceWeek(ctx context.Context, programID uuid.UUID, sessions []model.ProgramSession) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteProgramSessions(tx, programID); err != nil {
			return err
		}

		for i := range sessions {
			sessions[i].ProgramID = programID
			entries := sessions[i].Exercises
			sessions[i].Exercises = nil

			if err := tx.Create(&sessions[i]).Error; err != nil {
				return err
			}

			for j := range entries {
				entries[j].SessionID = sessions[i].ID
				if err := tx.Create(&entries[j]).Error; err != nil {
					return err
				}
			}
			sessions[i].Exercises = entries
		}

		return tx.Model(&model.Program{}).
			Where("id = ?", programID).
			Update("updated_at", tx.NowFunc()).Error
	})
}

// deleteProgramSessions removes sessions and their entries explicitly
// instead of relying on database-level cascades.
func deleteProgramSessions(tx *gorm.DB, programID uuid.UUID) error {
	if err := tx.Where(
		"session_id IN (?)",
		tx.Model(&model.ProgramSession{}).Select("id").Where("program_id = ?", programID),
	).Delete(&model.ExerciseEntry{}).Error; err != nil {
		return err
	}

	return tx.Where("program_id = ?", programID).Delete(&model.ProgramSession{}).Error
}

func (r *programRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*model.ProgramSession, error) {
	var session model.ProgramSession
	if err := r.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("id = ?", id).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *programRepository) FindSessionsByProgram(ctx context.Context, programID uuid.UUID) ([]model.ProgramSession, error) {
	var sessions []model.ProgramSession
	if err := r.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("program_id = ?", programID).
		Order("day_of_week").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *programRepository) FindSessionsByAthlete(ctx context.Context, athleteID uuid.UUID) ([]model.ProgramSession, error) {
	var sessions []model.ProgramSession
	if err := r.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where(
			"program_id IN (?)",
			r.db.Model(&model.Program{}).Select("id").Where("athlete_id = ?", athleteID),
		).
		Order("day_of_week").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
