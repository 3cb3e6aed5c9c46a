package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dom/battle-service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type battleRow struct {
	ID           uuid.UUID                              `gorm:"type:uuid;primaryKey"`
	Participant1 datatypes.JSONType[domain.Participant] `gorm:"not null"`
	Participant2 datatypes.JSONType[domain.Participant] `gorm:"not null"`
	Winner       string                                 `gorm:"not null"`
	WinnerPower  int                                    `gorm:"not null"`
	CreatedAt    time.Time                              `gorm:"not null;index"`
	Completed    bool                                   `gorm:"not null"`
}

func (battleRow) TableName() string { return "battles" }

func toRow(b *domain.Battle) (*battleRow, error) {
	id, err := uuid.Parse(b.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid battle id %q: %w", b.ID, err)
	}
	return &battleRow{
		ID:           id,
		Participant1: datatypes.NewJSONType(b.Participant1),
		Participant2: datatypes.NewJSONType(b.Participant2),
		Winner:       b.Winner,
		WinnerPower:  b.WinnerPower,
		CreatedAt:    b.CreatedAt,
		Completed:    b.Completed,
	}, nil
}

func (row *battleRow) toDomain() *domain.Battle {
	return &domain.Battle{
		ID:           row.ID.String(),
		Participant1: row.Participant1.Data(),
		Participant2: row.Participant2.Data(),
		Winner:       row.Winner,
		WinnerPower:  row.WinnerPower,
		CreatedAt:    row.CreatedAt.UTC(),
		Completed:    row.Completed,
	}
}

type battleRepository struct {
	db *gorm.DB
}

func NewBattleRepository(db *gorm.DB) *battleRepository {
	return &battleRepository{db: db}
}

func (r *battleRepository) Create(ctx context.Context, battle *domain.Battle) error {
	row, err := toRow(battle)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Create(row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrBattleExists
	}
	return err
}

func (r *battleRepository) GetByID(ctx context.Context, id string) (*domain.Battle, error) {
	// ids that are not UUIDs can never have been stored
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrBattleNotFound
	}

	var row battleRow
	err = r.db.WithContext(ctx).First(&row, "id = ?", parsed).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBattleNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *battleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&battleRow{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
