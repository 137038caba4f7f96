package mysql

import (
	"context"

	"gorm.io/gorm"

	auditDomain "loanbook-backend/internal/domain/audit"
)

type EventRepository struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) *EventRepository { return &EventRepository{db: db} }

func (r *EventRepository) Append(ctx context.Context, e *auditDomain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]auditDomain.Event, error) {
	var out []auditDomain.Event
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("occurred_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
