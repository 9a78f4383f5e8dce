package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its delivery record by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Files").
		Preload("Links").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateWithExpectedStatus writes the aggregate's lifecycle fields on the
// condition that the stored row still holds expectedStatus. When another
// writer got there first the row no longer matches and RowsAffected comes
// back zero; the caller receives errs.ErrConcurrencyConflict and nothing is
// written.
func (r *GormOrderRepository) UpdateWithExpectedStatus(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	updates := map[string]any{
		"status":                int(aggregate.Status()),
		"payment_status":        int(aggregate.PaymentStatus()),
		"revision_count":        aggregate.RevisionCount(),
		"delivered_at":          aggregate.DeliveredAt(),
		"completed_at":          aggregate.CompletedAt(),
		"last_revision_at":      aggregate.LastRevisionAt(),
		"last_revision_message": aggregate.LastRevisionMessage(),
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(expectedStatus)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AppendDeliveryFile inserts one uploaded deliverable row.
func (r *GormOrderRepository) AppendDeliveryFile(
	ctx context.Context,
	orderID kernel.UUID,
	artifact order.Artifact,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	dto := DeliveryFileDTO{
		OrderID:    orderID.Bytes(),
		Name:       artifact.Name(),
		URL:        artifact.URL(),
		ByteSize:   artifact.ByteSize(),
		MediaType:  artifact.MediaType(),
		UploadedAt: artifact.UploadedAt(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AppendDeliveryLink inserts one shared link row.
func (r *GormOrderRepository) AppendDeliveryLink(ctx context.Context, orderID kernel.UUID, link string) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	dto := DeliveryLinkDTO{
		OrderID: orderID.Bytes(),
		URL:     link,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// SetDeliveryNote overwrites the order's delivery note.
func (r *GormOrderRepository) SetDeliveryNote(ctx context.Context, orderID kernel.UUID, note string) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderID.Bytes()).
		Update("delivery_note", note)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}

	return nil
}
