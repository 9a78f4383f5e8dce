package queries

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order projection from the database.
// Access control happens here rather than at the HTTP layer: the row is
// fetched and the caller checked against its parties before anything is
// returned.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderRow struct {
	ID                  uuid.UUID
	OrderNumber         string
	BuyerID             uuid.UUID
	BuyerName           string
	SellerID            uuid.UUID
	SellerName          string
	GigID               uuid.UUID
	GigTitle            string
	PackageKind         string
	PackageTitle        string
	DeliveryDays        int
	MaxRevisions        int
	PriceCents          int64
	ServiceFeeCents     int64
	PaymentStatus       int
	PaymentMethod       string
	Requirements        string
	Status              int
	RevisionCount       int
	CreatedAt           time.Time
	ExpectedDeliveryAt  time.Time
	DeliveredAt         *time.Time
	CompletedAt         *time.Time
	LastRevisionAt      *time.Time
	LastRevisionMessage string
	DeliveryNote        string
	ConversationID      string
}

// Handle executes the query.
// Returns errs.ErrObjectNotFound for an unknown order and
// order.ErrActorNotPermitted when the caller is neither party.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, order_number,
			buyer_id, buyer_name,
			seller_id, seller_name,
			gig_id, gig_title,
			package_kind, package_title, delivery_days, max_revisions,
			price_cents, service_fee_cents,
			payment_status, payment_method,
			requirements,
			status, revision_count,
			created_at, expected_delivery_at, delivered_at, completed_at,
			last_revision_at, last_revision_message,
			delivery_note, conversation_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	callerRaw := query.CallerID().Bytes()
	if row.BuyerID != callerRaw && row.SellerID != callerRaw {
		return nil, order.ErrActorNotPermitted
	}

	files, err := h.loadFiles(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	links, err := h.loadLinks(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	return buildOrderResponse(row, files, links)
}

func (h GetOrderQueryHandler) loadFiles(ctx context.Context, orderID uuid.UUID) ([]DeliveryFileResponse, error) {
	files := make([]DeliveryFileResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, url, byte_size, media_type, uploaded_at
		FROM order_delivery_files
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f DeliveryFileResponse
		if err = rows.Scan(&f.Name, &f.URL, &f.ByteSize, &f.MediaType, &f.UploadedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, rows.Err()
}

func (h GetOrderQueryHandler) loadLinks(ctx context.Context, orderID uuid.UUID) ([]string, error) {
	links := make([]string, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT url
		FROM order_delivery_links
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var link string
		if err = rows.Scan(&link); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

func buildOrderResponse(
	row orderRow,
	files []DeliveryFileResponse,
	links []string,
) (*GetOrderQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(row.BuyerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(row.SellerID[:])
	if err != nil {
		return nil, err
	}
	gigID, err := kernel.UUIDFromBytes(row.GigID[:])
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		order.Status(row.Status).Validate(),
		order.PaymentStatus(row.PaymentStatus).Validate(),
	); err != nil {
		return nil, err
	}

	return &GetOrderQueryResponse{
		ID:          id,
		OrderNumber: row.OrderNumber,

		BuyerID:    buyerID,
		BuyerName:  row.BuyerName,
		SellerID:   sellerID,
		SellerName: row.SellerName,

		GigID:    gigID,
		GigTitle: row.GigTitle,

		PackageKind:  row.PackageKind,
		PackageTitle: row.PackageTitle,
		DeliveryDays: row.DeliveryDays,
		MaxRevisions: row.MaxRevisions,

		PriceCents:      row.PriceCents,
		ServiceFeeCents: row.ServiceFeeCents,
		TotalCents:      row.PriceCents + row.ServiceFeeCents,

		PaymentStatus: order.PaymentStatus(row.PaymentStatus).String(),
		PaymentMethod: row.PaymentMethod,

		Requirements: row.Requirements,

		Status:        order.Status(row.Status).String(),
		RevisionCount: row.RevisionCount,

		CreatedAt:          row.CreatedAt,
		ExpectedDeliveryAt: row.ExpectedDeliveryAt,
		DeliveredAt:        row.DeliveredAt,
		CompletedAt:        row.CompletedAt,

		LastRevisionAt:      row.LastRevisionAt,
		LastRevisionMessage: row.LastRevisionMessage,

		DeliveryNote:   row.DeliveryNote,
		ConversationID: row.ConversationID,

		DeliveryFiles: files,
		DeliveryLinks: links,
	}, nil
}
