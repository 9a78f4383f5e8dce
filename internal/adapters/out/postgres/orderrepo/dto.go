// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Delivery files and links live in child tables so that
// concurrent attachments from the seller are plain inserts and never overwrite
// each other.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate.
// Status and expected delivery date carry indexes for the overdue scan;
// the order number is unique by construction.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"uniqueIndex"`

	BuyerID    uuid.UUID `gorm:"type:uuid;index"`
	BuyerName  string
	BuyerEmail string

	SellerID    uuid.UUID `gorm:"type:uuid;index"`
	SellerName  string
	SellerEmail string

	GigID    uuid.UUID `gorm:"type:uuid"`
	GigTitle string

	PackageKind     string
	PackageTitle    string
	PriceCents      int64
	DeliveryDays    int
	MaxRevisions    int
	PackageFeatures []string `gorm:"serializer:json"`

	ServiceFeeCents int64
	PaymentStatus   int
	PaymentMethod   string

	Requirements string

	Status        int `gorm:"index"`
	RevisionCount int

	CreatedAt          time.Time
	ExpectedDeliveryAt time.Time `gorm:"index"`
	DeliveredAt        *time.Time
	CompletedAt        *time.Time

	LastRevisionAt      *time.Time
	LastRevisionMessage string

	DeliveryNote   string
	ConversationID string

	Files []DeliveryFileDTO `gorm:"foreignKey:OrderID;references:ID"`
	Links []DeliveryLinkDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryFileDTO is one uploaded deliverable attached to an order.
type DeliveryFileDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	URL        string
	ByteSize   int64
	MediaType  string
	UploadedAt time.Time
}

// TableName specifies the database table name for delivery files.
func (DeliveryFileDTO) TableName() string {
	return "order_delivery_files"
}

// DeliveryLinkDTO is one shared link attached to an order.
type DeliveryLinkDTO struct {
	ID      uint      `gorm:"primaryKey;autoIncrement"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	URL     string
}

// TableName specifies the database table name for delivery links.
func (DeliveryLinkDTO) TableName() string {
	return "order_delivery_links"
}

// fromDomain converts an order aggregate to its database representation.
// Child rows for files and links are written separately by the append
// operations, not here.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),

		BuyerID:    aggregate.Buyer().ID().Bytes(),
		BuyerName:  aggregate.Buyer().Name(),
		BuyerEmail: aggregate.Buyer().Email(),

		SellerID:    aggregate.Seller().ID().Bytes(),
		SellerName:  aggregate.Seller().Name(),
		SellerEmail: aggregate.Seller().Email(),

		GigID:    aggregate.GigID().Bytes(),
		GigTitle: aggregate.GigTitle(),

		PackageKind:     aggregate.Package().Kind(),
		PackageTitle:    aggregate.Package().Title(),
		PriceCents:      aggregate.Price().Cents(),
		DeliveryDays:    aggregate.Package().DeliveryDays(),
		MaxRevisions:    aggregate.Package().MaxRevisions(),
		PackageFeatures: aggregate.Package().Features(),

		ServiceFeeCents: aggregate.ServiceFee().Cents(),
		PaymentStatus:   int(aggregate.PaymentStatus()),
		PaymentMethod:   aggregate.PaymentMethod(),

		Requirements: aggregate.Requirements(),

		Status:        int(aggregate.Status()),
		RevisionCount: aggregate.RevisionCount(),

		CreatedAt:          aggregate.CreatedAt(),
		ExpectedDeliveryAt: aggregate.ExpectedDeliveryAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		CompletedAt:        aggregate.CompletedAt(),

		LastRevisionAt:      aggregate.LastRevisionAt(),
		LastRevisionMessage: aggregate.LastRevisionMessage(),

		DeliveryNote:   aggregate.DeliveryNote(),
		ConversationID: aggregate.ConversationID(),
	}
}

// toDomain converts a database row (with its loaded child rows) back into an
// order aggregate via RestoreOrder, revalidating the stored state.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	gigID, err := kernel.UUIDFromBytes(dto.GigID[:])
	if err != nil {
		return nil, err
	}

	buyer, err := order.NewParty(buyerID, dto.BuyerName, dto.BuyerEmail)
	if err != nil {
		return nil, err
	}
	seller, err := order.NewParty(sellerID, dto.SellerName, dto.SellerEmail)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}
	serviceFee, err := kernel.NewMoneyFromCents(dto.ServiceFeeCents)
	if err != nil {
		return nil, err
	}

	pkg, err := order.NewPackage(
		dto.PackageKind,
		dto.PackageTitle,
		price,
		dto.DeliveryDays,
		dto.MaxRevisions,
		dto.PackageFeatures,
	)
	if err != nil {
		return nil, err
	}

	files := make([]order.Artifact, 0, len(dto.Files))
	for _, f := range dto.Files {
		artifact, artifactErr := order.NewArtifact(f.Name, f.URL, f.ByteSize, f.MediaType, f.UploadedAt)
		if artifactErr != nil {
			return nil, artifactErr
		}
		files = append(files, artifact)
	}

	links := make([]string, 0, len(dto.Links))
	for _, l := range dto.Links {
		links = append(links, l.URL)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		buyer,
		seller,
		gigID,
		dto.GigTitle,
		pkg,
		dto.Requirements,
		dto.PaymentMethod,
		serviceFee,
		order.PaymentStatus(dto.PaymentStatus),
		order.Status(dto.Status),
		dto.RevisionCount,
		dto.CreatedAt,
		dto.ExpectedDeliveryAt,
		dto.DeliveredAt,
		dto.CompletedAt,
		dto.LastRevisionAt,
		dto.LastRevisionMessage,
		files,
		links,
		dto.DeliveryNote,
		dto.ConversationID,
	)
}
