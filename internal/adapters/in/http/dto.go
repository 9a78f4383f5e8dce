package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PackageRequest describes the gig package terms being purchased.
type PackageRequest struct {
	Kind         string   `json:"kind"`
	Title        string   `json:"title"`
	PriceCents   int64    `json:"priceCents"`
	DeliveryDays int      `json:"deliveryDays"`
	MaxRevisions int      `json:"maxRevisions"`
	Features     []string `json:"features,omitempty"`
}

// PlaceOrderRequest is the body of POST /orders. The buyer is the caller.
type PlaceOrderRequest struct {
	BuyerName     string         `json:"buyerName"`
	BuyerEmail    string         `json:"buyerEmail"`
	SellerID      string         `json:"sellerId"`
	SellerName    string         `json:"sellerName"`
	SellerEmail   string         `json:"sellerEmail"`
	GigID         string         `json:"gigId"`
	GigTitle      string         `json:"gigTitle"`
	Package       PackageRequest `json:"package"`
	Requirements  string         `json:"requirements,omitempty"`
	PaymentMethod string         `json:"paymentMethod"`
}

// PlaceOrderResponse returns the identifier of the newly placed order.
type PlaceOrderResponse struct {
	OrderID string `json:"orderId"`
}

// DeliverableFile describes one uploaded file in a delivery or attachment.
type DeliverableFile struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	ByteSize  int64  `json:"byteSize"`
	MediaType string `json:"mediaType"`
}

// AttachDeliverableRequest is the body of POST /orders/{id}/attachments.
// Exactly one of file, link, or note must be set.
type AttachDeliverableRequest struct {
	File *DeliverableFile `json:"file,omitempty"`
	Link string           `json:"link,omitempty"`
	Note string           `json:"note,omitempty"`
}

// DeliverOrderRequest is the body of POST /orders/{id}/deliver.
// All fields are optional; deliverables attached earlier count too.
type DeliverOrderRequest struct {
	Files []DeliverableFile `json:"files,omitempty"`
	Links []string          `json:"links,omitempty"`
	Note  string            `json:"note,omitempty"`
}

// RequestRevisionRequest is the body of POST /orders/{id}/revision.
type RequestRevisionRequest struct {
	Message string `json:"message"`
}

// SubmitReviewRequest is the body of POST /orders/{id}/review.
type SubmitReviewRequest struct {
	Rating int    `json:"rating"`
	Body   string `json:"body"`
}

// SubmitReviewResponse returns the identifier of the stored review.
type SubmitReviewResponse struct {
	ReviewID string `json:"reviewId"`
}

// OrderFile is one delivered file in an order projection.
type OrderFile struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	ByteSize   int64     `json:"byteSize"`
	MediaType  string    `json:"mediaType"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Order is the full order projection returned by GET /orders/{id}.
type Order struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`

	BuyerID    string `json:"buyerId"`
	BuyerName  string `json:"buyerName"`
	SellerID   string `json:"sellerId"`
	SellerName string `json:"sellerName"`

	GigID    string `json:"gigId"`
	GigTitle string `json:"gigTitle"`

	PackageKind  string `json:"packageKind"`
	PackageTitle string `json:"packageTitle"`
	DeliveryDays int    `json:"deliveryDays"`
	MaxRevisions int    `json:"maxRevisions"`

	PriceCents      int64 `json:"priceCents"`
	ServiceFeeCents int64 `json:"serviceFeeCents"`
	TotalCents      int64 `json:"totalCents"`

	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`

	Requirements string `json:"requirements,omitempty"`

	Status        string `json:"status"`
	RevisionCount int    `json:"revisionCount"`

	CreatedAt          time.Time  `json:"createdAt"`
	ExpectedDeliveryAt time.Time  `json:"expectedDeliveryAt"`
	DeliveredAt        *time.Time `json:"deliveredAt,omitempty"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`

	LastRevisionAt      *time.Time `json:"lastRevisionAt,omitempty"`
	LastRevisionMessage string     `json:"lastRevisionMessage,omitempty"`

	DeliveryNote   string `json:"deliveryNote,omitempty"`
	ConversationID string `json:"conversationId"`

	DeliveryFiles []OrderFile `json:"deliveryFiles"`
	DeliveryLinks []string    `json:"deliveryLinks"`
}

// SellerSummary is the seller's earnings and rating summary.
type SellerSummary struct {
	SellerID              string  `json:"sellerId"`
	DisplayName           string  `json:"displayName"`
	AvailableBalanceCents int64   `json:"availableBalanceCents"`
	TotalEarningsCents    int64   `json:"totalEarningsCents"`
	ReviewCount           int64   `json:"reviewCount"`
	AverageRating         float64 `json:"averageRating"`
}

// Review is one entry in a seller's review listing.
type Review struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	BuyerName   string    `json:"buyerName"`
	GigTitle    string    `json:"gigTitle"`
	PackageKind string    `json:"packageKind"`
	Rating      int       `json:"rating"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

func orderFromResponse(resp *queries.GetOrderQueryResponse) Order {
	files := make([]OrderFile, len(resp.DeliveryFiles))
	for i, f := range resp.DeliveryFiles {
		files[i] = OrderFile{
			Name:       f.Name,
			URL:        f.URL,
			ByteSize:   f.ByteSize,
			MediaType:  f.MediaType,
			UploadedAt: f.UploadedAt,
		}
	}

	return Order{
		ID:          resp.ID.String(),
		OrderNumber: resp.OrderNumber,

		BuyerID:    resp.BuyerID.String(),
		BuyerName:  resp.BuyerName,
		SellerID:   resp.SellerID.String(),
		SellerName: resp.SellerName,

		GigID:    resp.GigID.String(),
		GigTitle: resp.GigTitle,

		PackageKind:  resp.PackageKind,
		PackageTitle: resp.PackageTitle,
		DeliveryDays: resp.DeliveryDays,
		MaxRevisions: resp.MaxRevisions,

		PriceCents:      resp.PriceCents,
		ServiceFeeCents: resp.ServiceFeeCents,
		TotalCents:      resp.TotalCents,

		PaymentStatus: resp.PaymentStatus,
		PaymentMethod: resp.PaymentMethod,

		Requirements: resp.Requirements,

		Status:        resp.Status,
		RevisionCount: resp.RevisionCount,

		CreatedAt:          resp.CreatedAt,
		ExpectedDeliveryAt: resp.ExpectedDeliveryAt,
		DeliveredAt:        resp.DeliveredAt,
		CompletedAt:        resp.CompletedAt,

		LastRevisionAt:      resp.LastRevisionAt,
		LastRevisionMessage: resp.LastRevisionMessage,

		DeliveryNote:   resp.DeliveryNote,
		ConversationID: resp.ConversationID,

		DeliveryFiles: files,
		DeliveryLinks: resp.DeliveryLinks,
	}
}
