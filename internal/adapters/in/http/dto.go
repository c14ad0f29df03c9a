package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/core/domain/model/order"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request bodies.
type (
	NewOrderRequest struct {
		Title         string  `json:"title"`
		Description   string  `json:"description"`
		GeoLat        float64 `json:"geo_lat"`
		GeoLng        float64 `json:"geo_lng"`
		CustomerName  string  `json:"customerName"`
		CustomerPhone string  `json:"customerPhone"`
	}

	AssignRequest struct {
		MasterID *openapi_types.UUID `json:"masterId"`
	}

	StatusRequest struct {
		Status string `json:"status"`
	}

	NewAdlEntryRequest struct {
		Type       string         `json:"type"`
		URL        string         `json:"url"`
		GpsLat     float64        `json:"gps_lat"`
		GpsLng     float64        `json:"gps_lng"`
		CapturedAt string         `json:"capturedAt"`
		Meta       map[string]any `json:"meta"`
	}

	NewMasterRequest struct {
		Name   string  `json:"name"`
		GeoLat float64 `json:"geo_lat"`
		GeoLng float64 `json:"geo_lng"`
	}
)

// Response bodies.
type (
	OrderResponse struct {
		ID               string    `json:"id"`
		Title            string    `json:"title"`
		Description      string    `json:"description"`
		Status           string    `json:"status"`
		CustomerName     string    `json:"customerName"`
		CustomerPhone    string    `json:"customerPhone"`
		GeoLat           float64   `json:"geo_lat"`
		GeoLng           float64   `json:"geo_lng"`
		AssignedMasterID *string   `json:"assignedMasterId"`
		CreatedAt        time.Time `json:"createdAt"`
		UpdatedAt        time.Time `json:"updatedAt"`
		Version          int64     `json:"version"`
	}

	MasterSummaryResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	OrderDetailsResponse struct {
		OrderResponse
		Master *MasterSummaryResponse `json:"master"`
		Adl    []AdlEntryResponse     `json:"adl"`
	}

	AdlEntryResponse struct {
		ID         string         `json:"id"`
		OrderID    string         `json:"orderId"`
		Type       string         `json:"type"`
		URL        string         `json:"url"`
		GpsLat     float64        `json:"gps_lat"`
		GpsLng     float64        `json:"gps_lng"`
		CapturedAt time.Time      `json:"capturedAt"`
		Meta       map[string]any `json:"meta,omitempty"`
		CreatedAt  time.Time      `json:"createdAt"`
	}

	MasterResponse struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		GeoLat float64 `json:"geo_lat"`
		GeoLng float64 `json:"geo_lng"`
	}

	ErrorResponse struct {
		Error     string `json:"error"`
		Retryable bool   `json:"retryable,omitempty"`
	}
)

func toOrderResponse(s order.Snapshot) OrderResponse {
	var masterID *string
	if s.MasterID != nil {
		id := s.MasterID.String()
		masterID = &id
	}

	return OrderResponse{
		ID:               s.ID.String(),
		Title:            s.Title,
		Description:      s.Description,
		Status:           s.Status.String(),
		CustomerName:     s.Contact.Name,
		CustomerPhone:    s.Contact.Phone,
		GeoLat:           s.Location.Latitude(),
		GeoLng:           s.Location.Longitude(),
		AssignedMasterID: masterID,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
		Version:          s.Version,
	}
}

func toAdlEntryResponse(s adl.Snapshot) AdlEntryResponse {
	return AdlEntryResponse{
		ID:         s.ID.String(),
		OrderID:    s.OrderID.String(),
		Type:       s.Type.String(),
		URL:        s.URL,
		GpsLat:     s.Geo.Latitude(),
		GpsLng:     s.Geo.Longitude(),
		CapturedAt: s.CapturedAt,
		Meta:       s.Meta,
		CreatedAt:  s.CreatedAt,
	}
}

func toOrderDetailsResponse(r queries.GetOrderQueryResponse) OrderDetailsResponse {
	response := OrderDetailsResponse{
		OrderResponse: toOrderResponse(r.Order),
		Adl:           make([]AdlEntryResponse, 0, len(r.Adl)),
	}

	if r.Master != nil {
		response.Master = &MasterSummaryResponse{
			ID:   r.Master.ID.String(),
			Name: r.Master.Name,
		}
	}

	for _, entry := range r.Adl {
		response.Adl = append(response.Adl, toAdlEntryResponse(entry))
	}

	return response
}

func toMasterResponse(m *master.Master) MasterResponse {
	return MasterResponse{
		ID:     m.ID().String(),
		Name:   m.Name(),
		GeoLat: m.Location().Latitude(),
		GeoLng: m.Location().Longitude(),
	}
}
