package response

import (
	"time"

	"voltshare-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StationResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	PowerKW         float64   `json:"power_kw"`
	PictureURL      string    `json:"picture_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromStationView(rm *queries.StationView) (*StationResponse, error) {
	var resp StationResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}

type BucketResponse struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
}

// AvailabilityResponse is one station day rendered as the 24-bucket grid.
type AvailabilityResponse struct {
	StationID uuid.UUID        `json:"station_id"`
	Day       string           `json:"day"`
	Buckets   []BucketResponse `json:"buckets"`
}

func FromBucketViews(stationID uuid.UUID, day time.Time, views []queries.BucketView) *AvailabilityResponse {
	buckets := make([]BucketResponse, len(views))
	for i, v := range views {
		buckets[i] = BucketResponse{Start: v.Start, End: v.End, Status: v.Status}
	}
	return &AvailabilityResponse{
		StationID: stationID,
		Day:       day.Format("2006-01-02"),
		Buckets:   buckets,
	}
}
