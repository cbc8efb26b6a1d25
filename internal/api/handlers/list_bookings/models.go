package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
)

const dateFormat = "2006-01-02"

// ParseQuery собирает запрос на листинг из query-параметров:
// userId, spotId, status, startDate, endDate, includeFinished.
func ParseQuery(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if v := query.Get("userId"); v != "" {
		userID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid userId: %w", err)
		}
		req.UserID = &userID
	}

	if v := query.Get("spotId"); v != "" {
		spotID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid spotId: %w", err)
		}
		req.SpotID = &spotID
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("startDate"); v != "" {
		startDate, err := time.Parse(dateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &startDate
	}

	if v := query.Get("endDate"); v != "" {
		endDate, err := time.Parse(dateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		// Конец периода включает весь день
		endDate = endDate.Add(24*time.Hour - time.Second)
		req.EndDate = &endDate
	}

	if v := query.Get("includeFinished"); v != "" {
		includeFinished, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid includeFinished: %w", err)
		}
		req.IncludeFinished = includeFinished
	}

	return req, nil
}
