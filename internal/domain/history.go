package domain

import "time"

// ServiceHistory is the record shape returned by the maintenance-tracking
// integration. The integration is not implemented yet; see service.HistoryService.
type ServiceHistory struct {
	ServiceID   string    `json:"serviceId"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Cost        float64   `json:"cost"`
	Description string    `json:"description"`
}
