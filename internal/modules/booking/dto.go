package booking

// StatusUpdateRequest is the inbound status-change payload. Notify flags
// default to true when omitted.
type StatusUpdateRequest struct {
	BookingID      int64  `json:"bookingId"`
	NewStatus      string `json:"newStatus"`
	UpdatedBy      string `json:"updatedBy"`
	Reason         string `json:"reason"`
	NotifyCustomer *bool  `json:"notifyCustomer"`
	NotifyProvider *bool  `json:"notifyProvider"`
}

func (r *StatusUpdateRequest) notifyCustomer() bool {
	return r.NotifyCustomer == nil || *r.NotifyCustomer
}

func (r *StatusUpdateRequest) notifyProvider() bool {
	return r.NotifyProvider == nil || *r.NotifyProvider
}
