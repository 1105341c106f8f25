package request

// CreateQuotationRequest creates a new empty quotation
type CreateQuotationRequest struct {
	CustomerName string  `json:"customer_name" binding:"max=255"`
	Note         *string `json:"note,omitempty"`
}

// UpdateQuotationRequest updates a quotation's header fields
type UpdateQuotationRequest struct {
	CustomerName *string `json:"customer_name,omitempty"`
	Note         *string `json:"note,omitempty"`
}

// UpdateQuotationStatusRequest changes a quotation's status
type UpdateQuotationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Draft Sent Accepted Declined"`
}
