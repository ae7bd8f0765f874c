package models

// CreateRequest is the POST /api/v1/consent body.
type CreateRequest struct {
	Text string `json:"text" validate:"required,notblank"`
}

// UpdateRequest is the PUT /api/v1/consent/{id} body. The text replaces the
// stored value wholesale.
type UpdateRequest struct {
	Text string `json:"text" validate:"required,notblank"`
}

// ConsentResponse is the wire representation of a consent record.
type ConsentResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MutationResponse acknowledges a create or update together with the
// resulting record.
type MutationResponse struct {
	Message string          `json:"message"`
	Consent ConsentResponse `json:"consent"`
}

// MessageResponse is a plain acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToResponse maps a domain record to its wire representation.
func ToResponse(record *Record) ConsentResponse {
	return ConsentResponse{
		ID:   record.ID.String(),
		Text: record.Text,
	}
}

// ToResponses maps a slice of records, preserving store iteration order.
// An empty list marshals as [] rather than null.
func ToResponses(records []*Record) []ConsentResponse {
	resp := make([]ConsentResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, ToResponse(record))
	}
	return resp
}
