package request

// LineItemRequest is one line item of a receipt being created. The id is an
// ephemeral client-side identifier for list editing; it is echoed back but
// never used as a durable key.
type LineItemRequest struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// CreateReceiptRequest is the payload for creating a receipt
type CreateReceiptRequest struct {
	CustomerName string            `json:"customer_name"`
	Items        []LineItemRequest `json:"items"`
}
