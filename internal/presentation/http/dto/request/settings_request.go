package request

// UpdateSettingsRequest is the payload for saving business settings
type UpdateSettingsRequest struct {
	BusinessName    string `json:"business_name"`
	BusinessAddress string `json:"business_address"`
	LogoURI         string `json:"logo_uri"`
	SignatureURI    string `json:"signature_uri"`
}

// SaveSignatureRequest carries a drawn signature as base64 PNG data, with
// or without the data-URL prefix.
type SaveSignatureRequest struct {
	Data string `json:"data" binding:"required"`
}
