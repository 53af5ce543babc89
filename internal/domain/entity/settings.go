package entity

// SettingsRowID is the fixed primary key of the singleton settings row.
const SettingsRowID = 1

// BusinessSettings holds the business branding used on receipts. A single
// row exists, created on first save and updated in place afterwards.
type BusinessSettings struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessName    string `gorm:"type:text" json:"business_name"`
	BusinessAddress string `gorm:"type:text" json:"business_address"`
	LogoURI         string `gorm:"column:logo_uri;type:text" json:"logo_uri"`
	SignatureURI    string `gorm:"column:signature_uri;type:text" json:"signature_uri"`
}

// TableName returns the table name for the BusinessSettings model
func (BusinessSettings) TableName() string {
	return "settings"
}

// Snapshot returns a point-in-time copy of the settings for embedding in a
// receipt. Snapshots are value copies: later settings edits never affect
// receipts that were already issued.
func (s *BusinessSettings) Snapshot() BusinessSnapshot {
	if s == nil {
		return BusinessSnapshot{}
	}
	return BusinessSnapshot{
		BusinessName:    s.BusinessName,
		BusinessAddress: s.BusinessAddress,
		LogoURI:         s.LogoURI,
		SignatureURI:    s.SignatureURI,
	}
}

// BusinessSnapshot is the branding embedded in a receipt at creation time.
type BusinessSnapshot struct {
	BusinessName    string `json:"business_name,omitempty"`
	BusinessAddress string `json:"business_address,omitempty"`
	LogoURI         string `json:"logo_uri,omitempty"`
	SignatureURI    string `json:"signature_uri,omitempty"`
}
