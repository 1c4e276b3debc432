package domain

// Settings is the store-operator configuration, persisted as a single
// document and editable from the admin surface.
type Settings struct {
	StoreName         string `json:"storeName" mapstructure:"storeName"`
	MinItems          int    `json:"minItems" mapstructure:"minItems"`
	DiscountPercent   int    `json:"discountPercent" mapstructure:"discountPercent"`
	InactivityTimeout int    `json:"inactivityTimeout" mapstructure:"inactivityTimeout"` // seconds
	ImagePath         string `json:"imagePath" mapstructure:"imagePath"`
}

// DefaultSettings returns the values used when no settings document exists.
func DefaultSettings() Settings {
	return Settings{
		StoreName:         "Amine Games & Services",
		MinItems:          3,
		DiscountPercent:   10,
		InactivityTimeout: 900,
		ImagePath:         "uploads/images/",
	}
}

// Normalize replaces out-of-range values with defaults so a partially filled
// settings document never breaks the checkout gating rules.
func (s *Settings) Normalize() {
	def := DefaultSettings()
	if s.StoreName == "" {
		s.StoreName = def.StoreName
	}
	if s.MinItems < 1 {
		s.MinItems = def.MinItems
	}
	if s.DiscountPercent < 0 || s.DiscountPercent > 100 {
		s.DiscountPercent = def.DiscountPercent
	}
	if s.InactivityTimeout < 1 {
		s.InactivityTimeout = def.InactivityTimeout
	}
	if s.ImagePath == "" {
		s.ImagePath = def.ImagePath
	}
}
