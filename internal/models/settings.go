package models

// Settings represents application-wide settings
type Settings struct {
	Timezone                  string `json:"timezone"`                     // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
	DefaultLeadDays           int    `json:"default_lead_days"`            // lead time applied to new worklets
	DefaultWeightUnit         string `json:"default_weight_unit"`          // unit label applied to new worklets
	IncludeDeadlineDayDefault bool   `json:"include_deadline_day_default"` // whether new worklets schedule work on the deadline day itself
	AutoBackup                bool   `json:"auto_backup"`                  // whether mutating commands create a backup first
}
