package model

// Medication options offered by the injection form. Free text is still
// accepted for records imported from elsewhere.
const (
	MedicationMounjaro = "Mounjaro"
	MedicationOzempic  = "Ozempic"
	MedicationWegovy   = "Wegovy"
	MedicationSaxenda  = "Saxenda"
	MedicationOther    = "Other"
)

// Injection sites (fixed vocabulary).
const (
	SiteAbdomen = "abdomen"
	SiteThigh   = "thigh"
	SiteArm     = "arm"
	SiteGlute   = "glute"
)

// Medications lists the selectable medication names in form order.
var Medications = []string{
	MedicationMounjaro,
	MedicationOzempic,
	MedicationWegovy,
	MedicationSaxenda,
	MedicationOther,
}

// Sites lists the selectable injection sites in form order.
var Sites = []string{SiteAbdomen, SiteThigh, SiteArm, SiteGlute}

// InjectionRecord is one logged medication administration. Records are
// immutable after creation and are only ever deleted by ID.
//
// Date is a local calendar day (YYYY-MM-DD) and Time a 24-hour wall-clock
// time (HH:mm). No timezone is modeled.
type InjectionRecord struct {
	ID         string `json:"id" db:"id"`
	Date       string `json:"date" db:"date"`
	Time       string `json:"time" db:"time"`
	Medication string `json:"medication" db:"medication"`
	Dosage     string `json:"dosage" db:"dosage"`
	Site       string `json:"location,omitempty" db:"site"`
	Notes      string `json:"notes,omitempty" db:"notes"`
	// PhotoURL holds the photo as an embedded data URI, not a reference
	// to external blob storage.
	PhotoURL string `json:"photoUrl,omitempty" db:"photo_url"`
}

// ValidSite reports whether site is part of the fixed vocabulary.
// The empty string is valid (the site is optional).
func ValidSite(site string) bool {
	if site == "" {
		return true
	}
	for _, s := range Sites {
		if s == site {
			return true
		}
	}
	return false
}
