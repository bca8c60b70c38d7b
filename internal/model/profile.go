package model

// DailyGoals holds the per-day nutrition targets in grams.
type DailyGoals struct {
	Protein float64 `json:"protein"`
	Fiber   float64 `json:"fiber"`
}

// ReminderGroup is one independent set of daily reminders with an ordered
// list of HH:mm trigger times.
type ReminderGroup struct {
	Enabled bool     `json:"enabled"`
	Times   []string `json:"times"`
}

// NotificationSettings gates all reminders globally and per group.
type NotificationSettings struct {
	Enabled            bool          `json:"enabled"`
	InjectionReminders ReminderGroup `json:"injectionReminders"`
	NutritionReminders ReminderGroup `json:"nutritionReminders"`
}

// UserProfile is the single per-device settings record. At most one
// profile exists; absence means the user has not been onboarded yet.
// Edits replace the profile wholesale, there is no partial update.
type UserProfile struct {
	Name          string               `json:"name"`
	DailyGoals    DailyGoals           `json:"dailyGoals"`
	Notifications NotificationSettings `json:"notifications"`
	StartDate     string               `json:"startDate"`
}

// Default daily goals written by the profile initializer.
const (
	DefaultProteinGoal = 80
	DefaultFiberGoal   = 25
)

// DefaultProfile returns the profile written on first use. startDate is
// the local calendar day tracking began (YYYY-MM-DD).
func DefaultProfile(startDate string) UserProfile {
	return UserProfile{
		Name: "User",
		DailyGoals: DailyGoals{
			Protein: DefaultProteinGoal,
			Fiber:   DefaultFiberGoal,
		},
		Notifications: NotificationSettings{
			Enabled: true,
			InjectionReminders: ReminderGroup{
				Enabled: true,
				Times:   []string{"08:00", "20:00"},
			},
			NutritionReminders: ReminderGroup{
				Enabled: true,
				Times:   []string{"12:00", "19:00"},
			},
		},
		StartDate: startDate,
	}
}
