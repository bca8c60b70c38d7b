package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/monjauro/app/internal/model"
	"github.com/monjauro/app/internal/store"
)

const timeLayout = "15:04"

var (
	ErrDosageRequired  = errors.New("dosage is required")
	ErrInvalidSite     = errors.New("invalid injection site")
	ErrInvalidMealType = errors.New("invalid meal type")
)

// TrackerService owns the injection and nutrition collections. Records
// are created here with generated identifiers and the current local
// date/time, then handed to the injected stores.
type TrackerService struct {
	injections store.InjectionStore
	nutrition  store.NutritionStore
	now        func() time.Time
}

func NewTrackerService(injections store.InjectionStore, nutrition store.NutritionStore) *TrackerService {
	return &TrackerService{
		injections: injections,
		nutrition:  nutrition,
		now:        time.Now,
	}
}

// InjectionInput carries the form fields of a new injection record.
type InjectionInput struct {
	Medication string
	Dosage     string
	Site       string
	Notes      string
	PhotoURL   string
}

// LogInjection builds a complete record from in, stamped with a fresh
// uuid and the current wall-clock date/time, and persists it.
func (s *TrackerService) LogInjection(in InjectionInput) (*model.InjectionRecord, error) {
	if in.Dosage == "" {
		return nil, ErrDosageRequired
	}
	if !model.ValidSite(in.Site) {
		return nil, ErrInvalidSite
	}

	now := s.now()
	rec := model.InjectionRecord{
		ID:         uuid.New().String(),
		Date:       now.Format(dateLayout),
		Time:       now.Format(timeLayout),
		Medication: in.Medication,
		Dosage:     in.Dosage,
		Site:       in.Site,
		Notes:      in.Notes,
		PhotoURL:   in.PhotoURL,
	}
	if rec.Medication == "" {
		rec.Medication = model.MedicationMounjaro
	}

	err := s.injections.SaveInjection(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to save injection: %w", err)
	}
	return &rec, nil
}

// MealInput carries the form fields of a new nutrition entry. Protein and
// fiber arrive already parsed; the form layer maps unparsable input to
// zero before calling.
type MealInput struct {
	MealType    string
	Description string
	Protein     float64
	Fiber       float64
	Calories    *float64
}

func (s *TrackerService) LogMeal(in MealInput) (*model.NutritionEntry, error) {
	if !model.ValidMealType(in.MealType) {
		return nil, ErrInvalidMealType
	}

	entry := model.NutritionEntry{
		ID:          uuid.New().String(),
		Date:        s.now().Format(dateLayout),
		MealType:    in.MealType,
		Protein:     in.Protein,
		Fiber:       in.Fiber,
		Calories:    in.Calories,
		Description: in.Description,
	}

	err := s.nutrition.SaveNutritionEntry(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save nutrition entry: %w", err)
	}
	return &entry, nil
}

func (s *TrackerService) DeleteInjection(id string) error {
	return s.injections.DeleteInjection(id)
}

func (s *TrackerService) DeleteMeal(id string) error {
	return s.nutrition.DeleteNutritionEntry(id)
}

func (s *TrackerService) Injections() ([]model.InjectionRecord, error) {
	return s.injections.Injections()
}

// RecentInjections returns up to limit records, most recent first.
// limit <= 0 falls back to DefaultRecentLimit.
func (s *TrackerService) RecentInjections(limit int) ([]model.InjectionRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	records, err := s.injections.Injections()
	if err != nil {
		return nil, err
	}
	return RecentInjections(records, limit), nil
}

// TodayTotals sums protein and fiber over today's nutrition entries.
func (s *TrackerService) TodayTotals() (DayTotals, error) {
	entries, err := s.nutrition.NutritionEntries()
	if err != nil {
		return DayTotals{}, err
	}
	return TodayTotals(entries, s.now()), nil
}

// TodayEntries returns today's nutrition entries in insertion order.
func (s *TrackerService) TodayEntries() ([]model.NutritionEntry, error) {
	entries, err := s.nutrition.NutritionEntries()
	if err != nil {
		return nil, err
	}
	date := s.now().Format(dateLayout)
	today := []model.NutritionEntry{}
	for _, entry := range entries {
		if entry.Date == date {
			today = append(today, entry)
		}
	}
	return today, nil
}

// WeeklySeries returns the 7-day series ending today.
func (s *TrackerService) WeeklySeries() ([]DaySummary, error) {
	entries, err := s.nutrition.NutritionEntries()
	if err != nil {
		return nil, err
	}
	return WeeklySeries(entries, s.now()), nil
}
