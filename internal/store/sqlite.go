package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/monjauro/app/internal/db"
	"github.com/monjauro/app/internal/model"
)

// DBStore persists the collections in a relational database via sqlx.
// SQLite is the default driver; pgx works the same way. Row order follows
// the insertion sequence so collection reads keep append order.
type DBStore struct {
	db *sqlx.DB
}

func NewDBStore(driver, connection string) (*DBStore, error) {
	database, err := db.Init(driver, connection)
	if err != nil {
		return nil, err
	}

	err = db.RunMigrations(database.DB, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DBStore{db: database}, nil
}

func (s *DBStore) SaveInjection(rec model.InjectionRecord) error {
	query := `INSERT INTO injections (id, date, time, medication, dosage, site, notes, photo_url)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.Exec(query,
		rec.ID,
		rec.Date,
		rec.Time,
		rec.Medication,
		rec.Dosage,
		rec.Site,
		rec.Notes,
		rec.PhotoURL,
	)

	return err
}

func (s *DBStore) Injections() ([]model.InjectionRecord, error) {
	records := []model.InjectionRecord{}
	err := s.db.Select(&records, `SELECT id, date, time, medication, dosage, site, notes, photo_url FROM injections ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *DBStore) DeleteInjection(id string) error {
	// Unknown ids are a no-op, so RowsAffected is not checked.
	_, err := s.db.Exec(`DELETE FROM injections WHERE id = $1`, id)
	return err
}

func (s *DBStore) SaveNutritionEntry(entry model.NutritionEntry) error {
	query := `INSERT INTO nutrition_entries (id, date, meal_type, protein, fiber, calories, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.Exec(query,
		entry.ID,
		entry.Date,
		entry.MealType,
		entry.Protein,
		entry.Fiber,
		entry.Calories,
		entry.Description,
	)

	return err
}

func (s *DBStore) NutritionEntries() ([]model.NutritionEntry, error) {
	entries := []model.NutritionEntry{}
	err := s.db.Select(&entries, `SELECT id, date, meal_type, protein, fiber, calories, description FROM nutrition_entries ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *DBStore) DeleteNutritionEntry(id string) error {
	_, err := s.db.Exec(`DELETE FROM nutrition_entries WHERE id = $1`, id)
	return err
}

// profileRow maps the singleton profile table. Nested notification
// settings are stored as a JSON column rather than flattened tables.
type profileRow struct {
	Name          string  `db:"name"`
	ProteinGoal   float64 `db:"protein_goal"`
	FiberGoal     float64 `db:"fiber_goal"`
	Notifications string  `db:"notifications"`
	StartDate     string  `db:"start_date"`
}

func (s *DBStore) SaveProfile(profile model.UserProfile) error {
	notifications, err := json.Marshal(profile.Notifications)
	if err != nil {
		return fmt.Errorf("failed to encode notifications: %w", err)
	}

	query := `INSERT INTO profiles (id, name, protein_goal, fiber_goal, notifications, start_date)
	          VALUES (1, $1, $2, $3, $4, $5)
	          ON CONFLICT (id) DO UPDATE SET
	              name = excluded.name,
	              protein_goal = excluded.protein_goal,
	              fiber_goal = excluded.fiber_goal,
	              notifications = excluded.notifications,
	              start_date = excluded.start_date`

	_, err = s.db.Exec(query,
		profile.Name,
		profile.DailyGoals.Protein,
		profile.DailyGoals.Fiber,
		string(notifications),
		profile.StartDate,
	)

	return err
}

func (s *DBStore) Profile() (*model.UserProfile, error) {
	var row profileRow
	err := s.db.Get(&row, `SELECT name, protein_goal, fiber_goal, notifications, start_date FROM profiles WHERE id = 1`)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	profile := model.UserProfile{
		Name: row.Name,
		DailyGoals: model.DailyGoals{
			Protein: row.ProteinGoal,
			Fiber:   row.FiberGoal,
		},
		StartDate: row.StartDate,
	}
	err = json.Unmarshal([]byte(row.Notifications), &profile.Notifications)
	if err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}

	return &profile, nil
}

func (s *DBStore) Close() error {
	return s.db.Close()
}

var _ Store = (*DBStore)(nil)
