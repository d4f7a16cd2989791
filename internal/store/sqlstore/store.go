package sqlstore

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"           // Postgres driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/kunukumikhil-byte/being-connected1/internal/models"
	"github.com/kunukumikhil-byte/being-connected1/internal/store"
)

// SQLStore implements store.Store on database/sql. The same code path serves
// postgres (DATABASE_URL) and sqlite (local/dev/tests); only placeholders and
// a few DDL keywords differ per driver.
type SQLStore struct {
	db         *sql.DB
	driverName string
}

var _ store.Store = (*SQLStore)(nil)

func New(driverName, dataSourceName string) (*SQLStore, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if driverName == "sqlite3" {
		// One connection keeps :memory: databases coherent and sidesteps
		// SQLITE_BUSY under concurrent writers.
		db.SetMaxOpenConns(1)
	}

	s := &SQLStore{db: db, driverName: driverName}
	if err := s.createTables(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) createTables() error {
	// Simplified for brevity, ideally use migrations
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		application_number TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS profiles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER REFERENCES users(id),
		about TEXT,
		linkedin TEXT,
		github TEXT,
		skills_teach TEXT,
		skills_learn TEXT
	);

	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sender_id INTEGER,
		receiver_id INTEGER,
		message TEXT NOT NULL
	);
	`

	if s.driverName == "postgres" {
		// Adjust for Postgres syntax
		query = strings.ReplaceAll(query, "INTEGER PRIMARY KEY AUTOINCREMENT", "SERIAL PRIMARY KEY")
	}

	_, err := s.db.Exec(query)
	return err
}

// Helper to handle placeholders
func (s *SQLStore) rebind(query string) string {
	if s.driverName == "postgres" {
		// Replace ? with $1, $2, etc.
		n := strings.Count(query, "?")
		for i := 1; i <= n; i++ {
			query = strings.Replace(query, "?", fmt.Sprintf("$%d", i), 1)
		}
	}
	return query
}

func (s *SQLStore) CreateUser(name, applicationNumber, password string) (*models.User, error) {
	// The UNIQUE constraint is the real guard; this pre-check keeps the error
	// distinguishable across both drivers.
	var count int
	query := s.rebind("SELECT COUNT(*) FROM users WHERE application_number = ?")
	if err := s.db.QueryRow(query, applicationNumber).Scan(&count); err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, store.ErrDuplicateApplicationNumber
	}

	user := &models.User{Name: name, ApplicationNumber: applicationNumber, Password: password}
	query = s.rebind("INSERT INTO users (name, application_number, password) VALUES (?, ?, ?) RETURNING id")
	if err := s.db.QueryRow(query, name, applicationNumber, password).Scan(&user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *SQLStore) GetUserByCredentials(applicationNumber, password string) (*models.User, error) {
	var user models.User
	query := s.rebind("SELECT id, name, application_number, password FROM users WHERE application_number = ? AND password = ?")
	err := s.db.QueryRow(query, applicationNumber, password).Scan(&user.ID, &user.Name, &user.ApplicationNumber, &user.Password)
	if err == sql.ErrNoRows {
		return nil, store.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) GetUserByID(id int) (*models.User, error) {
	var user models.User
	query := s.rebind("SELECT id, name, application_number, password FROM users WHERE id = ?")
	err := s.db.QueryRow(query, id).Scan(&user.ID, &user.Name, &user.ApplicationNumber, &user.Password)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) ListOtherUsers(selfID int) ([]models.User, error) {
	query := s.rebind("SELECT id, name, application_number FROM users WHERE id != ? ORDER BY id ASC")
	rows, err := s.db.Query(query, selfID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.ApplicationNumber); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *SQLStore) GetProfile(userID int) (*models.Profile, error) {
	var p models.Profile
	query := s.rebind(`
		SELECT id, user_id, COALESCE(about, ''), COALESCE(linkedin, ''), COALESCE(github, ''),
		       COALESCE(skills_teach, ''), COALESCE(skills_learn, '')
		FROM profiles WHERE user_id = ?
	`)
	err := s.db.QueryRow(query, userID).Scan(&p.ID, &p.UserID, &p.About, &p.LinkedIn, &p.GitHub, &p.SkillsTeach, &p.SkillsLearn)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile is an atomic update-or-insert keyed on user_id. Running both
// statements in one transaction guarantees at most one profile row per user
// even under concurrent saves.
func (s *SQLStore) SaveProfile(userID int, fields store.ProfileFields) (*models.Profile, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := s.rebind(`
		UPDATE profiles SET about = ?, linkedin = ?, github = ?, skills_teach = ?, skills_learn = ?
		WHERE user_id = ?
	`)
	result, err := tx.Exec(query, fields.About, fields.LinkedIn, fields.GitHub, fields.SkillsTeach, fields.SkillsLearn, userID)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	p := &models.Profile{
		UserID:      userID,
		About:       fields.About,
		LinkedIn:    fields.LinkedIn,
		GitHub:      fields.GitHub,
		SkillsTeach: fields.SkillsTeach,
		SkillsLearn: fields.SkillsLearn,
	}

	if affected == 0 {
		query = s.rebind(`
			INSERT INTO profiles (user_id, about, linkedin, github, skills_teach, skills_learn)
			VALUES (?, ?, ?, ?, ?, ?) RETURNING id
		`)
		err = tx.QueryRow(query, userID, fields.About, fields.LinkedIn, fields.GitHub, fields.SkillsTeach, fields.SkillsLearn).Scan(&p.ID)
	} else {
		query = s.rebind("SELECT id FROM profiles WHERE user_id = ?")
		err = tx.QueryRow(query, userID).Scan(&p.ID)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *SQLStore) SaveMessage(senderID, receiverID int, body string) (*models.Message, error) {
	msg := &models.Message{SenderID: senderID, ReceiverID: receiverID, Body: body}
	query := s.rebind("INSERT INTO messages (sender_id, receiver_id, message) VALUES (?, ?, ?) RETURNING id")
	if err := s.db.QueryRow(query, senderID, receiverID, body).Scan(&msg.ID); err != nil {
		return nil, err
	}
	return msg, nil
}

// MessagesBetween returns both directions of the pair in creation order; the
// result is the same whichever way the arguments are passed.
func (s *SQLStore) MessagesBetween(a, b int) ([]models.Message, error) {
	query := s.rebind(`
		SELECT id, sender_id, receiver_id, message
		FROM messages
		WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
		ORDER BY id ASC
	`)
	rows, err := s.db.Query(query, a, b, b, a)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Body); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
