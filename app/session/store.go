package session

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Jomy2323/dei-pms-submission/app/model"
)

// Record is one persisted session: who is logged in and under which role.
type Record struct {
	SessionID string       `json:"sessionId"`
	Person    model.Person `json:"person"`
	Role      model.Role   `json:"role"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Store is the durable session slot. Writes happen only on login and logout.
type Store interface {
	Save(rec Record) error
	Find(sessionID string) (*Record, error)
	Delete(sessionID string) error
}

// SQLStore keeps sessions in the local sqlite database so a portal restart
// does not force everyone to re-authenticate.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Save(rec Record) error {
	person, err := json.Marshal(rec.Person)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO sessions (id, person, role, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET person = excluded.person, role = excluded.role`,
		rec.SessionID, string(person), rec.Role.String(), rec.CreatedAt)
	return err
}

func (s *SQLStore) Find(sessionID string) (*Record, error) {
	var (
		rec       Record
		personRaw string
		role      string
	)
	err := s.db.QueryRow(`
		SELECT id, person, role, created_at FROM sessions WHERE id = ?`,
		sessionID).Scan(&rec.SessionID, &personRaw, &role, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(personRaw), &rec.Person); err != nil {
		return nil, err
	}
	rec.Role = model.Role(role)
	return &rec, nil
}

func (s *SQLStore) Delete(sessionID string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, sessionID)
	return err
}
