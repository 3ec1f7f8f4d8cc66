package db

import (
	"database/sql"
	"log"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Jomy2323/dei-pms-submission/config"
)

var DB *sql.DB

// ConnectDB opens the local sqlite file backing the session slot. It is the
// portal's only durable state; everything else lives in the DMS backend.
func ConnectDB() {
	path := config.Env.SessionDB
	if path == "" {
		path = "./sessions.db"
	}

	var err error
	DB, err = sql.Open("sqlite3", path)
	if err != nil {
		log.Fatal("Failed to open session database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate session database:", err)
	}

	log.Println("Connected to session database:", path)
}

// Migrate creates the sessions table when missing.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id         TEXT PRIMARY KEY,
			person     TEXT NOT NULL,
			role       TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`)
	return err
}

func GetDB() *sql.DB {
	return DB
}
