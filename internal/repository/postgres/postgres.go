package postgres

import (
	"database/sql"

	"sandevex-hiring-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.DispatchJournal
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:              db,
		DispatchJournal: NewDispatchJournal(db),
	}
}
