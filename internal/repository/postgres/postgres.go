package postgres

import (
	"database/sql"

	"lankadrive-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CarRepository
	repository.BookingRepository
	repository.AgreementRepository
	repository.TestimonialRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		CarRepository:         NewCarRepository(db),
		BookingRepository:     NewBookingRepository(db),
		AgreementRepository:   NewAgreementRepository(db),
		TestimonialRepository: NewTestimonialRepository(db),
		UserRepository:        NewUserRepository(db),
	}
}
