package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"event-hotels-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	ListHotels(ctx context.Context) ([]model.Hotel, error)
	ListRoomsByHotelID(ctx context.Context, hotelID int64) ([]model.Room, error)
	FindHotelByID(ctx context.Context, hotelID int64) (*model.Hotel, error)
	FindEnrollmentByUserID(ctx context.Context, userID int64) (*model.Enrollment, error)
	ListTicketsByEnrollmentID(ctx context.Context, enrollmentID int64) ([]model.Ticket, error)
	FindSessionByToken(ctx context.Context, token string) (*model.Session, error)
	Ping(ctx context.Context) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// ListHotels returns every hotel ordered by id. An empty table yields an empty slice.
func (s *gormStore) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	hotels := make([]model.Hotel, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

// ListRoomsByHotelID returns the rooms of a hotel with the hotel preloaded on each room.
func (s *gormStore) ListRoomsByHotelID(ctx context.Context, hotelID int64) ([]model.Room, error) {
	rooms := make([]model.Room, 0)
	err := s.db.WithContext(ctx).
		Preload("Hotel").
		Where("hotel_id = ?", hotelID).
		Order("id ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms for hotel %d: %w", hotelID, err)
	}
	return rooms, nil
}

// FindHotelByID returns ErrNotFound when no hotel has the given id.
func (s *gormStore) FindHotelByID(ctx context.Context, hotelID int64) (*model.Hotel, error) {
	var hotel model.Hotel
	if err := s.db.WithContext(ctx).First(&hotel, hotelID).Error; err != nil {
		return nil, notFound(err, "hotel %d", hotelID)
	}
	return &hotel, nil
}

// FindEnrollmentByUserID returns the user's most recent enrollment with its address.
func (s *gormStore) FindEnrollmentByUserID(ctx context.Context, userID int64) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := s.db.WithContext(ctx).
		Preload("Address").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&enrollment).Error
	if err != nil {
		return nil, notFound(err, "enrollment for user %d", userID)
	}
	return &enrollment, nil
}

// ListTicketsByEnrollmentID returns the enrollment's tickets, newest first, with their types.
func (s *gormStore) ListTicketsByEnrollmentID(ctx context.Context, enrollmentID int64) ([]model.Ticket, error) {
	tickets := make([]model.Ticket, 0)
	err := s.db.WithContext(ctx).
		Preload("TicketType").
		Where("enrollment_id = ?", enrollmentID).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets for enrollment %d: %w", enrollmentID, err)
	}
	return tickets, nil
}

func (s *gormStore) FindSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		return nil, notFound(err, "session")
	}
	return &session, nil
}

// Ping checks that the database is reachable.
func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// notFound translates gorm's record-not-found into ErrNotFound and wraps everything else.
func notFound(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}
