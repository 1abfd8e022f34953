package service

import (
	"context"
	"errors"
	"fmt"

	"event-hotels-backend/internal/model"
	"event-hotels-backend/internal/store"
)

// EnrollmentReader looks up a user's enrollment.
type EnrollmentReader interface {
	FindEnrollmentByUserID(ctx context.Context, userID int64) (*model.Enrollment, error)
}

// TicketReader lists the tickets of an enrollment.
type TicketReader interface {
	ListTicketsByEnrollmentID(ctx context.Context, enrollmentID int64) ([]model.Ticket, error)
}

// HotelReader reads hotels and rooms.
type HotelReader interface {
	ListHotels(ctx context.Context) ([]model.Hotel, error)
	ListRoomsByHotelID(ctx context.Context, hotelID int64) ([]model.Room, error)
	FindHotelByID(ctx context.Context, hotelID int64) (*model.Hotel, error)
}

type HotelService interface {
	GetHotels(ctx context.Context, userID int64) ([]model.Hotel, error)
	GetHotelsByHotelID(ctx context.Context, hotelID int64) ([]model.Room, error)
	ValidateHotelID(ctx context.Context, hotelID int64) (*model.Hotel, error)
	CheckEligibility(ctx context.Context, userID int64) (Eligibility, error)
}

type hotelService struct {
	enrollments EnrollmentReader
	tickets     TicketReader
	hotels      HotelReader
}

func NewHotelService(enrollments EnrollmentReader, tickets TicketReader, hotels HotelReader) HotelService {
	return &hotelService{
		enrollments: enrollments,
		tickets:     tickets,
		hotels:      hotels,
	}
}

// CheckEligibility walks enrollment then tickets and reports where the chain stopped.
// Data store failures are returned as errors; every other outcome is a state.
func (s *hotelService) CheckEligibility(ctx context.Context, userID int64) (Eligibility, error) {
	enrollment, err := s.enrollments.FindEnrollmentByUserID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return NoEnrollment, nil
	}
	if err != nil {
		return NoEnrollment, err
	}

	tickets, err := s.tickets.ListTicketsByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return NoTicket, err
	}
	return Evaluate(tickets), nil
}

// GetHotels returns every hotel, provided the user holds a paid ticket that includes lodging.
func (s *hotelService) GetHotels(ctx context.Context, userID int64) ([]model.Hotel, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: no authenticated user", ErrUnauthorized)
	}

	state, err := s.CheckEligibility(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state != Eligible {
		return nil, fmt.Errorf("%w: user %d is not eligible for hotels (%s)", ErrNotFound, userID, state)
	}

	hotels, err := s.hotels.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	if hotels == nil {
		hotels = []model.Hotel{}
	}
	return hotels, nil
}

// GetHotelsByHotelID returns the rooms of a hotel. A hotel with no rooms is reported
// the same way as a hotel that does not exist.
func (s *hotelService) GetHotelsByHotelID(ctx context.Context, hotelID int64) ([]model.Room, error) {
	rooms, err := s.hotels.ListRoomsByHotelID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: no rooms for hotel %d", ErrNotFound, hotelID)
	}
	return rooms, nil
}

func (s *hotelService) ValidateHotelID(ctx context.Context, hotelID int64) (*model.Hotel, error) {
	hotel, err := s.hotels.FindHotelByID(ctx, hotelID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: hotel %d", ErrNotFound, hotelID)
	}
	if err != nil {
		return nil, err
	}
	return hotel, nil
}
