package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/FahimDeveloper/restaurant-management-server/logger"
	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type ReservationService struct {
	tables TableStore
	log    *logger.Logger
	now    func() time.Time
}

func NewReservationService(tables TableStore, log *logger.Logger) *ReservationService {
	return &ReservationService{tables: tables, log: log, now: time.Now}
}

// FindAvailableTables lists tables that are free for date and slot. A table
// is left out only when some booking has the date and some booking, not
// necessarily the same one, has the slot.
func (s *ReservationService) FindAvailableTables(ctx context.Context, date, slot string) ([]models.Table, error) {
	if date == "" || slot == "" {
		return nil, invalid("date and time are required")
	}
	tables, err := s.tables.FindAvailable(ctx, date, slot)
	if err != nil {
		return nil, fmt.Errorf("find available tables: %w", err)
	}
	return tables, nil
}

// ReserveTable appends booking to the table's history as pending. Repeated
// calls add repeated entries. The table name comes from the stored table,
// or stays empty when the table id is unknown and the append creates it.
func (s *ReservationService) ReserveTable(ctx context.Context, tableID, email string, booking models.Booking) (models.WriteResult, error) {
	if tableID == "" {
		return models.WriteResult{}, invalid("table id is required")
	}
	if err := validateStruct(booking); err != nil {
		return models.WriteResult{}, err
	}

	booking.BookingID = uuid.NewString()
	booking.TableID = tableID
	booking.OwnerEmail = email
	booking.BookingDate = s.now().UTC()
	booking.Status = models.BookingPending
	booking.TableName = ""

	table, err := s.tables.FindTable(ctx, tableID)
	switch {
	case err == nil:
		booking.TableName = table.Name
	case !errors.Is(err, models.ErrNotFound):
		return models.WriteResult{}, fmt.Errorf("find table: %w", err)
	}

	res, err := s.tables.AppendBooking(ctx, tableID, booking)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("append booking: %w", err)
	}
	res.InsertedID = booking.BookingID
	return res, nil
}

func (s *ReservationService) ListUserBookings(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.tables.BookingsByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", email, err)
	}
	return bookings, nil
}

func (s *ReservationService) ListAllBookings(ctx context.Context) ([]models.BookingWithTable, error) {
	bookings, err := s.tables.AllBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all bookings: %w", err)
	}
	return bookings, nil
}

// SetBookingStatus changes the status of the booking identified by
// (tableID, bookingID, email). An unresolved key yields a zero-match result.
func (s *ReservationService) SetBookingStatus(ctx context.Context, tableID, bookingID, email, status string) (models.WriteResult, error) {
	if !models.ValidBookingStatus(status) {
		return models.WriteResult{}, invalid("unknown booking status %q", status)
	}

	res, err := s.tables.SetBookingStatus(ctx, tableID, bookingID, email, status)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("set booking status: %w", err)
	}
	if res.Matched == 0 {
		s.log.Debug("set_booking_status", "", "no booking matched",
			slog.String("table_id", tableID), slog.String("booking_id", bookingID))
	}
	return res, nil
}

// CancelOwnBooking is the customer side of SetBookingStatus: the only
// transition a customer may make is to cancelled.
func (s *ReservationService) CancelOwnBooking(ctx context.Context, tableID, bookingID, email, status string) (models.WriteResult, error) {
	if status != models.BookingCancelled {
		return models.WriteResult{}, invalid("customers can only cancel a booking, not set it to %q", status)
	}
	return s.SetBookingStatus(ctx, tableID, bookingID, email, status)
}

func (s *ReservationService) ListTables(ctx context.Context) ([]models.Table, error) {
	tables, err := s.tables.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

func (s *ReservationService) CreateTable(ctx context.Context, table models.Table) (models.Table, error) {
	if err := validateStruct(table); err != nil {
		return models.Table{}, err
	}
	table.ID = primitive.NewObjectID()
	table.TableID = table.ID.Hex()
	table.BookingList = []models.Booking{}

	if _, err := s.tables.InsertTable(ctx, table); err != nil {
		return models.Table{}, fmt.Errorf("insert table: %w", err)
	}
	return table, nil
}
