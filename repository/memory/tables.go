package memory

import (
	"context"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type TableStore struct{ db *DB }

func (s *TableStore) ListTables(_ context.Context) ([]models.Table, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := make([]models.Table, 0, len(s.db.tables))
	for _, t := range s.db.tables {
		out = append(out, cloneTable(t))
	}
	return out, nil
}

func (s *TableStore) InsertTable(_ context.Context, table models.Table) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, t := range s.db.tables {
		if t.TableID == table.TableID {
			return models.WriteResult{}, models.ErrDuplicate
		}
	}
	s.db.tables = append(s.db.tables, cloneTable(table))
	return models.WriteResult{InsertedID: table.TableID}, nil
}

func (s *TableStore) FindTable(_ context.Context, tableID string) (*models.Table, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, t := range s.db.tables {
		if t.TableID == tableID {
			table := cloneTable(t)
			return &table, nil
		}
	}
	return nil, models.ErrNotFound
}

// FindAvailable mirrors the MongoDB filter
// {$or: [{date: {$ne: d}}, {time: {$ne: t}}]} on the booking list, where
// $ne on an array field means no element equals the value.
func (s *TableStore) FindAvailable(_ context.Context, date, slot string) ([]models.Table, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := []models.Table{}
	for _, t := range s.db.tables {
		dateTaken, slotTaken := false, false
		for _, b := range t.BookingList {
			if b.ReservationDate == date {
				dateTaken = true
			}
			if b.Time == slot {
				slotTaken = true
			}
		}
		if !dateTaken || !slotTaken {
			out = append(out, cloneTable(t))
		}
	}
	return out, nil
}

// AppendBooking upserts: an unknown table id creates a table holding only
// the booking.
func (s *TableStore) AppendBooking(_ context.Context, tableID string, booking models.Booking) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.tables {
		if s.db.tables[i].TableID == tableID {
			s.db.tables[i].BookingList = append(s.db.tables[i].BookingList, booking)
			return models.WriteResult{Matched: 1, Modified: 1}, nil
		}
	}
	s.db.tables = append(s.db.tables, models.Table{TableID: tableID, BookingList: []models.Booking{booking}})
	return models.WriteResult{Upserted: 1}, nil
}

func (s *TableStore) BookingsByOwner(_ context.Context, email string) ([]models.Booking, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := []models.Booking{}
	for _, t := range s.db.tables {
		for _, b := range t.BookingList {
			if b.OwnerEmail == email {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

func (s *TableStore) AllBookings(_ context.Context) ([]models.BookingWithTable, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := []models.BookingWithTable{}
	for _, t := range s.db.tables {
		for _, b := range t.BookingList {
			out = append(out, models.BookingWithTable{TableID: t.TableID, TableName: t.Name, Booking: b})
		}
	}
	return out, nil
}

func (s *TableStore) SetBookingStatus(_ context.Context, tableID, bookingID, email, status string) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.tables {
		if s.db.tables[i].TableID != tableID {
			continue
		}
		list := s.db.tables[i].BookingList
		for j := range list {
			if list[j].BookingID == bookingID && list[j].OwnerEmail == email {
				res := models.WriteResult{Matched: 1}
				if list[j].Status != status {
					list[j].Status = status
					res.Modified = 1
				}
				return res, nil
			}
		}
	}
	return models.WriteResult{}, nil
}
