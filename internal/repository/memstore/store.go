// Package memstore is the process-lifetime entity store. Collections live in
// mutex-guarded maps keyed by monotonically increasing positive integers; ids
// are never reused within a process and nothing survives a restart. References
// between entities are stored as given, without foreign-key checks, and
// deletes do not cascade.
package memstore

import (
	"sync"
	"time"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
)

// table is one entity collection. Reads and writes are atomic per call; there
// are no multi-step transactions.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int]T
	order  []int
	nextID int
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[int]T), nextID: 1}
}

func (t *table[T]) insert(build func(id int) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++

	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *table[T]) get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) update(id int, merge func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}

	row = merge(row)
	t.rows[id] = row
	return row, true
}

func (t *table[T]) delete(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Store holds every entity collection for one server process.
type Store struct {
	rabbits   table[models.Rabbit]
	breeding  table[models.BreedingRecord]
	offspring table[models.Offspring]
	expenses  table[models.Expense]
	butcher   table[models.ButcherRecord]

	now func() time.Time
}

// New builds an empty store.
func New() *Store {
	return &Store{
		rabbits:   newTable[models.Rabbit](),
		breeding:  newTable[models.BreedingRecord](),
		offspring: newTable[models.Offspring](),
		expenses:  newTable[models.Expense](),
		butcher:   newTable[models.ButcherRecord](),
		now:       time.Now,
	}
}

// Rabbits lists every rabbit in id order.
func (s *Store) Rabbits() []models.Rabbit { return s.rabbits.list() }

// Rabbit fetches one rabbit; ok is false when the id is unknown.
func (s *Store) Rabbit(id int) (models.Rabbit, bool) { return s.rabbits.get(id) }

// CreateRabbit inserts a rabbit, defaulting status to active.
func (s *Store) CreateRabbit(in models.InsertRabbit) models.Rabbit {
	status := in.Status
	if status == "" {
		status = models.RabbitActive
	}
	return s.rabbits.insert(func(id int) models.Rabbit {
		return models.Rabbit{
			ID:              id,
			Name:            in.Name,
			Breed:           in.Breed,
			Gender:          in.Gender,
			BirthDate:       in.BirthDate,
			Weight:          in.Weight,
			Color:           in.Color,
			Status:          status,
			IsBreeder:       in.IsBreeder,
			MotherID:        in.MotherID,
			FatherID:        in.FatherID,
			PhotoURL:        in.PhotoURL,
			LastHealthCheck: in.LastHealthCheck,
			Notes:           in.Notes,
			CreatedAt:       s.now().UTC(),
		}
	})
}

// UpdateRabbit merges the non-nil patch fields into an existing rabbit.
func (s *Store) UpdateRabbit(id int, patch models.RabbitPatch) (models.Rabbit, bool) {
	return s.rabbits.update(id, func(r models.Rabbit) models.Rabbit {
		setString(&r.Name, patch.Name)
		setString(&r.Breed, patch.Breed)
		setString(&r.Gender, patch.Gender)
		setString(&r.BirthDate, patch.BirthDate)
		setOptional(&r.Weight, patch.Weight)
		setOptional(&r.Color, patch.Color)
		setString(&r.Status, patch.Status)
		if patch.IsBreeder != nil {
			r.IsBreeder = *patch.IsBreeder
		}
		setOptional(&r.MotherID, patch.MotherID)
		setOptional(&r.FatherID, patch.FatherID)
		setOptional(&r.PhotoURL, patch.PhotoURL)
		setOptional(&r.LastHealthCheck, patch.LastHealthCheck)
		setOptional(&r.Notes, patch.Notes)
		return r
	})
}

// DeleteRabbit removes a rabbit. Breeding records referencing it are left
// untouched.
func (s *Store) DeleteRabbit(id int) bool { return s.rabbits.delete(id) }

// BreedingRecords lists every breeding record in id order.
func (s *Store) BreedingRecords() []models.BreedingRecord { return s.breeding.list() }

// BreedingRecord fetches one record; ok is false when the id is unknown.
func (s *Store) BreedingRecord(id int) (models.BreedingRecord, bool) { return s.breeding.get(id) }

// CreateBreedingRecord inserts a record, defaulting status to expecting.
func (s *Store) CreateBreedingRecord(in models.InsertBreedingRecord) models.BreedingRecord {
	status := in.Status
	if status == "" {
		status = models.BreedingExpecting
	}
	return s.breeding.insert(func(id int) models.BreedingRecord {
		return models.BreedingRecord{
			ID:                 id,
			MotherID:           in.MotherID,
			FatherID:           in.FatherID,
			MatingDate:         in.MatingDate,
			ExpectedKindleDate: in.ExpectedKindleDate,
			ActualKindleDate:   in.ActualKindleDate,
			NestBoxDate:        in.NestBoxDate,
			LitterSize:         in.LitterSize,
			KitsAlive:          in.KitsAlive,
			Status:             status,
			Notes:              in.Notes,
			CreatedAt:          s.now().UTC(),
		}
	})
}

// UpdateBreedingRecord merges the non-nil patch fields into an existing record.
func (s *Store) UpdateBreedingRecord(id int, patch models.BreedingRecordPatch) (models.BreedingRecord, bool) {
	return s.breeding.update(id, func(r models.BreedingRecord) models.BreedingRecord {
		setInt(&r.MotherID, patch.MotherID)
		setInt(&r.FatherID, patch.FatherID)
		setString(&r.MatingDate, patch.MatingDate)
		setString(&r.ExpectedKindleDate, patch.ExpectedKindleDate)
		setOptional(&r.ActualKindleDate, patch.ActualKindleDate)
		setOptional(&r.NestBoxDate, patch.NestBoxDate)
		setOptional(&r.LitterSize, patch.LitterSize)
		setOptional(&r.KitsAlive, patch.KitsAlive)
		setString(&r.Status, patch.Status)
		setOptional(&r.Notes, patch.Notes)
		return r
	})
}

// DeleteBreedingRecord removes a record; its offspring rows are kept.
func (s *Store) DeleteBreedingRecord(id int) bool { return s.breeding.delete(id) }

// Offspring lists every offspring in id order.
func (s *Store) Offspring() []models.Offspring { return s.offspring.list() }

// OffspringByBreedingRecord lists the litter of one breeding record.
func (s *Store) OffspringByBreedingRecord(breedingRecordID int) []models.Offspring {
	all := s.offspring.list()
	out := make([]models.Offspring, 0, len(all))
	for _, o := range all {
		if o.BreedingRecordID == breedingRecordID {
			out = append(out, o)
		}
	}
	return out
}

// CreateOffspring inserts a kit, defaulting status to alive.
func (s *Store) CreateOffspring(in models.InsertOffspring) models.Offspring {
	status := in.Status
	if status == "" {
		status = models.OffspringAlive
	}
	return s.offspring.insert(func(id int) models.Offspring {
		return models.Offspring{
			ID:               id,
			BreedingRecordID: in.BreedingRecordID,
			Gender:           in.Gender,
			Weight:           in.Weight,
			Color:            in.Color,
			Status:           status,
			SalePrice:        in.SalePrice,
			SaleDate:         in.SaleDate,
			Notes:            in.Notes,
			CreatedAt:        s.now().UTC(),
		}
	})
}

// UpdateOffspring merges the non-nil patch fields into an existing kit.
func (s *Store) UpdateOffspring(id int, patch models.OffspringPatch) (models.Offspring, bool) {
	return s.offspring.update(id, func(o models.Offspring) models.Offspring {
		if patch.BreedingRecordID != nil {
			o.BreedingRecordID = *patch.BreedingRecordID
		}
		setOptional(&o.Gender, patch.Gender)
		setOptional(&o.Weight, patch.Weight)
		setOptional(&o.Color, patch.Color)
		setString(&o.Status, patch.Status)
		setOptional(&o.SalePrice, patch.SalePrice)
		setOptional(&o.SaleDate, patch.SaleDate)
		setOptional(&o.Notes, patch.Notes)
		return o
	})
}

// DeleteOffspring removes a kit.
func (s *Store) DeleteOffspring(id int) bool { return s.offspring.delete(id) }

// Expenses lists every expense in id order.
func (s *Store) Expenses() []models.Expense { return s.expenses.list() }

// ExpensesByDateRange lists expenses with startDate <= date <= endDate,
// compared lexically on the ISO strings.
func (s *Store) ExpensesByDateRange(startDate, endDate string) []models.Expense {
	all := s.expenses.list()
	out := make([]models.Expense, 0, len(all))
	for _, e := range all {
		if e.Date >= startDate && e.Date <= endDate {
			out = append(out, e)
		}
	}
	return out
}

// CreateExpense inserts an expense.
func (s *Store) CreateExpense(in models.InsertExpense) models.Expense {
	return s.expenses.insert(func(id int) models.Expense {
		return models.Expense{
			ID:          id,
			Category:    in.Category,
			Subcategory: in.Subcategory,
			Description: in.Description,
			Amount:      in.Amount,
			Date:        in.Date,
			Vendor:      in.Vendor,
			Notes:       in.Notes,
			CreatedAt:   s.now().UTC(),
		}
	})
}

// UpdateExpense merges the non-nil patch fields into an existing expense.
func (s *Store) UpdateExpense(id int, patch models.ExpensePatch) (models.Expense, bool) {
	return s.expenses.update(id, func(e models.Expense) models.Expense {
		setString(&e.Category, patch.Category)
		setOptional(&e.Subcategory, patch.Subcategory)
		setString(&e.Description, patch.Description)
		setString(&e.Amount, patch.Amount)
		setString(&e.Date, patch.Date)
		setOptional(&e.Vendor, patch.Vendor)
		setOptional(&e.Notes, patch.Notes)
		return e
	})
}

// DeleteExpense removes an expense.
func (s *Store) DeleteExpense(id int) bool { return s.expenses.delete(id) }

// ButcherRecords lists every butcher record in id order.
func (s *Store) ButcherRecords() []models.ButcherRecord { return s.butcher.list() }

// CreateButcherRecord inserts a butcher record.
func (s *Store) CreateButcherRecord(in models.InsertButcherRecord) models.ButcherRecord {
	return s.butcher.insert(func(id int) models.ButcherRecord {
		return models.ButcherRecord{
			ID:               id,
			RabbitID:         in.RabbitID,
			OffspringID:      in.OffspringID,
			ButcherDate:      in.ButcherDate,
			LiveWeight:       in.LiveWeight,
			DressedWeight:    in.DressedWeight,
			ProcessingNotes:  in.ProcessingNotes,
			MeatDistribution: in.MeatDistribution,
			TotalValue:       in.TotalValue,
			CreatedAt:        s.now().UTC(),
		}
	})
}

// UpdateButcherRecord merges the non-nil patch fields into an existing record.
func (s *Store) UpdateButcherRecord(id int, patch models.ButcherRecordPatch) (models.ButcherRecord, bool) {
	return s.butcher.update(id, func(b models.ButcherRecord) models.ButcherRecord {
		setOptional(&b.RabbitID, patch.RabbitID)
		setOptional(&b.OffspringID, patch.OffspringID)
		setString(&b.ButcherDate, patch.ButcherDate)
		setOptional(&b.LiveWeight, patch.LiveWeight)
		setOptional(&b.DressedWeight, patch.DressedWeight)
		setOptional(&b.ProcessingNotes, patch.ProcessingNotes)
		if patch.MeatDistribution != nil {
			b.MeatDistribution = patch.MeatDistribution
		}
		setOptional(&b.TotalValue, patch.TotalValue)
		return b
	})
}

// DeleteButcherRecord removes a butcher record.
func (s *Store) DeleteButcherRecord(id int) bool { return s.butcher.delete(id) }

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// setOptional overwrites an optional field when the patch carries a value.
func setOptional[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
