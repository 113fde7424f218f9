package storage

import (
	"context"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

// InMemStorage is an append-only expense log that lives for one session.
type InMemStorage struct {
	expenses []expense.Record
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{expenses: make([]expense.Record, 0)}
}

func (s *InMemStorage) SaveExpense(_ context.Context, rec expense.Record) error {
	s.expenses = append(s.expenses, rec)
	return nil
}

// GetExpenses returns a copy of all records in insertion order.
func (s *InMemStorage) GetExpenses(_ context.Context) ([]expense.Record, error) {
	res := make([]expense.Record, len(s.expenses))
	copy(res, s.expenses)
	return res, nil
}

func (s *InMemStorage) Len() int {
	return len(s.expenses)
}
