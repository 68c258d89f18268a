package receipt

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator generates opaque unique ids for receipts
type IDGenerator interface {
	Generate() string
}

// uuidGenerator generates random UUIDv4 ids
type uuidGenerator struct{}

func (g *uuidGenerator) Generate() string {
	return uuid.NewString()
}

// Service handles receipt processing and point lookups
type Service struct {
	store       Store
	idGenerator IDGenerator
}

// NewService creates a new Service with the default UUID id generator
func NewService(store Store) *Service {
	return &Service{
		store:       store,
		idGenerator: &uuidGenerator{},
	}
}

// NewServiceWithDeps creates a new Service with a custom id generator for testing
func NewServiceWithDeps(store Store, idGen IDGenerator) *Service {
	return &Service{
		store:       store,
		idGenerator: idGen,
	}
}

// ProcessReceipt validates a submitted receipt, scores it, and stores the
// result under a freshly generated id. On validation failure the returned
// error is a *ValidationError and nothing is stored.
func (s *Service) ProcessReceipt(r Receipt) (string, error) {
	if err := Validate(r); err != nil {
		return "", err
	}

	points, err := Points(r)
	if err != nil {
		return "", fmt.Errorf("scoring receipt: %w", err)
	}

	id := s.idGenerator.Generate()
	record := &Record{
		ID:      id,
		Receipt: r,
		Points:  points,
	}
	if err := s.store.SaveRecord(record); err != nil {
		return "", fmt.Errorf("saving receipt: %w", err)
	}

	return id, nil
}

// GetPoints returns the points previously computed for an id. Surrounding
// quote characters are stripped first; some clients send ids still wrapped
// in the quotes from the process response.
func (s *Service) GetPoints(id string) (int, error) {
	id = strings.Trim(id, `"`)

	record, err := s.store.GetRecord(id)
	if err != nil {
		return 0, err
	}
	return record.Points, nil
}
