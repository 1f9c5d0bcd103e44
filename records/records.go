// Package records keeps the staff records of a police station. The registry
// is shared by the whole process and created on first use.
package records

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jsando/patterns/singleton"
)

var ErrInvalidRank = errors.New("rank must be between 1 and 5")

type Person struct {
	Code      string
	FirstName string
	LastName  string
	ID        int
}

func (p Person) String() string {
	return fmt.Sprintf("%s %s (ID %d, code %s)", p.FirstName, p.LastName, p.ID, p.Code)
}

type Police struct {
	Person
	Age       int
	Rank      int
	Seniority int
	Salary    float64
}

// ComputeSalary sets Salary from rank and years of seniority.
func (p *Police) ComputeSalary() {
	p.Salary = float64(p.Rank * p.Seniority)
}

func (p Police) String() string {
	return fmt.Sprintf("%s, police officer, age %d, rank %d, seniority %d, salary %.2f",
		p.Person, p.Age, p.Rank, p.Seniority, p.Salary)
}

type Administrative struct {
	Person
	Position string
	Sector   string
}

func (a Administrative) String() string {
	return fmt.Sprintf("%s, administrative staff, sector %s, position %s", a.Person, a.Sector, a.Position)
}

// Registry holds the station's staff. All methods are safe for concurrent use.
type Registry struct {
	station string

	mu             sync.Mutex
	police         []*Police
	administrative []*Administrative
}

func NewRegistry(station string) *Registry {
	return &Registry{station: station}
}

func (r *Registry) Station() string {
	return r.station
}

func (r *Registry) RegisterPolice(p Police) error {
	if p.Rank < 1 || p.Rank > 5 {
		return fmt.Errorf("registering %s: %w (got %d)", p.Person, ErrInvalidRank, p.Rank)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.police = append(r.police, &p)
	return nil
}

func (r *Registry) RegisterAdministrative(a Administrative) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.administrative = append(r.administrative, &a)
}

func (r *Registry) ComputeSalaries() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.police {
		p.ComputeSalary()
	}
}

// PoliceByAge returns copies of the officers, youngest first.
func (r *Registry) PoliceByAge() []Police {
	return r.sortedPolice(func(a, b Police) int { return a.Age - b.Age })
}

// PoliceBySalary returns copies of the officers, lowest salary first.
func (r *Registry) PoliceBySalary() []Police {
	return r.sortedPolice(func(a, b Police) int {
		switch {
		case a.Salary < b.Salary:
			return -1
		case a.Salary > b.Salary:
			return 1
		}
		return 0
	})
}

// AdministrativeBySurname returns copies of the administrative staff sorted by last name.
func (r *Registry) AdministrativeBySurname() []Administrative {
	r.mu.Lock()
	out := make([]Administrative, 0, len(r.administrative))
	for _, a := range r.administrative {
		out = append(out, *a)
	}
	r.mu.Unlock()

	slices.SortStableFunc(out, func(a, b Administrative) int {
		return strings.Compare(a.LastName, b.LastName)
	})
	return out
}

func (r *Registry) sortedPolice(cmp func(a, b Police) int) []Police {
	r.mu.Lock()
	out := make([]Police, 0, len(r.police))
	for _, p := range r.police {
		out = append(out, *p)
	}
	r.mu.Unlock()

	slices.SortStableFunc(out, cmp)
	return out
}

var defaultRegistry singleton.Lazy[Registry]

// Default returns the process-wide registry. station names it on the first
// call only.
func Default(station string) *Registry {
	return defaultRegistry.MustGet(func() (*Registry, error) {
		return NewRegistry(station), nil
	})
}
