// Package project holds the project data captured by the UI: the transient
// Draft handed to save callbacks and the in-memory Store the app keeps for
// the lifetime of one run.
package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/planboard/internal/errors"
)

// DueDateLayout is the format of Draft.DueDate.
const DueDateLayout = "2006-01-02"

// Draft is the raw, unvalidated set of values captured by the new-project form.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

// Due parses DueDate. It reports false when the date is empty or malformed.
func (d Draft) Due() (time.Time, bool) {
	if d.DueDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DueDateLayout, d.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsEmpty reports whether every field is blank.
func (d Draft) IsEmpty() bool {
	return d.Title == "" && d.Description == "" && d.DueDate == ""
}

// Validator checks a draft before it is handed to a save callback.
// A nil Validator accepts everything.
type Validator func(Draft) error

// Project is a draft that has been added to the store.
type Project struct {
	ID string
	Draft
	CreatedAt time.Time
}

// Store keeps projects in insertion order. It is owned by the UI goroutine.
type Store struct {
	projects []Project
	now      func() time.Time
	newID    func() string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Add stores a copy of d as a new project.
func (s *Store) Add(d Draft) Project {
	p := Project{
		ID:        s.newID(),
		Draft:     d,
		CreatedAt: s.now(),
	}
	s.projects = append(s.projects, p)
	return p
}

// List returns the projects in insertion order.
func (s *Store) List() []Project {
	out := make([]Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Get returns the project with the given id.
func (s *Store) Get(id string) (Project, error) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, errors.ProjectNotFound(id)
}

// Len returns the number of stored projects.
func (s *Store) Len() int {
	return len(s.projects)
}
