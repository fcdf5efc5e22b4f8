package domain

import (
	"fmt"
	"strconv"
)

// Department is an organizational unit backed by one row of the departments table.
// A zero ID means the record has never been persisted.
type Department struct {
	ID       int64
	Name     string
	Location string
}

// NewDepartment builds an unpersisted department.
func NewDepartment(name, location string) *Department {
	return &Department{Name: name, Location: location}
}

// IsPersisted reports whether the store has assigned an id.
func (d Department) IsPersisted() bool {
	return d.ID != 0
}

func (d Department) String() string {
	id := "None"
	if d.IsPersisted() {
		id = strconv.FormatInt(d.ID, 10)
	}
	return fmt.Sprintf("<Department %s: %s, %s>", id, d.Name, d.Location)
}
