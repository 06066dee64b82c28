package domain

import "errors"

var ErrDepartmentExists = errors.New("department already exists")

// Department is a hospital unit appointments are booked against. The
// name is the identity; there is no further structure.
type Department struct {
	Name      string `json:"name"`
	CreatedBy string `json:"created_by,omitempty"`
}
