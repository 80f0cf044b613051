package cliente

import "time"

// Cliente is a customer who buys on credit.
type Cliente struct {
	ID        int
	Name      string
	Phone     string
	CreatedAt time.Time
}

// Patch holds the fields of a partial update; nil means unchanged.
type Patch struct {
	Name  *string
	Phone *string
}

func (p Patch) Apply(c Cliente) Cliente {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	return c
}
