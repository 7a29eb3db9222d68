package entity

import "time"

// Review is a patient-submitted rating plus comment. It becomes publicly
// visible only once Approved is true, either automatically (positive
// sentiment) or through the admin alert console.
type Review struct {
	BaseNoDelete
	Name        *string    `db:"name"`
	Email       *string    `db:"email"`
	Rating      int        `db:"rating"` // 1-5
	Comment     string     `db:"comment"`
	Service     *string    `db:"service"`
	Approved    bool       `db:"approved"`
	ModeratedAt *time.Time `db:"moderated_at"`
}
