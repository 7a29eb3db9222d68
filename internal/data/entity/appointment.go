package entity

type AppointmentStatus string

const (
	AppointmentPending AppointmentStatus = "pending"
	AppointmentSeen    AppointmentStatus = "seen"
)

type Appointment struct {
	BaseNoDelete
	Name          string            `db:"name"`
	Phone         string            `db:"phone"`
	Email         *string           `db:"email"`
	PreferredDate *string           `db:"preferred_date"`
	Reason        string            `db:"reason"`
	Status        AppointmentStatus `db:"status"`
}
