// Package schematype holds value types embedded in Ent JSON columns.
package schematype

// PatientInfo is the snapshot of patient contact data captured when an
// appointment is booked. It is immutable after creation so the appointment
// record stays meaningful even if the user profile changes later.
type PatientInfo struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Age    int    `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
}

// DoctorInfo is the doctor-side snapshot captured at booking time.
type DoctorInfo struct {
	Name            string `json:"name"`
	Specialty       string `json:"specialty"`
	ConsultationFee int64  `json:"consultation_fee"`
}
