// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/medera/medera_backend/internal/repo/appointment"
	"github.com/medera/medera_backend/internal/repo/content"
	"github.com/medera/medera_backend/internal/repo/doctor"
	"github.com/medera/medera_backend/internal/repo/testimonial"
	"github.com/medera/medera_backend/internal/repo/user"
	"github.com/medera/medera_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescAppointmentDate is the schema descriptor for appointment_date field.
	appointmentDescAppointmentDate := appointmentFields[2].Descriptor()
	// appointment.AppointmentDateValidator is a validator for the "appointment_date" field. It is called by the builders before save.
	appointment.AppointmentDateValidator = appointmentDescAppointmentDate.Validators[0].(func(string) error)
	// appointmentDescAppointmentTime is the schema descriptor for appointment_time field.
	appointmentDescAppointmentTime := appointmentFields[3].Descriptor()
	// appointment.AppointmentTimeValidator is a validator for the "appointment_time" field. It is called by the builders before save.
	appointment.AppointmentTimeValidator = appointmentDescAppointmentTime.Validators[0].(func(string) error)
	// appointmentDescBookingCode is the schema descriptor for booking_code field.
	appointmentDescBookingCode := appointmentFields[4].Descriptor()
	// appointment.BookingCodeValidator is a validator for the "booking_code" field. It is called by the builders before save.
	appointment.BookingCodeValidator = appointmentDescBookingCode.Validators[0].(func(string) error)
	// appointmentDescPaymentAuthority is the schema descriptor for payment_authority field.
	appointmentDescPaymentAuthority := appointmentFields[10].Descriptor()
	// appointment.PaymentAuthorityValidator is a validator for the "payment_authority" field. It is called by the builders before save.
	appointment.PaymentAuthorityValidator = appointmentDescPaymentAuthority.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	contentMixin := schema.Content{}.Mixin()
	contentMixinFields0 := contentMixin[0].Fields()
	_ = contentMixinFields0
	contentMixinFields1 := contentMixin[1].Fields()
	_ = contentMixinFields1
	contentFields := schema.Content{}.Fields()
	_ = contentFields
	// contentDescCreatedAt is the schema descriptor for created_at field.
	contentDescCreatedAt := contentMixinFields1[0].Descriptor()
	// content.DefaultCreatedAt holds the default value on creation for the created_at field.
	content.DefaultCreatedAt = contentDescCreatedAt.Default.(func() time.Time)
	// contentDescUpdatedAt is the schema descriptor for updated_at field.
	contentDescUpdatedAt := contentMixinFields1[1].Descriptor()
	// content.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	content.DefaultUpdatedAt = contentDescUpdatedAt.Default.(func() time.Time)
	// content.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	content.UpdateDefaultUpdatedAt = contentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contentDescSlug is the schema descriptor for slug field.
	contentDescSlug := contentFields[1].Descriptor()
	// content.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	content.SlugValidator = func() func(string) error {
		validators := contentDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contentDescTitle is the schema descriptor for title field.
	contentDescTitle := contentFields[2].Descriptor()
	// content.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	content.TitleValidator = func() func(string) error {
		validators := contentDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contentDescTags is the schema descriptor for tags field.
	contentDescTags := contentFields[4].Descriptor()
	// content.DefaultTags holds the default value on creation for the tags field.
	content.DefaultTags = contentDescTags.Default.([]string)
	// contentDescIsPublished is the schema descriptor for is_published field.
	contentDescIsPublished := contentFields[5].Descriptor()
	// content.DefaultIsPublished holds the default value on creation for the is_published field.
	content.DefaultIsPublished = contentDescIsPublished.Default.(bool)
	// contentDescSortOrder is the schema descriptor for sort_order field.
	contentDescSortOrder := contentFields[6].Descriptor()
	// content.DefaultSortOrder holds the default value on creation for the sort_order field.
	content.DefaultSortOrder = contentDescSortOrder.Default.(int)
	// contentDescID is the schema descriptor for id field.
	contentDescID := contentMixinFields0[0].Descriptor()
	// content.DefaultID holds the default value on creation for the id field.
	content.DefaultID = contentDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescName is the schema descriptor for name field.
	doctorDescName := doctorFields[1].Descriptor()
	// doctor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	doctor.NameValidator = func() func(string) error {
		validators := doctorDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescSpecialty is the schema descriptor for specialty field.
	doctorDescSpecialty := doctorFields[2].Descriptor()
	// doctor.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	doctor.SpecialtyValidator = func() func(string) error {
		validators := doctorDescSpecialty.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(specialty string) error {
			for _, fn := range fns {
				if err := fn(specialty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescExperienceYears is the schema descriptor for experience_years field.
	doctorDescExperienceYears := doctorFields[4].Descriptor()
	// doctor.DefaultExperienceYears holds the default value on creation for the experience_years field.
	doctor.DefaultExperienceYears = doctorDescExperienceYears.Default.(int)
	// doctor.ExperienceYearsValidator is a validator for the "experience_years" field. It is called by the builders before save.
	doctor.ExperienceYearsValidator = doctorDescExperienceYears.Validators[0].(func(int) error)
	// doctorDescConsultationFee is the schema descriptor for consultation_fee field.
	doctorDescConsultationFee := doctorFields[5].Descriptor()
	// doctor.DefaultConsultationFee holds the default value on creation for the consultation_fee field.
	doctor.DefaultConsultationFee = doctorDescConsultationFee.Default.(int64)
	// doctorDescSchedule is the schema descriptor for schedule field.
	doctorDescSchedule := doctorFields[6].Descriptor()
	// doctor.DefaultSchedule holds the default value on creation for the schedule field.
	doctor.DefaultSchedule = doctorDescSchedule.Default.(map[string][]string)
	// doctorDescIsAvailable is the schema descriptor for is_available field.
	doctorDescIsAvailable := doctorFields[7].Descriptor()
	// doctor.DefaultIsAvailable holds the default value on creation for the is_available field.
	doctor.DefaultIsAvailable = doctorDescIsAvailable.Default.(bool)
	// doctorDescRating is the schema descriptor for rating field.
	doctorDescRating := doctorFields[8].Descriptor()
	// doctor.DefaultRating holds the default value on creation for the rating field.
	doctor.DefaultRating = doctorDescRating.Default.(float64)
	// doctor.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	doctor.RatingValidator = func() func(float64) error {
		validators := doctorDescRating.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(rating float64) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescReviewCount is the schema descriptor for review_count field.
	doctorDescReviewCount := doctorFields[9].Descriptor()
	// doctor.DefaultReviewCount holds the default value on creation for the review_count field.
	doctor.DefaultReviewCount = doctorDescReviewCount.Default.(int)
	// doctor.ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	doctor.ReviewCountValidator = doctorDescReviewCount.Validators[0].(func(int) error)
	// doctorDescConsultationTypes is the schema descriptor for consultation_types field.
	doctorDescConsultationTypes := doctorFields[10].Descriptor()
	// doctor.DefaultConsultationTypes holds the default value on creation for the consultation_types field.
	doctor.DefaultConsultationTypes = doctorDescConsultationTypes.Default.([]string)
	// doctorDescImageURL is the schema descriptor for image_url field.
	doctorDescImageURL := doctorFields[11].Descriptor()
	// doctor.ImageURLValidator is a validator for the "image_url" field. It is called by the builders before save.
	doctor.ImageURLValidator = doctorDescImageURL.Validators[0].(func(string) error)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	testimonialMixin := schema.Testimonial{}.Mixin()
	testimonialMixinFields0 := testimonialMixin[0].Fields()
	_ = testimonialMixinFields0
	testimonialMixinFields1 := testimonialMixin[1].Fields()
	_ = testimonialMixinFields1
	testimonialFields := schema.Testimonial{}.Fields()
	_ = testimonialFields
	// testimonialDescCreatedAt is the schema descriptor for created_at field.
	testimonialDescCreatedAt := testimonialMixinFields1[0].Descriptor()
	// testimonial.DefaultCreatedAt holds the default value on creation for the created_at field.
	testimonial.DefaultCreatedAt = testimonialDescCreatedAt.Default.(func() time.Time)
	// testimonialDescUpdatedAt is the schema descriptor for updated_at field.
	testimonialDescUpdatedAt := testimonialMixinFields1[1].Descriptor()
	// testimonial.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	testimonial.DefaultUpdatedAt = testimonialDescUpdatedAt.Default.(func() time.Time)
	// testimonial.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	testimonial.UpdateDefaultUpdatedAt = testimonialDescUpdatedAt.UpdateDefault.(func() time.Time)
	// testimonialDescPatientName is the schema descriptor for patient_name field.
	testimonialDescPatientName := testimonialFields[2].Descriptor()
	// testimonial.PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	testimonial.PatientNameValidator = func() func(string) error {
		validators := testimonialDescPatientName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(patient_name string) error {
			for _, fn := range fns {
				if err := fn(patient_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// testimonialDescDoctorName is the schema descriptor for doctor_name field.
	testimonialDescDoctorName := testimonialFields[3].Descriptor()
	// testimonial.DoctorNameValidator is a validator for the "doctor_name" field. It is called by the builders before save.
	testimonial.DoctorNameValidator = func() func(string) error {
		validators := testimonialDescDoctorName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(doctor_name string) error {
			for _, fn := range fns {
				if err := fn(doctor_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// testimonialDescRating is the schema descriptor for rating field.
	testimonialDescRating := testimonialFields[4].Descriptor()
	// testimonial.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	testimonial.RatingValidator = func() func(int) error {
		validators := testimonialDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// testimonialDescTreatmentType is the schema descriptor for treatment_type field.
	testimonialDescTreatmentType := testimonialFields[6].Descriptor()
	// testimonial.TreatmentTypeValidator is a validator for the "treatment_type" field. It is called by the builders before save.
	testimonial.TreatmentTypeValidator = testimonialDescTreatmentType.Validators[0].(func(string) error)
	// testimonialDescIsVerified is the schema descriptor for is_verified field.
	testimonialDescIsVerified := testimonialFields[7].Descriptor()
	// testimonial.DefaultIsVerified holds the default value on creation for the is_verified field.
	testimonial.DefaultIsVerified = testimonialDescIsVerified.Default.(bool)
	// testimonialDescIsPublic is the schema descriptor for is_public field.
	testimonialDescIsPublic := testimonialFields[8].Descriptor()
	// testimonial.DefaultIsPublic holds the default value on creation for the is_public field.
	testimonial.DefaultIsPublic = testimonialDescIsPublic.Default.(bool)
	// testimonialDescHelpfulVotes is the schema descriptor for helpful_votes field.
	testimonialDescHelpfulVotes := testimonialFields[9].Descriptor()
	// testimonial.DefaultHelpfulVotes holds the default value on creation for the helpful_votes field.
	testimonial.DefaultHelpfulVotes = testimonialDescHelpfulVotes.Default.(int)
	// testimonial.HelpfulVotesValidator is a validator for the "helpful_votes" field. It is called by the builders before save.
	testimonial.HelpfulVotesValidator = testimonialDescHelpfulVotes.Validators[0].(func(int) error)
	// testimonialDescID is the schema descriptor for id field.
	testimonialDescID := testimonialMixinFields0[0].Descriptor()
	// testimonial.DefaultID holds the default value on creation for the id field.
	testimonial.DefaultID = testimonialDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[3].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[6].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
