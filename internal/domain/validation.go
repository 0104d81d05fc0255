package domain

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// durationPattern matches the "Xh Ym" duration strings of the admin form.
var durationPattern = regexp.MustCompile(`^\d+h\s\d+m$`)

// Validator is the form-layer schema. The stores never validate; callers
// run payloads through a Validator first.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
	now      func() time.Time
}

// NewValidator builds a Validator with English messages. now supplies the
// reference time for "not in the past" rules; nil means time.Now.
func NewValidator(now func() time.Time) (*Validator, error) {
	if now == nil {
		now = time.Now
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	uni := ut.New(en.New(), en.New())
	trans, _ := uni.GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("flightduration", func(fl validator.FieldLevel) bool {
		return durationPattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, err
	}
	err := v.RegisterTranslation("flightduration", trans,
		func(ut ut.Translator) error {
			return ut.Add("flightduration", `{0} must be in format "Xh Ym" (e.g., "2h 30m")`, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("flightduration", fe.Field())
			return msg
		},
	)
	if err != nil {
		return nil, err
	}

	return &Validator{validate: v, trans: trans, now: now}, nil
}

// MustNewValidator is NewValidator for package initialisation and tests.
func MustNewValidator(now func() time.Time) *Validator {
	v, err := NewValidator(now)
	if err != nil {
		panic(err)
	}
	return v
}

// ValidateCriteria checks search criteria, including the trip-type rule
// for the return date and that the departure is not in the past.
func (v *Validator) ValidateCriteria(c SearchCriteria) error {
	errs := v.structErrors(c)

	today := truncateDay(v.now())
	if !c.DepartureDate.IsZero() && truncateDay(c.DepartureDate).Before(today) {
		errs.Add("departureDate", "Departure date cannot be in the past")
	}

	if c.IsRoundTrip() {
		switch {
		case c.ReturnDate == nil || c.ReturnDate.IsZero():
			errs.Add("returnDate", "Return date is required for round trip")
		case truncateDay(*c.ReturnDate).Before(truncateDay(c.DepartureDate)):
			errs.Add("returnDate", "Return date must be after departure date")
		}
	}

	if strings.EqualFold(strings.TrimSpace(c.Origin), strings.TrimSpace(c.Destination)) && c.Origin != "" {
		errs.Add("destination", "destination must differ from origin")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ValidateFlight checks an admin create/update payload.
func (v *Validator) ValidateFlight(in FlightInput) error {
	errs := v.structErrors(in)
	if !in.DepartureTime.IsZero() && !in.DepartureTime.After(v.now()) {
		errs.Add("departureTime", "Departure time must be in the future")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ValidateCredentials checks a login payload.
func (v *Validator) ValidateCredentials(c Credentials) error {
	errs := v.structErrors(c)
	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (v *Validator) structErrors(s interface{}) *ValidationErrors {
	errs := &ValidationErrors{}
	err := v.validate.Struct(s)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("", err.Error())
		return errs
	}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), fe.Translate(v.trans))
	}
	return errs
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
