package entries

import (
	"encoding/json"
	"strconv"
	"strings"

	"entry-tracker/internal/domain/entries"
)

// MinYear is the earliest accepted release year. The form enforced it
// client-side; the API applies the same floor so both sides agree.
const MinYear = 1800

// Number accepts a JSON number or a numeric string and keeps the raw
// digits, so callers choose between whole-number and decimal reads and
// decimal amounts never pass through a float.
type Number string

func (n *Number) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Number(strings.TrimSpace(s))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = Number(num.String())
	return nil
}

func (n Number) Int() (int, error) {
	return strconv.Atoi(string(n))
}

func (n Number) Float() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// EntryInput is the raw, untrusted request body. Every field is a
// pointer so an absent field is distinguishable from a supplied one,
// which is what makes partial updates possible.
type EntryInput struct {
	Title    *string `json:"title"`
	Type     *string `json:"type"`
	Year     *Number `json:"year"`
	Director *string `json:"director"`
	Budget   *Number `json:"budget"`
	Location *string `json:"location"`
	Duration *Number `json:"duration"`
}

// EntryPayload is the validated, typed form of EntryInput. A nil field
// was not supplied. After a full (non-partial) validation Title, Type
// and Year are always set.
type EntryPayload struct {
	Title    *string
	Type     *entries.EntryType
	Year     *int
	Director *string
	Budget   *string
	Location *string
	Duration *int
}

// Fields returns the supplied values keyed by column name, ready for a
// partial update.
func (p *EntryPayload) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Type != nil {
		fields["type"] = *p.Type
	}
	if p.Year != nil {
		fields["year"] = *p.Year
	}
	if p.Director != nil {
		fields["director"] = *p.Director
	}
	if p.Budget != nil {
		fields["budget"] = *p.Budget
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	if p.Duration != nil {
		fields["duration"] = *p.Duration
	}
	return fields
}

// FieldErrors collects validation messages keyed by field name.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Validate coerces and checks the raw input. With partial set, absent
// fields pass untouched; supplied fields obey the same rules as a
// create. It returns the typed payload or the per-field errors, never
// both.
func (in *EntryInput) Validate(partial bool) (*EntryPayload, FieldErrors) {
	errs := FieldErrors{}
	out := &EntryPayload{}

	switch {
	case in.Title != nil:
		if *in.Title == "" {
			errs.add("title", "Title is required")
		} else {
			out.Title = in.Title
		}
	case !partial:
		errs.add("title", "Title is required")
	}

	switch {
	case in.Type != nil:
		t := entries.EntryType(*in.Type)
		if !t.Valid() {
			errs.add("type", "Invalid type. Must be MOVIE or TV_SHOW")
		} else {
			out.Type = &t
		}
	case !partial:
		errs.add("type", "Invalid type. Must be MOVIE or TV_SHOW")
	}

	switch {
	case in.Year != nil:
		year, err := in.Year.Int()
		switch {
		case err != nil:
			if _, ferr := in.Year.Float(); ferr == nil {
				errs.add("year", "Year must be a whole number")
			} else {
				errs.add("year", "Year must be a number")
			}
		case year <= 0:
			errs.add("year", "Year must be a positive number")
		case year < MinYear:
			errs.add("year", "Year must be 1800 or later")
		default:
			out.Year = &year
		}
	case !partial:
		errs.add("year", "Year is required and must be a number")
	}

	if in.Director != nil {
		out.Director = in.Director
	}
	if in.Location != nil {
		out.Location = in.Location
	}

	if in.Budget != nil {
		amount, err := in.Budget.Float()
		switch {
		case err != nil:
			errs.add("budget", "Budget must be a number")
		case amount <= 0:
			errs.add("budget", "Budget must be a positive number")
		default:
			budget := string(*in.Budget)
			out.Budget = &budget
		}
	}

	if in.Duration != nil {
		duration, err := in.Duration.Int()
		switch {
		case err != nil:
			errs.add("duration", "Duration must be a whole number")
		case duration <= 0:
			errs.add("duration", "Duration must be a positive number")
		default:
			out.Duration = &duration
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}
