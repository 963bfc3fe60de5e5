// Package schema converts between the JSON wire format of a team and the
// model types. It is the only place request bodies are checked.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mww/teams_api/model"
)

const (
	fieldTeamName = "team_name"
	fieldLeague   = "league"

	// Errors that are not about a specific field are reported under this key.
	SchemaKey = "_schema"

	MsgMissing      = "Missing data for required field."
	MsgNotString    = "Not a valid string."
	MsgNull         = "Field may not be null."
	MsgInvalidInput = "Invalid input type."
)

// ValidationError maps each invalid field name to the problems found with it.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], " ")))
	}
	return "invalid team: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

type createInput struct {
	TeamName *string `json:"team_name" validate:"required,max=40"`
	League   *string `json:"league" validate:"required,max=40"`
}

type updateInput struct {
	TeamName *string `json:"team_name" validate:"omitempty,max=40"`
	League   *string `json:"league" validate:"omitempty,max=40"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors with the json names so they match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseCreate reads the body of a create request. Both team_name and league
// must be present strings. Any other keys are ignored.
func ParseCreate(r io.Reader) (model.TeamFields, error) {
	var in createInput
	if err := decode(r, &in.TeamName, &in.League, &in); err != nil {
		return model.TeamFields{}, err
	}
	return model.TeamFields{TeamName: *in.TeamName, League: *in.League}, nil
}

// ParseUpdate reads the body of an update request. Every field is optional but
// the ones that are present are held to the same rules as ParseCreate.
func ParseUpdate(r io.Reader) (model.TeamUpdate, error) {
	var in updateInput
	if err := decode(r, &in.TeamName, &in.League, &in); err != nil {
		return model.TeamUpdate{}, err
	}
	return model.TeamUpdate{TeamName: in.TeamName, League: in.League}, nil
}

// decode fills teamName and league from the JSON object in r and then
// validates the struct that holds them.
func decode(r io.Reader, teamName, league **string, in any) error {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil || raw == nil {
		verr := &ValidationError{}
		verr.add(SchemaKey, MsgInvalidInput)
		return verr
	}

	verr := &ValidationError{}
	readString(raw, fieldTeamName, teamName, verr)
	readString(raw, fieldLeague, league, verr)

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("error validating team: %w", err)
		}
		for _, fe := range fieldErrs {
			// A type error already explains why the field is unusable.
			if verr.has(fe.Field()) {
				continue
			}
			verr.add(fe.Field(), messageFor(fe))
		}
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func readString(raw map[string]json.RawMessage, field string, dst **string, verr *ValidationError) {
	v, ok := raw[field]
	if !ok {
		return
	}
	if string(v) == "null" {
		verr.add(field, MsgNull)
		return
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		verr.add(field, MsgNotString)
		return
	}
	*dst = &s
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgMissing
	case "max":
		return fmt.Sprintf("Longer than maximum length %s.", fe.Param())
	default:
		return fmt.Sprintf("Failed %s validation.", fe.Tag())
	}
}

// TeamJSON is the wire representation of a team. ID is output only.
type TeamJSON struct {
	ID       int32  `json:"id"`
	TeamName string `json:"team_name"`
	League   string `json:"league"`
}

func Serialize(t *model.Team) TeamJSON {
	return TeamJSON{
		ID:       t.ID,
		TeamName: t.TeamName,
		League:   t.League,
	}
}

// SerializeMany never returns nil so an empty list is encoded as [].
func SerializeMany(teams []model.Team) []TeamJSON {
	results := make([]TeamJSON, 0, len(teams))
	for i := range teams {
		results = append(results, Serialize(&teams[i]))
	}
	return results
}
