package schema

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/mww/teams_api/model"
)

func TestParseCreate(t *testing.T) {
	long := strings.Repeat("x", 41)

	tests := map[string]struct {
		body    string
		want    model.TeamFields
		wantErr map[string][]string
	}{
		"valid":           {body: `{"team_name": "Seahawks", "league": "NFL"}`, want: model.TeamFields{TeamName: "Seahawks", League: "NFL"}},
		"unknown ignored": {body: `{"team_name": "Kraken", "league": "NHL", "city": "Seattle"}`, want: model.TeamFields{TeamName: "Kraken", League: "NHL"}},
		"id ignored":      {body: `{"id": 7, "team_name": "Kraken", "league": "NHL"}`, want: model.TeamFields{TeamName: "Kraken", League: "NHL"}},
		"empty strings":   {body: `{"team_name": "", "league": ""}`, want: model.TeamFields{}},
		"exactly 40":      {body: `{"team_name": "` + strings.Repeat("y", 40) + `", "league": "NFL"}`, want: model.TeamFields{TeamName: strings.Repeat("y", 40), League: "NFL"}},
		"missing name":    {body: `{"league": "NFL"}`, wantErr: map[string][]string{"team_name": {MsgMissing}}},
		"missing both":    {body: `{}`, wantErr: map[string][]string{"team_name": {MsgMissing}, "league": {MsgMissing}}},
		"name not string": {body: `{"team_name": 12, "league": "NFL"}`, wantErr: map[string][]string{"team_name": {MsgNotString}}},
		"league null":     {body: `{"team_name": "Storm", "league": null}`, wantErr: map[string][]string{"league": {MsgNull}}},
		"name too long":   {body: `{"team_name": "` + long + `", "league": "NFL"}`, wantErr: map[string][]string{"team_name": {"Longer than maximum length 40."}}},
		"array body":      {body: `[{"team_name": "Storm", "league": "WNBA"}]`, wantErr: map[string][]string{SchemaKey: {MsgInvalidInput}}},
		"null body":       {body: `null`, wantErr: map[string][]string{SchemaKey: {MsgInvalidInput}}},
		"empty body":      {body: ``, wantErr: map[string][]string{SchemaKey: {MsgInvalidInput}}},
		"bad json":        {body: `{"team_name": `, wantErr: map[string][]string{SchemaKey: {MsgInvalidInput}}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCreate(strings.NewReader(tc.body))
			if tc.wantErr != nil {
				assertValidationError(t, tc.wantErr, err)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected: %v, got: %v", tc.want, got)
			}
		})
	}
}

func TestParseUpdate(t *testing.T) {
	tests := map[string]struct {
		body       string
		wantName   *string
		wantLeague *string
		wantErr    map[string][]string
	}{
		"league only":     {body: `{"league": "ABA"}`, wantLeague: strPtr("ABA")},
		"name only":       {body: `{"team_name": "SuperSonics"}`, wantName: strPtr("SuperSonics")},
		"both":            {body: `{"team_name": "Reign", "league": "NWSL"}`, wantName: strPtr("Reign"), wantLeague: strPtr("NWSL")},
		"empty object":    {body: `{}`},
		"unknown ignored": {body: `{"mascot": "Blitz"}`},
		"name not string": {body: `{"team_name": true}`, wantErr: map[string][]string{"team_name": {MsgNotString}}},
		"league null":     {body: `{"league": null}`, wantErr: map[string][]string{"league": {MsgNull}}},
		"league too long": {body: `{"league": "` + strings.Repeat("z", 41) + `"}`, wantErr: map[string][]string{"league": {"Longer than maximum length 40."}}},
		"not an object":   {body: `"league"`, wantErr: map[string][]string{SchemaKey: {MsgInvalidInput}}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseUpdate(strings.NewReader(tc.body))
			if tc.wantErr != nil {
				assertValidationError(t, tc.wantErr, err)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(tc.wantName, got.TeamName) {
				t.Errorf("team name incorrect, wanted: %v, got: %v", deref(tc.wantName), deref(got.TeamName))
			}
			if !reflect.DeepEqual(tc.wantLeague, got.League) {
				t.Errorf("league incorrect, wanted: %v, got: %v", deref(tc.wantLeague), deref(got.League))
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string][]string{
		"team_name": {MsgMissing},
		"league":    {MsgNotString},
	}}
	want := "invalid team: league: Not a valid string.; team_name: Missing data for required field."
	if err.Error() != want {
		t.Errorf("expected: '%s', got: '%s'", want, err.Error())
	}
}

func TestSerialize(t *testing.T) {
	team := &model.Team{ID: 5, TeamName: "Seahawks", League: "NFL"}
	b, err := json.Marshal(Serialize(team))
	if err != nil {
		t.Fatalf("error marshaling team: %v", err)
	}
	want := `{"id":5,"team_name":"Seahawks","league":"NFL"}`
	if string(b) != want {
		t.Errorf("expected: '%s', got: '%s'", want, string(b))
	}
}

func TestSerializeMany(t *testing.T) {
	b, err := json.Marshal(SerializeMany(nil))
	if err != nil {
		t.Fatalf("error marshaling teams: %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("expected empty list to be '[]', got: '%s'", string(b))
	}

	teams := []model.Team{
		{ID: 1, TeamName: "Seahawks", League: "NFL"},
		{ID: 2, TeamName: "Mariners", League: "MLB"},
	}
	got := SerializeMany(teams)
	want := []TeamJSON{
		{ID: 1, TeamName: "Seahawks", League: "NFL"},
		{ID: 2, TeamName: "Mariners", League: "MLB"},
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected: %v, got: %v", want, got)
	}
}

func assertValidationError(t *testing.T, want map[string][]string, err error) {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a *ValidationError, got: %v", err)
	}
	if !reflect.DeepEqual(want, verr.Fields) {
		t.Errorf("validation errors not as expected - wanted: %v, got: %v", want, verr.Fields)
	}
}

func strPtr(s string) *string {
	return &s
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
