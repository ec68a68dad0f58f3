package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"plain date", "2024-03-15", NewDate(2024, 3, 15), false},
		{"surrounding whitespace", " 2024-03-15 ", NewDate(2024, 3, 15), false},
		{"wrong layout", "15/03/2024", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want.Time) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	type doc struct {
		Date Date `json:"date"`
	}

	raw, err := json.Marshal(doc{Date: NewDate(2024, 3, 15)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(raw) != `{"date":"2024-03-15"}` {
		t.Errorf("Marshal() = %s", raw)
	}

	var got doc
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !got.Date.Equal(NewDate(2024, 3, 15).Time) {
		t.Errorf("Unmarshal() = %v, want 2024-03-15", got.Date)
	}
}

func TestDate_JSONZero(t *testing.T) {
	type doc struct {
		Date Date `json:"date"`
	}

	raw, err := json.Marshal(doc{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(raw) != `{"date":""}` {
		t.Errorf("Marshal() zero date = %s", raw)
	}

	var got doc
	if err := json.Unmarshal([]byte(`{"date":""}`), &got); err != nil {
		t.Fatalf("Unmarshal() empty string error = %v", err)
	}
	if !got.Date.IsZero() {
		t.Errorf("Unmarshal() empty string = %v, want zero", got.Date)
	}

	if err := json.Unmarshal([]byte(`{"date":null}`), &got); err != nil {
		t.Fatalf("Unmarshal() null error = %v", err)
	}
}

func TestDate_Within(t *testing.T) {
	start := NewDate(2024, 3, 1)
	end := NewDate(2024, 3, 31)

	tests := []struct {
		name string
		d    Date
		want bool
	}{
		{"inside", NewDate(2024, 3, 15), true},
		{"on start bound", NewDate(2024, 3, 1), true},
		{"on end bound", NewDate(2024, 3, 31), true},
		{"before", NewDate(2024, 2, 29), false},
		{"after", NewDate(2024, 4, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Within(start, end); got != tt.want {
				t.Errorf("Within() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransaction_EffectiveDate(t *testing.T) {
	dated := Transaction{
		Date:      NewDate(2024, 3, 10),
		CreatedAt: time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
	}
	if got := dated.EffectiveDate(); !got.Equal(NewDate(2024, 3, 10).Time) {
		t.Errorf("EffectiveDate() = %v, want stored date", got)
	}

	undated := Transaction{
		CreatedAt: time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
	}
	if got := undated.EffectiveDate(); !got.Equal(NewDate(2024, 3, 12).Time) {
		t.Errorf("EffectiveDate() = %v, want creation day fallback", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Pet Care", "pet_care"},
		{"  Multiple   Spaces  ", "multiple_spaces"},
		{"already_slug", "already_slug"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
