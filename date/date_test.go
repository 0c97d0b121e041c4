package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{input: "2024-01-01", want: New(2024, time.January, 1)},
		{input: "2025-7-1", want: New(2025, time.July, 1)},
		{input: "2024-02-30", wantErr: true},
		{input: "01/02/2024", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalization(t *testing.T) {
	if got, want := New(2024, time.January, 32), New(2024, time.February, 1); got != want {
		t.Errorf("New(2024-01-32) = %v, want %v", got, want)
	}
	if got, want := New(2024, time.March, 1).Add(-1), New(2024, time.February, 29); got != want {
		t.Errorf("Add(-1) = %v, want %v", got, want)
	}
}

func TestBefore(t *testing.T) {
	a, b := MustParse("2024-01-01"), MustParse("2024-01-02")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("%v should be before %v", a, b)
	}
	if a.Before(a) {
		t.Errorf("%v should not be before itself", a)
	}
}

func TestJSON(t *testing.T) {
	d := New(2024, time.March, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if want := `"2024-03-05"`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
	var got Date
	if err := json.Unmarshal([]byte(`"2024-3-5"`), &got); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if got != d {
		t.Errorf("Unmarshal() = %v, want %v", got, d)
	}
	if err := json.Unmarshal([]byte(`"not a date"`), &got); err == nil {
		t.Errorf("Unmarshal() expected an error for an invalid date")
	}
}
