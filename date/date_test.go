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
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-03-14", want: New(2025, time.March, 14)},
		{in: "2025/03/14", want: New(2025, time.March, 14)},
		{in: "2025-3-4", want: New(2025, time.March, 4)},
		{in: " 2025/3/4 ", want: New(2025, time.March, 4)},
		{in: "14.03.2025", wantErr: true},
		{in: "", wantErr: true},
		{in: "2025-02-30", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAddMonth(t *testing.T) {
	tests := []struct {
		in   Date
		n    int
		want Date
	}{
		{New(2025, time.January, 31), 1, New(2025, time.February, 1)},
		{New(2025, time.March, 15), -3, New(2024, time.December, 1)},
		{New(2025, time.March, 15), 0, New(2025, time.March, 1)},
	}
	for _, tt := range tests {
		if got := tt.in.AddMonth(tt.n); got != tt.want {
			t.Errorf("%v.AddMonth(%d) = %v, want %v", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestSub(t *testing.T) {
	a, b := New(2024, time.March, 1), New(2024, time.February, 28)
	if got := a.Sub(b); got != 2 {
		t.Errorf("%v.Sub(%v) = %d, want 2 (leap year)", a, b, got)
	}

	// beyond the range of time.Duration
	from, to := New(1600, time.January, 1), New(2000, time.January, 1)
	if got := to.Sub(from); got != 146097 {
		t.Errorf("%v.Sub(%v) = %d, want 146097", to, from, got)
	}
	if got := from.Sub(to); got != -146097 {
		t.Errorf("%v.Sub(%v) = %d, want -146097", from, to, got)
	}
	if got := NewRange(from, to).Len(); got != 146098 {
		t.Errorf("Len() = %d, want 146098", got)
	}
}

func TestDateAsMapKey(t *testing.T) {
	m := map[Date]int{New(2024, 1, 2): 100}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if got, want := string(data), `{"2024-01-02":100}`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	var back map[Date]int
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if back[New(2024, 1, 2)] != 100 {
		t.Errorf("json.Unmarshal() = %v, want the 2024-01-02 key", back)
	}
}

func TestParseFlag(t *testing.T) {
	today := New(2025, time.August, 15)
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "0d", want: today},
		{in: "-1d", want: New(2025, time.August, 14)},
		{in: "+2w", want: New(2025, time.August, 29)},
		{in: "-1m", want: New(2025, time.July, 15)},
		{in: "-1q", want: New(2025, time.May, 15)},
		{in: "-1y", want: New(2024, time.August, 15)},
		{in: "27", want: New(2025, time.August, 27)},
		{in: "3-1", want: New(2025, time.March, 1)},
		{in: "8-0", want: New(2025, time.July, 31)},
		{in: "2024-02", want: New(2024, time.February, 1)},
		{in: "2024-13", wantErr: true},
		{in: "2024/02/29", want: New(2024, time.February, 29)},
		{in: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFlag(tt.in, today)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlag(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseFlag(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
