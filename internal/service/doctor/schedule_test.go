package doctor

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeSchedule(t *testing.T) {
	tests := []struct {
		name    string
		in      map[string][]string
		want    map[string][]string
		wantErr bool
	}{
		{
			name: "lowercases days and sorts slots",
			in: map[string][]string{
				"Monday": {"14:00", "09:00", "10:30"},
			},
			want: map[string][]string{
				"monday": {"09:00", "10:30", "14:00"},
			},
		},
		{
			name: "drops duplicate slots",
			in: map[string][]string{
				"friday": {"09:00", "09:00", "11:00"},
			},
			want: map[string][]string{
				"friday": {"09:00", "11:00"},
			},
		},
		{
			name:    "rejects unknown day",
			in:      map[string][]string{"funday": {"09:00"}},
			wantErr: true,
		},
		{
			name:    "rejects malformed slot",
			in:      map[string][]string{"monday": {"9am"}},
			wantErr: true,
		},
		{
			name:    "rejects out of range hour",
			in:      map[string][]string{"monday": {"25:00"}},
			wantErr: true,
		},
		{
			name: "empty schedule is valid",
			in:   map[string][]string{},
			want: map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSchedule(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSchedule) {
					t.Fatalf("expected ErrInvalidSchedule, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlotsForDate(t *testing.T) {
	schedule := map[string][]string{
		"monday": {"09:00", "10:00"},
		"friday": {"16:00"},
	}

	t.Run("returns slots for the weekday", func(t *testing.T) {
		// 2026-08-31 is a Monday
		slots, err := SlotsForDate(schedule, "2026-08-31")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(slots, []string{"09:00", "10:00"}) {
			t.Errorf("got %v", slots)
		}
	})

	t.Run("day off yields empty slice", func(t *testing.T) {
		// 2026-09-01 is a Tuesday
		slots, err := SlotsForDate(schedule, "2026-09-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != 0 {
			t.Errorf("expected no slots, got %v", slots)
		}
	})

	t.Run("rejects bad date", func(t *testing.T) {
		if _, err := SlotsForDate(schedule, "31-08-2026"); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("result is a copy", func(t *testing.T) {
		slots, _ := SlotsForDate(schedule, "2026-08-31")
		slots[0] = "mutated"
		if schedule["monday"][0] != "09:00" {
			t.Error("SlotsForDate must not alias the schedule")
		}
	})
}
