package emi

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeInstallment_ZeroRate(t *testing.T) {
	cases := []struct {
		principal string
		tenure    int
		want      string
	}{
		{"120000", 12, "10000"},
		{"1000", 7, "142.86"}, // 142.857... rounds half-up
		{"1", 3, "0.33"},
	}
	for _, tc := range cases {
		got, err := ComputeInstallment(decimal.RequireFromString(tc.principal), 0, tc.tenure)
		if err != nil {
			t.Fatalf("ComputeInstallment(%s, 0, %d): %v", tc.principal, tc.tenure, err)
		}
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("ComputeInstallment(%s, 0, %d) = %s, want %s", tc.principal, tc.tenure, got, tc.want)
		}
	}
}

func TestComputeInstallment_StandardFormula(t *testing.T) {
	// 120000 @ 10% over 12 months
	got, err := ComputeInstallment(decimal.NewFromInt(120000), 10, 12)
	if err != nil {
		t.Fatalf("ComputeInstallment: %v", err)
	}
	if want := decimal.RequireFromString("10549.91"); !got.Equal(want) {
		t.Errorf("emi = %s, want %s", got, want)
	}

	// 5000 @ 12% over 24 months
	got, err = ComputeInstallment(decimal.NewFromInt(5000), 12, 24)
	if err != nil {
		t.Fatalf("ComputeInstallment: %v", err)
	}
	if want := decimal.RequireFromString("235.37"); !got.Equal(want) {
		t.Errorf("emi = %s, want %s", got, want)
	}
}

func TestComputeInstallment_Preconditions(t *testing.T) {
	cases := []struct {
		name      string
		principal decimal.Decimal
		rate      float64
		tenure    int
	}{
		{"zero principal", decimal.Zero, 10, 12},
		{"negative principal", decimal.NewFromInt(-5), 10, 12},
		{"zero tenure", decimal.NewFromInt(1000), 10, 0},
		{"negative tenure", decimal.NewFromInt(1000), 10, -1},
		{"negative rate", decimal.NewFromInt(1000), -0.1, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ComputeInstallment(tc.principal, tc.rate, tc.tenure); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestGenerateSchedule_FlatMode(t *testing.T) {
	start := date(2025, time.March, 15)
	sched, err := GenerateSchedule(decimal.NewFromInt(120000), 10, 12, start, ModeFlat)
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	if len(sched) != 12 {
		t.Fatalf("len = %d, want 12", len(sched))
	}

	emiAmount := decimal.RequireFromString("10549.91")
	interest := decimal.RequireFromString("1000") // 120000 * 10%/12, same every month
	for i, in := range sched {
		if want := AddMonths(start, i); !in.DueDate.Equal(want) {
			t.Errorf("installment %d due %v, want %v", i, in.DueDate, want)
		}
		if !in.Interest.Equal(interest) {
			t.Errorf("installment %d interest = %s, want %s", i, in.Interest, interest)
		}
		if got := in.Principal.Add(in.Interest); !got.Equal(emiAmount) {
			t.Errorf("installment %d principal+interest = %s, want %s", i, got, emiAmount)
		}
	}
	if first, last := sched[0].DueDate, sched[11].DueDate; !first.Equal(start) || !last.Equal(AddMonths(start, 11)) {
		t.Errorf("schedule spans %v..%v", first, last)
	}
}

func TestGenerateSchedule_EmptyModeDefaultsToFlat(t *testing.T) {
	start := date(2025, time.January, 1)
	a, err := GenerateSchedule(decimal.NewFromInt(9000), 8, 6, start, "")
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	b, err := GenerateSchedule(decimal.NewFromInt(9000), 8, 6, start, ModeFlat)
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	for i := range a {
		if !a[i].Principal.Equal(b[i].Principal) || !a[i].Interest.Equal(b[i].Interest) {
			t.Fatalf("installment %d differs between empty mode and flat", i)
		}
	}
}

func TestGenerateSchedule_DecliningBalance(t *testing.T) {
	principal := decimal.NewFromInt(120000)
	sched, err := GenerateSchedule(principal, 10, 12, date(2025, time.June, 1), ModeDecliningBalance)
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	if len(sched) != 12 {
		t.Fatalf("len = %d, want 12", len(sched))
	}

	// Interest must strictly decrease and principal portions must sum to the
	// original principal exactly.
	var sum decimal.Decimal
	for i, in := range sched {
		sum = sum.Add(in.Principal)
		if i > 0 && !in.Interest.LessThan(sched[i-1].Interest) {
			t.Errorf("installment %d interest %s did not decrease from %s", i, in.Interest, sched[i-1].Interest)
		}
	}
	if !sum.Equal(principal) {
		t.Errorf("principal portions sum to %s, want %s", sum, principal)
	}
}

func TestGenerateSchedule_Deterministic(t *testing.T) {
	start := date(2024, time.October, 31)
	a, err := GenerateSchedule(decimal.NewFromInt(50000), 9.5, 18, start, ModeFlat)
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	b, err := GenerateSchedule(decimal.NewFromInt(50000), 9.5, 18, start, ModeFlat)
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	for i := range a {
		if !a[i].DueDate.Equal(b[i].DueDate) || !a[i].Principal.Equal(b[i].Principal) || !a[i].Interest.Equal(b[i].Interest) {
			t.Fatalf("installment %d differs between runs", i)
		}
	}
}

func TestGenerateSchedule_UnknownMode(t *testing.T) {
	_, err := GenerateSchedule(decimal.NewFromInt(1000), 5, 6, date(2025, time.May, 1), Mode("bogus"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestAddMonths_ClampsShortMonths(t *testing.T) {
	cases := []struct {
		start  time.Time
		months int
		want   time.Time
	}{
		{date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{date(2024, time.January, 31), 1, date(2024, time.February, 29)}, // leap year
		{date(2025, time.January, 31), 2, date(2025, time.March, 31)},
		{date(2025, time.March, 31), 1, date(2025, time.April, 30)},
		{date(2025, time.November, 30), 3, date(2026, time.February, 28)},
		{date(2025, time.May, 15), 0, date(2025, time.May, 15)},
	}
	for _, tc := range cases {
		if got := AddMonths(tc.start, tc.months); !got.Equal(tc.want) {
			t.Errorf("AddMonths(%v, %d) = %v, want %v", tc.start, tc.months, got, tc.want)
		}
	}
}
