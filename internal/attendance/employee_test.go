package attendance

import "testing"

func TestImportRowResolveStatus(t *testing.T) {
	tests := []struct {
		name       string
		selectMenu string
		scanTime   string
		status     string
		want       string
	}{
		{"eligible not scanned placeholder", "Yes", "-", "", StatusNotScanned},
		{"eligible not scanned empty", "yes", "", "", StatusNotScanned},
		{"eligible with scan time", "Yes", "14:32", "", StatusAttended},
		{"eligible scan time padded", "YES", " 09:05 ", "", StatusAttended},
		{"duplicate marker overrides scan time", "Yes", "14:32", "Duplicate", StatusDuplicated},
		{"duplicate marker lowercase", "Yes", "-", "duplicate", StatusDuplicated},
		{"duplicate marker on ineligible row", "No", "", "DUPLICATE", StatusDuplicated},
		{"ineligible", "No", "14:32", "", StatusNotScanned},
		{"ineligible blank menu", "", "14:32", "", StatusNotScanned},
		{"unrelated status marker ignored", "Yes", "-", "pending", StatusNotScanned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := ImportRow{SelectMenu: tt.selectMenu, ScanTime: tt.scanTime, Status: tt.status}
			if got := row.ResolveStatus(); got != tt.want {
				t.Errorf("ResolveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImportRowEligible(t *testing.T) {
	tests := []struct {
		selectMenu string
		want       bool
	}{
		{"yes", true},
		{"Yes", true},
		{"YES", true},
		{" yes ", true},
		{"no", false},
		{"", false},
		{"y", false},
	}

	for _, tt := range tests {
		row := ImportRow{SelectMenu: tt.selectMenu}
		if got := row.Eligible(); got != tt.want {
			t.Errorf("Eligible(%q) = %v, want %v", tt.selectMenu, got, tt.want)
		}
	}
}

func TestImportRowRecord(t *testing.T) {
	row := ImportRow{
		EmpID:      "E100",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		SelectMenu: "Yes",
		ScanTime:   "12:15",
	}
	rec := row.Record()
	if rec.EmpID != "E100" || rec.FirstName != "Ada" || rec.LastName != "Lovelace" {
		t.Errorf("unexpected identity fields: %+v", rec)
	}
	if !rec.EligibleForLunch {
		t.Error("expected eligible record")
	}
	if rec.Status != StatusAttended {
		t.Errorf("Status = %q, want %q", rec.Status, StatusAttended)
	}
}
