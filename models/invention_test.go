package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusUnderReview, StatusApproved, StatusRejected} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "archived", "Approved", "PENDING"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}
