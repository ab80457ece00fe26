package domain

import "testing"

func TestStatusVocabularies(t *testing.T) {
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted} {
		if !s.Valid() {
			t.Errorf("Expected booking status %q to be valid", s)
		}
	}
	if BookingStatus("Refunded").Valid() {
		t.Error("Expected Refunded to be an invalid booking status")
	}

	for _, s := range []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded} {
		if !s.Valid() {
			t.Errorf("Expected payment status %q to be valid", s)
		}
	}
	if PaymentStatus("Cancelled").Valid() {
		t.Error("Expected Cancelled to be an invalid payment status")
	}

	for _, m := range []PaymentMethod{PaymentStripe, PaymentPayPal, PaymentCash} {
		if !m.Valid() {
			t.Errorf("Expected payment method %q to be valid", m)
		}
	}
	if PaymentMethod("Bitcoin").Valid() {
		t.Error("Expected Bitcoin to be an invalid payment method")
	}
}
