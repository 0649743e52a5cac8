package mail

import (
	"encoding/json"
	"fmt"

	"github.com/tourbase/tourbase/internal/domain"
)

// Render dispatches a stored outbox payload to the typed renderer for its
// kind. Payloads are the JSON objects written at enqueue time; optional
// sections live under an "extras" key whose absence means the section is
// omitted entirely.
func Render(kind domain.EmailKind, payload map[string]interface{}) (Email, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Email{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	switch kind {
	case domain.EmailKindWelcome:
		var p WelcomeParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return Email{}, decodeErr(kind, err)
		}
		return RenderWelcome(p)

	case domain.EmailKindBookingConfirmation:
		var p BookingConfirmationParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return Email{}, decodeErr(kind, err)
		}
		return RenderBookingConfirmation(p)

	case domain.EmailKindBookingCancellation:
		var p BookingCancellationParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return Email{}, decodeErr(kind, err)
		}
		extras, err := decodeExtras[BookingCancellationExtras](payload)
		if err != nil {
			return Email{}, decodeErr(kind, err)
		}
		return RenderBookingCancellation(p, extras)

	case domain.EmailKindPaymentReceived:
		var p PaymentReceivedParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return Email{}, decodeErr(kind, err)
		}
		extras, err := decodeExtras[PaymentReceivedExtras](payload)
		if err != nil {
			return Email{}, decodeErr(kind, err)
		}
		return RenderPaymentReceived(p, extras)

	case domain.EmailKindReviewRequest:
		var p ReviewRequestParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return Email{}, decodeErr(kind, err)
		}
		return RenderReviewRequest(p)

	case domain.EmailKindTourReminder:
		var p TourReminderParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return Email{}, decodeErr(kind, err)
		}
		return RenderTourReminder(p)

	case domain.EmailKindStaffInvite:
		var p StaffInviteParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return Email{}, decodeErr(kind, err)
		}
		return RenderStaffInvite(p)

	case domain.EmailKindPasswordReset:
		var p PasswordResetParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return Email{}, decodeErr(kind, err)
		}
		return RenderPasswordReset(p)
	}

	return Email{}, fmt.Errorf("unknown email kind %q", kind)
}

func decodeErr(kind domain.EmailKind, err error) error {
	return fmt.Errorf("failed to decode %s payload: %w", kind, err)
}

// decodeExtras extracts the optional "extras" object from a payload.
// Absent extras return nil, which renderers treat as "omit the section".
func decodeExtras[T any](payload map[string]interface{}) (*T, error) {
	v, ok := payload["extras"]
	if !ok || v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	extras := new(T)
	if err := json.Unmarshal(raw, extras); err != nil {
		return nil, err
	}
	return extras, nil
}
