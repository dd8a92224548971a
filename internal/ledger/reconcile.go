package ledger

import "github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"

// ClassifyReception compares the quantity an approved purchase request
// expected against the quantity actually received. Over-delivery is not an
// accepted outcome and classifies as DIFFERENT; a reception whose goods do
// not match the requested item at all is flagged DIFFERENT by the recorder
// regardless of quantities.
func ClassifyReception(expected, received int) string {
	switch {
	case received == expected:
		return models.ReceptionStatusComplete
	case received > 0 && received < expected:
		return models.ReceptionStatusPartial
	default:
		return models.ReceptionStatusDifferent
	}
}
