package consent

import (
	"time"

	"aurora/models"
)

// DeriveStatus computes a form's display status from its signing date and the
// configured validity window. A zero validityDays disables expiry, so signed
// forms stay signed forever.
func DeriveStatus(form models.ConsentForm, validityDays int, now time.Time) models.ConsentStatus {
	if form.DateSigned == nil {
		return models.ConsentStatus{State: models.ConsentPending}
	}
	if validityDays > 0 {
		expiresAt := form.DateSigned.AddDate(0, 0, validityDays)
		if expiresAt.Before(now) {
			return models.ConsentStatus{State: models.ConsentExpired, ExpiredAt: &expiresAt}
		}
	}
	return models.ConsentStatus{State: models.ConsentSigned}
}
