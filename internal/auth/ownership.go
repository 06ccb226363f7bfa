package auth

import (
	"bitskill_backend/pkg/apperrors"
)

// AssertOwns - единая проверка владения ресурсом.
// Раньше такие сравнения дублировались в каждом хендлере;
// теперь все проверки владения (гиг, отклик) идут через нее.
func AssertOwns(ownerID, callerID string, forbidden *apperrors.AppError) error {
	if ownerID == "" || callerID == "" || ownerID != callerID {
		return forbidden
	}
	return nil
}
