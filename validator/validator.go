package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Goqerti/yeni/errors"
	"github.com/Goqerti/yeni/models"
)

var validate = validator.New()

// ValidateTourists turist siyahısını yoxlayır: boş siyahı və boş/yalnız
// boşluqdan ibarət adlar qəbul edilmir.
func ValidateTourists(tourists []string) error {
	if len(tourists) == 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Bütün turist adları daxil edilməlidir.", nil)
	}
	for _, name := range tourists {
		if strings.TrimSpace(name) == "" {
			return errors.NewAppError(errors.ErrCodeValidation, "Bütün turist adları daxil edilməlidir.", nil)
		}
	}
	return nil
}

// ValidateCostPair valyuta cütünü yoxlayır; nil cüt keçərlidir (qiymət hələ
// daxil edilməyib deməkdir).
func ValidateCostPair(pair *models.CostPair) error {
	if pair == nil {
		return nil
	}
	if pair.Amount < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Məbləğ mənfi ola bilməz.", nil)
	}
	if pair.Currency != "" {
		if err := validate.Var(pair.Currency, "alpha,len=3"); err != nil {
			return errors.NewAppError(errors.ErrCodeValidation, "Valyuta kodu düzgün deyil.", err)
		}
	}
	return nil
}
