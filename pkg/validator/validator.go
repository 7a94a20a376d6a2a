package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			message := getFieldErrorMessage(fieldError)
			messages = append(messages, message)
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s est obligatoire", field)
	case "oneof":
		return fmt.Sprintf("%s doit être parmi : %s", field, fe.Param())
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s doit faire au moins %s caractères", field, fe.Param())
		}
		return fmt.Sprintf("%s doit être au moins %s", field, fe.Param())
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s doit faire au plus %s caractères", field, fe.Param())
		}
		return fmt.Sprintf("%s doit être au plus %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s n'est pas valide", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Username":      "Le nom d'utilisateur",
		"Password":      "Le mot de passe",
		"Role":          "Le rôle",
		"Name":          "Le nom",
		"Location":      "Le lieu",
		"EntryDate":     "La date",
		"Exercise":      "L'exercice",
		"MuscleGroup":   "Le groupe musculaire",
		"Kcal":          "Les kcal",
		"Carbs":         "Les glucides",
		"QuantityGrams": "La quantité (g)",
		"MealNumber":    "Le numéro de repas",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
