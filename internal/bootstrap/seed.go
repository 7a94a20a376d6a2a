package bootstrap

import (
	"log"

	"coachlab.fr/suivicoach/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Availability{},
		&model.Exercise{},
		&model.Program{},
		&model.ProgramSession{},
		&model.ExerciseEntry{},
		&model.JournalEntry{},
		&model.PerformanceEntry{},
		&model.Food{},
		&model.MealPlan{},
		&model.MealEntry{},
	)
}

func SeedCoachUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	password := "coach123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	coach := model.User{
		Username:     "coach",
		PasswordHash: string(hashedPasswordBytes),
		Role:         model.RoleCoach,
	}

	if err := db.Create(&coach).Error; err != nil {
		return err
	}

	log.Println("Compte coach initial créé (coach / coach123), changez le mot de passe")

	return nil
}

// exerciseBank is the default bank loaded on first boot. Names are kept
// verbatim, typos included, because program entries match on exact name.
var exerciseBank = []model.Exercise{
	{Name: "belt squat", MuscleGroup: model.MuscleLegs},
	{Name: "crunch machine", MuscleGroup: model.MuscleAbdos},
	{Name: "curl haltères alternés (coude sur banc)", MuscleGroup: model.MuscleBiceps},
	{Name: "curl haltères alternés debout", MuscleGroup: model.MuscleBiceps},
	{Name: "curl poulie", MuscleGroup: model.MuscleBiceps},
	{Name: "curl pupitre (technogym)", MuscleGroup: model.MuscleBiceps},
	{Name: "Dévelope militaire (techno)", MuscleGroup: model.MuscleEpaules},
	{Name: "développé couché (hammer)", MuscleGroup: model.MusclePec},
	{Name: "développé couché haltères", MuscleGroup: model.MusclePec},
	{Name: "développé couché incliné haltères", MuscleGroup: model.MusclePec},
	{Name: "développé couché incliné machine guidée", MuscleGroup: model.MusclePec},
	{Name: "développé incliné (hammer)", MuscleGroup: model.MusclePec},
	{Name: "dips", MuscleGroup: model.MusclePec},
	{Name: "développé militaire barre debout", MuscleGroup: model.MuscleEpaules},
	{Name: "développé militaire haltères", MuscleGroup: model.MuscleEpaules},
	{Name: "développé militaire (hammer)", MuscleGroup: model.MuscleEpaules},
	{Name: "développé militaire (technogym)", MuscleGroup: model.MuscleEpaules},
	{Name: "dips machine (pure strength)", MuscleGroup: model.MuscleTriceps},
	{Name: "dips triceps (technogym)", MuscleGroup: model.MuscleTriceps},
	{Name: "extension triceps poulie haute", MuscleGroup: model.MuscleTriceps},
	{Name: "écarté pecs technogym", MuscleGroup: model.MusclePec},
	{Name: "élévation frontale poulie", MuscleGroup: model.MuscleEpaules},
	{Name: "élévation latérale (hammer)", MuscleGroup: model.MuscleEpaules},
	{Name: "élévation latérale poulie complète (hammer)", MuscleGroup: model.MuscleEpaules},
	{Name: "élévation latérale poulies", MuscleGroup: model.MuscleEpaules},
	{Name: "glutes harm raise", MuscleGroup: model.MuscleIschio},
	{Name: "hack squat", MuscleGroup: model.MuscleLegs},
	{Name: "leg curl", MuscleGroup: model.MuscleIschio},
	{Name: "leg extension", MuscleGroup: model.MuscleQuad},
	{Name: "magyc triceps", MuscleGroup: model.MuscleTriceps},
	{Name: "mollets assis", MuscleGroup: model.MuscleMollet},
	{Name: "mollets debout", MuscleGroup: model.MuscleMollet},
	{Name: "mollets jambes tendus", MuscleGroup: model.MuscleMollet},
	{Name: "relevé de genoux", MuscleGroup: model.MuscleAbdos},
	{Name: "extension dos poulie", MuscleGroup: model.MuscleDos},
	{Name: "rowing", MuscleGroup: model.MuscleDos},
	{Name: "tirage horizontal", MuscleGroup: model.MuscleDos},
	{Name: "tirage vertical hammer (trapèze)", MuscleGroup: model.MuscleDos},
	{Name: "Tirage vertical hammer unilatéral", MuscleGroup: model.MuscleDos},
	{Name: "tirage vertical poulie", MuscleGroup: model.MuscleDos},
	{Name: "traction", MuscleGroup: model.MuscleDos},
	{Name: "vis a vis haut de pecs", MuscleGroup: model.MusclePec},
	{Name: "fentes smith's machine", MuscleGroup: model.MuscleLegs},
	{Name: "presse a cuisse", MuscleGroup: model.MuscleLegs},
	{Name: "iso latéral leg press (hammer)", MuscleGroup: model.MuscleLegs},
	{Name: "développé décliné haltères", MuscleGroup: model.MuscleLegs},
	{Name: "rowing bucheron", MuscleGroup: model.MuscleDos},
	{Name: "tirage horizontal unilatral (technogym)", MuscleGroup: model.MuscleDos},
	{Name: "hip trust (hammer)", MuscleGroup: model.MuscleLegs},
	{Name: "développé couché prise sérrée", MuscleGroup: model.MuscleTriceps},
	{Name: "adducteurs (machine)", MuscleGroup: model.MuscleLegs},
	{Name: "abducteurs (machine)", MuscleGroup: model.MuscleLegs},
	{Name: "fentes bulgare", MuscleGroup: model.MuscleLegs},
	{Name: "extension hanche", MuscleGroup: model.MuscleLegs},
	{Name: "soulevé de terre jambes tendus", MuscleGroup: model.MuscleLegs},
	{Name: "tirage horizontal pure strengh", MuscleGroup: model.MuscleDos},
	{Name: "élévation latérale panatta", MuscleGroup: model.MuscleEpaules},
	{Name: "extension triceps poulie basse", MuscleGroup: model.MuscleTriceps},
	{Name: "crunch poulie", MuscleGroup: model.MuscleAbdos},
	{Name: "pendulum squat", MuscleGroup: model.MuscleLegs},
}

func SeedExerciseBank(db *gorm.DB) error {
	inserted := 0

	for _, exercise := range exerciseBank {
		var count int64
		if err := db.Model(&model.Exercise{}).
			Where("name = ?", exercise.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			continue
		}

		if err := db.Create(&exercise).Error; err != nil {
			return err
		}
		inserted++
	}

	if inserted > 0 {
		log.Printf("Banque d'exercices: %d exercices insérés", inserted)
	}

	return nil
}
