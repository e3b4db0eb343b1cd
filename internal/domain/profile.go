package domain

// Gender of the runner, as submitted with the plan request.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// FitnessLevel selects the pace-offset and volume tables used by the
// plan generator.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// Profile holds the runner data submitted with a plan request.
// Immutable once submitted; the generator never mutates it.
type Profile struct {
	Gender              Gender       `bson:"gender" json:"gender"`
	HeightCm            int          `bson:"heightCm" json:"height_cm"`
	WeightKg            float64      `bson:"weightKg" json:"weight_kg"`
	Age                 int          `bson:"age" json:"age"`
	FitnessLevel        FitnessLevel `bson:"fitnessLevel" json:"fitness_level"`
	TrainingDaysPerWeek int          `bson:"trainingDaysPerWeek" json:"training_days_per_week"`
	PreviousRaceTimes   []string     `bson:"previousRaceTimes,omitempty" json:"previous_race_times,omitempty"`
	Injuries            []string     `bson:"injuries,omitempty" json:"injuries,omitempty"`
}
