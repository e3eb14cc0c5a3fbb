package models

// JournalSubmission holds a user's answers to the journal personalization
// form. Name and PersonalBelief are optional and default to empty strings;
// everything else is required. The record is write-only from the API's point
// of view — it is read back only through the operator notification email.
type JournalSubmission struct {
	CurrentState      string   `bson:"currentState" json:"currentState" validate:"required"`
	CurrentFeeling    string   `bson:"currentFeeling" json:"currentFeeling" validate:"required"`
	MainGoal          string   `bson:"mainGoal" json:"mainGoal" validate:"required"`
	GoalImportance    string   `bson:"goalImportance" json:"goalImportance" validate:"required"`
	FutureIdentity    string   `bson:"futureIdentity" json:"futureIdentity" validate:"required"`
	Obstacles         []string `bson:"obstacles" json:"obstacles"`
	RemoveForever     string   `bson:"removeForever" json:"removeForever" validate:"required"`
	MotivationType    string   `bson:"motivationType" json:"motivationType" validate:"required"`
	ClosestSentence   string   `bson:"closestSentence" json:"closestSentence" validate:"required"`
	Aesthetic         string   `bson:"aesthetic" json:"aesthetic" validate:"required"`
	WantPhoto         string   `bson:"wantPhoto" json:"wantPhoto" validate:"required"`
	AffirmationStyle  string   `bson:"affirmationStyle" json:"affirmationStyle" validate:"required"`
	GuideStyle        string   `bson:"guideStyle" json:"guideStyle" validate:"required"`
	WritingAmount     string   `bson:"writingAmount" json:"writingAmount" validate:"required"`
	TonePreference    string   `bson:"tonePreference" json:"tonePreference" validate:"required"`
	FutureSelfMessage string   `bson:"futureSelfMessage" json:"futureSelfMessage" validate:"required"`
	Name              string   `bson:"name" json:"name"`
	PersonalBelief    string   `bson:"personalBelief" json:"personalBelief"`
}
