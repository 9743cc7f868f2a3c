package domain

// Quiz size bounds.
const (
	MinQuizQuestions = 3
	MaxQuizQuestions = 10

	MinQuestionOptions = 2
	MaxQuestionOptions = 4
)

// QuizQuestion is a single multiple-choice question. CorrectIndex must
// reference a valid position in Options.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

// NewQuizQuestion validates the fields and returns a QuizQuestion.
func NewQuizQuestion(question string, options []string, correctIndex int, explanation string) (*QuizQuestion, error) {
	if question == "" {
		return nil, invalidf("question", "must not be empty")
	}
	if len(options) < MinQuestionOptions || len(options) > MaxQuestionOptions {
		return nil, invalidf("options", "must contain between %d and %d items, got %d", MinQuestionOptions, MaxQuestionOptions, len(options))
	}
	if correctIndex < 0 || correctIndex >= MaxQuestionOptions {
		return nil, invalidf("correct_index", "must be between 0 and %d, got %d", MaxQuestionOptions-1, correctIndex)
	}
	if correctIndex >= len(options) {
		return nil, invalidf("correct_index", "index %d out of range for %d options", correctIndex, len(options))
	}
	return &QuizQuestion{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  explanation,
	}, nil
}

// Quiz is an ordered set of questions for one module. A quiz owns its
// questions.
type Quiz struct {
	ModuleID   int             `json:"module_id"`
	Topic      string          `json:"topic"`
	Difficulty Level           `json:"difficulty"`
	Questions  []*QuizQuestion `json:"questions"`
}

// NewQuiz validates the fields and returns a Quiz. The questions must
// already be constructed (and therefore valid) QuizQuestions.
func NewQuiz(moduleID int, topic string, difficulty Level, questions []*QuizQuestion) (*Quiz, error) {
	if topic == "" {
		return nil, invalidf("topic", "must not be empty")
	}
	if _, ok := ParseLevel(string(difficulty)); !ok {
		return nil, invalidf("difficulty", "must be beginner, intermediate, or expert, got %q", difficulty)
	}
	if len(questions) < MinQuizQuestions || len(questions) > MaxQuizQuestions {
		return nil, invalidf("questions", "must contain between %d and %d items, got %d", MinQuizQuestions, MaxQuizQuestions, len(questions))
	}
	return &Quiz{
		ModuleID:   moduleID,
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  questions,
	}, nil
}
