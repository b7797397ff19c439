// Package survey implements the mood survey wizard state machine.
//
// The wizard walks through a fixed question sequence, one integer answer per
// question. Answers are append-only: there is no back-navigation and a
// recorded answer cannot be edited. Completing the final question moves the
// wizard into its summary state, after which further answers are rejected.
// Reset returns the wizard to the first question with no answers.
package survey

import (
	"fmt"

	"github.com/zenith-music/zenith/internal/models"
	"github.com/zenith-music/zenith/internal/shared"
)

// Questions is the fixed question sequence, in presentation order. The answer
// index matches the question index and maps positionally onto [models.MoodScores].
var Questions = []string{
	"How much do you feel like smiling today?",
	"How often did you feel down or upset today?",
	"How strongly do you feel connected or caring towards others right now?",
	"How motivated do you feel to perform physical or mental tasks today?",
}

const (
	// MinAnswer and MaxAnswer bound the discrete rating scale.
	MinAnswer = 1
	MaxAnswer = 5
)

// Wizard tracks progress through the survey. The zero value is not usable;
// construct with [NewWizard].
type Wizard struct {
	index   int
	answers []int
}

// NewWizard returns a wizard positioned at the first question.
func NewWizard() *Wizard {
	return &Wizard{answers: make([]int, 0, len(Questions))}
}

// Question returns the text of the current question. It panics only if called
// after completion, which Complete guards against.
func (w *Wizard) Question() string {
	return Questions[w.index]
}

// Index returns the zero-based index of the current question.
func (w *Wizard) Index() int {
	return w.index
}

// Answer records a rating for the current question and advances the wizard.
// The final answer transitions the wizard into its summary state.
func (w *Wizard) Answer(rating int) error {
	if w.Complete() {
		return shared.ErrSurveyComplete
	}
	if rating < MinAnswer || rating > MaxAnswer {
		return fmt.Errorf("%w: got %d", shared.ErrInvalidAnswer, rating)
	}

	w.answers = append(w.answers, rating)
	w.index++
	return nil
}

// Complete reports whether every question has been answered.
func (w *Wizard) Complete() bool {
	return len(w.answers) == len(Questions)
}

// Answers returns a copy of the recorded answers in question order.
func (w *Wizard) Answers() []int {
	out := make([]int, len(w.answers))
	copy(out, w.answers)
	return out
}

// Scores derives the mood scores from the recorded answers. Fails until the
// survey is complete.
func (w *Wizard) Scores() (models.MoodScores, error) {
	if !w.Complete() {
		return models.MoodScores{}, fmt.Errorf("%w: %d of %d answered", shared.ErrSurveyIncomplete, len(w.answers), len(Questions))
	}
	return models.ScoresFromAnswers(w.answers), nil
}

// Reset discards all answers and returns to the first question. Called when
// the survey overlay is dismissed.
func (w *Wizard) Reset() {
	w.index = 0
	w.answers = w.answers[:0]
}
