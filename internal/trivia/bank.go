package trivia

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultQuestionsYAML []byte

// Question is one multiple-choice question.
type Question struct {
	Prompt  string   `yaml:"prompt"`
	Choices []string `yaml:"choices"`
	Answer  int      `yaml:"answer"` // 1-based index into Choices
}

// Correct reports whether the 1-based choice is the right answer.
func (q Question) Correct(choice int) bool {
	return choice == q.Answer
}

// CorrectChoice returns the text of the right answer.
func (q Question) CorrectChoice() string {
	if q.Answer < 1 || q.Answer > len(q.Choices) {
		return ""
	}
	return q.Choices[q.Answer-1]
}

type bankFile struct {
	Elements []struct {
		Number    int        `yaml:"number"`
		Questions []Question `yaml:"questions"`
	} `yaml:"elements"`
}

// Bank maps tile levels to their questions.
type Bank struct {
	byLevel map[int][]Question
}

// Source is the randomness used to pick questions. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// LoadBank parses and validates a YAML question bank.
func LoadBank(data []byte) (*Bank, error) {
	var file bankFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("trivia: cannot parse question bank: %w", err)
	}

	bank := &Bank{byLevel: make(map[int][]Question)}
	var errs []error
	for _, el := range file.Elements {
		if el.Number < 1 {
			errs = append(errs, fmt.Errorf("element number must be positive, got %d", el.Number))
			continue
		}
		for i, q := range el.Questions {
			if err := validateQuestion(q); err != nil {
				errs = append(errs, fmt.Errorf("element %d question %d: %w", el.Number, i+1, err))
				continue
			}
			bank.byLevel[el.Number] = append(bank.byLevel[el.Number], q)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("trivia: invalid question bank: %w", err)
	}
	return bank, nil
}

func validateQuestion(q Question) error {
	switch {
	case q.Prompt == "":
		return errors.New("empty prompt")
	case len(q.Choices) < 2:
		return fmt.Errorf("need at least 2 choices, got %d", len(q.Choices))
	case q.Answer < 1 || q.Answer > len(q.Choices):
		return fmt.Errorf("answer %d outside choices 1..%d", q.Answer, len(q.Choices))
	}
	return nil
}

// LoadBankFile reads a question bank from disk.
func LoadBankFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trivia: failed to read question bank %s: %w", path, err)
	}
	return LoadBank(data)
}

// DefaultBank returns the embedded question bank.
func DefaultBank() *Bank {
	bank, err := LoadBank(defaultQuestionsYAML)
	if err != nil {
		panic(err)
	}
	return bank
}

// Questions returns the questions for a level.
func (b *Bank) Questions(level int) []Question {
	return b.byLevel[level]
}

// Pick chooses one question for the level at random.
func (b *Bank) Pick(level int, rng Source) (Question, bool) {
	qs := b.byLevel[level]
	if len(qs) == 0 {
		return Question{}, false
	}
	return qs[rng.Intn(len(qs))], true
}

// Levels returns the levels that have questions, ascending.
func (b *Bank) Levels() []int {
	levels := make([]int, 0, len(b.byLevel))
	for level := range b.byLevel {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}
