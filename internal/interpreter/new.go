package interpreter

import (
	"smart-task-manager/pkg/datemath"
	"smart-task-manager/pkg/log"
	"smart-task-manager/pkg/nlp"
	"smart-task-manager/pkg/textcat"
)

// Interpreter turns one free-text task description into a structured task
// draft. Every sub-step degrades to a safe default; Interpret never fails.
type Interpreter struct {
	l          log.Logger
	classifier *textcat.Classifier
	dates      *datemath.Parser
	extractor  *nlp.Extractor
}

// New creates an Interpreter.
func New(l log.Logger, classifier *textcat.Classifier, dates *datemath.Parser, extractor *nlp.Extractor) *Interpreter {
	return &Interpreter{
		l:          l,
		classifier: classifier,
		dates:      dates,
		extractor:  extractor,
	}
}
