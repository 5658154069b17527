package usecase

import (
	"smart-task-manager/internal/interpreter"
	"smart-task-manager/internal/task"
	"smart-task-manager/internal/task/repository"
	pkgLog "smart-task-manager/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	interp *interpreter.Interpreter
	repo   repository.Repository
}

var _ task.UseCase = &implUseCase{}

// New returns the task business logic backed by the given repository
// and interpreter.
func New(l pkgLog.Logger, interp *interpreter.Interpreter, repo repository.Repository) task.UseCase {
	return &implUseCase{
		l:      l,
		interp: interp,
		repo:   repo,
	}
}
