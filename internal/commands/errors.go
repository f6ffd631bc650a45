package commands

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	buildCommandValidationCode = "BUILD_COMMAND_VALIDATION_FAILED"
	buildCommandCanceledCode   = "BUILD_COMMAND_CANCELED"
	buildCommandTimeoutCode    = "BUILD_COMMAND_TIMEOUT"
	buildCommandContextCode    = "BUILD_COMMAND_CONTEXT_ERROR"
	buildCommandExecuteCode    = "BUILD_COMMAND_EXECUTION_FAILED"
)

func wrapValidationError(messageType string, err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("invalid %s command", messageType)).
		WithTextCode(buildCommandValidationCode)
}

func wrapContextError(messageType string, err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("%s command canceled", messageType)).
			WithTextCode(buildCommandCanceledCode)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("%s command deadline exceeded", messageType)).
			WithTextCode(buildCommandTimeoutCode)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("%s command context error", messageType)).
			WithTextCode(buildCommandContextCode)
	}
}

func wrapExecuteError(messageType string, err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("%s command failed", messageType)).
		WithTextCode(buildCommandExecuteCode)
}
