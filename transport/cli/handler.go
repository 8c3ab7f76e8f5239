package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-bestmove/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/entity"
)

// InvalidJSONMessage - printed instead of a response document when the input can not be decoded.
const InvalidJSONMessage = "Please include valid json"

type moveAdvisor interface {
	Advise(ctx context.Context, requests []entity.MoveRequest) []entity.MoveResponse
}

type Handler struct {
	logger  *slog.Logger
	advisor moveAdvisor
}

func NewHandler(logger *slog.Logger, advisor moveAdvisor) *Handler {
	return &Handler{
		logger:  logger.With("component", "cli"),
		advisor: advisor,
	}
}

// Handle - decodes the request batch from the first argument and writes the responses to out.
func (that *Handler) Handle(ctx context.Context, args []string, out io.Writer) error {
	log := that.logger.With("method", "Handle")

	requests, err := decodeRequests(args)
	if err != nil {
		log.Debug("rejected input", "error", err)

		if _, err = fmt.Fprintln(out, InvalidJSONMessage); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}

		return nil
	}

	responses := that.advisor.Advise(ctx, requests)

	payload, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("failed to marshal responses: %w", err)
	}

	if _, err = fmt.Fprintln(out, string(payload)); err != nil {
		return fmt.Errorf("failed to write responses: %w", err)
	}

	log.Info("batch answered", "requests", len(requests))

	return nil
}

func decodeRequests(args []string) ([]entity.MoveRequest, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: no input", apperror.ErrMalformedRequest)
	}

	requests := make([]entity.MoveRequest, 0)
	if err := json.Unmarshal([]byte(args[0]), &requests); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedRequest, err)
	}

	return requests, nil
}
