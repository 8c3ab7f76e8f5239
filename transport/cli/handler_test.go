package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bestmove/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/service"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-bestmove/internal/usecase"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	bot, err := service.NewBotService(tictactoe.DefaultDepth)
	require.NoError(t, err)

	advisor := usecase.NewMoveAdvisor(logger, bot, nil, entity.DefaultEmptyMarker)

	return NewHandler(logger, advisor)
}

func TestHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes one response per request", func(t *testing.T) {
		// Given: a batch with a playable board, a finished board and two broken requests
		handler := newTestHandler(t)
		input := `[
			{"board": "XX*OO****", "player": "X"},
			{"board": "XOXOXOOXO", "player": "X"},
			{"player": "X"},
			{"board": "*********"}
		]`

		// When: handling it
		var out bytes.Buffer
		err := handler.Handle(ctx, []string{input}, &out)

		// Then: the response document lists every answer in order
		require.NoError(t, err)
		expected := `[{"indexes":[2,5,8,6,7]},{"message":"board at end state"},{"message":"invalid board"},{"message":"invalid player"}]` + "\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Malformed json prints the fixed message", func(t *testing.T) {
		handler := newTestHandler(t)

		var out bytes.Buffer
		err := handler.Handle(ctx, []string{`[{"board": `}, &out)

		require.NoError(t, err)
		assert.Equal(t, InvalidJSONMessage+"\n", out.String())
	})

	t.Run("Wrong json shape prints the fixed message", func(t *testing.T) {
		handler := newTestHandler(t)

		var out bytes.Buffer
		err := handler.Handle(ctx, []string{`{"board": "*********", "player": "X"}`}, &out)

		require.NoError(t, err)
		assert.Equal(t, InvalidJSONMessage+"\n", out.String())
	})

	t.Run("Missing argument prints the fixed message", func(t *testing.T) {
		handler := newTestHandler(t)

		var out bytes.Buffer
		err := handler.Handle(ctx, nil, &out)

		require.NoError(t, err)
		assert.Equal(t, InvalidJSONMessage+"\n", out.String())
	})

	t.Run("Empty batch prints an empty array", func(t *testing.T) {
		handler := newTestHandler(t)

		var out bytes.Buffer
		err := handler.Handle(ctx, []string{`[]`}, &out)

		require.NoError(t, err)
		assert.Equal(t, "[]\n", out.String())
	})
}

func TestDecodeRequests(t *testing.T) {
	t.Run("Decodes board and player", func(t *testing.T) {
		requests, err := decodeRequests([]string{`[{"board": "X********", "player": "O"}]`})

		require.NoError(t, err)
		assert.Equal(t, []entity.MoveRequest{{Board: "X********", Player: "O"}}, requests)
	})

	t.Run("Wraps ErrMalformedRequest", func(t *testing.T) {
		_, err := decodeRequests([]string{`nope`})

		require.ErrorIs(t, err, apperror.ErrMalformedRequest)
	})
}
