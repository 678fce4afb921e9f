package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/pkg/logger"
	"soundkey-be/internal/pkg/serverutils"
	"soundkey-be/internal/repository/memory"
	"soundkey-be/internal/repository/unitofwork"
	"soundkey-be/internal/service"
	"soundkey-be/pkg/corpus"
	"soundkey-be/pkg/notation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type chordView struct {
	Symbol   string `json:"symbol"`
	Category string `json:"category"`
}

type scaleView struct {
	Name string `json:"name"`
	Root string `json:"root"`
}

func newTestApp(t *testing.T, chords service.IChordService, scales service.IScaleService) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(HarmonyErrorStatus))
	api := app.Group("/api")
	NewChordController(chords).RegisterRoutes(api)
	NewScaleController(scales).RegisterRoutes(api)
	return app
}

func newCorpusApp(t *testing.T) *fiber.App {
	t.Helper()
	c, err := corpus.Generate(notation.NewParser())
	require.NoError(t, err)
	factory := unitofwork.NewMemoryRepositoryFactory(
		memory.NewChordRepository(c.Chords...),
		memory.NewScaleRepository(c.ScaleGroups, c.Scales...),
	)
	parser := notation.NewParser()
	log := logger.NewNopLogger()
	return newTestApp(t,
		service.NewChordService(factory, parser, log),
		service.NewScaleService(factory, parser, log),
	)
}

func get[T any](t *testing.T, app *fiber.App, url string) (int, envelope[T]) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	var body envelope[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func symbolsOf(chords []chordView) []string {
	out := make([]string, len(chords))
	for i, c := range chords {
		out[i] = c.Symbol
	}
	return out
}

func scaleNamesOf(scales []scaleView) []string {
	out := make([]string, len(scales))
	for i, s := range scales {
		out[i] = s.Root + " " + s.Name
	}
	return out
}

func TestChordController(t *testing.T) {
	app := newCorpusApp(t)

	tests := []struct {
		name string
		url  string
		want []string
	}{
		{"extensions", "/api/chord/v1/extensions?notes=c,e,g&category=Triad", []string{"C6", "C7", "Cmaj7"}},
		{"deductions", "/api/chord/v1/deductions?notes=C,E,G,B", []string{"C", "Em"}},
		{"rotations with flats", "/api/chord/v1/rotations?notes=C,Eb,Gb,A", []string{"D#dim7", "F#dim7", "Adim7"}},
		{"thirteen has no next rung", "/api/chord/v1/extensions?notes=C,E,G,A%23,D,F,A&category=Thirteen", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get[[]chordView](t, app, tt.url)
			require.Equal(t, fiber.StatusOK, status)
			assert.True(t, body.Success)
			assert.Equal(t, tt.want, symbolsOf(body.Data))
		})
	}
}

func TestChordController_Category(t *testing.T) {
	app := newCorpusApp(t)

	status, body := get[entity.CategoryAndTriadBase](t, app, "/api/chord/v1/category?root=C&notes=C,E,G,A%23")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, entity.CategorySeven, body.Data.Category)
	require.NotNil(t, body.Data.TriadBase)
	assert.Equal(t, "C", *body.Data.TriadBase)

	status, body = get[entity.CategoryAndTriadBase](t, app, "/api/chord/v1/category?root=C&notes=C,C%23,D")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, entity.CategoryCrafted, body.Data.Category)
	assert.Nil(t, body.Data.TriadBase)
}

func TestChordController_BadRequests(t *testing.T) {
	app := newCorpusApp(t)

	tests := []struct {
		name string
		url  string
	}{
		{"invalid note", "/api/chord/v1/alterations?notes=C,H,G"},
		{"missing notes", "/api/chord/v1/appendments"},
		{"missing category", "/api/chord/v1?root=C"},
		{"crafted category", "/api/chord/v1?root=C&category=Crafted"},
		{"invalid limiter", "/api/chord/v1?root=C&category=Triad&limit=C,X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get[any](t, app, tt.url)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestScaleController(t *testing.T) {
	app := newCorpusApp(t)

	status, body := get[[]scaleView](t, app, "/api/scale/v1/rotations?notes=C,D,E,F,G,A,B")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{
		"D Dorian", "E Phrygian", "F Lydian", "G Mixolydian", "A Aeolian", "B Locrian",
	}, scaleNamesOf(body.Data))

	status, body = get[[]scaleView](t, app, "/api/scale/v1/subscales?notes=C,D,E,F,G,A,B&alter_by=2")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body.Data, 6)

	status, body = get[[]scaleView](t, app, "/api/scale/v1/subscales?notes=C,D,E,F,G,A,B&alter_by=1")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{
		"C Major Hexatonic", "D Minor Hexatonic", "G Major Hexatonic", "A Minor Hexatonic",
	}, scaleNamesOf(body.Data))

	status, body = get[[]scaleView](t, app, "/api/scale/v1/subscales?notes=C,D,E,F,G,A,B&alter_by=2&leave_out=1")
	require.Equal(t, fiber.StatusOK, status)
	assert.Greater(t, len(body.Data), 6)

	status, body = get[[]scaleView](t, app, "/api/scale/v1/modes?root=C&mode=diatonic")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body.Data, 7)

	status, body = get[[]scaleView](t, app, "/api/scale/v1/search?q=LYD%20dom")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body.Data, 12)
}

func TestScaleController_Groups(t *testing.T) {
	app := newCorpusApp(t)

	status, body := get[[]entity.ScaleGroup](t, app, "/api/scale/v1/groups?root=C&type=Pentatonic")
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, body.Data, 1)
	assert.Equal(t, corpus.GroupPentatonic, body.Data[0].Id)
}

func TestScaleController_BadRequests(t *testing.T) {
	app := newCorpusApp(t)

	for _, url := range []string{
		"/api/scale/v1?root=C&group_id=one",
		"/api/scale/v1/groups?root=C&type=Nonatonic",
		"/api/scale/v1/modes?root=C&mode=bebop",
		"/api/scale/v1/subscales?notes=C,D,E&alter_by=abc",
		"/api/scale/v1/subscales?notes=C,D,E&alter_by=3",
		"/api/scale/v1/subscales?notes=C,D,E&alter_by=1&leave_out=2",
	} {
		t.Run(url, func(t *testing.T) {
			status, _ := get[any](t, app, url)
			assert.Equal(t, fiber.StatusBadRequest, status)
		})
	}
}

type unavailableChords struct {
	service.IChordService
}

func (unavailableChords) GetAlterations(context.Context, entity.NoteSource, entity.NoteSource) ([]*entity.Chord, error) {
	return nil, fmt.Errorf("%w: %w", service.ErrStorageUnavailable, context.DeadlineExceeded)
}

func (unavailableChords) GetDeductions(context.Context, entity.NoteSource, entity.NoteSource) ([]*entity.Chord, error) {
	return nil, fmt.Errorf("%w: chord C7", service.ErrReconstructionFailure)
}

func TestChordController_ServerErrors(t *testing.T) {
	app := newTestApp(t, unavailableChords{}, nil)

	status, body := get[any](t, app, "/api/chord/v1/alterations?notes=C,E,G")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Nil(t, body.Data)

	status, _ = get[any](t, app, "/api/chord/v1/deductions?notes=C,E,G")
	assert.Equal(t, fiber.StatusInternalServerError, status)
}
