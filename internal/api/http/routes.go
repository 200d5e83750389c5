package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/sense-weather/internal/input"
	"github.com/i474232898/sense-weather/internal/store"
	"github.com/i474232898/sense-weather/internal/weather"
)

var validate = validator.New()

// StatusStore is the read side of the status store.
type StatusStore interface {
	Status() (store.Status, error)
	GetLatest(loc weather.Location) (weather.Reading, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. Events posted
// to /input are handed to the control loop through queue.
func RegisterRoutes(app *fiber.App, st StatusStore, loc weather.Location, queue *input.Queue) {
	v1 := app.Group("/api/v1")

	v1.Get("/status", func(c *fiber.Ctx) error {
		status, err := st.Status()
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "controller has not started yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read status")
		}
		return c.JSON(status)
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		reading, err := st.GetLatest(loc)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather data fetched yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}

		cond, err := weather.Lookup(reading.Code)
		return c.JSON(fiber.Map{
			"location": loc,
			"reading":  reading,
			"summary":  reading.Summary(),
			"group":    weather.GroupOf(reading.Code).String(),
			"color":    cond.Color.Hex(),
			"known":    err == nil,
		})
	})

	v1.Post("/input", func(c *fiber.Ctx) error {
		var req inputRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ev := req.toEvent()
		if !queue.Push(ev) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "input queue is full")
		}
		return c.Status(fiber.StatusAccepted).JSON(ev)
	})
}

// inputRequest is a joystick event posted by a remote client. Action
// defaults to pressed.
type inputRequest struct {
	Direction string `json:"direction" validate:"required,oneof=left right up down middle"`
	Action    string `json:"action" validate:"omitempty,oneof=pressed released held"`
}

func (r inputRequest) toEvent() input.Event {
	ev := input.Press(input.Direction(r.Direction))
	if r.Action != "" {
		ev.Action = input.Action(r.Action)
	}
	return ev
}
