package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"srtf-simulator/config"
	"srtf-simulator/internal/requests"
	"srtf-simulator/internal/responses"
	"srtf-simulator/internal/schedulers"
	"srtf-simulator/internal/session"
)

type SchedulerHandler interface {
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	AddProcess(ctx *fiber.Ctx) error
	RemoveProcess(ctx *fiber.Ctx) error
	RunSession(ctx *fiber.Ctx) error
	ResetSession(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	sessions *session.Store
	logger   *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, sessions *session.Store, logger *slog.Logger) *SchedulerHandlerImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchedulerHandlerImpl{config: config, sessions: sessions, logger: logger}
}

func errorResponse(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{"error": msg})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, session.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, session.ErrDuplicateName):
		return fiber.StatusConflict
	case errors.Is(err, schedulers.ErrInvalidInput),
		errors.Is(err, session.ErrInvalidProcess),
		errors.Is(err, session.ErrNoProcesses),
		errors.Is(err, session.ErrTooMany):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		s.logger.Error("request failed", "path", ctx.Path(), "error", err)
		return errorResponse(ctx, status, "can not process request")
	}
	return errorResponse(ctx, status, err.Error())
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "invalid request format")
	}
	if len(request.Processes) > s.config.MaxProcesses {
		return errorResponse(ctx, fiber.StatusBadRequest, "too many processes")
	}

	result, err := schedulers.ScheduleShortestRemainingTimeFirst(request.Specs(),
		schedulers.WithLogger(s.logger),
		schedulers.WithMaxTime(s.config.MaxTime))
	if err != nil {
		return s.fail(ctx, err)
	}
	s.logger.Info("srtf simulation finished",
		"processes", len(request.Processes),
		"avg_waiting_time", result.AvgWaitingTime,
		"avg_turnaround_time", result.AvgTurnaroundTime)
	return ctx.JSON(responses.NewScheduleResponse(result))
}

func (s *SchedulerHandlerImpl) session(ctx *fiber.Ctx) (*session.Session, error) {
	return s.sessions.Get(ctx.Params("id"))
}

func (s *SchedulerHandlerImpl) CreateSession(ctx *fiber.Ctx) error {
	sess := s.sessions.Create()
	return ctx.Status(fiber.StatusCreated).JSON(responses.ProcessListResponse{
		SessionID: sess.ID,
		Processes: sess.Processes(),
	})
}

func (s *SchedulerHandlerImpl) GetSession(ctx *fiber.Ctx) error {
	sess, err := s.session(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(responses.ProcessListResponse{
		SessionID: sess.ID,
		Processes: sess.Processes(),
		Result:    responses.NewScheduleResponse(sess.Last()),
	})
}

func (s *SchedulerHandlerImpl) DeleteSession(ctx *fiber.Ctx) error {
	if err := s.sessions.Delete(ctx.Params("id")); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) AddProcess(ctx *fiber.Ctx) error {
	sess, err := s.session(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var job requests.Job
	if err := ctx.BodyParser(&job); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "invalid request format")
	}
	spec, err := sess.Add(job.Name, job.ArrivalTime, job.BurstTime)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(spec)
}

func (s *SchedulerHandlerImpl) RemoveProcess(ctx *fiber.Ctx) error {
	sess, err := s.session(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	index, err := ctx.ParamsInt("index")
	if err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "invalid process index")
	}
	if err := sess.Remove(index); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) RunSession(ctx *fiber.Ctx) error {
	sess, err := s.session(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := sess.Run()
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(responses.NewScheduleResponse(result))
}

func (s *SchedulerHandlerImpl) ResetSession(ctx *fiber.Ctx) error {
	sess, err := s.session(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	sess.Reset()
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}
