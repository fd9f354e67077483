package api

import (
	"errors"
	"log/slog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/logger"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	log    *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, log *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, log: log}
}

// Register mounts the scheduling routes on router.
func Register(router fiber.Router, handler SchedulerHandler) {
	v1 := router.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/schedule", handler.Schedule)
		v1.Post("/all", handler.AllAlgorithms)
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(requests.ScheduleRequests) (schedulers.Policy, error) {
		return schedulers.FCFS, nil
	})
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(requests.ScheduleRequests) (schedulers.Policy, error) {
		return schedulers.RoundRobin, nil
	})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(requests.ScheduleRequests) (schedulers.Policy, error) {
		return schedulers.SJF, nil
	})
}

// Schedule runs the policy named in the request body, or the configured default.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(request requests.ScheduleRequests) (schedulers.Policy, error) {
		name := request.Algorithm
		if name == "" {
			name = s.config.DefaultPolicy
		}
		return schedulers.ParsePolicy(name)
	})
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.decode(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	processes, quantum, err := s.convert(request)
	if err != nil {
		return s.fail(ctx, err)
	}
	results, err := schedulers.SimulateAll(processes, quantum)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]responses.ScheduleResponse, 0, len(results))
	for _, result := range results {
		response = append(response, responses.NewScheduleResponse(result))
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, pick func(requests.ScheduleRequests) (schedulers.Policy, error)) error {
	request, err := s.decode(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	policy, err := pick(request)
	if err != nil {
		return s.fail(ctx, err)
	}
	processes, quantum, err := s.convert(request)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := schedulers.Simulate(processes, policy, quantum)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.log.Info("scheduled",
		slog.String("algorithm", policy.String()),
		slog.Int("processes", len(processes)),
		slog.Float64("average_waiting_time", result.Metrics.AverageWaitingTime),
	)
	return ctx.JSON(responses.NewScheduleResponse(result))
}

func (s *SchedulerHandlerImpl) decode(ctx *fiber.Ctx) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return request, &core.InputParseError{Field: "body", Value: string(ctx.Body()), Err: err}
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) convert(request requests.ScheduleRequests) ([]core.Process, int, error) {
	processes, err := request.Processes()
	if err != nil {
		return nil, 0, err
	}
	quantum, err := request.Quantum(s.config.RoundRobinTimeQuantum)
	if err != nil {
		return nil, 0, err
	}
	return processes, quantum, nil
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrInputParse),
		errors.Is(err, core.ErrInvalidValue),
		errors.Is(err, schedulers.ErrUnknownPolicy):
		status = fiber.StatusBadRequest
	}
	s.log.Warn("request rejected", slog.String("path", ctx.Path()), slog.Int("status", status), logger.ErrAttr(err))
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}
