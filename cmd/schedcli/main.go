package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/logger"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/pkg/client"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("schedcli failed", logger.ErrAttr(err))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("schedcli", flag.ContinueOnError)
	file := fs.String("file", "-", "CSV process table (arrival,burst or id,arrival,burst); - reads stdin")
	algorithm := fs.String("algorithm", "", "fcfs, sjf, rr or all (default from config)")
	quantum := fs.Int("quantum", 0, "round robin time quantum, must be positive (default from config)")
	remote := fs.String("remote", "", "scheduler service base URL, e.g. http://localhost:9095")
	configPath := fs.String("config", "", "config file path")
	logLevel := fs.String("log-level", "", "log level override")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	slog.SetDefault(logger.BuildLogger(cfg.LogLevel))

	if *algorithm == "" {
		*algorithm = cfg.DefaultPolicy
	}
	quantumSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "quantum" {
			quantumSet = true
		}
	})
	if !quantumSet {
		*quantum = cfg.RoundRobinTimeQuantum
	}

	processes, err := loadProcesses(*file, stdin)
	if err != nil {
		return err
	}

	var results []responses.ScheduleResponse
	if *remote != "" {
		results, err = scheduleRemote(client.New(*remote), processes, *algorithm, quantum)
	} else {
		results, err = scheduleLocal(processes, *algorithm, *quantum)
	}
	if err != nil {
		return err
	}

	for _, result := range results {
		render.Schedule(stdout, result.Algorithm.Title(), result)
	}
	return nil
}

func loadProcesses(path string, stdin io.Reader) ([]core.Process, error) {
	if path == "-" {
		return requests.ReadCSV(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scheduling file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return requests.ReadCSV(f)
}

func scheduleLocal(processes []core.Process, algorithm string, quantum int) ([]responses.ScheduleResponse, error) {
	if strings.EqualFold(algorithm, "all") {
		results, err := schedulers.SimulateAll(processes, quantum)
		if err != nil {
			return nil, err
		}
		out := make([]responses.ScheduleResponse, 0, len(results))
		for _, result := range results {
			out = append(out, responses.NewScheduleResponse(result))
		}
		return out, nil
	}

	policy, err := schedulers.ParsePolicy(algorithm)
	if err != nil {
		return nil, err
	}
	result, err := schedulers.Simulate(processes, policy, quantum)
	if err != nil {
		return nil, err
	}
	return []responses.ScheduleResponse{responses.NewScheduleResponse(result)}, nil
}

func scheduleRemote(c *client.Client, processes []core.Process, algorithm string, quantum *int) ([]responses.ScheduleResponse, error) {
	if strings.EqualFold(algorithm, "all") {
		return c.All(processes, quantum)
	}
	policy, err := schedulers.ParsePolicy(algorithm)
	if err != nil {
		return nil, err
	}
	result, err := c.Schedule(processes, policy, quantum)
	if err != nil {
		return nil, err
	}
	return []responses.ScheduleResponse{result}, nil
}
