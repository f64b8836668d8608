package scheduler

import (
	"context"
	"fmt"

	"movebroker_backend/platform/config"
	"movebroker_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// Worker processes follow-up tasks in the scheduler binary.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		log:    log,
	}

	mux.HandleFunc(TaskLeadFollowUp, w.handleLeadFollowUp)

	return w, nil
}

// handleLeadFollowUp surfaces the lead in the specialist call queue. Today
// that is a structured log line the dialer dashboard tails.
func (w *Worker) handleLeadFollowUp(_ context.Context, task *asynq.Task) error {
	payload, err := ParseLeadFollowUpPayload(task)
	if err != nil {
		return err
	}

	w.log.Info("lead follow-up due",
		"lead_id", payload.LeadID,
		"session_id", payload.SessionID,
		"phone", payload.Phone,
		"email", payload.Email,
		"from_city", payload.FromCity,
		"to_city", payload.ToCity,
	)
	return nil
}

// Run blocks processing tasks until Shutdown is called.
func (w *Worker) Run() error {
	return w.server.Run(w.mux)
}

// Shutdown stops the worker gracefully.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}
