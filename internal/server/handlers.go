package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"focusd/internal/domain"
	"focusd/internal/logging"
	"focusd/internal/services"
)

func completeSession(recorder *services.RecorderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TaskID      *string `json:"taskId"`
			DurationSec float64 `json:"durationSec"`
			Mode        string  `json:"mode"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if !domain.Mode(req.Mode).Valid() {
			respondError(w, "Invalid session mode", http.StatusBadRequest)
			return
		}

		session, err := recorder.RecordSession(r.Context(), UserID(r), services.RecordSessionParams{
			DurationSec: req.DurationSec,
			Mode:        req.Mode,
			TaskID:      req.TaskID,
		})
		if err != nil {
			respondError(w, "Failed to record session completion", http.StatusInternalServerError)
			return
		}

		respondJSON(w, map[string]any{"session": session}, http.StatusOK)
	}
}

func getStats(stats *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset := 0
		if raw := r.URL.Query().Get("timezoneOffset"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				respondError(w, "Invalid timezoneOffset", http.StatusBadRequest)
				return
			}
			offset = parsed
		}

		result, err := stats.ComputeStats(r.Context(), UserID(r), services.StatsParams{
			StartDate:             r.URL.Query().Get("startDate"),
			EndDate:               r.URL.Query().Get("endDate"),
			TimezoneOffsetMinutes: offset,
		})
		if err != nil {
			if errors.Is(err, services.ErrInvalidRange) {
				respondError(w, "Invalid date range", http.StatusBadRequest)
				return
			}
			logging.Logger.Error("failed to compute stats", "user", UserID(r), "error", err)
			respondError(w, "Failed to fetch statistics", http.StatusInternalServerError)
			return
		}

		respondJSON(w, result, http.StatusOK)
	}
}

func getHistory(stats *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions, err := stats.History(r.Context(), UserID(r), services.HistoryParams{
			StartDate: r.URL.Query().Get("startDate"),
			EndDate:   r.URL.Query().Get("endDate"),
		})
		if err != nil {
			if errors.Is(err, services.ErrInvalidRange) {
				respondError(w, "Invalid date range", http.StatusBadRequest)
				return
			}
			logging.Logger.Error("failed to fetch history", "user", UserID(r), "error", err)
			respondError(w, "Failed to fetch sessions", http.StatusInternalServerError)
			return
		}

		respondJSON(w, map[string]any{"sessions": sessions}, http.StatusOK)
	}
}

func listTasks(tasks *services.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := tasks.ListTasks(r.Context(), UserID(r))
		if err != nil {
			logging.Logger.Error("failed to fetch tasks", "user", UserID(r), "error", err)
			respondError(w, "Failed to fetch tasks", http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"tasks": list}, http.StatusOK)
	}
}

func createTask(tasks *services.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title              string `json:"title"`
			Description        string `json:"description"`
			Priority           string `json:"priority"`
			EstimatedPomodoros int    `json:"estimatedPomodoros"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		task, err := tasks.CreateTask(r.Context(), UserID(r), services.CreateTaskParams{
			Title:              req.Title,
			Description:        req.Description,
			Priority:           req.Priority,
			EstimatedPomodoros: req.EstimatedPomodoros,
		})
		if err != nil {
			if errors.Is(err, services.ErrInvalidTask) {
				respondError(w, err.Error(), http.StatusBadRequest)
				return
			}
			logging.Logger.Error("failed to create task", "user", UserID(r), "error", err)
			respondError(w, "Failed to create task", http.StatusInternalServerError)
			return
		}

		respondJSON(w, map[string]any{"task": task}, http.StatusCreated)
	}
}

func updateTask(tasks *services.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title              *string `json:"title"`
			Description        *string `json:"description"`
			Priority           *string `json:"priority"`
			EstimatedPomodoros *int    `json:"estimatedPomodoros"`
			Completed          *bool   `json:"completed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		task, err := tasks.UpdateTask(r.Context(), UserID(r), chi.URLParam(r, "id"), services.UpdateTaskParams{
			Title:              req.Title,
			Description:        req.Description,
			Priority:           req.Priority,
			EstimatedPomodoros: req.EstimatedPomodoros,
			Completed:          req.Completed,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTaskNotFound):
				respondError(w, "Task not found", http.StatusNotFound)
			case errors.Is(err, services.ErrInvalidTask):
				respondError(w, err.Error(), http.StatusBadRequest)
			default:
				logging.Logger.Error("failed to update task", "user", UserID(r), "error", err)
				respondError(w, "Failed to update task", http.StatusInternalServerError)
			}
			return
		}

		respondJSON(w, map[string]any{"task": task}, http.StatusOK)
	}
}

func deleteTask(tasks *services.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := tasks.DeleteTask(r.Context(), UserID(r), chi.URLParam(r, "id")); err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				respondError(w, "Task not found", http.StatusNotFound)
				return
			}
			logging.Logger.Error("failed to delete task", "user", UserID(r), "error", err)
			respondError(w, "Failed to delete task", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
