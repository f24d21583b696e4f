package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/moreshwar/stocky/internal/scheduler"
)

// SystemHandlers handles system monitoring endpoints
type SystemHandlers struct {
	log        zerolog.Logger
	dataDir    string
	scheduler  *scheduler.Scheduler
	rescoreJob scheduler.Job
	startedAt  time.Time
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(
	log zerolog.Logger,
	dataDir string,
	sched *scheduler.Scheduler,
	rescoreJob scheduler.Job,
) *SystemHandlers {
	return &SystemHandlers{
		log:        log.With().Str("component", "system_handlers").Logger(),
		dataDir:    dataDir,
		scheduler:  sched,
		rescoreJob: rescoreJob,
		startedAt:  time.Now(),
	}
}

// SystemHealthResponse represents host and process health
type SystemHealthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds int64   `json:"uptime_seconds"`
	CPUPercent    float64 `json:"cpu_percent"`
	RAMPercent    float64 `json:"ram_percent"`
	DataDirMB     float64 `json:"data_dir_mb"`
	CheckedAt     string  `json:"checked_at"`
}

// HandleHealth is the liveness probe
// GET /health
func (h *SystemHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"})
}

// HandleSystemHealth returns host resource usage and data-directory size
// GET /api/system/health
func (h *SystemHandlers) HandleSystemHealth(w http.ResponseWriter, r *http.Request) {
	response := SystemHealthResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		DataDirMB:     h.getDirSize(h.dataDir),
		CheckedAt:     time.Now().Format(time.RFC3339),
	}

	if cpuPercent, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(cpuPercent) > 0 {
		response.CPUPercent = cpuPercent[0]
	} else if err != nil {
		h.log.Warn().Err(err).Msg("Failed to read CPU usage")
	}

	if memStat, err := mem.VirtualMemory(); err == nil {
		response.RAMPercent = memStat.UsedPercent
	} else {
		h.log.Warn().Err(err).Msg("Failed to read memory usage")
	}

	h.writeJSON(w, response)
}

// HandleTriggerRescore runs the re-evaluation job immediately
// POST /api/system/rescore
func (h *SystemHandlers) HandleTriggerRescore(w http.ResponseWriter, r *http.Request) {
	if h.rescoreJob == nil {
		h.writeJSON(w, map[string]string{
			"status":  "error",
			"message": "Rescore job not registered",
		})
		return
	}

	h.log.Info().Msg("Manual rescore triggered")

	if err := h.scheduler.RunNow(h.rescoreJob); err != nil {
		h.log.Error().Err(err).Msg("Failed to run rescore")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string]string{
		"status":  "success",
		"message": "Rescore completed",
	})
}

// getDirSize calculates total size of a directory in MB
func (h *SystemHandlers) getDirSize(dirPath string) float64 {
	var totalSize int64

	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			totalSize += info.Size()
		}
		return nil
	})

	if err != nil {
		h.log.Warn().Err(err).Str("dir", dirPath).Msg("Failed to calculate directory size")
		return 0
	}

	return float64(totalSize) / 1024 / 1024
}

// writeJSON writes a JSON response
func (h *SystemHandlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
