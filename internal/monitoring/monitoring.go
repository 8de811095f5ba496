// Package monitoring serves runtime stats for the admin ops page:
// database, host and process health, plus a websocket feed that
// pushes a fresh snapshot every few seconds.
package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

type SystemStats struct {
	DatabaseStatus    string  `json:"database_status"`
	ActiveConnections int     `json:"active_connections"`
	ResponseTime      int64   `json:"response_time_ms"`
	DBSize            string  `json:"db_size"`
	Uptime            string  `json:"uptime"`
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	MemoryUsed        string  `json:"memory_used"`
	MemoryTotal       string  `json:"memory_total"`
	DiskPercent       float64 `json:"disk_percent"`
	DiskUsed          string  `json:"disk_used"`
	DiskTotal         string  `json:"disk_total"`
	CollectedAt       string  `json:"collected_at"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Monitor struct {
	db         *pgxpool.Pool
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
}

func NewMonitor(db *pgxpool.Pool) *Monitor {
	return &Monitor{
		db:      db,
		clients: make(map[*websocket.Conn]bool),
	}
}

func (m *Monitor) CollectStats() SystemStats {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := m.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	dbStatus := "healthy"
	if err != nil {
		dbStatus = "unhealthy"
	}

	var activeConns int
	m.db.QueryRow(ctx, "SELECT count(*) FROM pg_stat_activity").Scan(&activeConns)

	var dbSizeBytes int64
	m.db.QueryRow(ctx, "SELECT pg_database_size(current_database())").Scan(&dbSizeBytes)
	dbSize := fmt.Sprintf("%.2f MB", float64(dbSizeBytes)/(1024*1024))

	var uptimeSec int
	m.db.QueryRow(ctx, "SELECT EXTRACT(EPOCH FROM (NOW() - pg_postmaster_start_time()))::int").Scan(&uptimeSec)

	cpuPercents, _ := cpu.Percent(time.Second, false)
	cpuPercent := 0.0
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}

	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")

	stats := SystemStats{
		DatabaseStatus:    dbStatus,
		ActiveConnections: activeConns,
		ResponseTime:      responseTime,
		DBSize:            dbSize,
		Uptime:            formatUptime(uptimeSec),
		CPUPercent:        cpuPercent,
		CollectedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if memStats != nil {
		stats.MemoryPercent = memStats.UsedPercent
		stats.MemoryUsed = formatBytes(memStats.Used)
		stats.MemoryTotal = formatBytes(memStats.Total)
	}
	if diskStats != nil {
		stats.DiskPercent = diskStats.UsedPercent
		stats.DiskUsed = formatBytes(diskStats.Used)
		stats.DiskTotal = formatBytes(diskStats.Total)
	}
	return stats
}

func (m *Monitor) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats := m.CollectStats()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// WebsocketHandler pushes a snapshot every 5 seconds until the client
// disconnects.
func (m *Monitor) WebsocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Monitoring] Websocket upgrade failed: %v", err)
		return
	}

	m.clientsMux.Lock()
	m.clients[conn] = true
	m.clientsMux.Unlock()

	go func() {
		defer func() {
			m.clientsMux.Lock()
			delete(m.clients, conn)
			m.clientsMux.Unlock()
			conn.Close()
		}()

		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			if err := conn.WriteJSON(m.CollectStats()); err != nil {
				return
			}
		}
	}()

	// Drain reads so pings and close frames are processed
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func formatUptime(seconds int) string {
	d := seconds / 86400
	h := (seconds % 86400) / 3600
	m := (seconds % 3600) / 60
	if d > 0 {
		return fmt.Sprintf("%dd %dh %dm", d, h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
