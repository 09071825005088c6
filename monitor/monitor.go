package monitor

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// Snapshot is the live view of a training run served by the monitor.
type Snapshot struct {
	Experiment string  `json:"experiment"`
	Episodes   int     `json:"episodes"`
	AvgScore   float64 `json:"avg_score"`
	MaxScore   int     `json:"max_score"`
}

// Monitor serves the latest training snapshot over HTTP. The training loop
// pushes snapshots with Update; the learning core itself stays untouched
// and single-threaded.
type Monitor struct {
	lock   *sync.Mutex
	snap   Snapshot
	server *http.Server
}

func New(addr string) *Monitor {
	m := &Monitor{
		lock: new(sync.Mutex),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/stats", m.handleStats)
	m.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	return m
}

func (m *Monitor) handleStats(c *gin.Context) {
	m.lock.Lock()
	snap := m.snap
	m.lock.Unlock()
	c.JSON(http.StatusOK, snap)
}

// Update replaces the served snapshot.
func (m *Monitor) Update(s Snapshot) {
	m.lock.Lock()
	m.snap = s
	m.lock.Unlock()
}

// Start serves in the background until Stop is called.
func (m *Monitor) Start() {
	go func() {
		m.server.ListenAndServe()
	}()
}

func (m *Monitor) Stop(ctx context.Context) {
	m.server.Shutdown(ctx)
}
