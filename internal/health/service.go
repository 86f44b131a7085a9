package health

import (
	"net/http"
	"sync"
	"time"

	"github.com/resumeai/resumeai-desktop/internal/model"
)

// Service checks whether the backend API answers at a given URL
type Service struct {
	lastReport  *model.HealthReport
	reportMutex sync.RWMutex
	onUpdate    func(*model.HealthReport) // callback for UI updates
}

// NewService creates a new health check service
func NewService() *Service {
	return &Service{}
}

// SetUpdateCallback sets the callback function for report updates
func (s *Service) SetUpdateCallback(callback func(*model.HealthReport)) {
	s.onUpdate = callback
}

// Check issues a single GET against url. A fresh client is constructed per
// call so no connection state carries over between checks. Any 2xx status
// maps to true and every other status to false; transport-level failures
// (bad URL, DNS, refused connection, TLS) surface as an error, never a bool.
func (s *Service) Check(url string) (bool, error) {
	s.setReport(&model.HealthReport{
		URL:       url,
		State:     model.HealthStateChecking,
		CheckedAt: time.Now(),
	})

	client := &http.Client{}
	resp, err := client.Get(url)
	if err != nil {
		s.setReport(&model.HealthReport{
			URL:       url,
			State:     model.HealthStateError,
			LastError: err.Error(),
			CheckedAt: time.Now(),
		})
		return false, err
	}
	defer resp.Body.Close()

	healthy := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices

	state := model.HealthStateUnhealthy
	if healthy {
		state = model.HealthStateHealthy
	}
	s.setReport(&model.HealthReport{
		URL:       url,
		State:     state,
		Healthy:   healthy,
		CheckedAt: time.Now(),
	})

	return healthy, nil
}

// LastReport returns the most recent report, or nil before the first check
func (s *Service) LastReport() *model.HealthReport {
	s.reportMutex.RLock()
	defer s.reportMutex.RUnlock()
	return s.lastReport
}

// setReport stores the report and notifies the UI
func (s *Service) setReport(report *model.HealthReport) {
	s.reportMutex.Lock()
	s.lastReport = report
	s.reportMutex.Unlock()

	if s.onUpdate != nil {
		s.onUpdate(report)
	}
}
