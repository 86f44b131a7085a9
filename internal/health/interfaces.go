package health

import (
	"github.com/resumeai/resumeai-desktop/internal/model"
)

// Checker defines the interface for the health check service.
type Checker interface {
	SetUpdateCallback(func(*model.HealthReport))
	Check(url string) (bool, error)
	LastReport() *model.HealthReport
}
