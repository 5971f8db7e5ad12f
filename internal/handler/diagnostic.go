package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ruva-app/ruva-backend/internal/diagnostic"
	"github.com/ruva-app/ruva-backend/internal/queue"
	"github.com/ruva-app/ruva-backend/internal/service"
)

// EventPublisher sends diagnostic events to the broker.
type EventPublisher interface {
	PublishDiagnosticChecked(ctx context.Context, event queue.DiagnosticCheckedEvent) error
}

// DiagnosticHandler serves GET /test.
type DiagnosticHandler struct {
	probe          *diagnostic.Probe
	publisher      EventPublisher // optional
	serviceName    string
	log            *zap.Logger
	publishTimeout time.Duration
	now            func() time.Time
}

// NewDiagnosticHandler constructs a handler and panics if probe is nil.
// publisher may be nil, in which case no events are sent.
func NewDiagnosticHandler(probe *diagnostic.Probe, publisher EventPublisher, serviceName string, log *zap.Logger) *DiagnosticHandler {
	if probe == nil {
		panic("nil probe passed to NewDiagnosticHandler")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DiagnosticHandler{
		probe:          probe,
		publisher:      publisher,
		serviceName:    serviceName,
		log:            log,
		publishTimeout: 5 * time.Second,
		now:            time.Now,
	}
}

// Test checks the database module and reports its state.  The response is
// always 200: failures are described in the body, never returned.
func (h *DiagnosticHandler) Test(c echo.Context) error {
	outcome := h.probe.Check(c.Request().Context())
	h.publish(outcome)
	return c.JSON(http.StatusOK, h.probe.Render(outcome))
}

// publish sends the event off the request path.
func (h *DiagnosticHandler) publish(o diagnostic.Outcome) {
	if h.publisher == nil {
		return
	}
	ev := service.DiagnosticEvent(h.serviceName, o, h.now())
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.publishTimeout)
		defer cancel()
		if err := h.publisher.PublishDiagnosticChecked(ctx, ev); err != nil {
			h.log.Warn("diagnostic event not published", zap.String("status", ev.Status), zap.Error(err))
		}
	}()
}
