package intake

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/yanqian/risk-intake/internal/domain/riskresult"
)

// Submit button labels.
const (
	SubmitLabel        = "Calculate Risk Now"
	SubmitLabelLoading = "Calculating..."
)

// View is a read-only snapshot of a controller.
type View struct {
	Form        FormState                 `json:"form"`
	Loading     bool                      `json:"loading"`
	Error       *string                   `json:"error"`
	Result      riskresult.RiskResult     `json:"result"`
	Display     *riskresult.DisplayResult `json:"display"`
	SubmitLabel string                    `json:"submitLabel"`
}

// Controller owns one form session: field values plus the loading/error/result triad.
//
// Every Submit and Reset starts a new generation. A prediction response is only
// applied while its generation is current, so a slow earlier submit cannot
// overwrite a later result or repopulate a reset form. Loading stays true while
// any prediction call is in flight.
type Controller struct {
	mu         sync.Mutex
	form       FormState
	result     riskresult.RiskResult
	errMsg     *string
	inflight   int
	generation uint64

	predictor Predictor
	logger    *slog.Logger
}

// NewController returns a controller holding the default form.
func NewController(predictor Predictor, logger *slog.Logger) *Controller {
	return &Controller{
		form:      DefaultFormState(),
		predictor: predictor,
		logger:    logger.With("component", "intake.controller"),
	}
}

// UpdateField replaces one field's value. Values are not validated here.
func (c *Controller) UpdateField(name string, raw any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Set(name, raw)
}

// UpdateFields applies several fields at once; nothing changes if any of them is rejected.
func (c *Controller) UpdateFields(values map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.form
	for name, raw := range values {
		if err := next.Set(name, raw); err != nil {
			return err
		}
	}
	c.form = next
	return nil
}

// Submit validates the form and, when the required fields are present, sends the
// payload to the prediction service. Failures are recorded on the controller,
// never returned.
func (c *Controller) Submit(ctx context.Context) View {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.errMsg = nil
	c.result = nil

	if missing := MissingRequired(c.form); len(missing) > 0 {
		msg := MissingRequiredMessage
		c.errMsg = &msg
		view := c.viewLocked()
		c.mu.Unlock()
		c.logger.Info("submit rejected", "missing", missing)
		return view
	}

	payload := BuildPayload(c.form)
	c.inflight++
	c.mu.Unlock()

	// In-flight calls are not cancelled when the caller goes away.
	c.await(context.WithoutCancel(ctx), gen, payload)
	return c.View()
}

func (c *Controller) await(ctx context.Context, gen uint64, payload Payload) {
	defer func() {
		c.mu.Lock()
		c.inflight--
		c.mu.Unlock()
	}()

	start := time.Now()
	result, err := c.predictor.Predict(ctx, payload)
	latency := time.Since(start)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		c.logger.Info("discarding stale prediction", "generation", gen, "current", c.generation, "latency_ms", latency.Milliseconds())
		return
	}
	if err != nil {
		msg := FailureMessage(err)
		c.errMsg = &msg
		c.logger.Warn("prediction failed", "error", err, "latency_ms", latency.Milliseconds())
		return
	}
	if result == nil {
		result = riskresult.RiskResult{}
	}
	c.result = result
	c.errMsg = nil
	c.logger.Info("prediction received", "latency_ms", latency.Milliseconds())
}

// Reset restores the default form and clears result and error. Loading is untouched.
func (c *Controller) Reset() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.form = DefaultFormState()
	c.result = nil
	c.errMsg = nil
	return c.viewLocked()
}

// View returns the current snapshot.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	view := View{
		Form:        c.form,
		Loading:     c.inflight > 0,
		SubmitLabel: SubmitLabel,
	}
	if view.Loading {
		view.SubmitLabel = SubmitLabelLoading
	}
	if c.errMsg != nil {
		msg := *c.errMsg
		view.Error = &msg
	}
	if c.result != nil {
		view.Result = make(riskresult.RiskResult, len(c.result))
		for k, v := range c.result {
			view.Result[k] = v
		}
		display := riskresult.Render(view.Result)
		view.Display = &display
	}
	return view
}
