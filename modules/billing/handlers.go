package billing

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/toolgate/handler"
	"github.com/dmitrymomot/toolgate/pkg/auth"
	"github.com/dmitrymomot/toolgate/pkg/catalog"
	"github.com/dmitrymomot/toolgate/pkg/logger"
	"github.com/dmitrymomot/toolgate/pkg/subscription"
)

// maxWebhookBytes bounds webhook payloads read into memory.
const maxWebhookBytes = 65536

var (
	errMissingTool     = handler.ErrBadRequest.WithMessage("Missing tool_id")
	errToolNotFound    = handler.ErrNotFound.WithMessage("Tool not found")
	errAlreadySubbed   = handler.NewHTTPError(http.StatusBadRequest, "already_subscribed", "Already subscribed")
	errWebhookRejected = handler.NewHTTPError(http.StatusBadRequest, "webhook_rejected", "Webhook rejected")
)

func (m *Module) listTools(ctx handler.Context, _ struct{}) handler.Response {
	tools, err := m.catalog.List(ctx)
	if err != nil {
		return handler.Fail(err)
	}
	return handler.JSON(tools)
}

// ToolRef accepts a tool id either as a JSON number or as a string holding
// an id or a tool name. Null and absent values are empty.
type ToolRef string

func (t *ToolRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = ToolRef(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
			return err
		}
		*t = ToolRef(n.String())
	}
	return nil
}

// CheckoutRequest selects the tool to subscribe to.
type CheckoutRequest struct {
	ToolID ToolRef `json:"tool_id"`
}

// CheckoutResponse carries the hosted checkout page URL.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

func (m *Module) createCheckout(ctx handler.Context, req CheckoutRequest) handler.Response {
	user := auth.GetUserFromContext(ctx)
	if user == nil {
		return handler.Fail(errNoCredentials)
	}

	tool, err := m.catalog.Resolve(ctx, string(req.ToolID))
	switch {
	case errors.Is(err, catalog.ErrMissingToolRef):
		return handler.Fail(errMissingTool)
	case errors.Is(err, catalog.ErrToolNotFound):
		return handler.Fail(errToolNotFound)
	case err != nil:
		return handler.Fail(err)
	}

	link, err := m.subs.CreateCheckout(ctx, subscription.CheckoutParams{
		UserID:  user.ID,
		Email:   user.Email,
		ToolID:  tool.ID,
		PriceID: tool.PriceID,
	})
	if errors.Is(err, subscription.ErrSubscriptionAlreadyExists) {
		return handler.Fail(errAlreadySubbed)
	}
	if err != nil {
		return handler.Fail(err)
	}

	return handler.JSON(CheckoutResponse{CheckoutURL: link.URL})
}

// webhook answers 400 for every delivery it could not apply so the
// processor retries it. Failures on this side are logged at error level.
func (m *Module) webhook(ctx handler.Context, _ struct{}) handler.Response {
	r := ctx.Request()
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes+1))
	if err != nil {
		return handler.Fail(errors.Join(errWebhookRejected, err))
	}
	if len(payload) > maxWebhookBytes {
		return handler.Fail(handler.ErrRequestEntityTooLarge)
	}

	err = m.subs.HandleWebhook(ctx, payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		if !subscription.IsWebhookRejection(err) {
			m.logger.ErrorContext(ctx, "failed to apply webhook",
				logger.Error(err),
				logger.Component("billing"),
			)
		}
		return handler.Fail(errors.Join(errWebhookRejected, err))
	}

	return handler.EmptyWithStatus(http.StatusOK)
}

func (m *Module) checkSubscription(ctx handler.Context, _ struct{}) handler.Response {
	user := auth.GetUserFromContext(ctx)
	if user == nil {
		return handler.Fail(errNoCredentials)
	}

	access, err := m.subs.Access(ctx, user.ID)
	if err != nil {
		return handler.Fail(err)
	}
	return handler.JSON(access)
}

func (m *Module) agentGateway(_ handler.Context, _ struct{}) handler.Response {
	return handler.RedirectWithCode(m.cfg.AgentDashboardURL, http.StatusFound)
}

func (m *Module) notImplemented(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSONError(handler.ErrNotImplemented.WithMessage("Not implemented"))
}
