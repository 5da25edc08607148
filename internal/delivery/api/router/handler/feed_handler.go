package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultKeepAliveInterval = 15 * time.Second

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	FeedUC usecase.FeedUsecase
	Logger *slog.Logger
}

// FeedHandler exposes recommendation feed sessions
type FeedHandler struct {
	feedUC    usecase.FeedUsecase
	logger    *slog.Logger
	keepAlive time.Duration
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{
		feedUC:    params.FeedUC,
		logger:    params.Logger,
		keepAlive: defaultKeepAliveInterval,
	}
}

// PositionRequest is a device position fix
type PositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// OpenFeedRequest is sent when the home screen opens
type OpenFeedRequest struct {
	PermissionGranted bool             `json:"permission_granted"`
	Position          *PositionRequest `json:"position"`
	Prefetch          bool             `json:"prefetch"`
}

// FeedResponse is the wire form of a feed state
type FeedResponse struct {
	ID            uuid.UUID            `json:"id"`
	Status        entity.FeedStatus    `json:"status"`
	Stores        []entity.StoreRecord `json:"stores"`
	PageCursor    int                  `json:"page_cursor"`
	Loading       bool                 `json:"loading"`
	EndReached    bool                 `json:"end_reached"`
	LastError     entity.ErrorKind     `json:"last_error,omitempty"`
	RequiresLogin bool                 `json:"requires_login"`
	Accepted      *bool                `json:"accepted,omitempty"`
}

func newFeedResponse(id uuid.UUID, state entity.FeedState) *FeedResponse {
	stores := state.Accumulated
	if stores == nil {
		stores = []entity.StoreRecord{}
	}

	return &FeedResponse{
		ID:            id,
		Status:        state.Status(),
		Stores:        stores,
		PageCursor:    state.PageCursor,
		Loading:       state.Loading,
		EndReached:    state.EndReached,
		LastError:     state.LastError,
		RequiresLogin: state.RequiresLogin(),
	}
}

func parseFeedID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}

func invalidFeedID(c echo.Context) error {
	return response.BadRequest(c, "INVALID_FEED_ID", "Feed ID must be a UUID", nil)
}

// OpenFeed starts a feed session for the reported device location
func (h *FeedHandler) OpenFeed(c echo.Context) error {
	var req OpenFeedRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid feed request", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid device position", validator.Describe(err))
	}

	input := &usecase.OpenFeedInput{
		Location: usecase.DeviceLocationReport{PermissionGranted: req.PermissionGranted},
		Prefetch: req.Prefetch,
	}
	if req.Position != nil {
		input.Location.Position = &entity.Coordinate{
			Latitude:  req.Position.Latitude,
			Longitude: req.Position.Longitude,
		}
	}

	snapshot, err := h.feedUC.OpenFeed(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newFeedResponse(snapshot.ID, snapshot.State))
}

// NextPage requests the next page of a feed. A request made while a fetch is
// in flight or after the end is answered with accepted=false.
func (h *FeedHandler) NextPage(c echo.Context) error {
	id, ok := parseFeedID(c)
	if !ok {
		return invalidFeedID(c)
	}

	snapshot, accepted, err := h.feedUC.RequestNextPage(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := newFeedResponse(snapshot.ID, snapshot.State)
	resp.Accepted = &accepted

	return response.Success(c, http.StatusOK, resp)
}

// GetFeed returns the current feed state
func (h *FeedHandler) GetFeed(c echo.Context) error {
	id, ok := parseFeedID(c)
	if !ok {
		return invalidFeedID(c)
	}

	snapshot, err := h.feedUC.GetFeed(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFeedResponse(snapshot.ID, snapshot.State))
}

// CloseFeed discards a feed session
func (h *FeedHandler) CloseFeed(c echo.Context) error {
	id, ok := parseFeedID(c)
	if !ok {
		return invalidFeedID(c)
	}

	if err := h.feedUC.CloseFeed(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// StreamFeed pushes every feed state transition as a server-sent event until
// the feed ends, the session is closed or the client disconnects.
func (h *FeedHandler) StreamFeed(c echo.Context) error {
	id, ok := parseFeedID(c)
	if !ok {
		return invalidFeedID(c)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	updates, cancel, err := h.feedUC.Subscribe(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer cancel()

	snapshot, err := h.feedUC.GetFeed(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	if err := writeStateEvent(res, id, snapshot.State); err != nil {
		logger.Debug("Feed stream closed", slog.Any("error", err))

		return nil
	}
	if snapshot.State.EndReached {
		return nil
	}

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()

		case state, ok := <-updates:
			if !ok {
				return nil
			}
			if err := writeStateEvent(res, id, state); err != nil {
				logger.Debug("Feed stream closed", slog.Any("error", err))

				return nil
			}
			if state.EndReached {
				return nil
			}
		}
	}
}

func writeStateEvent(res *echo.Response, id uuid.UUID, state entity.FeedState) error {
	data, err := json.Marshal(newFeedResponse(id, state))
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(res, "event: state\ndata: %s\n\n", data); err != nil {
		return err
	}
	res.Flush()

	return nil
}
