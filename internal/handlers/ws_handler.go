package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"balanza/internal/events"
	"balanza/internal/logger"
	"balanza/internal/middleware"
	"balanza/internal/services"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 54 * time.Second
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the SPA origin; auth is the token, not the origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades realtime clients and streams ledger events to them.
type WSHandler struct {
	hub             *events.Hub
	businessService services.BusinessServicer
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(hub *events.Hub, businessService services.BusinessServicer) *WSHandler {
	return &WSHandler{hub: hub, businessService: businessService}
}

// Stream upgrades the connection and forwards ledger events for one business
// @Summary     Realtime event stream
// @Description Upgrade to a WebSocket and receive tx_created, balance_updated, and card_credit_updated events for the business. Authenticate with an access token in the token query parameter.
// @Tags        realtime
// @Param       businessID path  string true "Business ID"
// @Param       token      query string true "Access token"
// @Success     101 "Switching protocols"
// @Failure     401 {object} ErrorResponse "Invalid token"
// @Failure     403 {object} ErrorResponse "Not a member of this business"
// @Router      /ws/finance/{businessID} [get]
func (h *WSHandler) Stream(c *gin.Context) {
	businessID, err := parsePathID(c, "businessID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	// WebSocket clients cannot set headers from the browser, so the access
	// token arrives as a query parameter instead of an Authorization header.
	claims, err := middleware.ValidateAccessToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	if _, err := h.businessService.GetMembership(businessID, claims.UserID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a member of this business"})
		return
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Get().Warnw("websocket upgrade failed", "error", err.Error())
		return
	}

	sub := h.hub.Subscribe(businessID)
	log := logger.Get()
	log.Infow("websocket client connected", "business_id", businessID, "user_id", claims.UserID)

	// Reader: we never expect client messages, but the read loop is required
	// to process control frames and to notice the peer going away.
	go func() {
		defer h.hub.Unsubscribe(sub)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Writer: forward hub events and keep the connection alive with pings.
	go func() {
		ticker := time.NewTicker(wsPingPeriod)
		defer func() {
			ticker.Stop()
			conn.Close()
			log.Infow("websocket client disconnected", "business_id", businessID, "user_id", claims.UserID)
		}()
		for {
			select {
			case event, ok := <-sub.C:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(wsWriteWait))
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteJSON(event); err != nil {
					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()
}
