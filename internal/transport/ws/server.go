// Package ws expone las consultas del panel por WebSocket con mensajes {id, type, ...}.
package ws

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"pet-health/internal/domain/healthlog"
	"pet-health/internal/domain/records"
	"pet-health/internal/domain/store"
	"pet-health/internal/platform/logger"
)

const (
	TypeGetVisits        = "pet_health/get_visits"
	TypeGetMedications   = "pet_health/get_medications"
	TypeGetStoreDump     = "pet_health/get_store_dump"
	TypeGetUnknownVisits = "pet_health/get_unknown_visits"
	TypeGetPetData       = "pet_health/get_pet_data"
	TypeSubscribe        = "pet_health/subscribe"
	TypeUnsubscribe      = "pet_health/unsubscribe"

	writeWait = 10 * time.Second
)

// Códigos de error de las respuestas.
const (
	CodeInvalidFormat  = "invalid_format"
	CodeUnknownCommand = "unknown_command"
	CodeNotFound       = "not_found"
	CodeUnknownError   = "unknown_error"
)

type request struct {
	ID             int64  `json:"id"`
	Type           string `json:"type"`
	PetID          string `json:"pet_id,omitempty"`
	SubscriptionID int64  `json:"subscription,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type response struct {
	ID      int64      `json:"id"`
	Type    string     `json:"type"`
	Success *bool      `json:"success,omitempty"`
	Result  any        `json:"result,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
	Event   any        `json:"event,omitempty"`
}

type Server struct {
	svc      *healthlog.Service
	bus      *store.Bus
	log      logger.Logger
	upgrader websocket.Upgrader
}

func NewServer(svc *healthlog.Service, bus *store.Bus, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	return &Server{
		svc: svc,
		bus: bus,
		log: log.With(map[string]any{"component": "ws"}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	c := &session{srv: s, conn: conn, subs: map[int64]*store.Subscription{}}
	defer func() {
		cancel()
		c.closeAll()
		_ = conn.Close()
	}()

	s.log.Debug("websocket client connected", map[string]any{"remote": r.RemoteAddr})
	for {
		var req request
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("websocket client disconnected", map[string]any{"error": err.Error()})
			}
			return
		}
		if err := c.handle(ctx, req); err != nil {
			return
		}
	}
}

// session es el estado de una conexión; las escrituras se serializan con mu.
type session struct {
	srv  *Server
	conn *websocket.Conn

	mu   sync.Mutex
	subs map[int64]*store.Subscription
}

func (c *session) write(v response) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

func (c *session) result(id int64, v any) error {
	ok := true
	return c.write(response{ID: id, Type: "result", Success: &ok, Result: v})
}

func (c *session) fail(id int64, code, msg string) error {
	ok := false
	return c.write(response{ID: id, Type: "result", Success: &ok, Error: &errorBody{Code: code, Message: msg}})
}

func (c *session) handle(ctx context.Context, req request) error {
	if req.ID <= 0 {
		return c.fail(req.ID, CodeInvalidFormat, "message id required")
	}
	petID := strings.TrimSpace(req.PetID)
	svc := c.srv.svc

	switch req.Type {
	case TypeGetVisits:
		return c.result(req.ID, map[string]any{"visits": healthlog.EncodeAll(svc.ListVisits(petID))})

	case TypeGetMedications:
		return c.result(req.ID, map[string]any{"medications": healthlog.EncodeAll(svc.ListMedications(petID))})

	case TypeGetUnknownVisits:
		return c.result(req.ID, map[string]any{"visits": healthlog.EncodeAll(svc.UnknownVisits())})

	case TypeGetStoreDump:
		out := map[string]map[string][]records.Fields{}
		if petID != "" {
			out[petID] = healthlog.EncodePetRecords(svc.PetDump(petID))
		} else {
			for id, r := range svc.Dump() {
				out[id] = healthlog.EncodePetRecords(r)
			}
		}
		return c.result(req.ID, map[string]any{"pets": out})

	case TypeGetPetData:
		entries, err := c.petEntries(ctx, petID)
		if err != nil {
			return c.fail(req.ID, CodeUnknownError, err.Error())
		}
		if petID != "" && len(entries) == 0 {
			return c.fail(req.ID, CodeNotFound, "pet not found")
		}
		return c.result(req.ID, map[string]any{"entries": entries})

	case TypeSubscribe:
		sub := c.subscribe(req.ID, petID)
		if err := c.result(req.ID, nil); err != nil {
			c.unsubscribe(req.ID)
			return err
		}
		go c.forward(ctx, req.ID, sub)
		return nil

	case TypeUnsubscribe:
		if !c.unsubscribe(req.SubscriptionID) {
			return c.fail(req.ID, CodeNotFound, "subscription not found")
		}
		return c.result(req.ID, nil)

	default:
		return c.fail(req.ID, CodeUnknownCommand, "unknown command "+req.Type)
	}
}

type petEntry struct {
	PetID         string   `json:"pet_id"`
	PetName       string   `json:"pet_name"`
	PetType       string   `json:"pet_type"`
	Medications   []string `json:"medications"`
	LogCategories []string `json:"log_categories"`
}

func (c *session) petEntries(ctx context.Context, petID string) ([]petEntry, error) {
	list, err := c.srv.svc.Pets(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]petEntry, 0, len(list))
	for _, p := range list {
		if petID != "" && p.ID != petID {
			continue
		}
		e := petEntry{
			PetID:         p.ID,
			PetName:       p.Name,
			PetType:       string(p.Type),
			Medications:   make([]string, 0, len(p.Medications)),
			LogCategories: append([]string{}, p.LogCategories...),
		}
		for _, m := range p.Medications {
			e.Medications = append(e.Medications, m.Name)
		}
		out = append(out, e)
	}
	return out, nil
}

// subscribe registra la suscripción; el bus acumula cambios hasta que arranca forward.
func (c *session) subscribe(id int64, petID string) *store.Subscription {
	sub := c.srv.bus.Subscribe(petID)

	c.mu.Lock()
	if old, ok := c.subs[id]; ok {
		old.Close()
	}
	c.subs[id] = sub
	c.mu.Unlock()
	return sub
}

// forward reenvía cada cambio como {id, type: "event", event} usando el id del mensaje.
func (c *session) forward(ctx context.Context, id int64, sub *store.Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case ch, ok := <-sub.C():
			if !ok {
				return
			}
			if err := c.write(response{ID: id, Type: "event", Event: ch}); err != nil {
				if !errors.Is(err, websocket.ErrCloseSent) {
					c.srv.log.Debug("websocket event not sent", map[string]any{"error": err.Error()})
				}
				return
			}
		}
	}
}

func (c *session) unsubscribe(id int64) bool {
	c.mu.Lock()
	sub, ok := c.subs[id]
	delete(c.subs, id)
	c.mu.Unlock()
	if ok {
		sub.Close()
	}
	return ok
}

func (c *session) closeAll() {
	c.mu.Lock()
	subs := c.subs
	c.subs = map[int64]*store.Subscription{}
	c.mu.Unlock()
	for _, sub := range subs {
		sub.Close()
	}
}
